// dasher is a side-scrolling runner: jump the nebulae until the finish line
// passes you.
//
// Usage:
//
//	dasher               - Play a round
//	dasher spec          - Print the effective tuning as YAML
//
// Flags:
//
//	--config <path>     - Tuning prefab to load instead of prefabs/dasher.yaml
//	--debug             - Debug overlay, debug logging and prefab hot reload
//	                      (watches --config, or ./prefabs when run from the repo root)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--tps <rate>        - Override the tick rate from the prefab
//	-m, --monitor       - Use the base monitor instead of the primary one
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/prefabs"
	"github.com/spf13/cobra"
)

var (
	flagConfig      string
	flagDebug       bool
	flagLogLevel    string
	flagTPS         int
	flagBaseMonitor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "dasher",
	Short:        "Jump the nebulae before the finish line passes you",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		spec, err := loadSpec()
		if err != nil {
			return err
		}
		return run(spec, logger)
	},
}

var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "Print the effective tuning prefab",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadSpec()
		if err != nil {
			return err
		}
		data, err := spec.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Tuning prefab path (default: prefabs/dasher.yaml, then embedded)")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Tick rate override (0 = use prefab)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug overlay, debug logging and prefab hot reload (hot reload watches --config, or ./prefabs/dasher.yaml when run from the repo root)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVarP(&flagBaseMonitor, "monitor", "m", false, "Use base monitor instead of primary (for multi-monitor setups)")

	rootCmd.AddCommand(specCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "dasher",
	}), nil
}

func loadSpec() (*prefabs.DasherSpec, error) {
	spec, err := prefabs.LoadDasherSpec(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagTPS > 0 {
		spec.Window.TPS = flagTPS
	}
	return spec, nil
}

func run(spec *prefabs.DasherSpec, logger *log.Logger) error {
	logger.Info("starting",
		"title", spec.Window.Title,
		"width", spec.Window.Width,
		"height", spec.Window.Height,
		"tps", spec.Window.TPS,
	)

	if flagBaseMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(spec.Window.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(spec.Window.TPS)

	game, err := NewGame(spec, flagConfig, logger, flagDebug)
	defer func() {
		game.Close()
		logger.Info("shutdown complete")
	}()
	if err != nil {
		return err
	}

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
