package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/dasher/assets"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/entity"
	"github.com/milk9111/dasher/ecs/render"
	"github.com/milk9111/dasher/ecs/system"
	"github.com/milk9111/dasher/platform"
	"github.com/milk9111/dasher/prefabs"
)

type Game struct {
	logger *log.Logger
	debug  bool

	specPath string
	spec     *prefabs.DasherSpec
	world    *ecs.World
	loop     *system.Loop

	images  *render.Registry
	font    *text.GoTextFaceSource
	watcher *prefabs.Watcher
}

// NewGame loads every texture and builds the round. The caller must Close
// the game on every exit path, including when NewGame itself fails.
func NewGame(spec *prefabs.DasherSpec, specPath string, logger *log.Logger, debug bool) (*Game, error) {
	g := &Game{
		logger:   logger,
		debug:    debug,
		specPath: specPath,
		spec:     spec,
		images:   render.NewRegistry(),
	}

	if err := g.images.LoadImages(assets.Names...); err != nil {
		return g, err
	}
	for _, key := range g.images.Keys() {
		size := g.images.GetImage(key).Bounds().Size()
		logger.Debug("loaded texture", "key", key, "width", size.X, "height", size.Y)
	}

	font, err := render.NewFontSource()
	if err != nil {
		return g, err
	}
	g.font = font

	world, err := entity.NewWorld(spec, g.images.Sizes())
	if err != nil {
		return g, err
	}
	g.world = world
	g.loop = system.NewLoop(platform.NewEbiten(spec.Window.TPS, spec.Window.MaxFrameDelta), logger)

	if debug {
		g.watchPrefabs()
	}
	return g, nil
}

func (g *Game) watchPrefabs() {
	w, err := prefabs.NewWatcher(g.specPath)
	if errors.Is(err, prefabs.ErrNoPrefabDir) {
		g.logger.Warn("prefab hot reload disabled; running on the embedded prefab", "error", err)
		return
	}
	if err != nil {
		g.logger.Warn("prefab hot reload disabled", "error", err)
		return
	}
	g.watcher = w
	g.logger.Debug("watching prefab for changes", "path", g.specPath)
}

// reloadPrefabs drains pending reloads without blocking the frame.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case r, ok := <-g.watcher.Reloads:
			if !ok {
				g.stopWatching()
				return
			}
			if r.Err != nil {
				g.logger.Error("prefab reload failed", "file", r.File, "error", r.Err)
				continue
			}
			g.spec = r.Spec
			entity.ApplySpec(g.world, r.Spec)
			g.logger.Info("prefab reloaded", "file", r.File)
		default:
			return
		}
	}
}

func (g *Game) stopWatching() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		g.logger.Warn("close prefab watcher", "error", err)
	}
	g.watcher = nil
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	g.reloadPrefabs()
	g.loop.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.Scene(render.NewEbitenCanvas(screen, g.images, g.font), g.world)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.2f    FPS: %.2f\nFrame: %d    Outcome: %s\nGoal line: %.1f    Player x: %.1f    vy: %.1f",
			ebiten.ActualTPS(), ebiten.ActualFPS(),
			g.world.Frames, g.world.Outcome,
			g.world.GoalLine, g.world.Player.Position.X, g.world.Player.Velocity))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.world.Width, g.world.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the watcher and every texture. It is safe on a partially
// built game.
func (g *Game) Close() {
	g.stopWatching()
	g.images.Release()
}
