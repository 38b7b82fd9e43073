// spsa previews the first row of an embedded sprite sheet, animated with the
// same frame stepping the game uses.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/assets"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/ecs/system"
	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"
)

const previewSize = 512

type demoGame struct {
	sheet    *ebiten.Image
	sprite   component.Sprite
	maxFrame int
}

func (g *demoGame) Update() error {
	g.sprite = system.Advance(g.sprite, 1/float64(ebiten.TPS()), g.maxFrame)
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	sub, ok := g.sheet.SubImage(g.sprite.Frame).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(g.sprite.Position.X, g.sprite.Position.Y)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(sub, op)
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func newDemoGame(name string, cols, rows int, fps float64) (*demoGame, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("sheet grid must be positive, got %dx%d", cols, rows)
	}
	sheet, err := assets.LoadImage(name)
	if err != nil {
		return nil, err
	}
	size := sheet.Bounds().Size()
	cell := image.Pt(size.X/cols, size.Y/rows)

	frameDuration := 0.0
	if fps > 0 {
		frameDuration = 1 / fps
	}
	pos := cp.Vector{X: float64(previewSize-cell.X) / 2, Y: float64(previewSize-cell.Y) / 2}
	return &demoGame{
		sheet:    sheet,
		sprite:   component.NewSprite(name, cell, pos, frameDuration),
		maxFrame: cols - 1,
	}, nil
}

func main() {
	var (
		cols, rows int
		fps        float64
	)
	cmd := &cobra.Command{
		Use:   "spsa <sheet>",
		Short: "Preview an embedded sprite sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newDemoGame(args[0], cols, rows, fps)
			if err != nil {
				return err
			}
			defer g.sheet.Deallocate()
			log.Info("previewing", "sheet", args[0], "frames", g.maxFrame+1, "cell", g.sprite.Frame.Size())

			ebiten.SetWindowSize(previewSize, previewSize)
			ebiten.SetWindowTitle("Sprite Sheet Preview: " + args[0])
			return ebiten.RunGame(g)
		},
	}
	cmd.Flags().IntVar(&cols, "cols", 6, "Frames per row")
	cmd.Flags().IntVar(&rows, "rows", 1, "Rows in the sheet")
	cmd.Flags().Float64Var(&fps, "fps", 12, "Frames per second (0 = hold first frame)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
