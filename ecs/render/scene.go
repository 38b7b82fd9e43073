package render

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"golang.org/x/image/colornames"
)

// Scene projects the world onto the canvas. A finished round shows only its
// end message.
func Scene(c Canvas, w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	c.Clear(colornames.White)

	switch w.Outcome {
	case component.Lost:
		drawMessage(c, w, w.Tuning.LostMessage, colornames.Red)
		return
	case component.Won:
		drawMessage(c, w, w.Tuning.WonMessage, colornames.Green)
		return
	}

	for _, l := range w.Layers {
		c.DrawFullImage(l.Sheet, cp.Vector{X: l.OffsetX}, w.Tuning.ParallaxScale, colornames.White)
		c.DrawFullImage(l.Sheet, cp.Vector{X: l.OffsetX + l.TiledWidth}, w.Tuning.ParallaxScale, colornames.White)
	}
	for _, o := range w.Obstacles {
		c.DrawTiledImage(o.Sheet, o.Frame, o.Position, 1, colornames.White)
	}
	c.DrawTiledImage(w.Player.Sheet, w.Player.Frame, w.Player.Position, 1, colornames.White)
}

func drawMessage(c Canvas, w *ecs.World, msg string, col color.Color) {
	c.DrawText(msg, w.Width/2+w.Tuning.MessageOffsetX, w.Height/2, w.Tuning.MessageSize, col)
}
