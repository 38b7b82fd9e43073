package component

import (
	"image"

	"github.com/jakecoffman/cp"
)

// Sprite is one animated cell of a single-row sprite sheet placed on screen.
// Frame.Min.X always equals FrameIndex*Frame.Dx().
type Sprite struct {
	Sheet         string
	Frame         image.Rectangle
	Position      cp.Vector
	FrameIndex    int
	FrameDuration float64 // seconds per frame; 0 holds the first frame forever
	Elapsed       float64
}

// NewSprite places the first cell of a sheet at pos.
func NewSprite(sheet string, cell image.Point, pos cp.Vector, frameDuration float64) Sprite {
	return Sprite{
		Sheet:         sheet,
		Frame:         image.Rect(0, 0, cell.X, cell.Y),
		Position:      pos,
		FrameDuration: frameDuration,
	}
}

func (s Sprite) Width() float64 {
	return float64(s.Frame.Dx())
}

func (s Sprite) Height() float64 {
	return float64(s.Frame.Dy())
}

// Bounds is the drawn rectangle of the sprite.
func (s Sprite) Bounds() Rect {
	return Rect{X: s.Position.X, Y: s.Position.Y, Width: s.Width(), Height: s.Height()}
}
