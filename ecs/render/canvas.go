package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas is the set of drawing primitives a frame is projected onto.
// Images are addressed by registry key.
type Canvas interface {
	Clear(c color.Color)
	DrawTiledImage(key string, src image.Rectangle, dst cp.Vector, scale float64, tint color.Color)
	DrawFullImage(key string, dst cp.Vector, scale float64, tint color.Color)
	DrawText(msg string, x, y, size float64, c color.Color)
}

// NewFontSource parses the bundled Go Regular face used for messages.
func NewFontSource() (*text.GoTextFaceSource, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return s, nil
}

// EbitenCanvas draws onto an ebiten screen image.
type EbitenCanvas struct {
	screen *ebiten.Image
	images *Registry
	font   *text.GoTextFaceSource
}

func NewEbitenCanvas(screen *ebiten.Image, images *Registry, font *text.GoTextFaceSource) *EbitenCanvas {
	return &EbitenCanvas{screen: screen, images: images, font: font}
}

func (c *EbitenCanvas) Clear(col color.Color) {
	c.screen.Fill(col)
}

func (c *EbitenCanvas) DrawTiledImage(key string, src image.Rectangle, dst cp.Vector, scale float64, tint color.Color) {
	img := c.images.GetImage(key)
	if img == nil {
		return
	}
	sub, ok := img.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleWithColor(tint)
	c.screen.DrawImage(sub, op)
}

func (c *EbitenCanvas) DrawFullImage(key string, dst cp.Vector, scale float64, tint color.Color) {
	img := c.images.GetImage(key)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleWithColor(tint)
	c.screen.DrawImage(img, op)
}

func (c *EbitenCanvas) DrawText(msg string, x, y, size float64, col color.Color) {
	if c.font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.screen, msg, &text.GoTextFace{Source: c.font, Size: size}, op)
}
