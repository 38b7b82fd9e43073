package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/assets"
)

// LoadImages loads each named sheet into the registry. On failure the
// images loaded so far stay registered so the caller's Release frees them.
func (r *Registry) LoadImages(keys ...string) error {
	for _, key := range keys {
		if key == "" {
			return fmt.Errorf("render: empty image key")
		}
		if r.GetImage(key) != nil {
			continue
		}
		img, err := loadImageFromAssetsOrFS(key)
		if err != nil {
			return err
		}
		r.RegisterImage(key, img)
	}
	return nil
}

func loadImageFromAssetsOrFS(path string) (*ebiten.Image, error) {
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	tried := []string{path, filepath.Join("assets", path), filepath.Base(path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
				return ebiten.NewImageFromImage(im), nil
			}
		}
	}
	return nil, fmt.Errorf("render: load image %s: %w", path, assets.ErrUnknownAsset)
}
