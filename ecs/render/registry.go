package render

import (
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Registry owns every texture loaded for a run and frees them together.
type Registry struct {
	images map[string]*ebiten.Image
}

func NewRegistry() *Registry {
	return &Registry{images: map[string]*ebiten.Image{}}
}

// RegisterImage stores an image by key.
func (r *Registry) RegisterImage(key string, img *ebiten.Image) {
	if r == nil || key == "" || img == nil {
		return
	}
	if old, ok := r.images[key]; ok && old != img {
		old.Deallocate()
	}
	r.images[key] = img
}

// GetImage returns a cached image by key.
func (r *Registry) GetImage(key string) *ebiten.Image {
	if r == nil || key == "" {
		return nil
	}
	return r.images[key]
}

// Sizes reports the native pixel size of every registered image.
func (r *Registry) Sizes() map[string]image.Point {
	if r == nil {
		return nil
	}
	sizes := make(map[string]image.Point, len(r.images))
	for key, img := range r.images {
		sizes[key] = img.Bounds().Size()
	}
	return sizes
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.images))
	for key := range r.images {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Release deallocates every image. The registry is empty afterwards.
func (r *Registry) Release() {
	if r == nil {
		return
	}
	for key, img := range r.images {
		img.Deallocate()
		delete(r.images, key)
	}
}
