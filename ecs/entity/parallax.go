package entity

import (
	"fmt"

	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/prefabs"
)

// NewLayers builds the far, mid and near layers. Each tile is the sheet
// scaled by the parallax scale factor.
func NewLayers(spec *prefabs.DasherSpec, sizes SheetSizes) ([component.LayerCount]component.ParallaxLayer, error) {
	var layers [component.LayerCount]component.ParallaxLayer
	if len(spec.Parallax.Layers) != component.LayerCount {
		return layers, fmt.Errorf("want %d layers, got %d", component.LayerCount, len(spec.Parallax.Layers))
	}
	for i, l := range spec.Parallax.Layers {
		size, err := sizes.size(l.Sheet)
		if err != nil {
			return layers, err
		}
		layers[i] = component.ParallaxLayer{
			Name:       l.Name,
			Sheet:      l.Sheet,
			Speed:      l.Speed,
			TiledWidth: float64(size.X) * spec.Parallax.Scale,
		}
	}
	return layers, nil
}
