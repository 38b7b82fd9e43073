package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// AdvanceLayer scrolls a layer left by its speed and snaps it back to zero
// once a whole tile has gone past the origin.
func AdvanceLayer(layer component.ParallaxLayer, dt float64) component.ParallaxLayer {
	layer.OffsetX -= layer.Speed * dt
	if layer.OffsetX <= -layer.TiledWidth {
		layer.OffsetX = 0
	}
	return layer
}

type ParallaxSystem struct{}

func NewParallaxSystem() *ParallaxSystem {
	return &ParallaxSystem{}
}

func (p *ParallaxSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	for i := range w.Layers {
		w.Layers[i] = AdvanceLayer(w.Layers[i], dt)
	}
}
