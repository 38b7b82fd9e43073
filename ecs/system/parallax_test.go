package system

import (
	"math"
	"testing"

	"github.com/milk9111/dasher/ecs/component"
)

func TestAdvanceLayerWrap(t *testing.T) {
	const tiled = 2048.0

	t.Run("single_large_step", func(t *testing.T) {
		layer := component.ParallaxLayer{Speed: 80, TiledWidth: tiled}
		layer = AdvanceLayer(layer, tiled/80)
		if layer.OffsetX != 0 {
			t.Fatalf("expected exact reset to 0, got %v", layer.OffsetX)
		}
	})

	t.Run("step_past_tile", func(t *testing.T) {
		layer := component.ParallaxLayer{Speed: 240, TiledWidth: tiled, OffsetX: -2040}
		layer = AdvanceLayer(layer, 0.5)
		if layer.OffsetX != 0 {
			t.Fatalf("expected exact reset to 0, got %v", layer.OffsetX)
		}
	})

	speeds := []struct {
		name  string
		speed float64
	}{
		{"far", 80},
		{"mid", 160},
		{"near", 240},
	}
	for _, sp := range speeds {
		t.Run("many_small_steps_"+sp.name, func(t *testing.T) {
			const dt = 1.0 / 60.0
			layer := component.ParallaxLayer{Speed: sp.speed, TiledWidth: tiled}
			nominal := int(math.Round(tiled / (sp.speed * dt)))

			wraps := 0
			for i := 1; i <= 3*nominal+3; i++ {
				prev := layer.OffsetX
				layer = AdvanceLayer(layer, dt)
				if layer.OffsetX > 0 || layer.OffsetX <= -tiled {
					t.Fatalf("step %d: offset %v out of (-%v, 0]", i, layer.OffsetX, tiled)
				}
				if layer.OffsetX > prev {
					if layer.OffsetX != 0 {
						t.Fatalf("step %d: expected wrap to exactly 0, got %v", i, layer.OffsetX)
					}
					wraps++
					if want := wraps * nominal; i < want-1 || i > want+wraps {
						t.Fatalf("wrap %d at step %d, expected near step %d", wraps, i, want)
					}
				}
			}
			if wraps < 2 {
				t.Fatalf("expected repeated wraps, got %d", wraps)
			}
		})
	}
}

func TestParallaxSystemLayersIndependent(t *testing.T) {
	w := newTestWorld()
	NewParallaxSystem().Update(w, 0.5)

	want := [component.LayerCount]float64{-40, -80, -120}
	for i, l := range w.Layers {
		if l.OffsetX != want[i] {
			t.Fatalf("layer %d: expected offset %v, got %v", i, want[i], l.OffsetX)
		}
	}
}
