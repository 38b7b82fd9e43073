package entity

import (
	"errors"
	"fmt"
	"image"

	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/prefabs"
)

var ErrMissingSheet = errors.New("entity: missing sheet")

// SheetSizes maps a sheet name to its native pixel size.
type SheetSizes map[string]image.Point

func (s SheetSizes) size(name string) (image.Point, error) {
	p, ok := s[name]
	if !ok || p.X <= 0 || p.Y <= 0 {
		return image.Point{}, fmt.Errorf("%w: %s", ErrMissingSheet, name)
	}
	return p, nil
}

// cell returns the size of one cell of a grid-laid sprite sheet.
func (s SheetSizes) cell(sheet prefabs.SheetSpec) (image.Point, error) {
	p, err := s.size(sheet.Sheet)
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(p.X/sheet.Columns, p.Y/sheet.Rows), nil
}

// NewWorld builds a fresh round from the tuning prefab and the sizes of the
// loaded sheets.
func NewWorld(spec *prefabs.DasherSpec, sizes SheetSizes) (*ecs.World, error) {
	if spec == nil {
		return nil, fmt.Errorf("entity: nil spec")
	}
	w := &ecs.World{
		Width:  float64(spec.Window.Width),
		Height: float64(spec.Window.Height),
		Tuning: NewTuning(spec),
	}

	player, err := NewPlayer(spec, sizes, w.Width, w.GroundLevel())
	if err != nil {
		return nil, fmt.Errorf("entity: player: %w", err)
	}
	w.Player = player

	obstacles, err := NewObstacles(spec, sizes, w.Width, w.GroundLevel())
	if err != nil {
		return nil, fmt.Errorf("entity: obstacles: %w", err)
	}
	w.Obstacles = obstacles
	w.GoalLine = w.Obstacles.Last().Position.X

	layers, err := NewLayers(spec, sizes)
	if err != nil {
		return nil, fmt.Errorf("entity: parallax: %w", err)
	}
	w.Layers = layers

	return w, nil
}

// NewTuning copies the per-frame constants out of the prefab.
func NewTuning(spec *prefabs.DasherSpec) ecs.Tuning {
	return ecs.Tuning{
		Gravity:          spec.Physics.Gravity,
		JumpImpulse:      spec.Physics.JumpImpulse,
		ObstacleVelocity: spec.Obstacles.Velocity,
		Padding:          spec.Obstacles.Padding,
		PlayerMaxFrame:   spec.Player.Columns - 1,
		ObstacleMaxFrame: spec.Obstacles.Columns - 1,
		ParallaxScale:    spec.Parallax.Scale,
		LostMessage:      spec.Messages.Lost,
		WonMessage:       spec.Messages.Won,
		MessageSize:      spec.Messages.Size,
		MessageOffsetX:   spec.Messages.OffsetX,
	}
}

// ApplySpec swaps tuning on a live world. Positions, frames and the outcome
// are left alone. Sheet geometry (columns, parallax scale) is tied to the
// cells and tile widths built by NewWorld and needs a restart.
func ApplySpec(w *ecs.World, spec *prefabs.DasherSpec) {
	if w == nil || spec == nil {
		return
	}
	tuning := NewTuning(spec)
	tuning.ParallaxScale = w.Tuning.ParallaxScale
	tuning.PlayerMaxFrame = w.Tuning.PlayerMaxFrame
	tuning.ObstacleMaxFrame = w.Tuning.ObstacleMaxFrame
	w.Tuning = tuning
	w.Player.FrameDuration = spec.Player.FrameDuration
	for i := range w.Obstacles {
		w.Obstacles[i].FrameDuration = spec.Obstacles.FrameDuration
	}
	for i := range w.Layers {
		if i < len(spec.Parallax.Layers) {
			w.Layers[i].Speed = spec.Parallax.Layers[i].Speed
		}
	}
}
