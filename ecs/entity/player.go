package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/prefabs"
)

// NewPlayer stands the player on the ground, horizontally centred.
func NewPlayer(spec *prefabs.DasherSpec, sizes SheetSizes, viewportW, groundLevel float64) (component.Player, error) {
	cell, err := sizes.cell(spec.Player)
	if err != nil {
		return component.Player{}, err
	}
	pos := cp.Vector{
		X: viewportW/2 - float64(cell.X)/2,
		Y: groundLevel - float64(cell.Y),
	}
	return component.Player{
		Sprite: component.NewSprite(spec.Player.Sheet, cell, pos, spec.Player.FrameDuration),
	}, nil
}
