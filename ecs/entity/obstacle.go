package entity

import (
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/ecs/system"
	"github.com/milk9111/dasher/prefabs"
)

func NewObstacles(spec *prefabs.DasherSpec, sizes SheetSizes, viewportW, groundLevel float64) (component.Obstacles, error) {
	cell, err := sizes.cell(spec.Obstacles.SheetSpec)
	if err != nil {
		return component.Obstacles{}, err
	}
	o := spec.Obstacles
	return system.PlaceObstacles(o.Sheet, cell, viewportW, groundLevel, o.Spacing, o.FrameDuration), nil
}
