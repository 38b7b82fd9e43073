package system

import (
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// PlaceObstacles lines the field up just past the right edge of the
// viewport, each obstacle spacing*viewportW further right than the previous
// one, all resting on the ground.
func PlaceObstacles(sheet string, cell image.Point, viewportW, groundLevel, spacing, frameDuration float64) component.Obstacles {
	var obstacles component.Obstacles
	y := groundLevel - float64(cell.Y)
	for i := range obstacles {
		x := viewportW + spacing*viewportW*float64(i)
		obstacles[i] = component.NewSprite(sheet, cell, cp.Vector{X: x, Y: y}, frameDuration)
	}
	return obstacles
}

// AdvanceObstacles translates every obstacle by velocity*dt and then steps
// its animation.
func AdvanceObstacles(obstacles component.Obstacles, dt, velocity float64, maxFrame int) component.Obstacles {
	step := cp.Vector{X: velocity}.Mult(dt)
	for i := range obstacles {
		obstacles[i].Position = obstacles[i].Position.Add(step)
		obstacles[i] = Advance(obstacles[i], dt, maxFrame)
	}
	return obstacles
}

// AdvanceGoalLine scrolls the goal line with the obstacles.
func AdvanceGoalLine(goalLine, dt, velocity float64) float64 {
	return goalLine + velocity*dt
}

type ObstacleSystem struct{}

func NewObstacleSystem() *ObstacleSystem {
	return &ObstacleSystem{}
}

func (o *ObstacleSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	w.Obstacles = AdvanceObstacles(w.Obstacles, dt, w.Tuning.ObstacleVelocity, w.Tuning.ObstacleMaxFrame)
	w.GoalLine = AdvanceGoalLine(w.GoalLine, dt, w.Tuning.ObstacleVelocity)
}
