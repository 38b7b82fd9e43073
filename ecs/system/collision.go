package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// ObstacleHitbox is the obstacle's drawn rectangle shrunk by pad per side,
// so glancing contact with the glow does not count.
func ObstacleHitbox(s component.Sprite, pad float64) component.Rect {
	return s.Bounds().Inset(pad)
}

// Evaluate judges the round from current positions. Collision wins over
// crossing the goal line when both happen in the same frame.
func Evaluate(player component.Player, obstacles component.Obstacles, goalLine, pad float64) component.Outcome {
	hitbox := player.Bounds()
	for _, o := range obstacles {
		if ObstacleHitbox(o, pad).Intersects(hitbox) {
			return component.Lost
		}
	}
	if goalLine < player.Position.X {
		return component.Won
	}
	return component.InProgress
}

type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (c *CollisionSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	w.Outcome = Evaluate(w.Player, w.Obstacles, w.GoalLine, w.Tuning.Padding)
}
