package ecs

import "github.com/milk9111/dasher/ecs/component"

// Tuning holds the constants the systems read each frame. It can be
// swapped on a live world without touching entity state.
type Tuning struct {
	Gravity          float64 // px/s², positive is down
	JumpImpulse      float64 // px/s, negative is up
	ObstacleVelocity float64 // px/s, negative is left
	Padding          float64 // obstacle hit-box inset per side
	PlayerMaxFrame   int
	ObstacleMaxFrame int
	ParallaxScale    float64
	LostMessage      string
	WonMessage       string
	MessageSize      float64
	MessageOffsetX   float64
}

// World is the whole state of one round. It is owned by the loop and handed
// to each system in turn.
type World struct {
	Width  float64
	Height float64

	Tuning Tuning

	Player    component.Player
	Obstacles component.Obstacles
	GoalLine  float64
	Layers    [component.LayerCount]component.ParallaxLayer

	Input   component.Input
	Outcome component.Outcome

	Frames int
}

// GroundLevel is the y coordinate sprites stand on.
func (w *World) GroundLevel() float64 {
	if w == nil {
		return 0
	}
	return w.Height
}
