package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/ecs"
)

// IsGrounded reports whether a sprite of the given height at pos has its
// bottom edge on or below groundLevel. Screen y grows downward.
func IsGrounded(pos cp.Vector, height, groundLevel float64) bool {
	return pos.Y >= groundLevel-height
}

// Integrate returns the vertical velocity for the next step. Landing cancels
// any fall speed; in the air gravity accumulates. The jump impulse is only
// granted while grounded.
func Integrate(velocity float64, grounded bool, gravity, jumpImpulse float64, jump bool, dt float64) float64 {
	if grounded {
		velocity = 0
	} else {
		velocity += gravity * dt
	}
	if jump && grounded {
		velocity += jumpImpulse
	}
	return velocity
}

// PlayerPhysicsSystem updates the player's vertical velocity and consumes
// the jump edge for this frame.
type PlayerPhysicsSystem struct{}

func NewPlayerPhysicsSystem() *PlayerPhysicsSystem {
	return &PlayerPhysicsSystem{}
}

func (p *PlayerPhysicsSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	player := &w.Player
	grounded := IsGrounded(player.Position, player.Height(), w.GroundLevel())
	jump := w.Input.ConsumeJump()
	player.Velocity = Integrate(player.Velocity, grounded, w.Tuning.Gravity, w.Tuning.JumpImpulse, jump, dt)
}

// PlayerMotionSystem moves the player vertically. The player never moves
// horizontally.
type PlayerMotionSystem struct{}

func NewPlayerMotionSystem() *PlayerMotionSystem {
	return &PlayerMotionSystem{}
}

func (m *PlayerMotionSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	w.Player.Position = w.Player.Position.Add(cp.Vector{Y: w.Player.Velocity}.Mult(dt))
}
