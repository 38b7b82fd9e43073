package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// Advance accumulates dt and steps the sprite to its next cell once a full
// frame duration has elapsed, wrapping past maxFrame. Sprites with a zero
// frame duration never advance.
func Advance(s component.Sprite, dt float64, maxFrame int) component.Sprite {
	s.Elapsed += dt
	if s.FrameDuration <= 0 || s.Elapsed < s.FrameDuration {
		return s
	}

	s.Elapsed = 0
	s.FrameIndex++
	if s.FrameIndex > maxFrame {
		s.FrameIndex = 0
	}

	w := s.Frame.Dx()
	s.Frame.Min.X = s.FrameIndex * w
	s.Frame.Max.X = s.Frame.Min.X + w
	return s
}

// PlayerAnimationSystem runs the player's cycle only while it stands on the
// ground, so the pose freezes mid-jump.
type PlayerAnimationSystem struct{}

func NewPlayerAnimationSystem() *PlayerAnimationSystem {
	return &PlayerAnimationSystem{}
}

func (a *PlayerAnimationSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	p := &w.Player
	if !IsGrounded(p.Position, p.Height(), w.GroundLevel()) {
		return
	}
	p.Sprite = Advance(p.Sprite, dt, w.Tuning.PlayerMaxFrame)
}
