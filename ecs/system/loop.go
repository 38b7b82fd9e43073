package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/platform"
)

// Loop drives one round. Each Update pulls a delta and the jump edge from
// the platform and runs the systems in a fixed order. Once the round is Lost
// or Won the world is never mutated again.
type Loop struct {
	scheduler *ecs.Scheduler
	platform  platform.Platform
	logger    *log.Logger
}

func NewLoop(p platform.Platform, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{
		// Player animation must see the position after motion so a player
		// landing this frame is drawn running.
		scheduler: ecs.NewScheduler(
			NewParallaxSystem(),
			NewPlayerPhysicsSystem(),
			NewObstacleSystem(),
			NewPlayerMotionSystem(),
			NewPlayerAnimationSystem(),
			NewCollisionSystem(),
		),
		platform: p,
		logger:   logger,
	}
}

// Update advances the world by one frame and returns the resulting outcome.
func (l *Loop) Update(w *ecs.World) component.Outcome {
	if w == nil {
		return component.InProgress
	}
	if w.Outcome.Terminal() {
		return w.Outcome
	}

	dt := l.platform.FrameDelta()
	w.Input.JumpPressed = l.platform.JumpPressed()
	l.scheduler.Update(w, dt)
	w.Frames++

	if w.Outcome.Terminal() {
		l.logger.Info("round over",
			"outcome", w.Outcome,
			"frames", w.Frames,
			"goal_line", w.GoalLine,
			"player_x", w.Player.Position.X,
		)
	}
	return w.Outcome
}

// Systems exposes the update order.
func (l *Loop) Systems() []ecs.System {
	return l.scheduler.Systems()
}
