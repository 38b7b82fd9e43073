package system

import (
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

const (
	testWidth  = 2048.0
	testHeight = 1480.0
	testCell   = 200
)

// newTestWorld mirrors the shipped tuning with 200px cells.
func newTestWorld() *ecs.World {
	w := &ecs.World{
		Width:  testWidth,
		Height: testHeight,
		Tuning: ecs.Tuning{
			Gravity:          4000,
			JumpImpulse:      -2400,
			ObstacleVelocity: -600,
			Padding:          50,
			PlayerMaxFrame:   5,
			ObstacleMaxFrame: 7,
			ParallaxScale:    8,
			LostMessage:      "Game Over!",
			WonMessage:       "You win!",
			MessageSize:      100,
			MessageOffsetX:   -200,
		},
	}
	cell := image.Pt(testCell, testCell)
	w.Player = component.Player{
		Sprite: component.NewSprite("scarfy.png", cell, cp.Vector{
			X: testWidth/2 - testCell/2,
			Y: testHeight - testCell,
		}, 1.0/12.0),
	}
	w.Obstacles = PlaceObstacles("nebula.png", cell, testWidth, testHeight, 0.5, 1.0/16.0)
	w.GoalLine = w.Obstacles.Last().Position.X
	speeds := [component.LayerCount]float64{80, 160, 240}
	for i := range w.Layers {
		w.Layers[i] = component.ParallaxLayer{Speed: speeds[i], TiledWidth: 2048}
	}
	return w
}

// scriptedPlatform replays a fixed delta and a list of frames on which the
// jump edge fires.
type scriptedPlatform struct {
	dt     float64
	jumps  map[int]bool
	frames int
}

func (p *scriptedPlatform) FrameDelta() float64 {
	p.frames++
	return p.dt
}

func (p *scriptedPlatform) JumpPressed() bool {
	return p.jumps[p.frames]
}
