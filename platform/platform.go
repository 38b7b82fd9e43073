// Package platform adapts the window, clock and keyboard to the narrow
// surface the game loop consumes.
package platform

// Clock reports the wall-clock seconds since the previous frame.
type Clock interface {
	FrameDelta() float64
}

// Input reports whether the jump trigger went down this frame.
type Input interface {
	JumpPressed() bool
}

// Platform is everything the loop pulls from the outside world each frame.
type Platform interface {
	Clock
	Input
}

type platform struct {
	Clock
	Input
}

// New pairs a clock and an input source.
func New(clock Clock, input Input) Platform {
	return platform{Clock: clock, Input: input}
}

// NewEbiten returns a platform backed by the running ebiten game.
func NewEbiten(tps int, maxDelta float64) Platform {
	return New(NewWallClock(tps, maxDelta), NewKeyInput())
}
