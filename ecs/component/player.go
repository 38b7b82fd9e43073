package component

// Player is the jumping sprite. Velocity is vertical only, in px/s, with
// positive values pointing down.
type Player struct {
	Sprite
	Velocity float64
}
