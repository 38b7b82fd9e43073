package component

// Input holds the per-frame input sample. JumpPressed is edge-triggered and
// must be consumed at most once per frame.
type Input struct {
	JumpPressed bool
}

// ConsumeJump returns the pending jump edge and clears it.
func (in *Input) ConsumeJump() bool {
	pressed := in.JumpPressed
	in.JumpPressed = false
	return pressed
}
