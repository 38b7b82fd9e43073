package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyInput samples the keyboard and the first gamepad.
type KeyInput struct {
	keys []ebiten.Key
}

func NewKeyInput(keys ...ebiten.Key) *KeyInput {
	if len(keys) == 0 {
		keys = []ebiten.Key{ebiten.KeySpace}
	}
	return &KeyInput{keys: keys}
}

func (k *KeyInput) JumpPressed() bool {
	for _, key := range k.keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		return inpututil.IsStandardGamepadButtonJustPressed(gamepads[0], ebiten.StandardGamepadButtonRightBottom)
	}
	return false
}
