package pixelview

import (
	"github.com/bradford-hamilton/chippy/internal/chip8"
	"github.com/faiface/pixel/pixelgl"
)

// keyMap is the classic COSMAC-VIP layout:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keyMap = map[byte]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// Keyboard polls a pixelgl window's button state once per run-loop
// iteration and forwards transitions to a *chip8.Keypad. CHIP-8 itself has
// no notion of key auto-repeat, so this just mirrors JustPressed/JustReleased
// directly onto KeyDown/KeyUp.
type Keyboard struct {
	win    *pixelgl.Window
	keypad *chip8.Keypad
}

// NewKeyboard returns a Keyboard that polls win and drives keypad.
func NewKeyboard(win *pixelgl.Window, keypad *chip8.Keypad) *Keyboard {
	return &Keyboard{win: win, keypad: keypad}
}

// Poll checks every mapped button for a just-pressed/just-released
// transition and forwards it to the Keypad. Call it once per run-loop
// iteration, from the same goroutine driving the loop. The core's
// Keyboard contract tolerates delivery from elsewhere, but this backend
// doesn't need it.
func (k *Keyboard) Poll() {
	for code, button := range keyMap {
		switch {
		case k.win.JustPressed(button):
			k.keypad.KeyDown(code)
		case k.win.JustReleased(button):
			k.keypad.KeyUp(code)
		}
	}
}
