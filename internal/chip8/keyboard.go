package chip8

import "sync"

// Keyboard is the 16-key latch contract the engine consults for SKP/SKNP
// and the single-shot "wait for next key" instruction. Concrete input
// sources (a physical keyboard, a virtual gamepad) are host collaborators;
// they talk to the core only through this interface.
type Keyboard interface {
	KeyDown(k byte)
	KeyUp(k byte)
	IsKeyPressed(k byte) bool
	SetNextKeyCallback(f func(byte))
}

// Keypad is the reference Keyboard implementation: a 16-bit pressed-state
// latch plus one callback slot, consumed by the next KeyDown. It is safe
// for concurrent use, since a host may deliver key events from a different
// goroutine than the one driving the run loop.
type Keypad struct {
	mu        sync.Mutex
	pressed   [16]bool
	onNextKey func(byte)
}

// NewKeypad returns a Keypad with every key released.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// KeyDown marks k pressed and, if a next-key callback is registered,
// delivers k to it and clears the callback.
func (k *Keypad) KeyDown(key byte) {
	k.mu.Lock()
	k.pressed[key&0xF] = true
	cb := k.onNextKey
	k.onNextKey = nil
	k.mu.Unlock()

	if cb != nil {
		cb(key & 0xF)
	}
}

// KeyUp marks k released.
func (k *Keypad) KeyUp(key byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed[key&0xF] = false
}

// IsKeyPressed reports whether k is currently held down.
func (k *Keypad) IsKeyPressed(key byte) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pressed[key&0xF]
}

// SetNextKeyCallback registers f to run on the very next KeyDown, then
// clears itself. Registering a new callback replaces any pending one.
func (k *Keypad) SetNextKeyCallback(f func(byte)) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.onNextKey = f
}
