// Package chip8 implements a CHIP-8 virtual machine: memory, registers,
// the instruction decoder, the 35 executors, the fetch/decode/execute
// engine, and a frame-driven run loop. Concrete displays and keyboards are
// supplied by the host through the Display and Keyboard interfaces; this
// package owns no window, no audio device, and no file handle.
package chip8

import (
	"math/rand"
	"time"
)

const (
	memorySize     = 4096
	programStart   = 0x200
	maxProgramSize = memorySize - programStart
	stackSize      = 16
	numRegisters   = 16
	flagRegister   = 0xF

	// StepsPerCycle is how many fetch/decode/execute steps run per Cycle,
	// before the once-per-cycle timer tick. 60Hz * 10 steps/cycle puts the
	// CPU at roughly 600 instructions/sec, in line with real CHIP-8 ROMs'
	// expectations.
	StepsPerCycle = 10

	// Speed is the cycle rate in Hz; both timers and the run loop's fixed
	// delay are driven off it.
	Speed = 60
)

// quirks are compatibility toggles fixed at construction.
type quirks struct {
	shift     bool
	loadStore bool
}

// Machine holds all CHIP-8 CPU state: memory, registers, PC/SP/I, the call
// stack, the two countdown timers, the RNG, the keyboard latch, and the
// repaint/halted flags. The framebuffer itself is NOT part of Machine; it
// is owned by whichever Display the engine is handed.
type Machine struct {
	memory [memorySize]byte

	v  [numRegisters]byte
	i  uint16
	pc uint16

	stack [stackSize]uint16
	sp    byte

	dt byte
	st byte

	repaint bool
	halted  bool

	quirks quirks
	rng    *rand.Rand

	Keyboard Keyboard
}

// Option configures a Machine at construction time.
type Option func(*Machine)

// WithShiftQuirk enables the shift quirk: SHR/SHL read and write Vx in
// place instead of reading Vy.
func WithShiftQuirk() Option {
	return func(m *Machine) { m.quirks.shift = true }
}

// WithLoadStoreQuirk enables the load/store quirk: Fx55/Fx65 leave I
// unchanged instead of post-incrementing it by x+1.
func WithLoadStoreQuirk() Option {
	return func(m *Machine) { m.quirks.loadStore = true }
}

// WithSeed fixes the RNG seed, for deterministic/reproducible runs (tests,
// recorded playthroughs). Without it, the Machine seeds itself from the
// current time.
func WithSeed(seed uint64) Option {
	return func(m *Machine) { m.rng = rand.New(rand.NewSource(int64(seed))) }
}

// WithKeyboard supplies the Keyboard the engine consults for SKP/SKNP and
// Fx0A. Without it, a fresh *Keypad is used.
func WithKeyboard(kb Keyboard) Option {
	return func(m *Machine) { m.Keyboard = kb }
}

// NewMachine returns a Machine with the font preloaded at 0x000-0x04F, PC
// at 0x200, and every other field zeroed.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		pc:       programStart,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		Keyboard: NewKeypad(),
	}
	copy(m.memory[:len(fontSet)], fontSet[:])

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoadProgram copies rom into memory starting at 0x200. It fails if rom
// does not fit in the 3584 bytes available above the reserved area.
func (m *Machine) LoadProgram(rom []byte) error {
	if len(rom) > maxProgramSize {
		return ErrProgramTooLarge
	}
	copy(m.memory[programStart:], rom)
	return nil
}

// Halted reports whether the machine is blocked in Fx0A waiting for a key.
func (m *Machine) Halted() bool { return m.halted }

// PC, I, SP, V, DT, ST expose machine state for hosts and tests that want
// to inspect it without reaching into package internals.
func (m *Machine) PC() uint16    { return m.pc }
func (m *Machine) I() uint16     { return m.i }
func (m *Machine) SP() byte      { return m.sp }
func (m *Machine) V(x byte) byte { return m.v[x&0xF] }
func (m *Machine) DT() byte      { return m.dt }
func (m *Machine) ST() byte      { return m.st }

// ShouldBeep reports whether the sound timer is currently active. The core
// does not synthesize audio (see Non-goals); a host that wants a beeper
// polls this and plays its own tone while it is true.
func (m *Machine) ShouldBeep() bool { return m.st > 0 }

func (m *Machine) advance() {
	m.pc = (m.pc + 2) & 0x0FFF
}

func (m *Machine) skip() {
	m.pc = (m.pc + 4) & 0x0FFF
}

func (m *Machine) updateTimers() {
	if m.dt > 0 {
		m.dt--
	}
	if m.st > 0 {
		m.st--
	}
}

func (m *Machine) randByte() byte {
	return byte(m.rng.Intn(256))
}
