package chip8

import "testing"

func TestNewMachine_preloadsFontAndResetsPC(t *testing.T) {
	m := NewMachine()

	if m.PC() != programStart {
		t.Errorf("PC = %#x, want %#x", m.PC(), programStart)
	}
	if m.I() != 0 {
		t.Errorf("I = %#x, want 0", m.I())
	}
	if m.SP() != 0 {
		t.Errorf("SP = %d, want 0", m.SP())
	}
	for i, b := range fontSet {
		if m.memory[i] != b {
			t.Fatalf("memory[%d] = %#x, want %#x (font not preloaded correctly)", i, m.memory[i], b)
		}
	}
}

func TestLoadProgram_copiesROMAtProgramStart(t *testing.T) {
	m := NewMachine()
	rom := []byte{0x12, 0x34, 0x56}

	if err := m.LoadProgram(rom); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}

	if m.memory[programStart] != 0x12 || m.memory[programStart+1] != 0x34 || m.memory[programStart+2] != 0x56 {
		t.Errorf("memory[programStart:+3] = %#x %#x %#x, want 0x12 0x34 0x56",
			m.memory[programStart], m.memory[programStart+1], m.memory[programStart+2])
	}
}

func TestLoadProgram_rejectsOversizedROM(t *testing.T) {
	m := NewMachine()
	rom := make([]byte, maxProgramSize+1)

	if err := m.LoadProgram(rom); err != ErrProgramTooLarge {
		t.Errorf("LoadProgram returned %v, want ErrProgramTooLarge", err)
	}
}

func TestShouldBeep_tracksSoundTimer(t *testing.T) {
	m := NewMachine()
	if m.ShouldBeep() {
		t.Error("ShouldBeep() should be false with ST == 0")
	}

	m.st = 3
	if !m.ShouldBeep() {
		t.Error("ShouldBeep() should be true with ST > 0")
	}
}

func TestWithSeed_makesRandByteDeterministic(t *testing.T) {
	a := NewMachine(WithSeed(42))
	b := NewMachine(WithSeed(42))

	for i := 0; i < 16; i++ {
		ra, rb := a.randByte(), b.randByte()
		if ra != rb {
			t.Fatalf("randByte() diverged at sample %d: %#x vs %#x", i, ra, rb)
		}
	}
}

func TestUpdateTimers_decrementsButNotBelowZero(t *testing.T) {
	m := NewMachine()
	m.dt = 1
	m.st = 0

	m.updateTimers()
	if m.dt != 0 {
		t.Errorf("DT = %d, want 0", m.dt)
	}
	if m.st != 0 {
		t.Errorf("ST = %d, want 0", m.st)
	}

	m.updateTimers()
	if m.dt != 0 {
		t.Errorf("DT = %d, want 0 (must not go negative)", m.dt)
	}
}
