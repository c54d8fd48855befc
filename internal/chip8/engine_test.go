package chip8

import "testing"

// loadOpcodes writes a sequence of big-endian opcodes starting at 0x200.
func loadOpcodes(t *testing.T, m *Machine, ops ...uint16) {
	t.Helper()
	rom := make([]byte, len(ops)*2)
	for i, op := range ops {
		rom[i*2] = byte(op >> 8)
		rom[i*2+1] = byte(op)
	}
	if err := m.LoadProgram(rom); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
}

func TestStep_decodesExecutesAndAdvancesPC(t *testing.T) {
	m := NewMachine()
	d := newFakeDisplay(DefaultWidth, DefaultHeight)
	loadOpcodes(t, m, 0x6A12) // LD VA, 0x12

	if err := m.Step(d); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.v[0xA] != 0x12 {
		t.Errorf("VA = %#x, want 0x12", m.v[0xA])
	}
	if m.pc != 0x202 {
		t.Errorf("PC = %#x, want 0x202", m.pc)
	}
}

func TestStep_repaintsOnceThenClearsFlag(t *testing.T) {
	m := NewMachine()
	d := newFakeDisplay(DefaultWidth, DefaultHeight)
	loadOpcodes(t, m, 0x00E0) // CLS

	if err := m.Step(d); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if d.repaints != 1 {
		t.Errorf("Repaint calls = %d, want 1", d.repaints)
	}
	if m.repaint {
		t.Error("repaint flag should be cleared after Step")
	}
}

func TestStep_propagatesDecodeError(t *testing.T) {
	m := NewMachine()
	d := newFakeDisplay(DefaultWidth, DefaultHeight)
	loadOpcodes(t, m, 0x5AB1) // invalid: 5xy1

	err := m.Step(d)
	if _, ok := err.(*DecodeError); !ok {
		t.Fatalf("Step returned %T (%v), want *DecodeError", err, err)
	}
}

func TestCycle_runsStepsPerCycleAndTicksTimersOnce(t *testing.T) {
	m := NewMachine()
	d := newFakeDisplay(DefaultWidth, DefaultHeight)
	m.dt = 5
	m.st = 5

	ops := make([]uint16, StepsPerCycle)
	for i := range ops {
		ops[i] = 0x00E0 // CLS, harmless and repeatable
	}
	loadOpcodes(t, m, ops...)

	if err := m.Cycle(d); err != nil {
		t.Fatalf("Cycle: %v", err)
	}

	if want := uint16(programStart + StepsPerCycle*2); m.pc != want {
		t.Errorf("PC = %#x, want %#x", m.pc, want)
	}
	if m.dt != 4 {
		t.Errorf("DT = %d, want 4 (timers tick once per Cycle, not once per Step)", m.dt)
	}
	if m.st != 4 {
		t.Errorf("ST = %d, want 4", m.st)
	}
}

func TestCycle_haltedMachineIsANoOp(t *testing.T) {
	m := NewMachine()
	d := newFakeDisplay(DefaultWidth, DefaultHeight)
	loadOpcodes(t, m, 0xF30A) // LD V3, K
	if err := m.Step(d); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !m.halted {
		t.Fatal("machine should be halted after LD Vx, K")
	}

	m.dt = 5
	pc := m.pc
	dt := m.dt

	if err := m.Cycle(d); err != nil {
		t.Fatalf("Cycle: %v", err)
	}

	if m.pc != pc {
		t.Errorf("PC changed while halted: %#x -> %#x", pc, m.pc)
	}
	if m.dt != dt {
		t.Errorf("DT changed while halted: timers must not tick")
	}
}

func TestCycle_stopsBatchOnFirstError(t *testing.T) {
	m := NewMachine()
	d := newFakeDisplay(DefaultWidth, DefaultHeight)
	loadOpcodes(t, m, 0x00E0, 0x5AB1, 0x00E0) // CLS, invalid, CLS

	err := m.Cycle(d)
	if err == nil {
		t.Fatal("Cycle should propagate the decode error")
	}
	if want := uint16(programStart + 2); m.pc != want {
		t.Errorf("PC = %#x, want %#x (only the successful first step should run)", m.pc, want)
	}
}
