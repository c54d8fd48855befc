package chip8

import (
	"testing"
	"time"
)

func TestLoop_stopsCooperatively(t *testing.T) {
	m := NewMachine()
	d := newFakeDisplay(DefaultWidth, DefaultHeight)
	loadOpcodes(t, m, 0x00E0) // CLS, harmless to re-execute past end of ROM

	loop := NewLoop(m, d, nil)

	done := make(chan error, 1)
	go func() { done <- loop.Run() }()

	time.Sleep(10 * time.Millisecond)
	loop.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}

	<-loop.Done()
}

func TestLoop_stopBeforeRunIsSafe(t *testing.T) {
	m := NewMachine()
	d := newFakeDisplay(DefaultWidth, DefaultHeight)
	loop := NewLoop(m, d, nil)

	loop.Stop()
	loop.Stop() // must not panic on double-close

	if err := loop.Run(); err != nil {
		t.Fatalf("Run returned %v, want nil", err)
	}
}

func TestLoop_haltedMachineDoesNotExitTheLoop(t *testing.T) {
	m := NewMachine()
	d := newFakeDisplay(DefaultWidth, DefaultHeight)
	loadOpcodes(t, m, 0xF00A) // LD V0, K: halts until a key arrives
	keypad := m.Keyboard.(*Keypad)

	loop := NewLoop(m, d, nil)
	done := make(chan error, 1)
	go func() { done <- loop.Run() }()

	// Several 1/Speed ticks, so the first Cycle has run and halted the machine.
	time.Sleep(100 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("loop exited while machine was merely halted, not stopped")
	default:
	}

	keypad.KeyDown(0x1)
	loop.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
	if m.v[0] != 0x1 {
		t.Errorf("V0 = %#x, want 0x1", m.v[0])
	}
}
