package chip8

// Cycle runs one batch of StepsPerCycle fetch/decode/execute steps
// followed by a single timer tick, per §4.3. If the machine is halted
// (waiting on Fx0A) it returns immediately without consuming a step or
// ticking timers. The first decode or execution error stops the batch and
// propagates to the caller.
func (m *Machine) Cycle(d Display) error {
	if m.halted {
		return nil
	}
	for i := 0; i < StepsPerCycle; i++ {
		if err := m.Step(d); err != nil {
			return err
		}
		if m.halted {
			break
		}
	}
	m.updateTimers()
	return nil
}

// Step fetches the big-endian word at PC, decodes it, executes it against
// d, and asks d to Repaint exactly once if the instruction set the repaint
// flag.
func (m *Machine) Step(d Display) error {
	op := uint16(m.memory[m.pc])<<8 | uint16(m.memory[(m.pc+1)&0x0FFF])

	ins, err := Decode(op)
	if err != nil {
		return err
	}

	if err := m.execute(ins, d); err != nil {
		return err
	}

	if m.repaint {
		d.Repaint()
		m.repaint = false
	}
	return nil
}

func (m *Machine) execute(ins Instruction, d Display) error {
	switch ins.Kind {
	case KindSYS:
		m.execSYS()
	case KindCLS:
		m.execCLS(d)
	case KindRET:
		return m.execRET()
	case KindJP:
		m.execJP(ins)
	case KindCALL:
		m.execCALL(ins)
	case KindSEVxKK:
		m.execSEVxKK(ins)
	case KindSNEVxKK:
		m.execSNEVxKK(ins)
	case KindSEVxVy:
		m.execSEVxVy(ins)
	case KindLDVxKK:
		m.execLDVxKK(ins)
	case KindADDVxKK:
		m.execADDVxKK(ins)
	case KindLDVxVy:
		m.execLDVxVy(ins)
	case KindOR:
		m.execOR(ins)
	case KindAND:
		m.execAND(ins)
	case KindXOR:
		m.execXOR(ins)
	case KindADDVxVy:
		m.execADDVxVy(ins)
	case KindSUB:
		m.execSUB(ins)
	case KindSHR:
		m.execSHR(ins)
	case KindSUBN:
		m.execSUBN(ins)
	case KindSHL:
		m.execSHL(ins)
	case KindSNEVxVy:
		m.execSNEVxVy(ins)
	case KindLDI:
		m.execLDI(ins)
	case KindJPV0:
		m.execJPV0(ins)
	case KindRND:
		m.execRND(ins)
	case KindDRW:
		m.execDRW(ins, d)
	case KindSKP:
		m.execSKP(ins)
	case KindSKNP:
		m.execSKNP(ins)
	case KindLDVxDT:
		m.execLDVxDT(ins)
	case KindLDVxK:
		m.execLDVxK(ins)
	case KindLDDTVx:
		m.execLDDTVx(ins)
	case KindLDSTVx:
		m.execLDSTVx(ins)
	case KindADDIVx:
		m.execADDIVx(ins)
	case KindLDFVx:
		m.execLDFVx(ins)
	case KindLDBVx:
		m.execLDBVx(ins)
	case KindLDIVx:
		m.execLDIVx(ins)
	case KindLDVxI:
		m.execLDVxI(ins)
	default:
		return &DecodeError{Opcode: 0}
	}
	return nil
}
