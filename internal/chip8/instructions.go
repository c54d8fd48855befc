package chip8

// Each exec* method implements one CHIP-8 instruction against (m[, d]). PC
// advancement is each executor's own responsibility except where noted;
// every 12-bit PC/I write is masked to 12 bits. One function per opcode,
// matching the instruction table in the decoder.

func (m *Machine) execSYS() {
	// 0nnn: call routine at nnn on real hardware; every modern
	// interpreter, this one included, treats it as a no-op.
	m.advance()
}

func (m *Machine) execCLS(d Display) {
	d.Clear()
	m.repaint = true
	m.advance()
}

func (m *Machine) execRET() error {
	if m.sp == 0 {
		return ErrStackUnderflow
	}
	m.sp--
	m.pc = m.stack[m.sp]
	m.advance()
	return nil
}

func (m *Machine) execJP(ins Instruction) {
	m.pc = ins.NNN & 0x0FFF
}

func (m *Machine) execCALL(ins Instruction) {
	m.stack[m.sp] = m.pc
	m.sp = (m.sp + 1) % stackSize
	m.pc = ins.NNN & 0x0FFF
}

func (m *Machine) execSEVxKK(ins Instruction) {
	if m.v[ins.X] == ins.KK {
		m.skip()
	} else {
		m.advance()
	}
}

func (m *Machine) execSNEVxKK(ins Instruction) {
	if m.v[ins.X] != ins.KK {
		m.skip()
	} else {
		m.advance()
	}
}

func (m *Machine) execSEVxVy(ins Instruction) {
	if m.v[ins.X] == m.v[ins.Y] {
		m.skip()
	} else {
		m.advance()
	}
}

func (m *Machine) execLDVxKK(ins Instruction) {
	m.v[ins.X] = ins.KK
	m.advance()
}

func (m *Machine) execADDVxKK(ins Instruction) {
	m.v[ins.X] += ins.KK // wraps per Go's unsigned byte arithmetic
	m.advance()
}

func (m *Machine) execLDVxVy(ins Instruction) {
	m.v[ins.X] = m.v[ins.Y]
	m.advance()
}

func (m *Machine) execOR(ins Instruction) {
	m.v[ins.X] |= m.v[ins.Y]
	m.advance()
}

func (m *Machine) execAND(ins Instruction) {
	m.v[ins.X] &= m.v[ins.Y]
	m.advance()
}

func (m *Machine) execXOR(ins Instruction) {
	m.v[ins.X] ^= m.v[ins.Y]
	m.advance()
}

func (m *Machine) execADDVxVy(ins Instruction) {
	sum := uint16(m.v[ins.X]) + uint16(m.v[ins.Y])
	if sum > 0xFF {
		m.v[flagRegister] = 1
	} else {
		m.v[flagRegister] = 0
	}
	m.v[ins.X] = byte(sum)
	m.advance()
}

func (m *Machine) execSUB(ins Instruction) {
	if m.v[ins.X] >= m.v[ins.Y] {
		m.v[flagRegister] = 1
	} else {
		m.v[flagRegister] = 0
	}
	m.v[ins.X] = m.v[ins.X] - m.v[ins.Y]
	m.advance()
}

func (m *Machine) execSHR(ins Instruction) {
	src := ins.Y
	if m.quirks.shift {
		src = ins.X
	}
	v := m.v[src]
	m.v[flagRegister] = v & 0x01
	m.v[ins.X] = v >> 1
	m.advance()
}

func (m *Machine) execSUBN(ins Instruction) {
	if m.v[ins.Y] >= m.v[ins.X] {
		m.v[flagRegister] = 1
	} else {
		m.v[flagRegister] = 0
	}
	m.v[ins.X] = m.v[ins.Y] - m.v[ins.X]
	m.advance()
}

func (m *Machine) execSHL(ins Instruction) {
	src := ins.Y
	if m.quirks.shift {
		src = ins.X
	}
	v := m.v[src]
	m.v[flagRegister] = (v >> 7) & 0x01
	m.v[ins.X] = v << 1
	m.advance()
}

func (m *Machine) execSNEVxVy(ins Instruction) {
	if m.v[ins.X] != m.v[ins.Y] {
		m.skip()
	} else {
		m.advance()
	}
}

func (m *Machine) execLDI(ins Instruction) {
	m.i = ins.NNN & 0x0FFF
	m.advance()
}

func (m *Machine) execJPV0(ins Instruction) {
	m.pc = (ins.NNN + uint16(m.v[0])) & 0x0FFF
}

func (m *Machine) execRND(ins Instruction) {
	m.v[ins.X] = m.randByte() & ins.KK
	m.advance()
}

// execDRW draws an n-byte sprite, stored at memory[I:I+n], XOR-wise at
// (Vx, Vy). Coordinates wrap modulo the display dimensions on both axes;
// VF is set to 1 iff any pixel was turned off by the XOR. The sprite read
// address wraps at 12 bits, same as every other memory access derived
// from I.
func (m *Machine) execDRW(ins Instruction, d Display) {
	width, height := d.Width(), d.Height()
	startX, startY := int(m.v[ins.X]), int(m.v[ins.Y])

	m.v[flagRegister] = 0
	for row := 0; row < int(ins.N); row++ {
		spriteByte := m.memory[(int(m.i)+row)&0x0FFF]
		y := (startY + row) % height
		for col := 0; col < 8; col++ {
			if spriteByte&(0x80>>uint(col)) == 0 {
				continue
			}
			x := (startX + col) % width
			wasOn := d.TogglePixel(x, y)
			if wasOn {
				m.v[flagRegister] = 1
			}
		}
	}
	m.repaint = true
	m.advance()
}

func (m *Machine) execSKP(ins Instruction) {
	if m.Keyboard.IsKeyPressed(m.v[ins.X] & 0xF) {
		m.skip()
	} else {
		m.advance()
	}
}

func (m *Machine) execSKNP(ins Instruction) {
	if !m.Keyboard.IsKeyPressed(m.v[ins.X] & 0xF) {
		m.skip()
	} else {
		m.advance()
	}
}

func (m *Machine) execLDVxDT(ins Instruction) {
	m.v[ins.X] = m.dt
	m.advance()
}

// execLDVxK halts the machine and registers a one-shot callback that
// stores the next pressed key into Vx, advances PC, and clears halted.
// The instruction's own PC advance is subsumed by the callback.
func (m *Machine) execLDVxK(ins Instruction) {
	m.halted = true
	x := ins.X
	m.Keyboard.SetNextKeyCallback(func(key byte) {
		m.v[x] = key
		m.advance()
		m.halted = false
	})
}

func (m *Machine) execLDDTVx(ins Instruction) {
	m.dt = m.v[ins.X]
	m.advance()
}

func (m *Machine) execLDSTVx(ins Instruction) {
	m.st = m.v[ins.X]
	m.advance()
}

func (m *Machine) execADDIVx(ins Instruction) {
	m.i = (m.i + uint16(m.v[ins.X])) & 0x0FFF
	m.advance()
}

func (m *Machine) execLDFVx(ins Instruction) {
	m.i = uint16(m.v[ins.X]&0xF) * fontGlyphBytes
	m.advance()
}

func (m *Machine) execLDBVx(ins Instruction) {
	val := m.v[ins.X]
	m.memory[m.i&0x0FFF] = val / 100
	m.memory[(m.i+1)&0x0FFF] = (val / 10) % 10
	m.memory[(m.i+2)&0x0FFF] = val % 10
	m.advance()
}

// execLDIVx stores V0..Vx inclusive to memory starting at I. Unless the
// load/store quirk is enabled, I is post-incremented by x+1.
func (m *Machine) execLDIVx(ins Instruction) {
	for r := byte(0); r <= ins.X; r++ {
		m.memory[(int(m.i)+int(r))&0x0FFF] = m.v[r]
	}
	if !m.quirks.loadStore {
		m.i = (m.i + uint16(ins.X) + 1) & 0x0FFF
	}
	m.advance()
}

// execLDVxI loads V0..Vx inclusive from memory starting at I. Unless the
// load/store quirk is enabled, I is post-incremented by x+1, symmetric
// with execLDIVx (not reset to x+1).
func (m *Machine) execLDVxI(ins Instruction) {
	for r := byte(0); r <= ins.X; r++ {
		m.v[r] = m.memory[(int(m.i)+int(r))&0x0FFF]
	}
	if !m.quirks.loadStore {
		m.i = (m.i + uint16(ins.X) + 1) & 0x0FFF
	}
	m.advance()
}
