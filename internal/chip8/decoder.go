package chip8

// Kind tags a decoded Instruction. The decoder produces one of these for
// every opcode in the CHIP-8 ISA; anything else is a DecodeError.
type Kind int

const (
	KindSYS Kind = iota
	KindCLS
	KindRET
	KindJP
	KindCALL
	KindSEVxKK
	KindSNEVxKK
	KindSEVxVy
	KindLDVxKK
	KindADDVxKK
	KindLDVxVy
	KindOR
	KindAND
	KindXOR
	KindADDVxVy
	KindSUB
	KindSHR
	KindSUBN
	KindSHL
	KindSNEVxVy
	KindLDI
	KindJPV0
	KindRND
	KindDRW
	KindSKP
	KindSKNP
	KindLDVxDT
	KindLDVxK
	KindLDDTVx
	KindLDSTVx
	KindADDIVx
	KindLDFVx
	KindLDBVx
	KindLDIVx   // Fx55, store V0..Vx to [I]
	KindLDVxI   // Fx65, load V0..Vx from [I]
)

// Instruction is a decoded opcode: a Kind plus whichever operand fields
// that kind uses. Using a flat value type instead of a closure avoids a
// heap allocation on every decode.
type Instruction struct {
	Kind Kind
	X    byte
	Y    byte
	N    byte
	KK   byte
	NNN  uint16
}

// Decode is a total, side-effect-free function from a 16-bit opcode to a
// tagged Instruction or a *DecodeError. Field extraction happens once, up
// front, mirroring the table in the CHIP-8 ISA: x/y are register indices,
// n is a 4-bit literal, kk an 8-bit literal, nnn a 12-bit address.
func Decode(op uint16) (Instruction, error) {
	x := byte((op >> 8) & 0xF)
	y := byte((op >> 4) & 0xF)
	n := byte(op & 0xF)
	kk := byte(op & 0xFF)
	nnn := op & 0xFFF

	switch op & 0xF000 {
	case 0x0000:
		switch op {
		case 0x00E0:
			return Instruction{Kind: KindCLS}, nil
		case 0x00EE:
			return Instruction{Kind: KindRET}, nil
		default:
			// 0x0nnn: SYS addr, a no-op on every modern interpreter.
			return Instruction{Kind: KindSYS, NNN: nnn}, nil
		}
	case 0x1000:
		return Instruction{Kind: KindJP, NNN: nnn}, nil
	case 0x2000:
		return Instruction{Kind: KindCALL, NNN: nnn}, nil
	case 0x3000:
		return Instruction{Kind: KindSEVxKK, X: x, KK: kk}, nil
	case 0x4000:
		return Instruction{Kind: KindSNEVxKK, X: x, KK: kk}, nil
	case 0x5000:
		if n != 0 {
			return Instruction{}, &DecodeError{Opcode: op}
		}
		return Instruction{Kind: KindSEVxVy, X: x, Y: y}, nil
	case 0x6000:
		return Instruction{Kind: KindLDVxKK, X: x, KK: kk}, nil
	case 0x7000:
		return Instruction{Kind: KindADDVxKK, X: x, KK: kk}, nil
	case 0x8000:
		switch n {
		case 0x0:
			return Instruction{Kind: KindLDVxVy, X: x, Y: y}, nil
		case 0x1:
			return Instruction{Kind: KindOR, X: x, Y: y}, nil
		case 0x2:
			return Instruction{Kind: KindAND, X: x, Y: y}, nil
		case 0x3:
			return Instruction{Kind: KindXOR, X: x, Y: y}, nil
		case 0x4:
			return Instruction{Kind: KindADDVxVy, X: x, Y: y}, nil
		case 0x5:
			return Instruction{Kind: KindSUB, X: x, Y: y}, nil
		case 0x6:
			return Instruction{Kind: KindSHR, X: x, Y: y}, nil
		case 0x7:
			return Instruction{Kind: KindSUBN, X: x, Y: y}, nil
		case 0xE:
			return Instruction{Kind: KindSHL, X: x, Y: y}, nil
		default:
			return Instruction{}, &DecodeError{Opcode: op}
		}
	case 0x9000:
		if n != 0 {
			return Instruction{}, &DecodeError{Opcode: op}
		}
		return Instruction{Kind: KindSNEVxVy, X: x, Y: y}, nil
	case 0xA000:
		return Instruction{Kind: KindLDI, NNN: nnn}, nil
	case 0xB000:
		return Instruction{Kind: KindJPV0, NNN: nnn}, nil
	case 0xC000:
		return Instruction{Kind: KindRND, X: x, KK: kk}, nil
	case 0xD000:
		return Instruction{Kind: KindDRW, X: x, Y: y, N: n}, nil
	case 0xE000:
		switch kk {
		case 0x9E:
			return Instruction{Kind: KindSKP, X: x}, nil
		case 0xA1:
			return Instruction{Kind: KindSKNP, X: x}, nil
		default:
			return Instruction{}, &DecodeError{Opcode: op}
		}
	case 0xF000:
		switch kk {
		case 0x07:
			return Instruction{Kind: KindLDVxDT, X: x}, nil
		case 0x0A:
			return Instruction{Kind: KindLDVxK, X: x}, nil
		case 0x15:
			return Instruction{Kind: KindLDDTVx, X: x}, nil
		case 0x18:
			return Instruction{Kind: KindLDSTVx, X: x}, nil
		case 0x1E:
			return Instruction{Kind: KindADDIVx, X: x}, nil
		case 0x29:
			return Instruction{Kind: KindLDFVx, X: x}, nil
		case 0x33:
			return Instruction{Kind: KindLDBVx, X: x}, nil
		case 0x55:
			return Instruction{Kind: KindLDIVx, X: x}, nil
		case 0x65:
			return Instruction{Kind: KindLDVxI, X: x}, nil
		default:
			return Instruction{}, &DecodeError{Opcode: op}
		}
	default:
		// Unreachable: op&0xF000 only ever produces the 16 cases above.
		return Instruction{}, &DecodeError{Opcode: op}
	}
}
