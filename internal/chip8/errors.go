package chip8

import (
	"errors"
	"fmt"
)

// ErrProgramTooLarge is returned by LoadProgram when a ROM does not fit in
// the address space remaining after the reserved interpreter area.
var ErrProgramTooLarge = errors.New("chip8: program too large for available memory")

// ErrStackUnderflow is returned when RET is executed with an empty call
// stack (SP == 0). Real CHIP-8 hardware leaves this undefined; this engine
// treats it as fatal rather than silently wrapping SP.
var ErrStackUnderflow = errors.New("chip8: stack underflow on RET")

// DecodeError reports an opcode that does not match any entry in the
// CHIP-8 instruction table.
type DecodeError struct {
	Opcode uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("chip8: unknown opcode %#04x", e.Opcode)
}
