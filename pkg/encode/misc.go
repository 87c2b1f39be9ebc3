package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// miscOpcodes gives the single-byte encoding of each zero-operand,
// non-ED-prefixed instruction.
var miscOpcodes = map[z80.Opcode]byte{
	z80.NOP: 0x00, z80.CCF: 0x3F, z80.SCF: 0x37, z80.CPL: 0x2F,
	z80.DI: 0xF3, z80.EI: 0xFB,
}

func encodeMisc(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 0 {
		return errOperandCount(mnemonic(mi.Op), 0, len(mi.Operands))
	}
	out.append(miscOpcodes[mi.Op])
	return nil
}

// encodeNEG encodes `NEG`, the one zero-operand misc instruction that is
// ED-prefixed.
func encodeNEG(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 0 {
		return errOperandCount(mnemonic(mi.Op), 0, len(mi.Operands))
	}
	out.append(0xED, 0x44)
	return nil
}
