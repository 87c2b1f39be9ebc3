package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// blockOpcodes gives the ED-prefixed secondary byte for each zero-operand
// block instruction.
var blockOpcodes = map[z80.Opcode]byte{
	z80.LDI16: 0xA0, z80.LDD16: 0xA8, z80.LDIR16: 0xB0, z80.LDDR16: 0xB8,
	z80.CPI16: 0xA1, z80.CPD16: 0xA9, z80.CPIR16: 0xB1, z80.CPDR16: 0xB9,
	z80.INI16: 0xA2, z80.IND16: 0xAA, z80.INIR16: 0xB2, z80.INDR16: 0xBA,
	z80.OUTI16: 0xA3, z80.OUTD16: 0xAB, z80.OUTIR16: 0xB3, z80.OUTDR16: 0xBB,
}

func encodeBlockOp(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 0 {
		return errOperandCount(mnemonic(mi.Op), 0, len(mi.Operands))
	}
	out.append(0xED, blockOpcodes[mi.Op])
	return nil
}
