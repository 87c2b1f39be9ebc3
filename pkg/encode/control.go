package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// encodeCALL16 encodes `CALL nn`. nn may be a resolved immediate or a
// symbolic expression, in which case a fixup_16 is recorded at the
// placeholder's offset.
func encodeCALL16(mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	out.append(0xCD)
	return appendAddr16(out, fixups, mi.Loc, mnemonic(mi.Op), 0, mi.Operands[0])
}

// encodeCALL16CC encodes `CALL cc, nn`. nn may be a resolved immediate or
// a symbolic expression, per encodeCALL16.
func encodeCALL16CC(mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	cc, nn := mi.Operands[0], mi.Operands[1]
	if !cc.IsImm() || cc.Imm < 0 || cc.Imm > 7 {
		return errConstraint(mnemonic(mi.Op), 0, 0, 7)
	}
	out.append(0xC4 + byte(cc.Imm)<<3)
	return appendAddr16(out, fixups, mi.Loc, mnemonic(mi.Op), 1, nn)
}

// encodeRET16 encodes `RET`.
func encodeRET16(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 0 {
		return errOperandCount(mnemonic(mi.Op), 0, len(mi.Operands))
	}
	out.append(0xC9)
	return nil
}

// encodeRET16CC encodes `RET cc`.
func encodeRET16CC(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	cc := mi.Operands[0]
	if !cc.IsImm() || cc.Imm < 0 || cc.Imm > 7 {
		return errConstraint(mnemonic(mi.Op), 0, 0, 7)
	}
	out.append(0xC0 + byte(cc.Imm)<<3)
	return nil
}

// encodeRETI16 encodes `RETI`.
func encodeRETI16(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 0 {
		return errOperandCount(mnemonic(mi.Op), 0, len(mi.Operands))
	}
	out.append(0xED, 0x4D)
	return nil
}

// encodeRETN16 encodes `RETN`.
func encodeRETN16(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 0 {
		return errOperandCount(mnemonic(mi.Op), 0, len(mi.Operands))
	}
	out.append(0xED, 0x45)
	return nil
}

// encodeJP16r encodes `JP (HL|IX|IY)`.
func encodeJP16r(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	r := mi.Operands[0]
	if !r.IsReg() {
		return errOperandTag(mnemonic(mi.Op), 0, "a register")
	}
	if prefix, isIdx := z80.IndexPrefix(r.Reg); isIdx {
		out.append(prefix)
	} else if r.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL, IX, IY")
	}
	out.append(0xE9)
	return nil
}
