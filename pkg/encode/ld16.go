package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// encodeLD16ri encodes `LD rr, nn` for rr in {BC, DE, HL, IX, IY, SP}. nn
// may be a resolved immediate or a symbolic expression.
func encodeLD16ri(mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	dst, imm := mi.Operands[0], mi.Operands[1]
	if !dst.IsReg() {
		return errOperandTag(mnemonic(mi.Op), 0, "a register")
	}
	code, ok := pairCode16(dst.Reg)
	if !ok {
		return errRegisterClass(mnemonic(mi.Op), "BC, DE, HL, IX, IY, SP")
	}
	if prefix, isIdx := z80.IndexPrefix(dst.Reg); isIdx {
		out.append(prefix)
	}
	out.append(0x01 + 16*code)
	return appendAddr16(out, fixups, mi.Loc, mnemonic(mi.Op), 1, imm)
}

// encodeLD16SP encodes `LD SP, HL|IX|IY`.
func encodeLD16SP(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	src := mi.Operands[0]
	if !src.IsReg() {
		return errOperandTag(mnemonic(mi.Op), 0, "a register")
	}
	if prefix, isIdx := z80.IndexPrefix(src.Reg); isIdx {
		out.append(prefix)
	} else if src.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL, IX, IY")
	}
	out.append(0xF9)
	return nil
}

// encodeLD16am encodes `LD HL|IX|IY, (nn)`. nn may be a resolved
// immediate or a symbolic expression.
func encodeLD16am(mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	dst, addr := mi.Operands[0], mi.Operands[1]
	if prefix, isIdx := z80.IndexPrefix(dst.Reg); isIdx {
		out.append(prefix)
	} else if !dst.IsReg() || dst.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL, IX, IY")
	}
	out.append(0x2A)
	return appendAddr16(out, fixups, mi.Loc, mnemonic(mi.Op), 1, addr)
}

// encodeLD16ma encodes `LD (nn), HL|IX|IY`. nn may be a resolved
// immediate or a symbolic expression.
func encodeLD16ma(mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	addr, src := mi.Operands[0], mi.Operands[1]
	if prefix, isIdx := z80.IndexPrefix(src.Reg); isIdx {
		out.append(prefix)
	} else if !src.IsReg() || src.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL, IX, IY")
	}
	out.append(0x22)
	return appendAddr16(out, fixups, mi.Loc, mnemonic(mi.Op), 0, addr)
}

// edPairCode is the ED-prefixed 16-bit load/store pair table: BC=0, DE=1,
// SP=3 (HL is excluded; it uses the unprefixed LD16am/ma forms).
func edPairCode(r z80.Register) (code uint8, ok bool) {
	switch r {
	case z80.RegBC:
		return 0, true
	case z80.RegDE:
		return 1, true
	case z80.RegSP:
		return 3, true
	}
	return 0, false
}

// encodeLD16mo encodes `LD BC|DE|SP, (nn)`. nn may be a resolved
// immediate or a symbolic expression.
func encodeLD16mo(mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	dst, addr := mi.Operands[0], mi.Operands[1]
	code, ok := edPairCode(dst.Reg)
	if !dst.IsReg() || !ok {
		return errRegisterClass(mnemonic(mi.Op), "BC, DE, SP")
	}
	out.append(0xED, 0x4B+16*code)
	return appendAddr16(out, fixups, mi.Loc, mnemonic(mi.Op), 1, addr)
}

// encodeLD16om encodes `LD (nn), BC|DE|SP`. nn may be a resolved
// immediate or a symbolic expression.
func encodeLD16om(mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	addr, src := mi.Operands[0], mi.Operands[1]
	code, ok := edPairCode(src.Reg)
	if !src.IsReg() || !ok {
		return errRegisterClass(mnemonic(mi.Op), "BC, DE, SP")
	}
	out.append(0xED, 0x43+16*code)
	return appendAddr16(out, fixups, mi.Loc, mnemonic(mi.Op), 0, addr)
}
