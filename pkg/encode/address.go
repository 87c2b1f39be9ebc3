package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// encodeADD16aa encodes `ADD HL|IX|IY, HL|IX|IY` when both operands name
// the same pair (the only combination the ISA allows for this form).
func encodeADD16aa(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	dst, src := mi.Operands[0], mi.Operands[1]
	if !dst.IsReg() || !src.IsReg() || dst.Reg != src.Reg {
		return errRegisterClass(mnemonic(mi.Op), "HL,HL or IX,IX or IY,IY")
	}
	if prefix, isIdx := z80.IndexPrefix(dst.Reg); isIdx {
		out.append(prefix)
	} else if dst.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL, IX, IY")
	}
	out.append(0x09 + 16*2)
	return nil
}

// encodeADD16ao encodes `ADD HL|IX|IY, BC|DE`.
func encodeADD16ao(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	dst, src := mi.Operands[0], mi.Operands[1]
	if prefix, isIdx := z80.IndexPrefix(dst.Reg); isIdx {
		out.append(prefix)
	} else if !dst.IsReg() || dst.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL, IX, IY")
	}
	code, ok := bcDeCode(src.Reg)
	if !src.IsReg() || !ok {
		return errRegisterClass(mnemonic(mi.Op), "BC, DE")
	}
	out.append(0x09 + 16*code)
	return nil
}

// encodeADD16SP encodes `ADD HL|IX|IY, SP`.
func encodeADD16SP(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	dst := mi.Operands[0]
	if prefix, isIdx := z80.IndexPrefix(dst.Reg); isIdx {
		out.append(prefix)
	} else if !dst.IsReg() || dst.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL, IX, IY")
	}
	out.append(0x09 + 16*3)
	return nil
}

// encodeSBC16aa encodes `SBC HL|IX|IY, HL|IX|IY` (same-pair only).
func encodeSBC16aa(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	dst, src := mi.Operands[0], mi.Operands[1]
	if !dst.IsReg() || !src.IsReg() || dst.Reg != src.Reg {
		return errRegisterClass(mnemonic(mi.Op), "HL,HL or IX,IX or IY,IY")
	}
	prefixed := false
	if prefix, isIdx := z80.IndexPrefix(dst.Reg); isIdx {
		out.append(prefix)
		prefixed = true
	}
	if !prefixed && dst.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL, IX, IY")
	}
	out.append(0xED, 0x42+16*2)
	return nil
}

// encodeSBC16ao encodes `SBC HL|IX|IY, BC|DE`.
func encodeSBC16ao(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	dst, src := mi.Operands[0], mi.Operands[1]
	if prefix, isIdx := z80.IndexPrefix(dst.Reg); isIdx {
		out.append(prefix)
	} else if !dst.IsReg() || dst.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL, IX, IY")
	}
	code, ok := bcDeCode(src.Reg)
	if !src.IsReg() || !ok {
		return errRegisterClass(mnemonic(mi.Op), "BC, DE")
	}
	out.append(0xED, 0x42+16*code)
	return nil
}

// encodeSBC16SP encodes `SBC HL|IX|IY, SP`.
func encodeSBC16SP(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	dst := mi.Operands[0]
	if prefix, isIdx := z80.IndexPrefix(dst.Reg); isIdx {
		out.append(prefix)
	} else if !dst.IsReg() || dst.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL, IX, IY")
	}
	out.append(0xED, 0x42+16*3)
	return nil
}

func bcDeCode(r z80.Register) (code uint8, ok bool) {
	switch r {
	case z80.RegBC:
		return 0, true
	case z80.RegDE:
		return 1, true
	}
	return 0, false
}

// encodeLEA16ro encodes `LEA rr, (IX|IY + d)` for rr in {BC, DE, HL, IX,
// IY}. The ISA has no direct LEA instruction; it is synthesized by
// computing IX|IY+d through BC with AF (and, unless rr is the same index
// register being read, the index register itself) preserved across the
// detour, then depositing the result into the destination pair via the
// stack. When rr is the same index register as the source (`LEA IX,
// (IX+d)`), the index register is not saved and restored: the computed
// address is left directly in it, with only AF and BC preserved.
func encodeLEA16ro(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 3 {
		return errOperandCount(mnemonic(mi.Op), 3, len(mi.Operands))
	}
	dst, idx, disp := mi.Operands[0], mi.Operands[1], mi.Operands[2]
	if !dst.IsReg() {
		return errOperandTag(mnemonic(mi.Op), 0, "a register")
	}
	prefix, ok := z80.IndexPrefix(idx.Reg)
	if !idx.IsReg() || !ok {
		return errRegisterClass(mnemonic(mi.Op), "IX, IY")
	}
	if !disp.IsImm() || disp.Imm < -128 || disp.Imm > 127 {
		return errConstraint(mnemonic(mi.Op), 2, -128, 127)
	}

	dstPrefix, dstIsIdx := z80.IndexPrefix(dst.Reg)

	if dstIsIdx && dst.Reg == idx.Reg {
		out.append(0xF5)                  // PUSH AF
		out.append(0xC5)                  // PUSH BC
		out.append(0x06, 0x00)            // LD B, 0
		out.append(0x0E, byte(disp.Imm))  // LD C, d
		out.append(prefix, 0x09)          // ADD IX|IY, BC
		out.append(0xC1)                  // POP BC
		out.append(0xF1)                  // POP AF
		return nil
	}

	dstCode, plainOK := qqCode(dst.Reg)
	if !dstIsIdx && !plainOK {
		return errRegisterClass(mnemonic(mi.Op), "BC, DE, HL, IX, IY")
	}

	out.append(0xF5) // PUSH AF
	pushedBC := dst.Reg != z80.RegBC
	if pushedBC {
		out.append(0xC5) // PUSH BC
	}
	out.append(0x06, 0x00)           // LD B, 0
	out.append(0x0E, byte(disp.Imm)) // LD C, d
	out.append(prefix, 0xE5)         // PUSH IX|IY (original)
	out.append(prefix, 0x09)         // ADD IX|IY, BC
	out.append(prefix, 0xE5)         // PUSH IX|IY (the computed address)
	if dstIsIdx {
		out.append(dstPrefix, 0xE1) // POP dst index register
	} else {
		out.append(0xC1 + 16*dstCode) // POP dst pair
	}
	out.append(prefix, 0xE1) // POP IX|IY (restore original)
	if pushedBC {
		out.append(0xC1) // POP BC
	}
	out.append(0xF1) // POP AF
	return nil
}
