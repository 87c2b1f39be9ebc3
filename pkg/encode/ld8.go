package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// encodeLD8gg encodes `LD dst, src` for two 8-bit registers, including the
// index-half synthetic expansions: neither, one, or both operands may be
// an index half, and if both are halves of different index registers the
// three-shuttle cross-index expansion applies.
func encodeLD8gg(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	dst, src := mi.Operands[0], mi.Operands[1]
	if !dst.IsReg() || !src.IsReg() {
		return errOperandTag(mnemonic(mi.Op), 0, "a register")
	}

	dstHalf, srcHalf := z80.IsIndexHalf(dst.Reg), z80.IsIndexHalf(src.Reg)

	switch {
	case dstHalf && srcHalf && sameIndexRegister(dst.Reg, src.Reg):
		sameIndexShuttle(out, dst.Reg, z80.IsHighHalf(dst.Reg), z80.IsHighHalf(src.Reg),
			func(dstCode, srcCode uint8) {
				out.append(0x40 + dstCode<<3 + srcCode)
			})
		return nil
	case dstHalf && srcHalf:
		crossShuttle(out, dst.Reg, z80.IsHighHalf(dst.Reg), src.Reg, z80.IsHighHalf(src.Reg),
			func(dstCode, srcCode uint8) {
				out.append(0x40 + dstCode<<3 + srcCode)
			})
		return nil
	case dstHalf:
		srcCode, ok := z80.RTableCode(src.Reg)
		if !ok {
			return errRegisterClass(mnemonic(mi.Op), "A, B, C, D, E, H, L, IXH, IXL, IYH, IYL")
		}
		shuttle := singleShuttle
		if src.Reg == z80.RegH || src.Reg == z80.RegL {
			shuttle = singleShuttleDE
		}
		shuttle(out, dst.Reg, z80.IsHighHalf(dst.Reg), true, func(code uint8) {
			out.append(0x40 + code<<3 + srcCode)
		})
		return nil
	case srcHalf:
		dstCode, ok := z80.RTableCode(dst.Reg)
		if !ok {
			return errRegisterClass(mnemonic(mi.Op), "A, B, C, D, E, H, L, IXH, IXL, IYH, IYL")
		}
		shuttle := singleShuttle
		if dst.Reg == z80.RegH || dst.Reg == z80.RegL {
			shuttle = singleShuttleDE
		}
		shuttle(out, src.Reg, z80.IsHighHalf(src.Reg), false, func(code uint8) {
			out.append(0x40 + dstCode<<3 + code)
		})
		return nil
	}

	dstCode, ok1 := z80.RTableCode(dst.Reg)
	srcCode, ok2 := z80.RTableCode(src.Reg)
	if !ok1 || !ok2 || dstCode == 6 || srcCode == 6 {
		return errRegisterClass(mnemonic(mi.Op), "A, B, C, D, E, H, L (not (HL))")
	}
	out.append(0x40 + dstCode<<3 + srcCode)
	return nil
}

// sameIndexRegister reports whether a and b are both halves of the same
// index register (IX or IY).
func sameIndexRegister(a, b z80.Register) bool {
	ixHalf := func(r z80.Register) bool { return r == z80.RegIXH || r == z80.RegIXL }
	iyHalf := func(r z80.Register) bool { return r == z80.RegIYH || r == z80.RegIYL }
	return (ixHalf(a) && ixHalf(b)) || (iyHalf(a) && iyHalf(b))
}

// encodeLD8ri encodes `LD r, n`.
func encodeLD8ri(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	dst, imm := mi.Operands[0], mi.Operands[1]
	if !dst.IsReg() {
		return errOperandTag(mnemonic(mi.Op), 0, "a register")
	}
	if !imm.IsImm() || imm.Imm < -128 || imm.Imm > 255 {
		return errConstraint(mnemonic(mi.Op), 1, -128, 255)
	}
	if z80.IsIndexHalf(dst.Reg) {
		high := z80.IsHighHalf(dst.Reg)
		singleShuttle(out, dst.Reg, high, true, func(code uint8) {
			out.append(0x06+code<<3, byte(imm.Imm))
		})
		return nil
	}
	code, ok := z80.RTableCode(dst.Reg)
	if !ok || code == 6 {
		return errRegisterClass(mnemonic(mi.Op), "A, B, C, D, E, H, L, IXH, IXL, IYH, IYL")
	}
	out.append(0x06+code<<3, byte(imm.Imm))
	return nil
}

// encodeLD8gp encodes `LD r, (HL)`.
func encodeLD8gp(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	dst, p := mi.Operands[0], mi.Operands[1]
	dstCode, ok := z80.RTableCode(dst.Reg)
	if !dst.IsReg() || !ok || dstCode == 6 {
		return errRegisterClass(mnemonic(mi.Op), "A, B, C, D, E, H, L")
	}
	if !p.IsReg() || p.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL")
	}
	out.append(0x40 + dstCode<<3 + 6)
	return nil
}

// encodeLD8pg encodes `LD (HL), r`.
func encodeLD8pg(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	p, src := mi.Operands[0], mi.Operands[1]
	if !p.IsReg() || p.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL")
	}
	srcCode, ok := z80.RTableCode(src.Reg)
	if !src.IsReg() || !ok || srcCode == 6 {
		return errRegisterClass(mnemonic(mi.Op), "A, B, C, D, E, H, L")
	}
	out.append(0x40 + 6<<3 + srcCode)
	return nil
}

// encodeLD8go encodes `LD r, (IX|IY + d)`.
func encodeLD8go(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 3 {
		return errOperandCount(mnemonic(mi.Op), 3, len(mi.Operands))
	}
	dst, idx, disp := mi.Operands[0], mi.Operands[1], mi.Operands[2]
	dstCode, ok := z80.RTableCode(dst.Reg)
	if !dst.IsReg() || !ok || dstCode == 6 {
		return errRegisterClass(mnemonic(mi.Op), "A, B, C, D, E, H, L")
	}
	prefix, ok := z80.IndexPrefix(idx.Reg)
	if !idx.IsReg() || !ok {
		return errRegisterClass(mnemonic(mi.Op), "IX, IY")
	}
	if !disp.IsImm() || disp.Imm < -128 || disp.Imm > 127 {
		return errConstraint(mnemonic(mi.Op), 2, -128, 127)
	}
	out.append(prefix, 0x40+dstCode<<3+6, byte(disp.Imm))
	return nil
}

// encodeLD8og encodes `LD (IX|IY + d), r`.
func encodeLD8og(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 3 {
		return errOperandCount(mnemonic(mi.Op), 3, len(mi.Operands))
	}
	idx, disp, src := mi.Operands[0], mi.Operands[1], mi.Operands[2]
	prefix, ok := z80.IndexPrefix(idx.Reg)
	if !idx.IsReg() || !ok {
		return errRegisterClass(mnemonic(mi.Op), "IX, IY")
	}
	if !disp.IsImm() || disp.Imm < -128 || disp.Imm > 127 {
		return errConstraint(mnemonic(mi.Op), 1, -128, 127)
	}
	srcCode, ok := z80.RTableCode(src.Reg)
	if !src.IsReg() || !ok || srcCode == 6 {
		return errRegisterClass(mnemonic(mi.Op), "A, B, C, D, E, H, L")
	}
	out.append(prefix, 0x40+6<<3+srcCode, byte(disp.Imm))
	return nil
}

// encodeLD8oi encodes `LD (IX|IY + d), n`.
func encodeLD8oi(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 3 {
		return errOperandCount(mnemonic(mi.Op), 3, len(mi.Operands))
	}
	idx, disp, imm := mi.Operands[0], mi.Operands[1], mi.Operands[2]
	prefix, ok := z80.IndexPrefix(idx.Reg)
	if !idx.IsReg() || !ok {
		return errRegisterClass(mnemonic(mi.Op), "IX, IY")
	}
	if !disp.IsImm() || disp.Imm < -128 || disp.Imm > 127 {
		return errConstraint(mnemonic(mi.Op), 1, -128, 127)
	}
	if !imm.IsImm() || imm.Imm < -128 || imm.Imm > 255 {
		return errConstraint(mnemonic(mi.Op), 2, -128, 255)
	}
	out.append(prefix, 0x36, byte(disp.Imm), byte(imm.Imm))
	return nil
}

// encodeLD8pi encodes `LD (HL), n`.
func encodeLD8pi(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	p, imm := mi.Operands[0], mi.Operands[1]
	if !p.IsReg() || p.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL")
	}
	if !imm.IsImm() || imm.Imm < -128 || imm.Imm > 255 {
		return errConstraint(mnemonic(mi.Op), 1, -128, 255)
	}
	out.append(0x36, byte(imm.Imm))
	return nil
}

// encodeLD8am encodes `LD A, (nn)`. nn may be a resolved immediate or a
// symbolic expression.
func encodeLD8am(mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	out.append(0x3A)
	return appendAddr16(out, fixups, mi.Loc, mnemonic(mi.Op), 0, mi.Operands[0])
}

// encodeLD8ma encodes `LD (nn), A`. nn may be a resolved immediate or a
// symbolic expression.
func encodeLD8ma(mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	out.append(0x32)
	return appendAddr16(out, fixups, mi.Loc, mnemonic(mi.Op), 0, mi.Operands[0])
}
