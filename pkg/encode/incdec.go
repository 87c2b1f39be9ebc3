package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// INC r / DEC r use the standard 0x04+8r / 0x05+8r r-table formula.
func encodeINCDEC8r(base byte) recipe {
	return func(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
		if len(mi.Operands) != 1 {
			return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
		}
		r := mi.Operands[0]
		if !r.IsReg() {
			return errOperandTag(mnemonic(mi.Op), 0, "a register")
		}
		if z80.IsIndexHalf(r.Reg) {
			high := z80.IsHighHalf(r.Reg)
			singleShuttle(out, r.Reg, high, true, func(code uint8) {
				out.append(base + 8*code)
			})
			return nil
		}
		code, ok := z80.RTableCode(r.Reg)
		if !ok {
			return errRegisterClass(mnemonic(mi.Op), "A, B, C, D, E, H, L, IXH, IXL, IYH, IYL")
		}
		out.append(base + 8*code)
		return nil
	}
}

// INC (HL) / DEC (HL).
func encodeINCDEC8p(base byte) recipe {
	return func(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
		if len(mi.Operands) != 1 {
			return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
		}
		p := mi.Operands[0]
		if !p.IsReg() || p.Reg != z80.RegHL {
			return errRegisterClass(mnemonic(mi.Op), "HL")
		}
		out.append(base)
		return nil
	}
}

// INC (IX+d) / DEC (IX+d).
func encodeINCDEC8o(base byte) recipe {
	return func(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
		if len(mi.Operands) != 2 {
			return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
		}
		idx, disp := mi.Operands[0], mi.Operands[1]
		prefix, ok := z80.IndexPrefix(idx.Reg)
		if !idx.IsReg() || !ok {
			return errRegisterClass(mnemonic(mi.Op), "IX, IY")
		}
		if !disp.IsImm() || disp.Imm < -128 || disp.Imm > 127 {
			return errConstraint(mnemonic(mi.Op), 1, -128, 127)
		}
		out.append(prefix, base, byte(disp.Imm))
		return nil
	}
}

// pairCode16 returns the pair-table code (BC=0, DE=1, HL/IX/IY=2, SP=3)
// used by the INC rr / DEC rr / LD rr,nn formulas.
func pairCode16(r z80.Register) (code uint8, ok bool) {
	switch r {
	case z80.RegBC:
		return 0, true
	case z80.RegDE:
		return 1, true
	case z80.RegHL, z80.RegIX, z80.RegIY:
		return 2, true
	case z80.RegSP:
		return 3, true
	}
	return 0, false
}

// INC rr / DEC rr for rr in {BC, DE, HL, IX, IY}.
func encodeINCDEC16r(base byte) recipe {
	return func(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
		if len(mi.Operands) != 1 {
			return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
		}
		r := mi.Operands[0]
		if !r.IsReg() {
			return errOperandTag(mnemonic(mi.Op), 0, "a register")
		}
		code, ok := pairCode16(r.Reg)
		if !ok || r.Reg == z80.RegSP {
			return errRegisterClass(mnemonic(mi.Op), "BC, DE, HL, IX, IY")
		}
		if prefix, isIdx := z80.IndexPrefix(r.Reg); isIdx {
			out.append(prefix)
		}
		out.append(base + 16*code)
		return nil
	}
}

// INC SP / DEC SP, zero-operand.
func encodeINCDEC16SP(byteValue byte) recipe {
	return func(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
		if len(mi.Operands) != 0 {
			return errOperandCount(mnemonic(mi.Op), 0, len(mi.Operands))
		}
		out.append(byteValue)
		return nil
	}
}
