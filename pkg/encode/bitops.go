package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// bitFamilies maps BIT/RES/SET to their base opcode byte and whether the
// operation writes its result back (BIT does not; RES/SET do).
type bitFamily struct {
	base      byte
	writeback bool
}

var bitFamilies = map[z80.Opcode]bitFamily{
	z80.BIT8bg: {0x40, false}, z80.BIT8bp: {0x40, false}, z80.BIT8bo: {0x40, false},
	z80.RES8bg: {0x80, true}, z80.RES8bp: {0x80, true}, z80.RES8bo: {0x80, true},
	z80.SET8bg: {0xC0, true}, z80.SET8bp: {0xC0, true}, z80.SET8bo: {0xC0, true},
}

func bitIndex(op z80.Operand, opName string) (uint8, error) {
	if !op.IsImm() {
		return 0, errOperandTag(opName, 0, "an immediate")
	}
	if op.Imm < 0 || op.Imm > 7 {
		return 0, errConstraint(opName, 0, 0, 7)
	}
	return uint8(op.Imm), nil
}

// encodeBitG encodes `BIT/RES/SET b, r`.
func encodeBitG(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	fam := bitFamilies[mi.Op]
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	b, err := bitIndex(mi.Operands[0], mnemonic(mi.Op))
	if err != nil {
		return err
	}
	r := mi.Operands[1]
	if !r.IsReg() {
		return errOperandTag(mnemonic(mi.Op), 1, "a register")
	}
	if z80.IsIndexHalf(r.Reg) {
		high := z80.IsHighHalf(r.Reg)
		singleShuttle(out, r.Reg, high, fam.writeback, func(code uint8) {
			out.append(0xCB, fam.base+b<<3+code)
		})
		return nil
	}
	code, ok := z80.RTableCode(r.Reg)
	if !ok {
		return errRegisterClass(mnemonic(mi.Op), "A, B, C, D, E, H, L, IXH, IXL, IYH, IYL")
	}
	out.append(0xCB, fam.base+b<<3+code)
	return nil
}

// encodeBitP encodes `BIT/RES/SET b, (HL)`.
func encodeBitP(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	fam := bitFamilies[mi.Op]
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	b, err := bitIndex(mi.Operands[0], mnemonic(mi.Op))
	if err != nil {
		return err
	}
	p := mi.Operands[1]
	if !p.IsReg() || p.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL")
	}
	out.append(0xCB, fam.base+b<<3+6)
	return nil
}

// encodeBitO encodes `BIT/RES/SET b, (IX|IY + d)`.
func encodeBitO(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	fam := bitFamilies[mi.Op]
	if len(mi.Operands) != 3 {
		return errOperandCount(mnemonic(mi.Op), 3, len(mi.Operands))
	}
	b, err := bitIndex(mi.Operands[0], mnemonic(mi.Op))
	if err != nil {
		return err
	}
	idx, disp := mi.Operands[1], mi.Operands[2]
	prefix, ok := z80.IndexPrefix(idx.Reg)
	if !idx.IsReg() || !ok {
		return errRegisterClass(mnemonic(mi.Op), "IX, IY")
	}
	if !disp.IsImm() || disp.Imm < -128 || disp.Imm > 127 {
		return errConstraint(mnemonic(mi.Op), 2, -128, 127)
	}
	out.append(prefix, 0xCB, byte(disp.Imm), fam.base+b<<3+6)
	return nil
}
