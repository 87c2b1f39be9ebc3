package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// rotateFamilies maps each rotate/shift opcode to its CB-prefix base byte.
// All three sub-forms (r, p, o) of a given operation share the same base;
// the sub-form only changes which r-table code is combined with it.
var rotateFamilies = map[z80.Opcode]byte{
	z80.RLC8r: 0x00, z80.RLC8p: 0x00, z80.RLC8o: 0x00,
	z80.RL8r: 0x10, z80.RL8p: 0x10, z80.RL8o: 0x10,
	z80.RRC8r: 0x08, z80.RRC8p: 0x08, z80.RRC8o: 0x08,
	z80.RR8r: 0x18, z80.RR8p: 0x18, z80.RR8o: 0x18,
	z80.SLA8r: 0x20, z80.SLA8p: 0x20, z80.SLA8o: 0x20,
	z80.SRA8r: 0x28, z80.SRA8p: 0x28, z80.SRA8o: 0x28,
	z80.SRL8r: 0x38, z80.SRL8p: 0x38, z80.SRL8o: 0x38,
}

// encodeRotateShiftR encodes `<op> r` for r in {A,B,C,D,E,H,L,IXH,IXL,IYH,IYL}.
func encodeRotateShiftR(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	base := rotateFamilies[mi.Op]
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
			out.append(0xCB, base+code)
		})
		return nil
	}
	code, ok := z80.RTableCode(r.Reg)
	if !ok {
		return errRegisterClass(mnemonic(mi.Op), "A, B, C, D, E, H, L, IXH, IXL, IYH, IYL")
	}
	out.append(0xCB, base+code)
	return nil
}

// encodeRotateShiftP encodes `<op> (HL)`.
func encodeRotateShiftP(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	base := rotateFamilies[mi.Op]
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	p := mi.Operands[0]
	if !p.IsReg() || p.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL")
	}
	out.append(0xCB, base+6)
	return nil
}

// encodeRotateShiftO encodes `<op> (IX|IY + d)`.
func encodeRotateShiftO(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	base := rotateFamilies[mi.Op]
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
	out.append(prefix, 0xCB, byte(disp.Imm), base+6)
	return nil
}
