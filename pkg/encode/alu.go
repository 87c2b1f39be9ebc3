package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// aluFamily is the per-operation descriptor for the 8 ALU families
// (ADD/ADC/SUB/SBC/AND/OR/XOR/CP). regBase is the opcode for the
// register-code-0 (B) form; immByte is the opcode for the immediate form.
type aluFamily struct {
	regBase byte
	immByte byte
}

var aluFamilies = map[z80.Opcode]aluFamily{
	z80.ADD8ai: {0x80, 0xC6}, z80.ADD8ar: {0x80, 0xC6}, z80.ADD8ap: {0x80, 0xC6}, z80.ADD8ao: {0x80, 0xC6},
	z80.ADC8ai: {0x88, 0xCE}, z80.ADC8ar: {0x88, 0xCE}, z80.ADC8ap: {0x88, 0xCE}, z80.ADC8ao: {0x88, 0xCE},
	z80.SUB8ai: {0x90, 0xD6}, z80.SUB8ar: {0x90, 0xD6}, z80.SUB8ap: {0x90, 0xD6}, z80.SUB8ao: {0x90, 0xD6},
	z80.SBC8ai: {0x98, 0xDE}, z80.SBC8ar: {0x98, 0xDE}, z80.SBC8ap: {0x98, 0xDE}, z80.SBC8ao: {0x98, 0xDE},
	z80.AND8ai: {0xA0, 0xE6}, z80.AND8ar: {0xA0, 0xE6}, z80.AND8ap: {0xA0, 0xE6}, z80.AND8ao: {0xA0, 0xE6},
	z80.OR8ai: {0xB0, 0xF6}, z80.OR8ar: {0xB0, 0xF6}, z80.OR8ap: {0xB0, 0xF6}, z80.OR8ao: {0xB0, 0xF6},
	z80.XOR8ai: {0xA8, 0xEE}, z80.XOR8ar: {0xA8, 0xEE}, z80.XOR8ap: {0xA8, 0xEE}, z80.XOR8ao: {0xA8, 0xEE},
	z80.CP8ai: {0xB8, 0xFE}, z80.CP8ar: {0xB8, 0xFE}, z80.CP8ap: {0xB8, 0xFE}, z80.CP8ao: {0xB8, 0xFE},
}

// encodeALUImm encodes `<op> A, n`: one immediate operand.
func encodeALUImm(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	fam := aluFamilies[mi.Op]
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	imm := mi.Operands[0]
	if !imm.IsImm() {
		return errOperandTag(mnemonic(mi.Op), 0, "an immediate")
	}
	if imm.Imm < -128 || imm.Imm > 255 {
		return errConstraint(mnemonic(mi.Op), 0, -128, 255)
	}
	out.append(fam.immByte, byte(imm.Imm))
	return nil
}

// encodeALUReg encodes `<op> A, r` for r in {A,B,C,D,E,H,L,IXH,IXL,IYH,IYL}.
func encodeALUReg(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	fam := aluFamilies[mi.Op]
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	src := mi.Operands[0]
	if !src.IsReg() {
		return errOperandTag(mnemonic(mi.Op), 0, "a register")
	}
	if z80.IsIndexHalf(src.Reg) {
		high := z80.IsHighHalf(src.Reg)
		singleShuttle(out, src.Reg, high, false, func(code uint8) {
			out.append(fam.regBase + code)
		})
		return nil
	}
	code, ok := z80.RTableCode(src.Reg)
	if !ok {
		return errRegisterClass(mnemonic(mi.Op), "A, B, C, D, E, H, L, IXH, IXL, IYH, IYL")
	}
	out.append(fam.regBase + code)
	return nil
}

// encodeALUPtr encodes `<op> A, (HL)`.
func encodeALUPtr(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	fam := aluFamilies[mi.Op]
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	ptr := mi.Operands[0]
	if !ptr.IsReg() || ptr.Reg != z80.RegHL {
		return errRegisterClass(mnemonic(mi.Op), "HL")
	}
	out.append(fam.regBase + 6)
	return nil
}

// encodeALUIdx encodes `<op> A, (IX|IY + d)`.
func encodeALUIdx(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	fam := aluFamilies[mi.Op]
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	idx, disp := mi.Operands[0], mi.Operands[1]
	if !idx.IsReg() {
		return errOperandTag(mnemonic(mi.Op), 0, "a register")
	}
	prefix, ok := z80.IndexPrefix(idx.Reg)
	if !ok {
		return errRegisterClass(mnemonic(mi.Op), "IX, IY")
	}
	if !disp.IsImm() {
		return errOperandTag(mnemonic(mi.Op), 1, "an immediate")
	}
	if disp.Imm < -128 || disp.Imm > 127 {
		return errConstraint(mnemonic(mi.Op), 1, -128, 127)
	}
	out.append(prefix, fam.regBase+6, byte(disp.Imm))
	return nil
}
