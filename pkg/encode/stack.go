package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// qqCode is the PUSH/POP pair-table code: BC=0, DE=1, HL/IX/IY=2.
func qqCode(r z80.Register) (code uint8, ok bool) {
	switch r {
	case z80.RegBC:
		return 0, true
	case z80.RegDE:
		return 1, true
	case z80.RegHL, z80.RegIX, z80.RegIY:
		return 2, true
	}
	return 0, false
}

// encodePUSH16r encodes `PUSH BC|DE|HL|IX|IY`.
func encodePUSH16r(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	return pushPopR(mi, out, 0xC5)
}

// encodePOP16r encodes `POP BC|DE|HL|IX|IY`.
func encodePOP16r(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	return pushPopR(mi, out, 0xC1)
}

func pushPopR(mi z80.Instruction, out *ByteSlice, base byte) error {
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	r := mi.Operands[0]
	code, ok := qqCode(r.Reg)
	if !r.IsReg() || !ok {
		return errRegisterClass(mnemonic(mi.Op), "BC, DE, HL, IX, IY")
	}
	if prefix, isIdx := z80.IndexPrefix(r.Reg); isIdx {
		out.append(prefix)
	}
	out.append(base + 16*code)
	return nil
}

// encodePUSH16AF encodes `PUSH AF`.
func encodePUSH16AF(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 0 {
		return errOperandCount(mnemonic(mi.Op), 0, len(mi.Operands))
	}
	out.append(0xF5)
	return nil
}

// encodePOP16AF encodes `POP AF`.
func encodePOP16AF(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 0 {
		return errOperandCount(mnemonic(mi.Op), 0, len(mi.Operands))
	}
	out.append(0xF1)
	return nil
}

// encodeEX16SP encodes `EX (SP), HL|IX|IY`.
func encodeEX16SP(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
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
	out.append(0xE3)
	return nil
}

// encodeEX16DE encodes `EX DE, HL`.
func encodeEX16DE(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 0 {
		return errOperandCount(mnemonic(mi.Op), 0, len(mi.Operands))
	}
	out.append(0xEB)
	return nil
}

// encodeEXAF encodes `EX AF, AF'`.
func encodeEXAF(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 0 {
		return errOperandCount(mnemonic(mi.Op), 0, len(mi.Operands))
	}
	out.append(0x08)
	return nil
}

// encodeEXX encodes `EXX`.
func encodeEXX(mi z80.Instruction, out *ByteSlice, _ fixup.Sink) error {
	if len(mi.Operands) != 0 {
		return errOperandCount(mnemonic(mi.Op), 0, len(mi.Operands))
	}
	out.append(0xD9)
	return nil
}
