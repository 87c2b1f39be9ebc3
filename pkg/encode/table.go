package encode

import "github.com/oisee/z80encoder/pkg/z80"

// realTable is the opcode-descriptor table the top-level dispatcher
// interprets: one recipe per real (non-pseudo) instruction form. Building
// this as data rather than one function body per opcode is what keeps the
// dispatcher a lookup instead of a few thousand lines of nested cases;
// the recipes themselves still encapsulate the per-family byte layout.
var realTable = func() map[z80.Opcode]recipe {
	t := make(map[z80.Opcode]recipe, 160)

	for op := range aluFamilies {
		switch opcodeALUForm(op) {
		case formAI:
			t[op] = encodeALUImm
		case formAR:
			t[op] = encodeALUReg
		case formAP:
			t[op] = encodeALUPtr
		case formAO:
			t[op] = encodeALUIdx
		}
	}

	t[z80.INC8r] = encodeINCDEC8r(0x04)
	t[z80.INC8p] = encodeINCDEC8p(0x34)
	t[z80.INC8o] = encodeINCDEC8o(0x34)
	t[z80.DEC8r] = encodeINCDEC8r(0x05)
	t[z80.DEC8p] = encodeINCDEC8p(0x35)
	t[z80.DEC8o] = encodeINCDEC8o(0x35)
	t[z80.INC16r] = encodeINCDEC16r(0x03)
	t[z80.DEC16r] = encodeINCDEC16r(0x0B)
	t[z80.INC16SP] = encodeINCDEC16SP(0x33)
	t[z80.DEC16SP] = encodeINCDEC16SP(0x3B)

	t[z80.LD8gg] = encodeLD8gg
	t[z80.LD8ri] = encodeLD8ri
	t[z80.LD8gp] = encodeLD8gp
	t[z80.LD8pg] = encodeLD8pg
	t[z80.LD8go] = encodeLD8go
	t[z80.LD8og] = encodeLD8og
	t[z80.LD8oi] = encodeLD8oi
	t[z80.LD8pi] = encodeLD8pi
	t[z80.LD8am] = encodeLD8am
	t[z80.LD8ma] = encodeLD8ma

	t[z80.LD16ri] = encodeLD16ri
	t[z80.LD16SP] = encodeLD16SP
	t[z80.LD16am] = encodeLD16am
	t[z80.LD16ma] = encodeLD16ma
	t[z80.LD16mo] = encodeLD16mo
	t[z80.LD16om] = encodeLD16om

	for op := range rotateFamilies {
		switch opcodeRotateForm(op) {
		case formR:
			t[op] = encodeRotateShiftR
		case formP:
			t[op] = encodeRotateShiftP
		case formO:
			t[op] = encodeRotateShiftO
		}
	}

	for op := range bitFamilies {
		switch opcodeBitForm(op) {
		case formBG:
			t[op] = encodeBitG
		case formBP:
			t[op] = encodeBitP
		case formBO:
			t[op] = encodeBitO
		}
	}

	t[z80.CALL16] = encodeCALL16
	t[z80.CALL16CC] = encodeCALL16CC
	t[z80.RET16] = encodeRET16
	t[z80.RET16CC] = encodeRET16CC
	t[z80.RETI16] = encodeRETI16
	t[z80.RETN16] = encodeRETN16
	t[z80.JP16r] = encodeJP16r

	t[z80.PUSH16r] = encodePUSH16r
	t[z80.PUSH16AF] = encodePUSH16AF
	t[z80.POP16r] = encodePOP16r
	t[z80.POP16AF] = encodePOP16AF
	t[z80.EX16SP] = encodeEX16SP
	t[z80.EX16DE] = encodeEX16DE
	t[z80.EXAF] = encodeEXAF
	t[z80.EXX] = encodeEXX

	for op := range blockOpcodes {
		t[op] = encodeBlockOp
	}

	for op := range miscOpcodes {
		t[op] = encodeMisc
	}
	t[z80.NEG] = encodeNEG

	t[z80.ADD16aa] = encodeADD16aa
	t[z80.ADD16ao] = encodeADD16ao
	t[z80.ADD16SP] = encodeADD16SP
	t[z80.SBC16aa] = encodeSBC16aa
	t[z80.SBC16ao] = encodeSBC16ao
	t[z80.SBC16SP] = encodeSBC16SP
	t[z80.LEA16ro] = encodeLEA16ro

	return t
}()

type aluForm uint8

const (
	formAI aluForm = iota
	formAR
	formAP
	formAO
)

func opcodeALUForm(op z80.Opcode) aluForm {
	switch op {
	case z80.ADD8ai, z80.ADC8ai, z80.SUB8ai, z80.SBC8ai, z80.AND8ai, z80.OR8ai, z80.XOR8ai, z80.CP8ai:
		return formAI
	case z80.ADD8ar, z80.ADC8ar, z80.SUB8ar, z80.SBC8ar, z80.AND8ar, z80.OR8ar, z80.XOR8ar, z80.CP8ar:
		return formAR
	case z80.ADD8ap, z80.ADC8ap, z80.SUB8ap, z80.SBC8ap, z80.AND8ap, z80.OR8ap, z80.XOR8ap, z80.CP8ap:
		return formAP
	default:
		return formAO
	}
}

type rsForm uint8

const (
	formR rsForm = iota
	formP
	formO
)

func opcodeRotateForm(op z80.Opcode) rsForm {
	switch op {
	case z80.RLC8r, z80.RL8r, z80.RRC8r, z80.RR8r, z80.SLA8r, z80.SRA8r, z80.SRL8r:
		return formR
	case z80.RLC8p, z80.RL8p, z80.RRC8p, z80.RR8p, z80.SLA8p, z80.SRA8p, z80.SRL8p:
		return formP
	default:
		return formO
	}
}

type bitForm uint8

const (
	formBG bitForm = iota
	formBP
	formBO
)

func opcodeBitForm(op z80.Opcode) bitForm {
	switch op {
	case z80.BIT8bg, z80.RES8bg, z80.SET8bg:
		return formBG
	case z80.BIT8bp, z80.RES8bp, z80.SET8bp:
		return formBP
	default:
		return formBO
	}
}
