package encode

import "github.com/oisee/z80encoder/pkg/z80"

// opcodeNames gives each opcode identifier a short label for diagnostics.
// These match the identifiers used in the instruction set reference this
// encoder follows, not a full assembly mnemonic.
var opcodeNames = map[z80.Opcode]string{
	z80.JQ: "JQ", z80.JQCC: "JQCC",

	z80.ADD8ai: "ADD8ai", z80.ADD8ar: "ADD8ar", z80.ADD8ap: "ADD8ap", z80.ADD8ao: "ADD8ao",
	z80.ADC8ai: "ADC8ai", z80.ADC8ar: "ADC8ar", z80.ADC8ap: "ADC8ap", z80.ADC8ao: "ADC8ao",
	z80.SUB8ai: "SUB8ai", z80.SUB8ar: "SUB8ar", z80.SUB8ap: "SUB8ap", z80.SUB8ao: "SUB8ao",
	z80.SBC8ai: "SBC8ai", z80.SBC8ar: "SBC8ar", z80.SBC8ap: "SBC8ap", z80.SBC8ao: "SBC8ao",
	z80.AND8ai: "AND8ai", z80.AND8ar: "AND8ar", z80.AND8ap: "AND8ap", z80.AND8ao: "AND8ao",
	z80.OR8ai: "OR8ai", z80.OR8ar: "OR8ar", z80.OR8ap: "OR8ap", z80.OR8ao: "OR8ao",
	z80.XOR8ai: "XOR8ai", z80.XOR8ar: "XOR8ar", z80.XOR8ap: "XOR8ap", z80.XOR8ao: "XOR8ao",
	z80.CP8ai: "CP8ai", z80.CP8ar: "CP8ar", z80.CP8ap: "CP8ap", z80.CP8ao: "CP8ao",

	z80.INC8r: "INC8r", z80.INC8p: "INC8p", z80.INC8o: "INC8o",
	z80.DEC8r: "DEC8r", z80.DEC8p: "DEC8p", z80.DEC8o: "DEC8o",
	z80.INC16r: "INC16r", z80.INC16SP: "INC16SP",
	z80.DEC16r: "DEC16r", z80.DEC16SP: "DEC16SP",

	z80.LD8gg: "LD8gg", z80.LD8ri: "LD8ri", z80.LD8gp: "LD8gp", z80.LD8pg: "LD8pg",
	z80.LD8go: "LD8go", z80.LD8og: "LD8og", z80.LD8oi: "LD8oi", z80.LD8pi: "LD8pi",
	z80.LD8am: "LD8am", z80.LD8ma: "LD8ma",

	z80.LD16ri: "LD16ri", z80.LD16SP: "LD16SP", z80.LD16am: "LD16am", z80.LD16ma: "LD16ma",
	z80.LD16mo: "LD16mo", z80.LD16om: "LD16om",

	z80.RLC8r: "RLC8r", z80.RLC8p: "RLC8p", z80.RLC8o: "RLC8o",
	z80.RL8r: "RL8r", z80.RL8p: "RL8p", z80.RL8o: "RL8o",
	z80.RRC8r: "RRC8r", z80.RRC8p: "RRC8p", z80.RRC8o: "RRC8o",
	z80.RR8r: "RR8r", z80.RR8p: "RR8p", z80.RR8o: "RR8o",
	z80.SLA8r: "SLA8r", z80.SLA8p: "SLA8p", z80.SLA8o: "SLA8o",
	z80.SRA8r: "SRA8r", z80.SRA8p: "SRA8p", z80.SRA8o: "SRA8o",
	z80.SRL8r: "SRL8r", z80.SRL8p: "SRL8p", z80.SRL8o: "SRL8o",

	z80.BIT8bg: "BIT8bg", z80.BIT8bp: "BIT8bp", z80.BIT8bo: "BIT8bo",
	z80.RES8bg: "RES8bg", z80.RES8bp: "RES8bp", z80.RES8bo: "RES8bo",
	z80.SET8bg: "SET8bg", z80.SET8bp: "SET8bp", z80.SET8bo: "SET8bo",

	z80.CALL16: "CALL16", z80.CALL16CC: "CALL16CC",
	z80.RET16: "RET16", z80.RET16CC: "RET16CC", z80.RETI16: "RETI16", z80.RETN16: "RETN16",
	z80.JP16r: "JP16r",

	z80.PUSH16r: "PUSH16r", z80.PUSH16AF: "PUSH16AF",
	z80.POP16r: "POP16r", z80.POP16AF: "POP16AF",
	z80.EX16SP: "EX16SP", z80.EX16DE: "EX16DE", z80.EXAF: "EXAF", z80.EXX: "EXX",

	z80.LDI16: "LDI16", z80.LDD16: "LDD16", z80.LDIR16: "LDIR16", z80.LDDR16: "LDDR16",
	z80.CPI16: "CPI16", z80.CPD16: "CPD16", z80.CPIR16: "CPIR16", z80.CPDR16: "CPDR16",
	z80.INI16: "INI16", z80.IND16: "IND16", z80.INIR16: "INIR16", z80.INDR16: "INDR16",
	z80.OUTI16: "OUTI16", z80.OUTD16: "OUTD16", z80.OUTIR16: "OUTIR16", z80.OUTDR16: "OUTDR16",

	z80.NOP: "NOP", z80.CCF: "CCF", z80.SCF: "SCF", z80.CPL: "CPL",
	z80.DI: "DI", z80.EI: "EI", z80.NEG: "NEG",

	z80.ADD16aa: "ADD16aa", z80.ADD16ao: "ADD16ao", z80.ADD16SP: "ADD16SP",
	z80.SBC16aa: "SBC16aa", z80.SBC16ao: "SBC16ao", z80.SBC16SP: "SBC16SP",
	z80.LEA16ro: "LEA16ro",

	z80.ADC16SP: "ADC16SP", z80.ADC16aa: "ADC16aa", z80.ADC16ao: "ADC16ao",
	z80.JP16: "JP16", z80.JP16CC: "JP16CC", z80.JR: "JR", z80.JRCC: "JRCC",
	z80.LD16or: "LD16or", z80.LD16pr: "LD16pr", z80.LD16ro: "LD16ro", z80.LD16rp: "LD16rp",
}
