package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/oisee/z80encoder/pkg/encode"
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "z80enc",
		Short: "Z80 instruction encoder — opcode + operands to machine code",
	}

	var shortJumps bool
	var shortCCJumps bool

	encodeCmd := &cobra.Command{
		Use:   "encode [instruction]",
		Short: "Encode one instruction given as text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			mi, err := parseInstruction(text)
			if err != nil {
				return fmt.Errorf("cannot parse %q: %w", text, err)
			}

			cfg := encode.Config{ShortJumps: shortJumps, ShortCCJumps: shortCCJumps}
			out := &encode.ByteSlice{}
			var sink fixup.SliceSink
			if err := encode.Encode(cfg, mi, out, &sink); err != nil {
				return err
			}

			fmt.Printf("%s\n", formatHex(out.Bytes))
			for _, f := range sink.Records {
				fmt.Printf("  fixup: kind=%d offset=%d\n", f.Kind, f.Offset)
			}
			return nil
		},
	}
	encodeCmd.Flags().BoolVar(&shortJumps, "short-jumps", false, "lower JQ to the short JR form")
	encodeCmd.Flags().BoolVar(&shortCCJumps, "short-cc-jumps", false, "lower JQCC to the short conditional-jump form")

	rootCmd.AddCommand(encodeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func formatHex(bs []byte) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// parseInstruction recognizes a tiny subset of Z80 assembly syntax,
// enough to exercise the encoder from the command line: a mnemonic
// followed by zero or more comma-separated operands, each a register
// name, a parenthesized memory reference (with or without an IX/IY
// displacement), a numeric literal, or a bare symbol reference. It does
// not resolve symbols; a bare non-register, non-numeric token becomes
// an Expr operand carried through to a fixup.
func parseInstruction(text string) (z80.Instruction, error) {
	text = strings.TrimSpace(text)
	fields := strings.SplitN(text, " ", 2)
	mnemonicName := strings.ToUpper(fields[0])

	var operandText string
	if len(fields) == 2 {
		operandText = fields[1]
	}
	rawOperands := splitOperands(operandText)

	if op, ok := zeroOperandOpcode[mnemonicName]; ok {
		if len(rawOperands) != 0 {
			return z80.Instruction{}, fmt.Errorf("%s takes no operands", mnemonicName)
		}
		return z80.Instruction{Op: op}, nil
	}

	operands := make([]parsedOperand, 0, len(rawOperands))
	for _, raw := range rawOperands {
		po, err := parseRawOperand(raw)
		if err != nil {
			return z80.Instruction{}, fmt.Errorf("cannot parse operand %q: %w", raw, err)
		}
		operands = append(operands, po)
	}

	return resolveInstruction(mnemonicName, operands)
}

func splitOperands(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parsedOperand is the CLI's own intermediate operand shape, richer than
// z80.Operand: it keeps whether the token was parenthesized and, for an
// indexed memory reference, the register and displacement separately, so
// the resolver below can tell `IX` (a register operand) from `(IX+5)` (a
// displaced memory operand) and from `(nn)` (an absolute address).
type parsedOperand struct {
	paren    bool
	hasReg   bool
	reg      z80.Register
	hasImm   bool
	imm      int64
	hasExpr  bool
	expr     z80.ExprRef
	hasDisp  bool
	dispImm  int64
}

// symbolRef is a bare, unresolved symbol token parsed from the command
// line; the encoder only ever carries it into a Fixup, never evaluates it.
type symbolRef struct{ name string }

func (s symbolRef) Kind() z80.ExprKind { return z80.ExprSymbolRef }
func (s symbolRef) SymbolName() string { return s.name }

func parseRawOperand(raw string) (parsedOperand, error) {
	if raw == "" {
		return parsedOperand{}, fmt.Errorf("empty operand")
	}
	var po parsedOperand
	if strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")") {
		po.paren = true
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
	}
	if reg, disp, ok := splitDisplacement(raw); ok {
		po.hasReg, po.reg = true, reg
		po.hasDisp, po.dispImm = true, disp
		return po, nil
	}
	if r, ok := registerNames[strings.ToUpper(raw)]; ok {
		po.hasReg, po.reg = true, r
		return po, nil
	}
	if v, err := parseImmediate(raw); err == nil {
		po.hasImm, po.imm = true, v
		return po, nil
	}
	po.hasExpr, po.expr = true, symbolRef{name: raw}
	return po, nil
}

// splitDisplacement recognizes "IX+5", "IY - 3" etc: an index register
// name followed by a signed decimal/hex displacement.
func splitDisplacement(raw string) (z80.Register, int64, bool) {
	for _, sep := range []string{"+", "-"} {
		i := strings.Index(raw, sep)
		if i <= 0 {
			continue
		}
		regPart := strings.TrimSpace(raw[:i])
		reg, ok := registerNames[strings.ToUpper(regPart)]
		if !ok || !z80.IsIndexReg(reg) {
			continue
		}
		numPart := strings.TrimSpace(raw[i+1:])
		v, err := parseImmediate(numPart)
		if err != nil {
			continue
		}
		if sep == "-" {
			v = -v
		}
		return reg, v, true
	}
	return z80.RegNone, 0, false
}

func operandOf(po parsedOperand) z80.Operand {
	switch {
	case po.hasImm:
		return z80.Imm(po.imm)
	case po.hasExpr:
		return z80.Expr(po.expr)
	default:
		return z80.Operand{}
	}
}

func parseImmediate(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseInt(s[2:], 16, 64)
	}
	if strings.HasSuffix(strings.ToUpper(s), "H") {
		return strconv.ParseInt(s[:len(s)-1], 16, 64)
	}
	return strconv.ParseInt(s, 10, 64)
}

var registerNames = map[string]z80.Register{
	"A": z80.RegA, "B": z80.RegB, "C": z80.RegC, "D": z80.RegD,
	"E": z80.RegE, "H": z80.RegH, "L": z80.RegL,
	"IXH": z80.RegIXH, "IXL": z80.RegIXL, "IYH": z80.RegIYH, "IYL": z80.RegIYL,
	"BC": z80.RegBC, "DE": z80.RegDE, "HL": z80.RegHL, "AF": z80.RegAF,
	"IX": z80.RegIX, "IY": z80.RegIY, "SP": z80.RegSP,
}

func is8BitReg(r z80.Register) bool {
	switch r {
	case z80.RegA, z80.RegB, z80.RegC, z80.RegD, z80.RegE, z80.RegH, z80.RegL,
		z80.RegIXH, z80.RegIXL, z80.RegIYH, z80.RegIYL:
		return true
	}
	return false
}

func is16BitReg(r z80.Register) bool {
	switch r {
	case z80.RegBC, z80.RegDE, z80.RegHL, z80.RegIX, z80.RegIY, z80.RegSP:
		return true
	}
	return false
}

// zeroOperandOpcode covers every mnemonic whose encoding never depends on
// an operand's shape.
var zeroOperandOpcode = map[string]z80.Opcode{
	"NOP": z80.NOP, "CCF": z80.CCF, "SCF": z80.SCF, "CPL": z80.CPL,
	"DI": z80.DI, "EI": z80.EI, "NEG": z80.NEG, "EXX": z80.EXX,
	"RET": z80.RET16, "RETI": z80.RETI16, "RETN": z80.RETN16,
	"EXAF": z80.EXAF,

	"LDI": z80.LDI16, "LDD": z80.LDD16, "LDIR": z80.LDIR16, "LDDR": z80.LDDR16,
	"CPI": z80.CPI16, "CPD": z80.CPD16, "CPIR": z80.CPIR16, "CPDR": z80.CPDR16,
	"INI": z80.INI16, "IND": z80.IND16, "INIR": z80.INIR16, "INDR": z80.INDR16,
	"OUTI": z80.OUTI16, "OUTD": z80.OUTD16, "OUTIR": z80.OUTIR16, "OUTDR": z80.OUTDR16,
}

// resolveInstruction picks the real-instruction opcode and operand list
// for mnemonics whose form depends on operand shape (register vs.
// memory vs. immediate vs. expression), mirroring the addressing-mode
// fan-out the encoder itself implements one opcode per mode for.
func resolveInstruction(mnemonicName string, operands []parsedOperand) (z80.Instruction, error) {
	switch mnemonicName {
	case "ADD", "ADC", "SUB", "SBC", "AND", "OR", "XOR", "CP":
		return resolveALU(mnemonicName, operands)
	case "INC", "DEC":
		return resolveIncDec(mnemonicName, operands)
	case "LD":
		return resolveLD(operands)
	case "RLC", "RL", "RRC", "RR", "SLA", "SRA", "SRL":
		return resolveRotate(mnemonicName, operands)
	case "BIT", "RES", "SET":
		return resolveBit(mnemonicName, operands)
	case "CALL":
		return resolveCALL(operands)
	case "JP":
		return resolveJP(operands)
	case "PUSH":
		return resolvePushPop(z80.PUSH16r, operands)
	case "POP":
		return resolvePushPop(z80.POP16r, operands)
	case "EX":
		return resolveEX(operands)
	}
	return z80.Instruction{}, fmt.Errorf("unknown mnemonic: %s", mnemonicName)
}

var aluOpcodes = map[string][4]z80.Opcode{
	"ADD": {z80.ADD8ai, z80.ADD8ar, z80.ADD8ap, z80.ADD8ao},
	"ADC": {z80.ADC8ai, z80.ADC8ar, z80.ADC8ap, z80.ADC8ao},
	"SUB": {z80.SUB8ai, z80.SUB8ar, z80.SUB8ap, z80.SUB8ao},
	"SBC": {z80.SBC8ai, z80.SBC8ar, z80.SBC8ap, z80.SBC8ao},
	"AND": {z80.AND8ai, z80.AND8ar, z80.AND8ap, z80.AND8ao},
	"OR":  {z80.OR8ai, z80.OR8ar, z80.OR8ap, z80.OR8ao},
	"XOR": {z80.XOR8ai, z80.XOR8ar, z80.XOR8ap, z80.XOR8ao},
	"CP":  {z80.CP8ai, z80.CP8ar, z80.CP8ap, z80.CP8ao},
}

var alu16Opcodes = map[string]struct{ aa, ao, sp z80.Opcode }{
	"ADD": {z80.ADD16aa, z80.ADD16ao, z80.ADD16SP},
	"SBC": {z80.SBC16aa, z80.SBC16ao, z80.SBC16SP},
}

// resolveALU handles the 8-bit forms (`<op> A, X` or, per Z80 convention
// for everything but ADD/ADC/SBC, the implicit-A `<op> X`) and, for
// ADD/SBC, the 16-bit register-pair forms.
func resolveALU(mnemonicName string, operands []parsedOperand) (z80.Instruction, error) {
	var acc, arg parsedOperand
	switch len(operands) {
	case 1:
		arg = operands[0]
	case 2:
		acc, arg = operands[0], operands[1]
		if !acc.hasReg || (acc.reg != z80.RegA && !is16BitReg(acc.reg)) {
			return z80.Instruction{}, fmt.Errorf("%s: first operand must be A, or a 16-bit pair for ADD/SBC", mnemonicName)
		}
	default:
		return z80.Instruction{}, fmt.Errorf("%s: expected one or two operands", mnemonicName)
	}

	if len(operands) == 2 && is16BitReg(acc.reg) {
		fam16, ok := alu16Opcodes[mnemonicName]
		if !ok {
			return z80.Instruction{}, fmt.Errorf("%s: no 16-bit form", mnemonicName)
		}
		if !arg.hasReg {
			return z80.Instruction{}, fmt.Errorf("%s: second operand must be a register", mnemonicName)
		}
		switch {
		case arg.reg == acc.reg:
			return z80.Instruction{Op: fam16.aa, Operands: []z80.Operand{z80.Reg(acc.reg), z80.Reg(arg.reg)}}, nil
		case arg.reg == z80.RegSP:
			return z80.Instruction{Op: fam16.sp, Operands: []z80.Operand{z80.Reg(acc.reg)}}, nil
		default:
			return z80.Instruction{Op: fam16.ao, Operands: []z80.Operand{z80.Reg(acc.reg), z80.Reg(arg.reg)}}, nil
		}
	}

	fam, ok := aluOpcodes[mnemonicName]
	if !ok {
		return z80.Instruction{}, fmt.Errorf("%s: unknown ALU mnemonic", mnemonicName)
	}
	switch {
	case !arg.paren && arg.hasReg:
		return z80.Instruction{Op: fam[1], Operands: []z80.Operand{z80.Reg(arg.reg)}}, nil
	case !arg.paren && (arg.hasImm || arg.hasExpr):
		return z80.Instruction{Op: fam[0], Operands: []z80.Operand{operandOf(arg)}}, nil
	case arg.paren && arg.hasReg && arg.reg == z80.RegHL && !arg.hasDisp:
		return z80.Instruction{Op: fam[2], Operands: []z80.Operand{z80.Reg(z80.RegHL)}}, nil
	case arg.paren && arg.hasDisp:
		return z80.Instruction{Op: fam[3], Operands: []z80.Operand{z80.Reg(arg.reg), z80.Imm(arg.dispImm)}}, nil
	}
	return z80.Instruction{}, fmt.Errorf("%s: cannot resolve operand shape", mnemonicName)
}

var incDecOpcodes = map[string]struct{ r, p, o, r16, sp z80.Opcode }{
	"INC": {z80.INC8r, z80.INC8p, z80.INC8o, z80.INC16r, z80.INC16SP},
	"DEC": {z80.DEC8r, z80.DEC8p, z80.DEC8o, z80.DEC16r, z80.DEC16SP},
}

func resolveIncDec(mnemonicName string, operands []parsedOperand) (z80.Instruction, error) {
	fam, ok := incDecOpcodes[mnemonicName]
	if !ok || len(operands) != 1 {
		return z80.Instruction{}, fmt.Errorf("%s: expected exactly one operand", mnemonicName)
	}
	arg := operands[0]
	switch {
	case !arg.paren && arg.hasReg && arg.reg == z80.RegSP:
		return z80.Instruction{Op: fam.sp}, nil
	case !arg.paren && arg.hasReg && is8BitReg(arg.reg):
		return z80.Instruction{Op: fam.r, Operands: []z80.Operand{z80.Reg(arg.reg)}}, nil
	case !arg.paren && arg.hasReg && is16BitReg(arg.reg):
		return z80.Instruction{Op: fam.r16, Operands: []z80.Operand{z80.Reg(arg.reg)}}, nil
	case arg.paren && arg.hasReg && arg.reg == z80.RegHL && !arg.hasDisp:
		return z80.Instruction{Op: fam.p, Operands: []z80.Operand{z80.Reg(z80.RegHL)}}, nil
	case arg.paren && arg.hasDisp:
		return z80.Instruction{Op: fam.o, Operands: []z80.Operand{z80.Reg(arg.reg), z80.Imm(arg.dispImm)}}, nil
	}
	return z80.Instruction{}, fmt.Errorf("%s: cannot resolve operand shape", mnemonicName)
}

// resolveLD dispatches LD's dozen-plus addressing-mode-specific opcodes
// from its two parsed operands' shapes.
func resolveLD(operands []parsedOperand) (z80.Instruction, error) {
	if len(operands) != 2 {
		return z80.Instruction{}, fmt.Errorf("LD: expected exactly two operands")
	}
	dst, src := operands[0], operands[1]

	switch {
	case !dst.paren && dst.hasReg && is8BitReg(dst.reg) && !src.paren && src.hasReg && is8BitReg(src.reg):
		return z80.Instruction{Op: z80.LD8gg, Operands: []z80.Operand{z80.Reg(dst.reg), z80.Reg(src.reg)}}, nil

	case !dst.paren && dst.hasReg && is8BitReg(dst.reg) && src.paren && src.hasReg && src.reg == z80.RegHL && !src.hasDisp:
		return z80.Instruction{Op: z80.LD8gp, Operands: []z80.Operand{z80.Reg(dst.reg), z80.Reg(z80.RegHL)}}, nil

	case dst.paren && dst.hasReg && dst.reg == z80.RegHL && !dst.hasDisp && !src.paren && src.hasReg && is8BitReg(src.reg):
		return z80.Instruction{Op: z80.LD8pg, Operands: []z80.Operand{z80.Reg(z80.RegHL), z80.Reg(src.reg)}}, nil

	case !dst.paren && dst.hasReg && is8BitReg(dst.reg) && src.paren && src.hasDisp:
		return z80.Instruction{Op: z80.LD8go, Operands: []z80.Operand{z80.Reg(dst.reg), z80.Reg(src.reg), z80.Imm(src.dispImm)}}, nil

	case dst.paren && dst.hasDisp && !src.paren && src.hasReg && is8BitReg(src.reg):
		return z80.Instruction{Op: z80.LD8og, Operands: []z80.Operand{z80.Reg(dst.reg), z80.Imm(dst.dispImm), z80.Reg(src.reg)}}, nil

	case dst.paren && dst.hasDisp && !src.paren && (src.hasImm || src.hasExpr):
		return z80.Instruction{Op: z80.LD8oi, Operands: []z80.Operand{z80.Reg(dst.reg), z80.Imm(dst.dispImm), operandOf(src)}}, nil

	case dst.paren && dst.hasReg && dst.reg == z80.RegHL && !dst.hasDisp && !src.paren && (src.hasImm || src.hasExpr):
		return z80.Instruction{Op: z80.LD8pi, Operands: []z80.Operand{z80.Reg(z80.RegHL), operandOf(src)}}, nil

	case !dst.paren && dst.hasReg && dst.reg == z80.RegA && src.paren && !src.hasReg:
		return z80.Instruction{Op: z80.LD8am, Operands: []z80.Operand{operandOf(src)}}, nil

	case dst.paren && !dst.hasReg && !src.paren && src.hasReg && src.reg == z80.RegA:
		return z80.Instruction{Op: z80.LD8ma, Operands: []z80.Operand{operandOf(dst)}}, nil

	case !dst.paren && dst.hasReg && dst.reg == z80.RegSP && !src.paren && src.hasReg && (src.reg == z80.RegHL || z80.IsIndexReg(src.reg)):
		return z80.Instruction{Op: z80.LD16SP, Operands: []z80.Operand{z80.Reg(src.reg)}}, nil

	case !dst.paren && dst.hasReg && is16BitReg(dst.reg) && !src.paren && (src.hasImm || src.hasExpr):
		return z80.Instruction{Op: z80.LD16ri, Operands: []z80.Operand{z80.Reg(dst.reg), operandOf(src)}}, nil

	case !dst.paren && dst.hasReg && (dst.reg == z80.RegHL || z80.IsIndexReg(dst.reg)) && src.paren && !src.hasReg:
		return z80.Instruction{Op: z80.LD16am, Operands: []z80.Operand{z80.Reg(dst.reg), operandOf(src)}}, nil

	case dst.paren && !dst.hasReg && !src.paren && src.hasReg && (src.reg == z80.RegHL || z80.IsIndexReg(src.reg)):
		return z80.Instruction{Op: z80.LD16ma, Operands: []z80.Operand{operandOf(dst), z80.Reg(src.reg)}}, nil

	case !dst.paren && dst.hasReg && (dst.reg == z80.RegBC || dst.reg == z80.RegDE || dst.reg == z80.RegSP) && src.paren && !src.hasReg:
		return z80.Instruction{Op: z80.LD16mo, Operands: []z80.Operand{z80.Reg(dst.reg), operandOf(src)}}, nil

	case dst.paren && !dst.hasReg && !src.paren && src.hasReg && (src.reg == z80.RegBC || src.reg == z80.RegDE || src.reg == z80.RegSP):
		return z80.Instruction{Op: z80.LD16om, Operands: []z80.Operand{operandOf(dst), z80.Reg(src.reg)}}, nil

	case !dst.paren && dst.hasReg && is8BitReg(dst.reg) && !src.paren && (src.hasImm || src.hasExpr):
		return z80.Instruction{Op: z80.LD8ri, Operands: []z80.Operand{z80.Reg(dst.reg), operandOf(src)}}, nil
	}
	return z80.Instruction{}, fmt.Errorf("LD: cannot resolve operand shapes")
}

var rotateOpcodes = map[string]struct{ r, p, o z80.Opcode }{
	"RLC": {z80.RLC8r, z80.RLC8p, z80.RLC8o},
	"RL":  {z80.RL8r, z80.RL8p, z80.RL8o},
	"RRC": {z80.RRC8r, z80.RRC8p, z80.RRC8o},
	"RR":  {z80.RR8r, z80.RR8p, z80.RR8o},
	"SLA": {z80.SLA8r, z80.SLA8p, z80.SLA8o},
	"SRA": {z80.SRA8r, z80.SRA8p, z80.SRA8o},
	"SRL": {z80.SRL8r, z80.SRL8p, z80.SRL8o},
}

func resolveRotate(mnemonicName string, operands []parsedOperand) (z80.Instruction, error) {
	fam, ok := rotateOpcodes[mnemonicName]
	if !ok || len(operands) != 1 {
		return z80.Instruction{}, fmt.Errorf("%s: expected exactly one operand", mnemonicName)
	}
	arg := operands[0]
	switch {
	case !arg.paren && arg.hasReg:
		return z80.Instruction{Op: fam.r, Operands: []z80.Operand{z80.Reg(arg.reg)}}, nil
	case arg.paren && arg.hasReg && arg.reg == z80.RegHL && !arg.hasDisp:
		return z80.Instruction{Op: fam.p, Operands: []z80.Operand{z80.Reg(z80.RegHL)}}, nil
	case arg.paren && arg.hasDisp:
		return z80.Instruction{Op: fam.o, Operands: []z80.Operand{z80.Reg(arg.reg), z80.Imm(arg.dispImm)}}, nil
	}
	return z80.Instruction{}, fmt.Errorf("%s: cannot resolve operand shape", mnemonicName)
}

var bitOpcodes = map[string]struct{ g, p, o z80.Opcode }{
	"BIT": {z80.BIT8bg, z80.BIT8bp, z80.BIT8bo},
	"RES": {z80.RES8bg, z80.RES8bp, z80.RES8bo},
	"SET": {z80.SET8bg, z80.SET8bp, z80.SET8bo},
}

func resolveBit(mnemonicName string, operands []parsedOperand) (z80.Instruction, error) {
	fam, ok := bitOpcodes[mnemonicName]
	if !ok || len(operands) != 2 {
		return z80.Instruction{}, fmt.Errorf("%s: expected a bit index and one operand", mnemonicName)
	}
	b, arg := operands[0], operands[1]
	if !b.hasImm {
		return z80.Instruction{}, fmt.Errorf("%s: first operand must be a bit index", mnemonicName)
	}
	switch {
	case !arg.paren && arg.hasReg:
		return z80.Instruction{Op: fam.g, Operands: []z80.Operand{z80.Imm(b.imm), z80.Reg(arg.reg)}}, nil
	case arg.paren && arg.hasReg && arg.reg == z80.RegHL && !arg.hasDisp:
		return z80.Instruction{Op: fam.p, Operands: []z80.Operand{z80.Imm(b.imm), z80.Reg(z80.RegHL)}}, nil
	case arg.paren && arg.hasDisp:
		return z80.Instruction{Op: fam.o, Operands: []z80.Operand{z80.Imm(b.imm), z80.Reg(arg.reg), z80.Imm(arg.dispImm)}}, nil
	}
	return z80.Instruction{}, fmt.Errorf("%s: cannot resolve operand shape", mnemonicName)
}

// resolveCALL handles both `CALL nn` and `CALL cc, nn`; nn may be a
// resolved immediate or a bare symbol.
func resolveCALL(operands []parsedOperand) (z80.Instruction, error) {
	switch len(operands) {
	case 1:
		nn := operands[0]
		if nn.paren || !(nn.hasImm || nn.hasExpr) {
			return z80.Instruction{}, fmt.Errorf("CALL: operand must be an address or symbol")
		}
		return z80.Instruction{Op: z80.CALL16, Operands: []z80.Operand{operandOf(nn)}}, nil
	case 2:
		cc, nn := operands[0], operands[1]
		if !cc.hasImm {
			return z80.Instruction{}, fmt.Errorf("CALL: first operand must be a numeric condition code")
		}
		if nn.paren || !(nn.hasImm || nn.hasExpr) {
			return z80.Instruction{}, fmt.Errorf("CALL: second operand must be an address or symbol")
		}
		return z80.Instruction{Op: z80.CALL16CC, Operands: []z80.Operand{z80.Imm(cc.imm), operandOf(nn)}}, nil
	}
	return z80.Instruction{}, fmt.Errorf("CALL: expected one or two operands")
}

// resolveJP handles `JP (HL|IX|IY)`; the absolute-address forms (`JP nn`,
// `JP cc, nn`) are in pkg/z80's rejected family and stay out of scope
// here too.
func resolveJP(operands []parsedOperand) (z80.Instruction, error) {
	if len(operands) != 1 || !operands[0].paren || !operands[0].hasReg {
		return z80.Instruction{}, fmt.Errorf("JP: expected (HL), (IX), or (IY)")
	}
	return z80.Instruction{Op: z80.JP16r, Operands: []z80.Operand{z80.Reg(operands[0].reg)}}, nil
}

func resolvePushPop(op z80.Opcode, operands []parsedOperand) (z80.Instruction, error) {
	if len(operands) != 1 || operands[0].paren || !operands[0].hasReg {
		return z80.Instruction{}, fmt.Errorf("expected one register operand")
	}
	r := operands[0].reg
	if r == z80.RegAF {
		if op == z80.PUSH16r {
			return z80.Instruction{Op: z80.PUSH16AF}, nil
		}
		return z80.Instruction{Op: z80.POP16AF}, nil
	}
	return z80.Instruction{Op: op, Operands: []z80.Operand{z80.Reg(r)}}, nil
}

// resolveEX handles `EX (SP), HL|IX|IY` and `EX DE, HL`; `EX AF, AF'`
// is reached through zeroOperandOpcode's "EXAF" alias since AF' is not
// a token this parser's register table models.
func resolveEX(operands []parsedOperand) (z80.Instruction, error) {
	if len(operands) != 2 {
		return z80.Instruction{}, fmt.Errorf("EX: expected two operands")
	}
	a, b := operands[0], operands[1]
	switch {
	case a.paren && a.hasReg && a.reg == z80.RegSP && !b.paren && b.hasReg:
		return z80.Instruction{Op: z80.EX16SP, Operands: []z80.Operand{z80.Reg(b.reg)}}, nil
	case !a.paren && a.hasReg && a.reg == z80.RegDE && !b.paren && b.hasReg && b.reg == z80.RegHL:
		return z80.Instruction{Op: z80.EX16DE}, nil
	}
	return z80.Instruction{}, fmt.Errorf("EX: expected (SP), HL|IX|IY or DE, HL")
}
