package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// encodePseudo lowers JQ/JQCC into a real jump plus a fixup, per cfg's
// short-jumps/short-cc-jumps switches. Both default to the long form.
func encodePseudo(cfg Config, mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	switch mi.Op {
	case z80.JQ:
		return encodeJQ(cfg, mi, out, fixups)
	case z80.JQCC:
		return encodeJQCC(cfg, mi, out, fixups)
	}
	return errUnknownOpcode(mi.Op)
}

func encodeJQ(cfg Config, mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	if len(mi.Operands) != 1 {
		return errOperandCount(mnemonic(mi.Op), 1, len(mi.Operands))
	}
	target := mi.Operands[0]
	if !target.IsExpr() {
		return errOperandTag(mnemonic(mi.Op), 0, "an expression")
	}

	if cfg.ShortJumps {
		out.append(0x18, 0x00)
		appendFixup(fixups, out, target, fixup.Kind8PCRel, mi.Loc, 1)
		return nil
	}
	out.append(0xC3, 0x00, 0x00)
	appendFixup(fixups, out, target, fixup.Kind16, mi.Loc, 2)
	return nil
}

func encodeJQCC(cfg Config, mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	if len(mi.Operands) != 2 {
		return errOperandCount(mnemonic(mi.Op), 2, len(mi.Operands))
	}
	target := mi.Operands[0]
	cc := mi.Operands[1]
	if !target.IsExpr() {
		return errOperandTag(mnemonic(mi.Op), 0, "an expression")
	}
	if !cc.IsImm() {
		return errOperandTag(mnemonic(mi.Op), 1, "an immediate")
	}

	if cfg.ShortCCJumps {
		if cc.Imm < 0 || cc.Imm > 3 {
			return errConstraint(mnemonic(mi.Op), 1, 0, 3)
		}
		out.append(byte(cc.Imm<<3)|0x20, 0x00)
		appendFixup(fixups, out, target, fixup.Kind8PCRel, mi.Loc, 1)
		return nil
	}
	if cc.Imm < 0 || cc.Imm > 7 {
		return errConstraint(mnemonic(mi.Op), 1, 0, 7)
	}
	out.append(byte(cc.Imm<<3)|0xC2, 0x00, 0x00)
	appendFixup(fixups, out, target, fixup.Kind16, mi.Loc, 2)
	return nil
}

// appendFixup records a fixup at out.len()-placeholderLen (the offset the
// placeholder bytes were appended at, per the "before the placeholder"
// invariant) and binds it to the expression operand's value.
func appendFixup(fixups fixup.Sink, out *ByteSlice, operand z80.Operand, kind fixup.Kind, loc z80.SourceLoc, placeholderLen uint32) {
	fixups.Append(fixup.Record{
		Offset: out.len() - placeholderLen,
		Value:  operand.Expr,
		Kind:   kind,
		Loc:    loc,
	})
}
