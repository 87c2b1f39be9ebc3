package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// appendAddr16 appends a 16-bit absolute field shared by CALL/LD's
// immediate-or-symbolic operands: a resolved immediate is written
// directly, an expression operand gets two placeholder bytes plus a
// fixup_16 bound to it, mirroring pseudo.go's appendFixup.
func appendAddr16(out *ByteSlice, fixups fixup.Sink, loc z80.SourceLoc, mnemonicName string, idx int, op z80.Operand) error {
	switch {
	case op.IsImm():
		if op.Imm < 0 || op.Imm > 0xFFFF {
			return errConstraint(mnemonicName, idx, 0, 0xFFFF)
		}
		out.appendLE16(uint16(op.Imm))
		return nil
	case op.IsExpr():
		out.appendLE16(0)
		appendFixup(fixups, out, op, fixup.Kind16, loc, 2)
		return nil
	}
	return errOperandTag(mnemonicName, idx, "an immediate or expression")
}
