package encode

import (
	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

// Encode appends the machine-code bytes for one instruction to out, and
// any relocation fixups it requires to fixups. It fails on a malformed
// instruction; it never appends a partial encoding on error.
func Encode(cfg Config, mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error {
	if mi.Mode() == z80.EZ80Mode {
		return errMode(mi.Mode())
	}
	if z80.IsPseudo(mi.Op) {
		return encodePseudo(cfg, mi, out, fixups)
	}
	if z80.IsUnimplemented(mi.Op) {
		return errUnimplemented(mi.Op)
	}
	rec, ok := realTable[mi.Op]
	if !ok {
		return errUnknownOpcode(mi.Op)
	}
	start := len(out.Bytes)
	if err := rec(mi, out, fixups); err != nil {
		out.Bytes = out.Bytes[:start]
		return err
	}
	return nil
}

// recipe is the shared shape of every real-instruction encoding routine:
// validate mi's operands, append bytes to out, optionally append fixups.
type recipe func(mi z80.Instruction, out *ByteSlice, fixups fixup.Sink) error

// mnemonic returns a short diagnostic label for an opcode, used only in
// error messages. It need not be a full disassembly.
func mnemonic(op z80.Opcode) string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "?"
}
