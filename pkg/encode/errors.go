package encode

import (
	"errors"
	"fmt"

	"github.com/oisee/z80encoder/pkg/z80"
)

// Error categories. Callers match on these with errors.Is; the wrapped
// error carries the mnemonic- and operand-specific detail.
var (
	ErrShape         = errors.New("shape violation")
	ErrConstraint    = errors.New("constraint violation")
	ErrRegisterClass = errors.New("register class violation")
	ErrMode          = errors.New("mode violation")
	ErrUnimplemented = errors.New("not implemented")
	ErrUnknownOpcode = errors.New("unknown opcode")
)

func errShape(mnemonic, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", mnemonic, fmt.Sprintf(format, args...), ErrShape)
}

func errOperandCount(mnemonic string, want, got int) error {
	return errShape(mnemonic, "invalid number of arguments: expected %d, got %d", want, got)
}

func errOperandTag(mnemonic string, idx int, want string) error {
	return fmt.Errorf("%s: operand %d should be %s: %w", mnemonic, idx, want, ErrShape)
}

func errConstraint(mnemonic string, idx int, lo, hi int64) error {
	return fmt.Errorf("%s: operand %d should be in range %d..%d: %w", mnemonic, idx, lo, hi, ErrConstraint)
}

func errRegisterClass(mnemonic string, allowed string) error {
	return fmt.Errorf("%s: allowed registers are %s: %w", mnemonic, allowed, ErrRegisterClass)
}

func errMode(mode z80.ModeFlag) error {
	return fmt.Errorf("EZ80 not supported: mode %d: %w", mode, ErrMode)
}

func errUnimplemented(op z80.Opcode) error {
	return fmt.Errorf("%s: %w", mnemonic(op), ErrUnimplemented)
}

func errUnknownOpcode(op z80.Opcode) error {
	if name := mnemonic(op); name != "?" {
		return fmt.Errorf("%s: %w", name, ErrUnknownOpcode)
	}
	return fmt.Errorf("opcode %d: %w", op, ErrUnknownOpcode)
}
