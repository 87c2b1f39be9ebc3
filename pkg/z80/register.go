package z80

// Register identifies one member of the Z80 register file. Registers carry
// no structural relationship to their pairs or halves in the type itself —
// the encoder matches on identity alone, the same way the ISA's r-table does.
type Register uint8

const (
	RegNone Register = iota

	// 8-bit main registers, in r-table order (B=0..A=7 skipping 6 for (HL)).
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegA

	// 8-bit index halves. These have no direct r-table slot; most operations
	// on them are synthesized via a PUSH/POP shuttle through HL/DE.
	RegIXH
	RegIXL
	RegIYH
	RegIYL

	// 16-bit pairs.
	RegBC
	RegDE
	RegHL
	RegAF

	// 16-bit index registers.
	RegIX
	RegIY

	RegSP
)

var registerNames = map[Register]string{
	RegA: "A", RegB: "B", RegC: "C", RegD: "D", RegE: "E", RegH: "H", RegL: "L",
	RegIXH: "IXH", RegIXL: "IXL", RegIYH: "IYH", RegIYL: "IYL",
	RegBC: "BC", RegDE: "DE", RegHL: "HL", RegAF: "AF",
	RegIX: "IX", RegIY: "IY", RegSP: "SP",
}

func (r Register) String() string {
	if s, ok := registerNames[r]; ok {
		return s
	}
	return "?"
}

// RTableCode returns the Z80 r-table low-3-bits code for an 8-bit register
// (B=0, C=1, D=2, E=3, H=4, L=5, (HL)=6, A=7). Index halves map onto the
// H/L slots of the table they shuttle through; ok is false for anything
// else.
func RTableCode(r Register) (code uint8, ok bool) {
	switch r {
	case RegB:
		return 0, true
	case RegC:
		return 1, true
	case RegD:
		return 2, true
	case RegE:
		return 3, true
	case RegH, RegIXH, RegIYH:
		return 4, true
	case RegL, RegIXL, RegIYL:
		return 5, true
	case RegA:
		return 7, true
	}
	return 0, false
}

// IsIndexHalf reports whether r is one of IXH, IXL, IYH, IYL.
func IsIndexHalf(r Register) bool {
	switch r {
	case RegIXH, RegIXL, RegIYH, RegIYL:
		return true
	}
	return false
}

// IsIndexReg reports whether r is IX or IY.
func IsIndexReg(r Register) bool {
	return r == RegIX || r == RegIY
}

// IndexPrefix returns the DD/FD prefix byte for IX/IY and their halves, or
// 0 with ok=false for anything else (including plain HL, which carries no
// prefix).
func IndexPrefix(r Register) (prefix uint8, ok bool) {
	switch r {
	case RegIX, RegIXH, RegIXL:
		return 0xDD, true
	case RegIY, RegIYH, RegIYL:
		return 0xFD, true
	}
	return 0, false
}

// IsHighHalf reports whether r names the high half of a pair (H, IXH, IYH).
func IsHighHalf(r Register) bool {
	switch r {
	case RegH, RegIXH, RegIYH:
		return true
	}
	return false
}
