package encode

import "github.com/oisee/z80encoder/pkg/z80"

// The index-half synthetic expansions. The Z80 has no direct encoding for
// most operations on IXH/IXL/IYH/IYL once they would collide with H/L, so
// the encoder emulates them by shuttling the index register's value
// through HL (and, when two different index halves are involved, DE as a
// second shuttle), performing the real operation on H or L, then
// shuttling the result back if the operation writes one.

// halfCode returns the r-table code (4 for the high half, 5 for the low
// half) a half-register occupies once shuttled into HL or DE.
func halfCode(high bool) uint8 {
	if high {
		return 4
	}
	return 5
}

// singleShuttle emulates an operation on one index half by moving the
// index register into HL, invoking emit with the r-table code the half
// occupies (4 or 5), and, if writeback is true, moving the (possibly
// modified) HL value back into the index register afterward.
func singleShuttle(out *ByteSlice, idx z80.Register, high bool, writeback bool, emit func(code uint8)) {
	prefix, _ := z80.IndexPrefix(idx)
	out.append(0xE5)           // PUSH HL
	out.append(prefix, 0xE5)   // PUSH IX|IY
	out.append(0xE1)           // POP HL
	emit(halfCode(high))
	if writeback {
		out.append(0xE5)         // PUSH HL
		out.append(prefix, 0xE1) // POP IX|IY
	}
	out.append(0xE1) // POP HL
}

// singleShuttleDE is singleShuttle's counterpart for when the *other*
// operand is H or L itself: shuttling through HL would clobber that
// operand (singleShuttle's trailing POP HL discards whatever the
// operation wrote to H/L), so this path shuttles the index half through
// DE instead, leaving HL untouched throughout.
func singleShuttleDE(out *ByteSlice, idx z80.Register, high bool, writeback bool, emit func(code uint8)) {
	prefix, _ := z80.IndexPrefix(idx)
	out.append(0xD5)           // PUSH DE
	out.append(prefix, 0xE5)   // PUSH IX|IY
	out.append(0xD1)           // POP DE
	emit(srcCodeInDE(high))
	if writeback {
		out.append(0xD5)         // PUSH DE
		out.append(prefix, 0xE1) // POP IX|IY
	}
	out.append(0xD1) // POP DE
}

// crossShuttle emulates an operation between two different index halves
// (or an index half and the opposite index register's half), where both
// operands must be live at once. dstIdx/dstHigh identify the destination
// half, srcIdx/srcHigh the source half; emit receives the r-table codes
// the destination (H or L slot, 4/5) and source (D or E slot, 2/3)
// occupy once shuttled.
func crossShuttle(out *ByteSlice, dstIdx z80.Register, dstHigh bool, srcIdx z80.Register, srcHigh bool, emit func(dstCode, srcCode uint8)) {
	dstPrefix, _ := z80.IndexPrefix(dstIdx)
	srcPrefix, _ := z80.IndexPrefix(srcIdx)

	out.append(0xE5) // PUSH HL
	out.append(0xD5) // PUSH DE

	out.append(dstPrefix, 0xE5) // PUSH dst index reg
	out.append(0xE1)            // POP HL
	out.append(srcPrefix, 0xE5) // PUSH src index reg
	out.append(0xD1)            // POP DE

	emit(halfCode(dstHigh), srcCodeInDE(srcHigh))

	out.append(0xE5)            // PUSH HL (holds updated dst)
	out.append(dstPrefix, 0xE1) // POP dst index reg
	out.append(0xD1)            // POP DE
	out.append(0xE1)            // POP HL
}

// srcCodeInDE returns the r-table code D (2) or E (3) a half occupies once
// shuttled into DE rather than HL.
func srcCodeInDE(high bool) uint8 {
	if high {
		return 2
	}
	return 3
}

// sameIndexShuttle emulates an operation between the two halves of the
// *same* index register (e.g. LD IXH, IXL): only one shuttle through HL
// is needed since both halves are already live together once fetched.
func sameIndexShuttle(out *ByteSlice, idx z80.Register, dstHigh, srcHigh bool, emit func(dstCode, srcCode uint8)) {
	prefix, _ := z80.IndexPrefix(idx)
	out.append(0xE5)         // PUSH HL
	out.append(prefix, 0xE5) // PUSH IX|IY
	out.append(0xE1)         // POP HL

	emit(halfCode(dstHigh), halfCode(srcHigh))

	out.append(0xE5)         // PUSH HL
	out.append(prefix, 0xE1) // POP IX|IY
	out.append(0xE1)         // POP HL
}
