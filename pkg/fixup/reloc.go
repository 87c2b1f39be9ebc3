package fixup

import "fmt"

// RelocType is an ELF relocation type code, target-specific numbering. The
// concrete values below follow this toolchain's R_Z80_* convention; the
// mapper's job is the arrangement, not any particular choice of numbering.
type RelocType uint32

const (
	RZ80_8 RelocType = iota + 1
	RZ80_8_DIS
	RZ80_8_PCREL
	RZ80_16
	RZ80_24
	RZ80_32
	RZ80_BYTE0
	RZ80_BYTE1
	RZ80_BYTE2
	RZ80_BYTE3
	RZ80_WORD0
	RZ80_WORD1
	RZ80_16_BE
)

// namedSymbol is implemented by ExprRef values that can identify
// themselves for diagnostics; RelocTypeFor surfaces the name on failure when
// the value passed in implements it, and falls back to a generic message
// otherwise.
type namedSymbol interface {
	SymbolName() string
}

// RelocTypeFor maps a fixup kind plus its PC-relative flag onto an ELF
// relocation type code. It is a pure total function over the kinds this
// package defines; any other kind is a programming error, not a data
// error, and is reported via panic carrying the offending symbol name
// when one is available.
func RelocTypeFor(k Kind, isPCRel bool, sym interface{}) RelocType {
	if k == Kind8PCRel && !isPCRel {
		panic("fixup_8_pcrel fixup recorded as non-PC-relative")
	}
	if isPCRel && k != Kind8PCRel {
		panic(fmt.Sprintf("PC-relative fixup recorded with non-fixup_8_pcrel kind %d", k))
	}
	switch k {
	case Kind8:
		return RZ80_8
	case Kind8Dis:
		return RZ80_8_DIS
	case Kind8PCRel:
		return RZ80_8_PCREL
	case Kind16:
		return RZ80_16
	case Kind24:
		return RZ80_24
	case Kind32:
		return RZ80_32
	case KindByte0:
		return RZ80_BYTE0
	case KindByte1:
		return RZ80_BYTE1
	case KindByte2:
		return RZ80_BYTE2
	case KindByte3:
		return RZ80_BYTE3
	case KindWord0:
		return RZ80_WORD0
	case KindWord1:
		return RZ80_WORD1
	case Kind16BE:
		return RZ80_16_BE
	default:
		panic(invalidKindMessage(k, sym))
	}
}

// RelocTypeForGeneric maps the architecture-independent FK_Data_1/2/4
// kinds onto the same relocation codes as fixup_8, fixup_16, fixup_32
// respectively.
func RelocTypeForGeneric(k GenericKind) RelocType {
	switch k {
	case FKData1:
		return RZ80_8
	case FKData2:
		return RZ80_16
	case FKData4:
		return RZ80_32
	default:
		panic(fmt.Sprintf("invalid generic fixup kind %d", k))
	}
}

func invalidKindMessage(k Kind, sym interface{}) string {
	name := "(not even a symref!)"
	if ns, ok := sym.(namedSymbol); ok {
		name = ns.SymbolName()
	}
	return fmt.Sprintf("invalid fixup kind %d, symbol %s", k, name)
}
