// Package fixup defines the fixup kind catalog, the force-relocation
// policy, and the relocation-type mapper that an object writer consumes.
package fixup

import "github.com/oisee/z80encoder/pkg/z80"

// Kind identifies one of the 13 target-specific fixup kinds. Order is part
// of the ABI: the numeric value of a kind equals its wire encoding.
type Kind uint8

const (
	Kind8 Kind = iota
	Kind8Dis
	Kind8PCRel
	Kind16
	Kind24
	Kind32
	KindByte0
	KindByte1
	KindByte2
	KindByte3
	KindWord0
	KindWord1
	Kind16BE

	numKinds
)

// Generic architecture-independent data fixups. These have no position in
// the target catalog: their metadata comes from genericCatalog, and their
// relocation codes are coalesced onto those of fixup_8/16/32.
type GenericKind uint8

const (
	FKData1 GenericKind = iota
	FKData2
	FKData4
)

// Info is the static metadata the AsmBackend-equivalent layer exposes for
// a fixup kind: its name, the bit offset of its payload within the
// emitted field, its bit width, and whether it is PC-relative.
type Info struct {
	Name        string
	BitOffset   uint32
	BitWidth    uint32
	IsPCRelative bool
}

// catalog mirrors the target fixup-kind-info table. Order must match Kind's
// declaration order; TestCatalogOrder in fixup_test.go checks each
// kind's number, name and the table size.
var catalog = [numKinds]Info{
	Kind8:      {"fixup_8", 0, 8, false},
	Kind8Dis:   {"fixup_8_dis", 0, 8, false},
	Kind8PCRel: {"fixup_8_pcrel", 0, 8, true},
	Kind16:     {"fixup_16", 0, 16, false},
	Kind24:     {"fixup_24", 0, 24, false},
	Kind32:     {"fixup_32", 0, 32, false},
	KindByte0:  {"fixup_byte0", 0, 32, false},
	KindByte1:  {"fixup_byte1", 0, 32, false},
	KindByte2:  {"fixup_byte2", 0, 32, false},
	KindByte3:  {"fixup_byte3", 0, 32, false},
	KindWord0:  {"fixup_word0", 0, 32, false},
	KindWord1:  {"fixup_word1", 0, 32, false},
	Kind16BE:   {"fixup_16_be", 0, 16, false},
}

// genericCatalog handles the architecture-independent FK_Data_1/2/4 kinds
// that fall outside the target-specific range. GenericKindInfo answers
// from it; KindInfo covers only the target-specific kinds.
var genericCatalog = map[GenericKind]Info{
	FKData1: {"data_1", 0, 8, false},
	FKData2: {"data_2", 0, 16, false},
	FKData4: {"data_4", 0, 32, false},
}

// KindInfo returns the static metadata for k.
func KindInfo(k Kind) Info {
	return catalog[k]
}

// GenericKindInfo delegates to the generic, architecture-independent
// catalog for FK_Data_1/2/4.
func GenericKindInfo(k GenericKind) Info {
	return genericCatalog[k]
}

// Record is a relocation request produced by the encoder: a byte offset
// within the current instruction, the kind of fixup, the symbolic value
// it resolves, and a diagnostic source location.
type Record struct {
	Offset uint32
	Value  z80.ExprRef
	Kind   Kind
	Loc    z80.SourceLoc
}

// Sink is an append-only destination for fixup records, supplied by the
// caller of the encoder.
type Sink interface {
	Append(Record)
}

// SliceSink is a Sink backed by a growable slice, the usual choice for a
// single encode call under test or in a simple driver.
type SliceSink struct {
	Records []Record
}

func (s *SliceSink) Append(r Record) {
	s.Records = append(s.Records, r)
}

// ForceRelocation reports whether a fixup of kind k must always be
// recorded as a relocation, even when its target expression could in
// principle be resolved at assembly time.
func ForceRelocation(k Kind) bool {
	switch k {
	case Kind8Dis, Kind8PCRel, Kind16:
		return true
	default:
		return false
	}
}
