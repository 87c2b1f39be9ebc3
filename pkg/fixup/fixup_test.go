package fixup

import "testing"

// TestCatalogCompleteness verifies every Kind has a named, non-zero-width
// catalog entry; TestCatalogOrder checks the numeric order.
func TestCatalogCompleteness(t *testing.T) {
	for k := Kind(0); k < numKinds; k++ {
		info := KindInfo(k)
		if info.Name == "" {
			t.Errorf("Kind %d has no name", k)
		}
		if info.BitWidth == 0 {
			t.Errorf("Kind %d (%s) has zero bit width", k, info.Name)
		}
	}
}

// TestCatalogOrder pins the ABI-significant numeric values of the named
// kinds.
func TestCatalogOrder(t *testing.T) {
	want := map[Kind]string{
		0: "fixup_8", 1: "fixup_8_dis", 2: "fixup_8_pcrel",
		3: "fixup_16", 4: "fixup_24", 5: "fixup_32",
		6: "fixup_byte0", 7: "fixup_byte1",
		8: "fixup_byte2", 9: "fixup_byte3",
		10: "fixup_word0", 11: "fixup_word1",
		12: "fixup_16_be",
	}
	for k, name := range want {
		if got := KindInfo(k).Name; got != name {
			t.Errorf("Kind %d: got name %q, want %q", k, got, name)
		}
	}
	if numKinds != 13 {
		t.Errorf("numKinds = %d, want 13", numKinds)
	}
}

// TestForceRelocationTotality is invariant 4: the predicate is true iff
// the kind is fixup_8_dis, fixup_8_pcrel, or fixup_16.
func TestForceRelocationTotality(t *testing.T) {
	forced := map[Kind]bool{Kind8Dis: true, Kind8PCRel: true, Kind16: true}
	for k := Kind(0); k < numKinds; k++ {
		if got, want := ForceRelocation(k), forced[k]; got != want {
			t.Errorf("ForceRelocation(%s) = %v, want %v", KindInfo(k).Name, got, want)
		}
	}
}

// TestRelocationRoundtrip is invariant 5: every fixup kind the encoder can
// emit maps to a defined relocation code.
func TestRelocationRoundtrip(t *testing.T) {
	for k := Kind(0); k < numKinds; k++ {
		got := RelocTypeFor(k, KindInfo(k).IsPCRelative, nil)
		if got == 0 {
			t.Errorf("kind %s maps to the zero relocation code", KindInfo(k).Name)
		}
	}
}

// TestGenericKindInfo covers the architecture-independent FK_Data_1/2/4
// kinds and their relocation mapping.
func TestGenericKindInfo(t *testing.T) {
	cases := map[GenericKind]struct {
		width uint32
		reloc RelocType
	}{
		FKData1: {8, RZ80_8},
		FKData2: {16, RZ80_16},
		FKData4: {32, RZ80_32},
	}
	for k, want := range cases {
		if got := GenericKindInfo(k).BitWidth; got != want.width {
			t.Errorf("GenericKindInfo(%d).BitWidth = %d, want %d", k, got, want.width)
		}
		if got := RelocTypeForGeneric(k); got != want.reloc {
			t.Errorf("RelocTypeForGeneric(%d) = %v, want %v", k, got, want.reloc)
		}
	}
}

// TestSliceSinkAppend verifies the straightforward Sink implementation
// records in order.
func TestSliceSinkAppend(t *testing.T) {
	var s SliceSink
	s.Append(Record{Offset: 1, Kind: Kind16})
	s.Append(Record{Offset: 5, Kind: Kind8})
	if len(s.Records) != 2 || s.Records[0].Offset != 1 || s.Records[1].Offset != 5 {
		t.Errorf("SliceSink.Records = %+v", s.Records)
	}
}
