package z80

import "testing"

// TestRTableCode pins the r-table codes the ISA assigns, including the
// index-half aliasing onto the H/L slots.
func TestRTableCode(t *testing.T) {
	want := map[Register]uint8{
		RegB: 0, RegC: 1, RegD: 2, RegE: 3,
		RegH: 4, RegL: 5, RegA: 7,
		RegIXH: 4, RegIYH: 4, RegIXL: 5, RegIYL: 5,
	}
	for r, code := range want {
		got, ok := RTableCode(r)
		if !ok {
			t.Errorf("RTableCode(%s): ok = false, want true", r)
			continue
		}
		if got != code {
			t.Errorf("RTableCode(%s) = %d, want %d", r, got, code)
		}
	}

	for _, r := range []Register{RegHL, RegBC, RegIX, RegSP, RegNone} {
		if _, ok := RTableCode(r); ok {
			t.Errorf("RTableCode(%s): ok = true, want false", r)
		}
	}
}

func TestIsIndexHalf(t *testing.T) {
	for _, r := range []Register{RegIXH, RegIXL, RegIYH, RegIYL} {
		if !IsIndexHalf(r) {
			t.Errorf("IsIndexHalf(%s) = false, want true", r)
		}
	}
	for _, r := range []Register{RegH, RegL, RegIX, RegIY, RegA} {
		if IsIndexHalf(r) {
			t.Errorf("IsIndexHalf(%s) = true, want false", r)
		}
	}
}

func TestIndexPrefix(t *testing.T) {
	cases := map[Register]uint8{
		RegIX: 0xDD, RegIXH: 0xDD, RegIXL: 0xDD,
		RegIY: 0xFD, RegIYH: 0xFD, RegIYL: 0xFD,
	}
	for r, want := range cases {
		got, ok := IndexPrefix(r)
		if !ok || got != want {
			t.Errorf("IndexPrefix(%s) = (0x%02X, %v), want (0x%02X, true)", r, got, ok, want)
		}
	}
	if _, ok := IndexPrefix(RegHL); ok {
		t.Errorf("IndexPrefix(HL): ok = true, want false")
	}
}

func TestIsHighHalf(t *testing.T) {
	for _, r := range []Register{RegH, RegIXH, RegIYH} {
		if !IsHighHalf(r) {
			t.Errorf("IsHighHalf(%s) = false, want true", r)
		}
	}
	for _, r := range []Register{RegL, RegIXL, RegIYL, RegA} {
		if IsHighHalf(r) {
			t.Errorf("IsHighHalf(%s) = true, want false", r)
		}
	}
}
