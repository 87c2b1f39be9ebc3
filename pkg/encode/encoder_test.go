package encode

import (
	"bytes"
	"testing"

	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

type testSymbol struct{ name string }

func (testSymbol) Kind() z80.ExprKind { return z80.ExprSymbolRef }

func encodeOne(t *testing.T, cfg Config, mi z80.Instruction) ([]byte, []fixup.Record) {
	t.Helper()
	out := &ByteSlice{}
	var sink fixup.SliceSink
	if err := Encode(cfg, mi, out, &sink); err != nil {
		t.Fatalf("Encode(%v) failed: %v", mi, err)
	}
	return out.Bytes, sink.Records
}

// TestConcreteScenarios reproduces six of the seven opcode/operand/byte
// scenarios byte-for-byte (the JQ scenario is TestJQLongForm), plus three
// LD cases pairing H/L with an index half.
func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name string
		mi   z80.Instruction
		want []byte
	}{
		{"ADD A,B", z80.Instruction{Op: z80.ADD8ar, Operands: []z80.Operand{z80.Reg(z80.RegB)}}, []byte{0x80}},
		{"ADD A,IXH", z80.Instruction{Op: z80.ADD8ar, Operands: []z80.Operand{z80.Reg(z80.RegIXH)}}, []byte{0xE5, 0xDD, 0xE5, 0xE1, 0x84, 0xE1}},
		{"LD BC,0x1234", z80.Instruction{Op: z80.LD16ri, Operands: []z80.Operand{z80.Reg(z80.RegBC), z80.Imm(0x1234)}}, []byte{0x01, 0x34, 0x12}},
		{"LD (IX+5),0x42", z80.Instruction{Op: z80.LD8oi, Operands: []z80.Operand{z80.Reg(z80.RegIX), z80.Imm(5), z80.Imm(0x42)}}, []byte{0xDD, 0x36, 0x05, 0x42}},
		{"BIT 3,(IY+7)", z80.Instruction{Op: z80.BIT8bo, Operands: []z80.Operand{z80.Imm(3), z80.Reg(z80.RegIY), z80.Imm(7)}}, []byte{0xFD, 0xCB, 0x07, 0x5E}},
		{"CALL 0xABCD", z80.Instruction{Op: z80.CALL16, Operands: []z80.Operand{z80.Imm(0xABCD)}}, []byte{0xCD, 0xCD, 0xAB}},
		{"LD H,IXH", z80.Instruction{Op: z80.LD8gg, Operands: []z80.Operand{z80.Reg(z80.RegH), z80.Reg(z80.RegIXH)}}, []byte{0xD5, 0xDD, 0xE5, 0xD1, 0x62, 0xD1}},
		{"LD IXH,H", z80.Instruction{Op: z80.LD8gg, Operands: []z80.Operand{z80.Reg(z80.RegIXH), z80.Reg(z80.RegH)}}, []byte{0xD5, 0xDD, 0xE5, 0xD1, 0x54, 0xD5, 0xDD, 0xE1, 0xD1}},
		{"LD L,IYL", z80.Instruction{Op: z80.LD8gg, Operands: []z80.Operand{z80.Reg(z80.RegL), z80.Reg(z80.RegIYL)}}, []byte{0xD5, 0xFD, 0xE5, 0xD1, 0x6B, 0xD1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := encodeOne(t, Config{}, tc.mi)
			if !bytes.Equal(got, tc.want) {
				t.Errorf("got % 02X, want % 02X", got, tc.want)
			}
		})
	}
}

// TestJQLongForm covers scenario 6: JQ lowers to a long jump with one
// fixup_16 bound to the symbol at offset 1.
func TestJQLongForm(t *testing.T) {
	sym := testSymbol{name: "sym"}
	mi := z80.Instruction{Op: z80.JQ, Operands: []z80.Operand{z80.Expr(sym)}}

	got, recs := encodeOne(t, Config{}, mi)
	if !bytes.Equal(got, []byte{0xC3, 0x00, 0x00}) {
		t.Fatalf("bytes: got % 02X, want C3 00 00", got)
	}
	if len(recs) != 1 {
		t.Fatalf("fixups: got %d, want 1", len(recs))
	}
	if recs[0].Kind != fixup.Kind16 || recs[0].Offset != 1 {
		t.Errorf("fixup: got kind=%d offset=%d, want kind=%d offset=1", recs[0].Kind, recs[0].Offset, fixup.Kind16)
	}
	if recs[0].Value != sym {
		t.Errorf("fixup value not bound to the symbol operand")
	}
}

// TestJQShortForm exercises the short-jumps configuration switch.
func TestJQShortForm(t *testing.T) {
	sym := testSymbol{name: "sym"}
	mi := z80.Instruction{Op: z80.JQ, Operands: []z80.Operand{z80.Expr(sym)}}

	got, recs := encodeOne(t, Config{ShortJumps: true}, mi)
	if !bytes.Equal(got, []byte{0x18, 0x00}) {
		t.Fatalf("bytes: got % 02X, want 18 00", got)
	}
	if len(recs) != 1 || recs[0].Kind != fixup.Kind8PCRel || recs[0].Offset != 1 {
		t.Fatalf("fixup: got %+v", recs)
	}
}

// TestCALL16Symbolic covers CALL <label>: a real (non-pseudo) instruction
// binding an Expr operand to a fixup_16, not just JQ's pseudo-lowering.
func TestCALL16Symbolic(t *testing.T) {
	sym := testSymbol{name: "subroutine"}
	mi := z80.Instruction{Op: z80.CALL16, Operands: []z80.Operand{z80.Expr(sym)}}

	got, recs := encodeOne(t, Config{}, mi)
	if !bytes.Equal(got, []byte{0xCD, 0x00, 0x00}) {
		t.Fatalf("bytes: got % 02X, want CD 00 00", got)
	}
	if len(recs) != 1 || recs[0].Kind != fixup.Kind16 || recs[0].Offset != 1 {
		t.Fatalf("fixup: got %+v", recs)
	}
	if recs[0].Value != sym {
		t.Errorf("fixup value not bound to the symbol operand")
	}
}

// TestLD16riSymbolic covers LD HL, <label>.
func TestLD16riSymbolic(t *testing.T) {
	sym := testSymbol{name: "table"}
	mi := z80.Instruction{Op: z80.LD16ri, Operands: []z80.Operand{z80.Reg(z80.RegHL), z80.Expr(sym)}}

	got, recs := encodeOne(t, Config{}, mi)
	if !bytes.Equal(got, []byte{0x21, 0x00, 0x00}) {
		t.Fatalf("bytes: got % 02X, want 21 00 00", got)
	}
	if len(recs) != 1 || recs[0].Kind != fixup.Kind16 || recs[0].Offset != 1 {
		t.Fatalf("fixup: got %+v", recs)
	}
}

// TestLEA16roIndexDest covers LEA IX, (IY+d): an index register as the
// destination pair, restored via a prefixed POP rather than the plain
// qqCode path.
func TestLEA16roIndexDest(t *testing.T) {
	mi := z80.Instruction{Op: z80.LEA16ro, Operands: []z80.Operand{z80.Reg(z80.RegIX), z80.Reg(z80.RegIY), z80.Imm(5)}}
	want := []byte{0xF5, 0xC5, 0x06, 0x00, 0x0E, 0x05, 0xFD, 0xE5, 0xFD, 0x09, 0xFD, 0xE5, 0xDD, 0xE1, 0xFD, 0xE1, 0xC1, 0xF1}
	got, _ := encodeOne(t, Config{}, mi)
	if !bytes.Equal(got, want) {
		t.Errorf("got % 02X, want % 02X", got, want)
	}
}

// TestLEA16roSameIndex covers LEA IX, (IX+d): the destination is the same
// index register being read, so the preserve/restore around the ADD is
// skipped.
func TestLEA16roSameIndex(t *testing.T) {
	mi := z80.Instruction{Op: z80.LEA16ro, Operands: []z80.Operand{z80.Reg(z80.RegIX), z80.Reg(z80.RegIX), z80.Imm(5)}}
	want := []byte{0xF5, 0xC5, 0x06, 0x00, 0x0E, 0x05, 0xDD, 0x09, 0xC1, 0xF1}
	got, _ := encodeOne(t, Config{}, mi)
	if !bytes.Equal(got, want) {
		t.Errorf("got % 02X, want % 02X", got, want)
	}
}

// TestDeterminism is invariant 1: encoding the same instruction twice
// yields identical bytes and the same number of fixups.
func TestDeterminism(t *testing.T) {
	mi := z80.Instruction{Op: z80.LD8gg, Operands: []z80.Operand{z80.Reg(z80.RegIXH), z80.Reg(z80.RegIYL)}}
	got1, recs1 := encodeOne(t, Config{}, mi)
	got2, recs2 := encodeOne(t, Config{}, mi)
	if !bytes.Equal(got1, got2) {
		t.Errorf("non-deterministic bytes: % 02X vs % 02X", got1, got2)
	}
	if len(recs1) != len(recs2) {
		t.Errorf("non-deterministic fixup count: %d vs %d", len(recs1), len(recs2))
	}
}

// TestLengthBound is invariant 3: no encoding exceeds 32 bytes, checked
// against the worst-case forms, the cross-index-half shuttles among them.
func TestLengthBound(t *testing.T) {
	worstCases := []z80.Instruction{
		{Op: z80.LD8gg, Operands: []z80.Operand{z80.Reg(z80.RegIXH), z80.Reg(z80.RegIYL)}},
		{Op: z80.ADD8ar, Operands: []z80.Operand{z80.Reg(z80.RegIYL)}},
		{Op: z80.BIT8bo, Operands: []z80.Operand{z80.Imm(7), z80.Reg(z80.RegIX), z80.Imm(-128)}},
		{Op: z80.LEA16ro, Operands: []z80.Operand{z80.Reg(z80.RegBC), z80.Reg(z80.RegIY), z80.Imm(10)}},
	}
	for _, mi := range worstCases {
		got, _ := encodeOne(t, Config{}, mi)
		if len(got) > 32 {
			t.Errorf("opcode %d (%s) encoded to %d bytes, want <= 32", mi.Op, mnemonic(mi.Op), len(got))
		}
	}
}

// TestForceRelocationTotality is invariant 4.
func TestForceRelocationTotality(t *testing.T) {
	forced := map[fixup.Kind]bool{fixup.Kind8Dis: true, fixup.Kind8PCRel: true, fixup.Kind16: true}
	for k := fixup.Kind(0); k < 13; k++ {
		if fixup.ForceRelocation(k) != forced[k] {
			t.Errorf("ForceRelocation(%d) = %v, want %v", k, fixup.ForceRelocation(k), forced[k])
		}
	}
}

// TestEndianness is invariant 6: 16-bit immediates are written low byte
// first.
func TestEndianness(t *testing.T) {
	mi := z80.Instruction{Op: z80.LD16ri, Operands: []z80.Operand{z80.Reg(z80.RegDE), z80.Imm(0xBEEF)}}
	got, _ := encodeOne(t, Config{}, mi)
	if got[1] != 0xEF || got[2] != 0xBE {
		t.Errorf("got % 02X, want low byte (EF) before high byte (BE)", got)
	}
}
