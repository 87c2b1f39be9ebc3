package objwriter

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/oisee/z80encoder/pkg/fixup"
	"github.com/oisee/z80encoder/pkg/z80"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	wr := New(&buf, ELFOSABIStandalone)
	if err := wr.WriteHeader(); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	got := buf.Bytes()
	if len(got) != elfHeader32Sz {
		t.Fatalf("header length = %d, want %d", len(got), elfHeader32Sz)
	}
	if got[4] != elfClass32 || got[5] != elfData2LSB || got[7] != ELFOSABIStandalone {
		t.Errorf("ident bytes = % 02X", got[:8])
	}
	if mach := binary.LittleEndian.Uint16(got[18:20]); mach != EMZ80 {
		t.Errorf("e_machine = 0x%X, want 0x%X", mach, EMZ80)
	}
	if flags := binary.LittleEndian.Uint32(got[36:40]); flags&EFZ80MachZ80 == 0 {
		t.Errorf("e_flags = 0x%X, missing EFZ80MachZ80", flags)
	}
}

func TestWriteHeaderWithFields(t *testing.T) {
	var buf bytes.Buffer
	hdr := Header{OSABI: ELFOSABIStandalone, Flags: 0x02, Entry: 0x100, PHOff: 0x34, SHOff: 0x5678, SHNum: 3, SHStrX: 1}
	wr := NewWithHeader(&buf, hdr)
	if err := wr.WriteHeader(); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	got := buf.Bytes()
	if entry := binary.LittleEndian.Uint32(got[24:28]); entry != hdr.Entry {
		t.Errorf("e_entry = 0x%X, want 0x%X", entry, hdr.Entry)
	}
	if phoff := binary.LittleEndian.Uint32(got[28:32]); phoff != hdr.PHOff {
		t.Errorf("e_phoff = 0x%X, want 0x%X", phoff, hdr.PHOff)
	}
	if shoff := binary.LittleEndian.Uint32(got[32:36]); shoff != hdr.SHOff {
		t.Errorf("e_shoff = 0x%X, want 0x%X", shoff, hdr.SHOff)
	}
	if shnum := binary.LittleEndian.Uint16(got[48:50]); shnum != hdr.SHNum {
		t.Errorf("e_shnum = %d, want %d", shnum, hdr.SHNum)
	}
	if shstrx := binary.LittleEndian.Uint16(got[50:52]); shstrx != hdr.SHStrX {
		t.Errorf("e_shstrndx = %d, want %d", shstrx, hdr.SHStrX)
	}
	if flags := binary.LittleEndian.Uint32(got[36:40]); flags != EFZ80MachZ80|hdr.Flags {
		t.Errorf("e_flags = 0x%X, want 0x%X", flags, EFZ80MachZ80|hdr.Flags)
	}
}

func TestWriteRela(t *testing.T) {
	var buf bytes.Buffer
	wr := New(&buf, ELFOSABIStandalone)
	r := Rela32{Offset: 4, SymIdx: 2, Type: fixup.RZ80_16, Addend: -1}
	if err := wr.WriteRela(r); err != nil {
		t.Fatalf("WriteRela: %v", err)
	}

	got := buf.Bytes()
	if len(got) != 12 {
		t.Fatalf("rela length = %d, want 12", len(got))
	}
	if off := binary.LittleEndian.Uint32(got[0:4]); off != 4 {
		t.Errorf("r_offset = %d, want 4", off)
	}
	if info := binary.LittleEndian.Uint32(got[4:8]); info != r.Info() {
		t.Errorf("r_info = %d, want %d", info, r.Info())
	}
	if add := int32(binary.LittleEndian.Uint32(got[8:12])); add != -1 {
		t.Errorf("r_addend = %d, want -1", add)
	}
}

func TestRelaForFixup(t *testing.T) {
	rec := fixup.Record{Offset: 1, Kind: fixup.Kind16, Loc: z80.SourceLoc{}}
	r := RelaForFixup(rec, 3, 0)
	if r.Offset != 1 || r.SymIdx != 3 || r.Type != fixup.RZ80_16 {
		t.Errorf("RelaForFixup = %+v", r)
	}
}
