// Package objwriter implements the minimal ELF32 object-writer contract
// the encoder's fixups are consumed by: an EM_Z80-tagged header and a
// stream of explicit-addend (RELA) relocation records.
package objwriter

import (
	"encoding/binary"
	"io"

	"github.com/oisee/z80encoder/pkg/fixup"
)

// EMZ80 is this toolchain's ELF e_machine code for Z80 object files.
const EMZ80 = 0xDC

// ELFOSABIStandalone is the default OS-ABI value this toolchain uses when
// the caller does not need a specific one.
const ELFOSABIStandalone = 0xFF

// EFZ80MachZ80 is OR'd into e_flags once, at stream start, to mark the
// object as targeting the base Z80 (as opposed to EZ80) instruction set.
const EFZ80MachZ80 = 0x01

const (
	elfClass32    = 1
	elfData2LSB   = 1
	elfVersion    = 1
	elfTypeRel    = 1
	elfIdentSize  = 16
	elfHeader32Sz = 52
)

// Header mirrors the fixed ELF32 header fields this writer controls.
type Header struct {
	OSABI  byte
	Flags  uint32
	Entry  uint32
	PHOff  uint32
	SHOff  uint32
	SHNum  uint16
	SHStrX uint16
}

// Writer emits an ELF32 object stream: one fixed header, then a RELA
// relocation table built from the fixups the encoder produced. It does
// not serialize sections, segments, or a symbol table; those remain the
// surrounding driver's responsibility.
type Writer struct {
	w      io.Writer
	hdr    Header
	opened bool
}

// New returns a Writer targeting w with the given OS-ABI byte and every
// other Header field at its zero value. osabi is written as given, zero
// included; ELFOSABIStandalone is the usual value to pass.
func New(w io.Writer, osabi byte) *Writer {
	return &Writer{w: w, hdr: Header{OSABI: osabi}}
}

// NewWithHeader returns a Writer targeting w with every ELF32 header
// field this writer controls set from hdr, for callers that need a
// non-zero entry point, program/section header table offset or count,
// or e_flags contribution.
func NewWithHeader(w io.Writer, hdr Header) *Writer {
	return &Writer{w: w, hdr: hdr}
}

// WriteHeader emits the ELF32 identification and file header, ORing
// EFZ80MachZ80 into e_flags. It must be called exactly once, before any
// relocation record.
func (wr *Writer) WriteHeader() error {
	ident := make([]byte, elfIdentSize)
	copy(ident[0:4], "\x7fELF")
	ident[4] = elfClass32
	ident[5] = elfData2LSB
	ident[6] = elfVersion
	ident[7] = wr.hdr.OSABI

	var hdr [elfHeader32Sz]byte
	copy(hdr[0:16], ident)
	binary.LittleEndian.PutUint16(hdr[16:18], elfTypeRel)
	binary.LittleEndian.PutUint16(hdr[18:20], EMZ80)
	binary.LittleEndian.PutUint32(hdr[20:24], elfVersion)
	binary.LittleEndian.PutUint32(hdr[24:28], wr.hdr.Entry)
	binary.LittleEndian.PutUint32(hdr[28:32], wr.hdr.PHOff)
	binary.LittleEndian.PutUint32(hdr[32:36], wr.hdr.SHOff)
	binary.LittleEndian.PutUint32(hdr[36:40], EFZ80MachZ80|wr.hdr.Flags)
	binary.LittleEndian.PutUint16(hdr[48:50], wr.hdr.SHNum)
	binary.LittleEndian.PutUint16(hdr[50:52], wr.hdr.SHStrX)

	if _, err := wr.w.Write(hdr[:]); err != nil {
		return err
	}
	wr.opened = true
	return nil
}

// Rela32 is an Elf32_Rela-shaped relocation record: the offset being
// patched, the encoded (symbol index, relocation type) pair, and the
// explicit addend.
type Rela32 struct {
	Offset uint32
	SymIdx uint32
	Type   fixup.RelocType
	Addend int32
}

// Info packs SymIdx and Type into the r_info field ELF32_R_INFO expects:
// symbol index in the high 24 bits, relocation type in the low 8.
func (r Rela32) Info() uint32 {
	return r.SymIdx<<8 | uint32(r.Type)&0xFF
}

// WriteRela emits one Elf32_Rela record.
func (wr *Writer) WriteRela(r Rela32) error {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], r.Offset)
	binary.LittleEndian.PutUint32(buf[4:8], r.Info())
	binary.LittleEndian.PutUint32(buf[8:12], uint32(r.Addend))
	_, err := wr.w.Write(buf[:])
	return err
}

// RelaForFixup builds the Rela32 record for a fixup record, consulting
// the relocation-type mapper for the code and pcRel for PC-relative
// assertion. symIdx and addend are supplied by the caller's symbol
// resolution, which is outside this package's scope.
func RelaForFixup(rec fixup.Record, symIdx uint32, addend int32) Rela32 {
	pcRel := rec.Kind == fixup.Kind8PCRel
	return Rela32{
		Offset: rec.Offset,
		SymIdx: symIdx,
		Type:   fixup.RelocTypeFor(rec.Kind, pcRel, rec.Value),
		Addend: addend,
	}
}
