package elfutil

import (
	"bytes"
	"encoding/binary"
)

// ELF identification indices and constants
const (
	EI_CLASS   = 4
	EI_DATA    = 5
	EI_VERSION = 6

	ELFCLASSNONE = 0
	ELFCLASS32   = 1
	ELFCLASS64   = 2

	ELFDATANONE = 0
	ELFDATA2LSB = 1
	ELFDATA2MSB = 2

	identSize  = 16
	HeaderSize = 64 // size of the ELF64 header on disk
)

// HeaderMagic is the signature every ELF file starts with.
var HeaderMagic = []byte{0x7f, 'E', 'L', 'F'}

// Header represents the fixed-size leading header of an ELF64 binary.
// A Header is produced by Decode and never modified afterwards.
type Header struct {
	Class         byte
	Data          byte
	HeaderVersion byte
	Type          uint16
	Machine       uint16
	Version       uint32
	Entry         uint64
	Phoff         uint64
	Shoff         uint64
	Flags         uint32
	Ehsize        uint16
	Phentsize     uint16
	Phnum         uint16
	Shentsize     uint16
	Shnum         uint16
	Shstrndx      uint16
}

// ByteOrder returns the byte order declared by the header's EI_DATA byte.
// Multi-byte fields of the file are stored in this order. An unknown
// data encoding falls back to little-endian so the remaining fields stay
// readable.
func (h *Header) ByteOrder() binary.ByteOrder {
	if h.Data == ELFDATA2MSB {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

type field struct {
	name string
	v    interface{}
}

// fields lists the header fields after e_ident in their on-disk order.
// Offsets are implied by accumulation, the way the format defines them:
// each field starts where the previous one ends.
func (h *Header) fields() []field {
	return []field{
		{"e_type", &h.Type},
		{"e_machine", &h.Machine},
		{"e_version", &h.Version},
		{"e_entry", &h.Entry},
		{"e_phoff", &h.Phoff},
		{"e_shoff", &h.Shoff},
		{"e_flags", &h.Flags},
		{"e_ehsize", &h.Ehsize},
		{"e_phentsize", &h.Phentsize},
		{"e_phnum", &h.Phnum},
		{"e_shentsize", &h.Shentsize},
		{"e_shnum", &h.Shnum},
		{"e_shstrndx", &h.Shstrndx},
	}
}

// IsELF checks whether data starts with the ELF magic number.
func IsELF(data []byte) bool {
	return len(data) >= len(HeaderMagic) && bytes.Equal(data[:len(HeaderMagic)], HeaderMagic)
}

// Decode parses the ELF header from the given byte slice. The slice is
// only borrowed for the duration of the call. The magic number is
// verified before any field is decoded; multi-byte fields are read in
// the byte order the EI_DATA byte declares.
func Decode(data []byte) (*Header, error) {
	if len(data) < len(HeaderMagic) {
		return nil, &TruncatedError{Field: "e_ident", Need: identSize, Have: len(data)}
	}
	if !IsELF(data) {
		return nil, ErrNotELF
	}
	if len(data) < identSize {
		return nil, &TruncatedError{Field: "e_ident", Need: identSize, Have: len(data)}
	}

	h := &Header{
		Class:         data[EI_CLASS],
		Data:          data[EI_DATA],
		HeaderVersion: data[EI_VERSION],
	}

	order := h.ByteOrder()
	reader := bytes.NewReader(data[identSize:])
	off := identSize
	for _, f := range h.fields() {
		width := binary.Size(f.v)
		if err := binary.Read(reader, order, f.v); err != nil {
			return nil, &TruncatedError{Field: f.name, Need: off + width, Have: len(data)}
		}
		off += width
	}
	return h, nil
}

// Encode writes the header back into a 64-byte image, using the byte
// order its EI_DATA byte declares. Decode inverts Encode.
func Encode(h *Header) []byte {
	var ident [identSize]byte
	copy(ident[:], HeaderMagic)
	ident[EI_CLASS] = h.Class
	ident[EI_DATA] = h.Data
	ident[EI_VERSION] = h.HeaderVersion

	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize))
	buf.Write(ident[:])
	order := h.ByteOrder()
	for _, f := range h.fields() {
		// writing through the same field table keeps Encode and Decode
		// layout-identical
		binary.Write(buf, order, f.v)
	}
	return buf.Bytes()
}
