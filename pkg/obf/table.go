package obf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	bin "github.com/saylorsolutions/binmap"
)

const (
	tableMagic        uint16 = 0x0bf5
	tableMagicInverse uint16 = 0xf50b

	widthBytes uint8 = 1
	widthWords uint8 = 2
)

var (
	// ErrInvalidTable indicates that table data is malformed or has the wrong magic bytes.
	ErrInvalidTable = errors.New("invalid string table")
	// ErrNotFound indicates that no table entry exists with the requested name.
	ErrNotFound = errors.New("no table entry with that name")
)

// Table is a named collection of obfuscated constants that can be persisted as a single binary artifact.
// Names are stored in the clear inside the table; tooling that wants to hide them screens the whole artifact with a Writer.
// Each entry keeps the usual key-plus-payload layout, so decoding still goes through the engine one constant at a time.
type Table struct {
	strings map[string]ObfString
	wides   map[string]WideString
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		strings: make(map[string]ObfString),
		wides:   make(map[string]WideString),
	}
}

// AddString stores a byte-string constant under name, replacing any previous entry of either width.
func (t *Table) AddString(name string, s ObfString) {
	delete(t.wides, name)
	t.strings[name] = s
}

// AddWide stores a wide-string constant under name, replacing any previous entry of either width.
func (t *Table) AddWide(name string, w WideString) {
	delete(t.strings, name)
	t.wides[name] = w
}

// String looks up a byte-string constant by name.
func (t *Table) String(name string) (ObfString, error) {
	s, ok := t.strings[name]
	if !ok {
		return ObfString{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s, nil
}

// Wide looks up a wide-string constant by name.
func (t *Table) Wide(name string) (WideString, error) {
	w, ok := t.wides[name]
	if !ok {
		return WideString{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return w, nil
}

// Len returns the number of entries of both widths.
func (t *Table) Len() int {
	return len(t.strings) + len(t.wides)
}

// names returns all entry names sorted, so marshaled output is deterministic.
func (t *Table) names() []string {
	names := make([]string, 0, t.Len())
	for name := range t.strings {
		names = append(names, name)
	}
	for name := range t.wides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type entryHeader struct {
	width   uint8
	key     uint32
	nameLen uint16
	count   uint32
}

func (h *entryHeader) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&h.width),
		bin.Int(&h.key),
		bin.Int(&h.nameLen),
		bin.Int(&h.count),
	)
}

// MarshalBinary encodes the table as magic bytes, an entry count, and one header+name+payload record per entry.
func (t *Table) MarshalBinary() ([]byte, error) {
	if t.Len() > int(^uint16(0)) {
		return nil, fmt.Errorf("%w: too many entries", ErrInvalidTable)
	}
	var (
		buf    bytes.Buffer
		endian = binary.BigEndian
	)
	if err := binary.Write(&buf, endian, tableMagic); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, endian, uint16(t.Len())); err != nil {
		return nil, err
	}
	for _, name := range t.names() {
		header := entryHeader{nameLen: uint16(len(name))}
		var payload any
		if s, ok := t.strings[name]; ok {
			header.width = widthBytes
			header.key = s.key
			header.count = uint32(len(s.data))
			payload = s.data
		} else {
			w := t.wides[name]
			header.width = widthWords
			header.key = w.key
			header.count = uint32(len(w.data))
			payload = w.data
		}
		if err := header.mapper().Write(&buf, endian); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, endian, []byte(name)); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, endian, payload); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a table produced by MarshalBinary, probing the magic bytes for endianness.
func (t *Table) UnmarshalBinary(data []byte) error {
	var (
		magic  uint16
		num    uint16
		endian binary.ByteOrder = binary.BigEndian
	)
	r := bytes.NewReader(data)
	if err := binary.Read(r, endian, &magic); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	switch magic {
	case tableMagic:
	case tableMagicInverse:
		endian = binary.LittleEndian
	default:
		return fmt.Errorf("%w: bad magic bytes", ErrInvalidTable)
	}
	if err := binary.Read(r, endian, &num); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	t.strings = make(map[string]ObfString, num)
	t.wides = make(map[string]WideString)
	for i := 0; i < int(num); i++ {
		var header entryHeader
		if err := header.mapper().Read(r, endian); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTable, err)
		}
		name := make([]byte, header.nameLen)
		if err := binary.Read(r, endian, &name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTable, err)
		}
		switch header.width {
		case widthBytes:
			payload := make([]byte, header.count)
			if err := binary.Read(r, endian, &payload); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidTable, err)
			}
			t.strings[string(name)] = NewObfString(header.key, payload)
		case widthWords:
			payload := make([]uint16, header.count)
			if err := binary.Read(r, endian, &payload); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidTable, err)
			}
			t.wides[string(name)] = NewWideString(header.key, payload)
		default:
			return fmt.Errorf("%w: unknown entry width %d", ErrInvalidTable, header.width)
		}
	}
	return nil
}
