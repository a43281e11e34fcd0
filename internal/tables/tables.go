/*
Package tables provides access to the packed binary tables decancer is
driven by.

There are two tables, both generated offline (see sub-package generator)
and embedded into the binary:

   codepoints.bin   confusable translations, case-sensitive overrides,
                    similarity groups and a string pool
   bidi.bin         paired brackets and bidi classes for UAX#9

The layout of both tables is a wire format shared with other
implementations and must not be changed without regenerating them.
Tables are loaded once at package initialization and never mutated,
therefore they are safe for any number of concurrent readers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tables

import (
	_ "embed" // for table files
	"encoding/binary"

	"github.com/pkg/errors"
)

//go:generate go run ./internal/generator -o .

//go:embed codepoints.bin
var codepointsBin []byte

//go:embed bidi.bin
var bidiBin []byte

// Codepoints is the confusables table.
var Codepoints = Binary{bytes: codepointsBin}

// Bidi is the bidi class and bracket table.
var Bidi = Binary{bytes: bidiBin}

// Binary is a read-only view onto an embedded table. All multi-byte values
// are little-endian.
//
// Offsets outside of the table indicate a corrupt or mismatched table file.
// This is not recoverable, so Binary will panic in such cases.
type Binary struct {
	bytes []byte
}

// NewBinary wraps a byte slice. Clients must not modify b afterwards.
func NewBinary(b []byte) Binary {
	return Binary{bytes: b}
}

// Len returns the size of the table in bytes.
func (b Binary) Len() int {
	return len(b.bytes)
}

// At returns the byte at offset.
func (b Binary) At(offset int) uint8 {
	b.check(offset, 1)
	return b.bytes[offset]
}

// U16At returns the 16-bit value at offset.
func (b Binary) U16At(offset int) uint16 {
	b.check(offset, 2)
	return binary.LittleEndian.Uint16(b.bytes[offset:])
}

// U32At returns the 32-bit value at offset.
func (b Binary) U32At(offset int) uint32 {
	b.check(offset, 4)
	return binary.LittleEndian.Uint32(b.bytes[offset:])
}

// Slice returns size bytes starting at offset. The slice shares memory with
// the table and must be treated as read-only.
func (b Binary) Slice(offset, size int) []byte {
	b.check(offset, size)
	return b.bytes[offset : offset+size : offset+size]
}

func (b Binary) check(offset, size int) {
	if offset < 0 || size < 0 || offset+size > len(b.bytes) {
		panic(errors.Errorf("tables: access to [%d:%d] out of range for table of size %d",
			offset, offset+size, len(b.bytes)))
	}
}
