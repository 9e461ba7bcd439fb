// Copyright (C) 2026  comphack authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package codec converts between Go's native (already UTF-8) string type
// and the legacy single- and multi-byte codepages the handshake and
// legacy file formats use, and provides the endian helpers the wire
// formats need.
//
// All decode errors collapse to an empty string, and all encode errors
// collapse to a nil byte slice, by design: callers detect failure with a
// size check rather than an error return. This mirrors the source
// system's own codec convention, kept deliberately asymmetric with the
// rest of the core (see the package doc for PacketBuffer, whose
// operations do return explicit errors).
package codec

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// Encoding identifies a supported codepage.
type Encoding uint8

const (
	Utf8 Encoding = iota
	Cp1252
	Cp932
)

func encodingFor(enc Encoding) (encoding.Encoding, bool) {
	switch enc {
	case Cp1252:
		return charmap.Windows1252, true
	case Cp932:
		// No dedicated CP932 table exists in the ecosystem; Shift-JIS is
		// a superset-compatible encoder/decoder for the standard JIS X
		// 0208 characters this core needs to round-trip.
		return japanese.ShiftJIS, true
	default:
		return nil, false
	}
}

// FromEncoding decodes bytes in the given codepage into a string.
//
// For Utf8, the input is validated by construction of the Go string; if it
// is not valid UTF-8, the result is the empty string. For Cp1252 and
// Cp932, a source that terminates inside a multi-byte sequence, or that
// contains a byte with no mapping, yields the empty string.
func FromEncoding(enc Encoding, b []byte) string {
	return FromEncodingSize(enc, b, len(b))
}

// FromEncodingSize decodes only the first size bytes of b.
func FromEncodingSize(enc Encoding, b []byte, size int) string {
	if size < 0 || size > len(b) {
		return ""
	}
	b = b[:size]

	if enc == Utf8 {
		if !utf8.Valid(b) {
			return ""
		}
		return string(b)
	}

	e, ok := encodingFor(enc)
	if !ok {
		return ""
	}
	decoded, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	// The x/text decoders substitute U+FFFD for a truncated or unmapped
	// sequence instead of failing. Neither codepage can encode U+FFFD, so
	// its presence in the output always marks a decode error.
	if !utf8.Valid(decoded) || bytes.ContainsRune(decoded, utf8.RuneError) {
		return ""
	}
	return string(decoded)
}

// ToEncoding encodes a string into the given codepage, optionally
// appending a single trailing NUL byte. It returns nil if the string
// contains a code point that has no representation in the target
// codepage.
func ToEncoding(enc Encoding, s string, nullTerminate bool) []byte {
	var out []byte
	if enc == Utf8 {
		out = []byte(s)
	} else {
		e, ok := encodingFor(enc)
		if !ok {
			return nil
		}
		encoded, err := e.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil
		}
		out = encoded
	}
	if nullTerminate {
		out = append(out, 0x00)
	}
	return out
}

// SizeEncoded returns the length of s once encoded in enc, optionally
// rounded up to a multiple of align. align <= 1 disables rounding.
func SizeEncoded(enc Encoding, s string, align int) int {
	encoded := ToEncoding(enc, s, false)
	size := len(encoded)
	if align > 1 && size%align != 0 {
		size += align - size%align
	}
	return size
}
