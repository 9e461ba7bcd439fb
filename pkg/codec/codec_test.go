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

package codec

import (
	"bytes"
	"testing"
)

func TestCp1252RoundTrip(t *testing.T) {
	s := "This is CP-1252 encoding: ©ÆüØ"
	encoded := ToEncoding(Cp1252, s, false)
	if len(encoded) != 30 {
		t.Fatalf("len(encoded) = %d, want 30", len(encoded))
	}
	want := []byte{0xa9, 0xc6, 0xfc, 0xd8}
	if !bytes.Equal(encoded[len(encoded)-4:], want) {
		t.Errorf("trailing bytes = % x, want % x", encoded[len(encoded)-4:], want)
	}
	if got := SizeEncoded(Cp1252, s, 4); got != 32 {
		t.Errorf("SizeEncoded() = %d, want 32", got)
	}
	if got := FromEncoding(Cp1252, encoded); got != s {
		t.Errorf("round trip = %q, want %q", got, s)
	}
}

func TestCp932RoundTrip(t *testing.T) {
	s := "This is CP-932 encoding: 日本語が大好き！"
	encoded := ToEncoding(Cp932, s, false)
	if len(encoded) != 41 {
		t.Fatalf("len(encoded) = %d, want 41", len(encoded))
	}
	want := []byte{0x82, 0xab, 0x81, 0x49}
	if !bytes.Equal(encoded[len(encoded)-4:], want) {
		t.Errorf("trailing bytes = % x, want % x", encoded[len(encoded)-4:], want)
	}
	if got := SizeEncoded(Cp932, s, 4); got != 44 {
		t.Errorf("SizeEncoded() = %d, want 44", got)
	}
	if got := FromEncoding(Cp932, encoded); got != s {
		t.Errorf("round trip = %q, want %q", got, s)
	}
}

func TestFromEncodingTruncatedMultiByteIsEmpty(t *testing.T) {
	encoded := ToEncoding(Cp932, "日", false)
	got := FromEncoding(Cp932, encoded[:1])
	if got != "" {
		t.Errorf("FromEncoding() on truncated sequence = %q, want empty", got)
	}
}

func TestNullTerminate(t *testing.T) {
	encoded := ToEncoding(Utf8, "hi", true)
	if len(encoded) != 3 || encoded[2] != 0x00 {
		t.Errorf("ToEncoding() with null terminator = % x, want a trailing 0x00", encoded)
	}
}

func TestEndianRoundTrip(t *testing.T) {
	v := uint32(0x01020304)
	if got := LEtoH32(HtoLE32(v)); got != v {
		t.Errorf("LEtoH32(HtoLE32(v)) = %#x, want %#x", got, v)
	}
	if got := BEtoH32(HtoBE32(v)); got != v {
		t.Errorf("BEtoH32(HtoBE32(v)) = %#x, want %#x", got, v)
	}
	if Swap32(Swap32(v)) != v {
		t.Errorf("Swap32(Swap32(v)) != v")
	}
}
