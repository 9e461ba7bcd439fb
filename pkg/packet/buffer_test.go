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

package packet

import (
	"bytes"
	"testing"

	"github.com/comphack/lobbycore/pkg/codec"
)

func TestCursorInvariants(t *testing.T) {
	p := New()
	if p.Size() != 0 || p.Tell() != 0 {
		t.Fatalf("new buffer should start empty, got size=%d position=%d", p.Size(), p.Tell())
	}
	if err := p.WriteU32BE(0x11223344); err != nil {
		t.Fatalf("WriteU32BE: %v", err)
	}
	if p.Size() != 4 || p.Tell() != 4 {
		t.Fatalf("after write, size=%d position=%d, want 4/4", p.Size(), p.Tell())
	}
	p.Rewind()
	if p.Tell() != 0 || p.Left() != 4 {
		t.Fatalf("after rewind, position=%d left=%d, want 0/4", p.Tell(), p.Left())
	}
	v, err := p.ReadU32BE()
	if err != nil {
		t.Fatalf("ReadU32BE: %v", err)
	}
	if v != 0x11223344 {
		t.Errorf("ReadU32BE() = %#x, want 0x11223344", v)
	}
}

func TestSeekOutOfWindowFails(t *testing.T) {
	p := New()
	_ = p.WriteU8(1)
	if err := p.Seek(2); err == nil {
		t.Error("Seek() past size should fail")
	}
	if err := p.Seek(-1); err == nil {
		t.Error("Seek() before zero should fail")
	}
	if err := p.Seek(1); err != nil {
		t.Errorf("Seek() to size should succeed, got %v", err)
	}
}

func TestGrowNeverTruncatesTail(t *testing.T) {
	p := New()
	_ = p.WriteArray([]byte{1, 2, 3, 4, 5})
	p.Rewind()
	_ = p.WriteU8(0xff)
	if p.Size() != 5 {
		t.Errorf("Size() = %d, want 5 (overwrite must not shrink the tail)", p.Size())
	}
	p.Rewind()
	got, _ := p.ReadArray(5)
	want := []byte{0xff, 2, 3, 4, 5}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadArray() = % x, want % x", got, want)
	}
}

func TestWriteBlankZeroFills(t *testing.T) {
	p := New()
	_ = p.WriteU8(0xff)
	_ = p.WriteBlank(3)
	p.Rewind()
	got, _ := p.ReadArray(4)
	want := []byte{0xff, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadArray() = % x, want % x", got, want)
	}
}

func TestClearWithDebugFill(t *testing.T) {
	p := New()
	_ = p.WriteArray(bytes.Repeat([]byte{0x01}, 8))
	p.Clear(true)
	if p.Size() != 0 || p.Tell() != 0 {
		t.Fatalf("Clear() left size=%d position=%d, want 0/0", p.Size(), p.Tell())
	}
	if p.buf[0] != 0xDE || p.buf[1] != 0xAD || p.buf[2] != 0xBE || p.buf[3] != 0xEF {
		t.Errorf("Clear(true) fill = % x, want de ad be ef", p.buf[:4])
	}
}

func TestDirectExposesUnderlyingArray(t *testing.T) {
	p := New()
	raw, err := p.Direct(4)
	if err != nil {
		t.Fatalf("Direct: %v", err)
	}
	copy(raw, []byte{9, 8, 7, 6})
	if p.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", p.Size())
	}
	got, _ := p.ReadArray(4)
	if !bytes.Equal(got, []byte{9, 8, 7, 6}) {
		t.Errorf("ReadArray() = % x, want 09 08 07 06", got)
	}
}

func TestDirectRejectsOversizeAndBehindPosition(t *testing.T) {
	p := New()
	if _, err := p.Direct(MaxPacketSize + 1); err == nil {
		t.Error("Direct() beyond MaxPacketSize should fail")
	}
	_ = p.WriteArray([]byte{1, 2, 3})
	if _, err := p.Direct(1); err == nil {
		t.Error("Direct() smaller than position should fail")
	}
}

// TestPacketMoveSemantics mirrors the reference scenario where a filled
// packet's contents are handed off to a second buffer and the first is
// reused from scratch.
func TestPacketMoveSemantics(t *testing.T) {
	a := New()
	if err := a.WriteArray([]byte("abc")); err != nil {
		t.Fatalf("WriteArray: %v", err)
	}
	if a.Size() != 3 || a.Tell() != 3 {
		t.Fatalf("a: size=%d position=%d, want 3/3", a.Size(), a.Tell())
	}

	a.Rewind()
	b, err := a.Split(3)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	a.Clear(false)
	if err := a.WriteArray([]byte("z")); err != nil {
		t.Fatalf("WriteArray on reused a: %v", err)
	}

	b.Rewind()
	gotB, _ := b.ReadArray(3)
	if string(gotB) != "abc" {
		t.Errorf("b = %q, want %q", gotB, "abc")
	}

	a.Rewind()
	gotA, _ := a.ReadArray(1)
	if string(gotA) != "z" {
		t.Errorf("a = %q, want %q", gotA, "z")
	}
}

func TestIntoReadOnlyResetsSource(t *testing.T) {
	a := New()
	_ = a.WriteArray([]byte("hello"))
	ro := a.IntoReadOnly()

	if a.Size() != 0 || a.Tell() != 0 {
		t.Fatalf("source buffer after IntoReadOnly: size=%d position=%d, want 0/0", a.Size(), a.Tell())
	}
	if ro.Size() != 5 {
		t.Fatalf("ReadOnlyPacket.Size() = %d, want 5", ro.Size())
	}
	got, err := ro.ReadArray(5)
	if err != nil {
		t.Fatalf("ReadArray: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("ReadOnlyPacket contents = %q, want %q", got, "hello")
	}

	_ = a.WriteArray([]byte("world"))
	a.Rewind()
	gotA, _ := a.ReadArray(5)
	if string(gotA) != "world" {
		t.Errorf("reused source = %q, want %q", gotA, "world")
	}
}

func TestTypedIntegerRoundTrip(t *testing.T) {
	p := New()
	_ = p.WriteU8(0xAB)
	_ = p.WriteU16LE(0x1234)
	_ = p.WriteU16BE(0x1234)
	_ = p.WriteU32LE(0xDEADBEEF)
	_ = p.WriteU32BE(0xDEADBEEF)
	_ = p.WriteU64LE(0x0102030405060708)
	_ = p.WriteS32BE(-1)
	_ = p.WriteF32(3.5)

	p.Rewind()
	if v, _ := p.ReadU8(); v != 0xAB {
		t.Errorf("ReadU8() = %#x, want 0xab", v)
	}
	if v, _ := p.ReadU16LE(); v != 0x1234 {
		t.Errorf("ReadU16LE() = %#x, want 0x1234", v)
	}
	if v, _ := p.ReadU16BE(); v != 0x1234 {
		t.Errorf("ReadU16BE() = %#x, want 0x1234", v)
	}
	if v, _ := p.ReadU32LE(); v != 0xDEADBEEF {
		t.Errorf("ReadU32LE() = %#x, want 0xdeadbeef", v)
	}
	if v, _ := p.ReadU32BE(); v != 0xDEADBEEF {
		t.Errorf("ReadU32BE() = %#x, want 0xdeadbeef", v)
	}
	if v, _ := p.ReadU64LE(); v != 0x0102030405060708 {
		t.Errorf("ReadU64LE() = %#x, want 0x0102030405060708", v)
	}
	if v, _ := p.ReadS32BE(); v != -1 {
		t.Errorf("ReadS32BE() = %d, want -1", v)
	}
	if v, _ := p.ReadF32(); v != 3.5 {
		t.Errorf("ReadF32() = %v, want 3.5", v)
	}
}

func TestLengthPrefixedStringRoundTrip(t *testing.T) {
	p := New()
	if err := p.WriteStringLen16(codec.Utf8, "hello", false); err != nil {
		t.Fatalf("WriteStringLen16: %v", err)
	}
	if err := p.WriteStringLen32(codec.Cp1252, "cafe", true); err != nil {
		t.Fatalf("WriteStringLen32: %v", err)
	}
	p.Rewind()
	s1, err := p.ReadStringLen16(codec.Utf8)
	if err != nil {
		t.Fatalf("ReadStringLen16: %v", err)
	}
	if s1 != "hello" {
		t.Errorf("ReadStringLen16() = %q, want %q", s1, "hello")
	}
	s2, err := p.ReadStringLen32(codec.Cp1252)
	if err != nil {
		t.Fatalf("ReadStringLen32: %v", err)
	}
	if s2 != "cafe\x00" {
		t.Errorf("ReadStringLen32() = %q, want %q", s2, "cafe\x00")
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	p := New()
	payload := bytes.Repeat([]byte("the quick brown fox "), 20)
	_ = p.WriteArray(payload)
	p.Rewind()

	n, err := p.Compress(len(payload), 6)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if n >= len(payload) {
		t.Errorf("compressed size %d not smaller than input %d", n, len(payload))
	}
	if p.Size() != n {
		t.Errorf("Size() after Compress = %d, want %d", p.Size(), n)
	}

	p.Rewind()
	if _, err := p.Decompress(n); err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	p.Rewind()
	got, err := p.ReadArray(len(payload))
	if err != nil {
		t.Fatalf("ReadArray: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(payload))
	}
}

func TestHexDumpMarksCursor(t *testing.T) {
	p := New()
	_ = p.WriteArray(bytes.Repeat([]byte{0x41}, 20))
	p.Rewind()
	_, _ = p.ReadArray(3)
	dump := p.HexDump()
	if dump == "" {
		t.Fatal("HexDump() returned empty string for non-empty buffer")
	}
	if !bytes.Contains([]byte(dump), []byte("AAAAAAAAAAAAAAAA")) {
		t.Errorf("HexDump() ASCII sidebar missing expected run: %q", dump)
	}
}
