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

import "github.com/comphack/lobbycore/pkg/codec"

// ReadOnlyPacket is an immutable view over the bytes a Buffer accumulated.
// The original C++ implementation reference-counted a shared byte array so
// a packet could be handed to a business-logic layer without copying while
// the network thread reused its own buffer; Go's garbage collector already
// keeps the backing array alive for as long as ReadOnlyPacket holds a
// slice into it, so no manual refcounting is needed here.
type ReadOnlyPacket struct {
	inner *Buffer
}

// IntoReadOnly transfers ownership of p's backing array to a new
// ReadOnlyPacket and resets p to an empty Buffer as if newly constructed.
// After this call p can be reused for the next inbound message while the
// returned ReadOnlyPacket keeps the data that was in it.
func (p *Buffer) IntoReadOnly() *ReadOnlyPacket {
	inner := &Buffer{buf: p.buf, position: 0, size: p.size}
	p.buf = nil
	p.position = 0
	p.size = 0
	return &ReadOnlyPacket{inner: inner}
}

// Size returns the number of valid bytes in the packet.
func (r *ReadOnlyPacket) Size() int { return r.inner.Size() }

// Tell returns the current cursor position.
func (r *ReadOnlyPacket) Tell() int { return r.inner.Tell() }

// Left returns the number of unread bytes.
func (r *ReadOnlyPacket) Left() int { return r.inner.Left() }

// Seek moves the cursor to an absolute position within [0, Size()].
func (r *ReadOnlyPacket) Seek(pos int) error { return r.inner.Seek(pos) }

// Skip advances the cursor by n bytes, which may be negative.
func (r *ReadOnlyPacket) Skip(n int) error { return r.inner.Skip(n) }

// Rewind moves the cursor back to the beginning of the packet.
func (r *ReadOnlyPacket) Rewind() { r.inner.Rewind() }

// RewindN moves the cursor back by n bytes.
func (r *ReadOnlyPacket) RewindN(n int) error { return r.inner.RewindN(n) }

// End moves the cursor to the end of the packet.
func (r *ReadOnlyPacket) End() { r.inner.End() }

// ReadArray returns a fresh copy of the next n bytes and advances past them.
func (r *ReadOnlyPacket) ReadArray(n int) ([]byte, error) { return r.inner.ReadArray(n) }

// ReadInto copies the next n bytes into dst and advances past them.
func (r *ReadOnlyPacket) ReadInto(dst []byte, n int) error { return r.inner.ReadInto(dst, n) }

// PeekArray behaves like ReadArray but does not advance the cursor.
func (r *ReadOnlyPacket) PeekArray(n int) ([]byte, error) { return r.inner.PeekArray(n) }

func (r *ReadOnlyPacket) ReadU8() (uint8, error)   { return r.inner.ReadU8() }
func (r *ReadOnlyPacket) ReadS8() (int8, error)    { return r.inner.ReadS8() }
func (r *ReadOnlyPacket) PeekU8() (uint8, error)   { return r.inner.PeekU8() }

func (r *ReadOnlyPacket) ReadU16LE() (uint16, error) { return r.inner.ReadU16LE() }
func (r *ReadOnlyPacket) ReadU16BE() (uint16, error) { return r.inner.ReadU16BE() }
func (r *ReadOnlyPacket) ReadU16H() (uint16, error)  { return r.inner.ReadU16H() }
func (r *ReadOnlyPacket) ReadS16LE() (int16, error)  { return r.inner.ReadS16LE() }
func (r *ReadOnlyPacket) ReadS16BE() (int16, error)  { return r.inner.ReadS16BE() }
func (r *ReadOnlyPacket) ReadS16H() (int16, error)   { return r.inner.ReadS16H() }

func (r *ReadOnlyPacket) ReadU32LE() (uint32, error) { return r.inner.ReadU32LE() }
func (r *ReadOnlyPacket) ReadU32BE() (uint32, error) { return r.inner.ReadU32BE() }
func (r *ReadOnlyPacket) ReadU32H() (uint32, error)  { return r.inner.ReadU32H() }
func (r *ReadOnlyPacket) ReadS32LE() (int32, error)  { return r.inner.ReadS32LE() }
func (r *ReadOnlyPacket) ReadS32BE() (int32, error)  { return r.inner.ReadS32BE() }
func (r *ReadOnlyPacket) ReadS32H() (int32, error)   { return r.inner.ReadS32H() }

func (r *ReadOnlyPacket) ReadU64LE() (uint64, error) { return r.inner.ReadU64LE() }
func (r *ReadOnlyPacket) ReadU64BE() (uint64, error) { return r.inner.ReadU64BE() }
func (r *ReadOnlyPacket) ReadU64H() (uint64, error)  { return r.inner.ReadU64H() }
func (r *ReadOnlyPacket) ReadS64LE() (int64, error)  { return r.inner.ReadS64LE() }
func (r *ReadOnlyPacket) ReadS64BE() (int64, error)  { return r.inner.ReadS64BE() }
func (r *ReadOnlyPacket) ReadS64H() (int64, error)   { return r.inner.ReadS64H() }

func (r *ReadOnlyPacket) ReadF32() (float32, error) { return r.inner.ReadF32() }

// ReadString reads size bytes and decodes them as enc.
func (r *ReadOnlyPacket) ReadString(enc codec.Encoding, size int) (string, error) {
	return r.inner.ReadString(enc, size)
}

// ReadStringLen16 reads a big-endian u16 length prefix followed by that
// many encoded bytes, decoded as enc.
func (r *ReadOnlyPacket) ReadStringLen16(enc codec.Encoding) (string, error) {
	return r.inner.ReadStringLen16(enc)
}

// ReadStringLen32 reads a big-endian u32 length prefix followed by that
// many encoded bytes, decoded as enc.
func (r *ReadOnlyPacket) ReadStringLen32(enc codec.Encoding) (string, error) {
	return r.inner.ReadStringLen32(enc)
}

// HexDump renders the packet the same way Buffer.HexDump does.
func (r *ReadOnlyPacket) HexDump() string { return r.inner.HexDump() }

// Bytes returns the packet's valid bytes. The returned slice aliases the
// packet's backing array and must not be mutated by the caller.
func (r *ReadOnlyPacket) Bytes() []byte { return r.inner.buf[:r.inner.size] }
