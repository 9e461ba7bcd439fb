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

// Package packet implements the fixed-capacity, position-tracked byte
// buffer that sits between a raw socket and the connection FSM: every
// wire-level read or write, on either side of the crypto envelope, goes
// through a Buffer or a ReadOnlyPacket built from one.
package packet

import (
	"math"

	"github.com/comphack/lobbycore/pkg/codec"
)

// MaxPacketSize is the fixed capacity of every Buffer.
const MaxPacketSize = 16384

// debugFillWord is written across a cleared buffer's backing array when
// debug fill is requested, so leftover data is easy to spot in a hex dump.
const debugFillWord uint32 = 0xDEADBEEF

// Buffer owns a MAX_PACKET_SIZE byte array, lazily materialized on first
// use, plus a (position, size) cursor pair satisfying
// 0 <= position <= size <= MaxPacketSize. It is not safe for concurrent
// use: exactly one goroutine, the owning connection, mutates a Buffer at
// a time.
type Buffer struct {
	buf      []byte
	position int
	size     int
}

// New returns an empty Buffer. The backing array is not allocated until
// the first read, write, or Direct call.
func New() *Buffer {
	return &Buffer{}
}

func (p *Buffer) ensure() {
	if p.buf == nil {
		p.buf = make([]byte, MaxPacketSize)
	}
}

// Capacity returns MaxPacketSize.
func (p *Buffer) Capacity() int { return MaxPacketSize }

// Size returns the number of valid bytes currently in the buffer.
func (p *Buffer) Size() int { return p.size }

// Tell returns the current cursor position.
func (p *Buffer) Tell() int { return p.position }

// Left returns the number of unread bytes between position and size.
func (p *Buffer) Left() int { return p.size - p.position }

// Seek moves the cursor to an absolute position within [0, size].
func (p *Buffer) Seek(pos int) error {
	if pos < 0 || pos > p.size {
		return boundsError("Seek", p.position, p.size, MaxPacketSize, errOutOfWindow)
	}
	p.position = pos
	return nil
}

// Skip advances the cursor by n bytes, which may be negative.
func (p *Buffer) Skip(n int) error {
	return p.Seek(p.position + n)
}

// Rewind moves the cursor back to the beginning of the buffer.
func (p *Buffer) Rewind() {
	p.position = 0
}

// RewindN moves the cursor back by n bytes.
func (p *Buffer) RewindN(n int) error {
	return p.Seek(p.position - n)
}

// End moves the cursor to the end of the valid data.
func (p *Buffer) End() {
	p.position = p.size
}

// Clear resets position and size to zero. When debugFill is true, the
// backing array is overwritten with a repeating 0xDEADBEEF word so stale
// data is obvious in a hex dump.
func (p *Buffer) Clear(debugFill bool) {
	p.position = 0
	p.size = 0
	if debugFill {
		p.ensure()
		for i := 0; i+4 <= len(p.buf); i += 4 {
			p.buf[i] = byte(debugFillWord >> 24 & 0xFF)
			p.buf[i+1] = byte(debugFillWord >> 16 & 0xFF)
			p.buf[i+2] = byte(debugFillWord >> 8 & 0xFF)
			p.buf[i+3] = byte(debugFillWord & 0xFF)
		}
	}
}

// EraseRight truncates the buffer to the current position, discarding
// anything after it.
func (p *Buffer) EraseRight() {
	p.size = p.position
}

// grow extends size to accommodate a write of n bytes starting at
// position, without ever truncating an existing tail and without ever
// exceeding MaxPacketSize.
func (p *Buffer) grow(n int) error {
	newSize := p.position + n
	if newSize > MaxPacketSize {
		return boundsError("grow", p.position, p.size, MaxPacketSize, errOutOfWindow)
	}
	p.ensure()
	if newSize > p.size {
		p.size = newSize
	}
	return nil
}

// WriteBlank zero-fills n bytes at the current position and advances past
// them.
func (p *Buffer) WriteBlank(n int) error {
	if n <= 0 {
		return nil
	}
	if err := p.grow(n); err != nil {
		return err
	}
	clear(p.buf[p.position : p.position+n])
	p.position += n
	return nil
}

// WriteArray writes the raw bytes of data at the current position.
func (p *Buffer) WriteArray(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := p.grow(len(data)); err != nil {
		return err
	}
	copy(p.buf[p.position:], data)
	p.position += len(data)
	return nil
}

func (p *Buffer) checkRead(n int) error {
	if n < 0 || p.position+n > p.size {
		return boundsError("read", p.position, p.size, MaxPacketSize, errOutOfWindow)
	}
	return nil
}

// ReadArray returns a fresh copy of the next n bytes and advances past
// them.
func (p *Buffer) ReadArray(n int) ([]byte, error) {
	if err := p.checkRead(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, p.buf[p.position:p.position+n])
	p.position += n
	return out, nil
}

// ReadInto copies the next n bytes into the caller-supplied buffer, which
// must have length >= n, and advances past them.
func (p *Buffer) ReadInto(dst []byte, n int) error {
	if len(dst) < n {
		return boundsError("ReadInto", p.position, p.size, MaxPacketSize, errShortDest)
	}
	if err := p.checkRead(n); err != nil {
		return err
	}
	copy(dst, p.buf[p.position:p.position+n])
	p.position += n
	return nil
}

// PeekArray behaves like ReadArray but does not advance the cursor.
func (p *Buffer) PeekArray(n int) ([]byte, error) {
	if err := p.checkRead(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, p.buf[p.position:p.position+n])
	return out, nil
}

// Direct exposes the first sz bytes of the backing array for the caller
// to fill directly (for example with a socket Read), bypassing the
// typed writers. It fails if sz exceeds MaxPacketSize or is smaller than
// the current position. On success, size is set to sz.
func (p *Buffer) Direct(sz int) ([]byte, error) {
	if sz > MaxPacketSize {
		return nil, boundsError("Direct", p.position, p.size, MaxPacketSize, errOutOfWindow)
	}
	if sz < p.position {
		return nil, boundsError("Direct", p.position, p.size, MaxPacketSize, errOutOfWindow)
	}
	p.ensure()
	p.size = sz
	return p.buf[:sz], nil
}

// Split moves n bytes from the current position into a fresh Buffer,
// which is returned rewound to position 0. It fails if fewer than n
// bytes remain.
func (p *Buffer) Split(n int) (*Buffer, error) {
	other := New()
	if n == 0 {
		return other, nil
	}
	if err := p.checkRead(n); err != nil {
		return nil, err
	}
	other.ensure()
	copy(other.buf, p.buf[p.position:p.position+n])
	other.size = n
	p.position += n
	return other, nil
}

// WriteString writes s encoded in enc at the current position, without a
// length prefix.
func (p *Buffer) WriteString(enc codec.Encoding, s string, nullTerminate bool) error {
	encoded := codec.ToEncoding(enc, s, nullTerminate)
	if encoded == nil {
		return boundsError("WriteString", p.position, p.size, MaxPacketSize, errCodec)
	}
	return p.WriteArray(encoded)
}

// ReadString reads size bytes and decodes them as enc.
func (p *Buffer) ReadString(enc codec.Encoding, size int) (string, error) {
	raw, err := p.ReadArray(size)
	if err != nil {
		return "", err
	}
	return codec.FromEncoding(enc, raw), nil
}

func clampUint32(n int) (uint32, error) {
	if n < 0 || n > math.MaxUint32 {
		return 0, errOutOfWindow
	}
	return uint32(n), nil
}
