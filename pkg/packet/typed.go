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
	"encoding/binary"
	"math"

	"github.com/comphack/lobbycore/pkg/codec"
)

// WriteU8 writes an unsigned 8-bit value.
func (p *Buffer) WriteU8(v uint8) error { return p.WriteArray([]byte{v}) }

// WriteS8 writes a signed 8-bit value.
func (p *Buffer) WriteS8(v int8) error { return p.WriteU8(uint8(v)) }

// ReadU8 reads an unsigned 8-bit value.
func (p *Buffer) ReadU8() (uint8, error) {
	b, err := p.ReadArray(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadS8 reads a signed 8-bit value.
func (p *Buffer) ReadS8() (int8, error) {
	v, err := p.ReadU8()
	return int8(v), err
}

// PeekU8 reads an unsigned 8-bit value without advancing the cursor.
func (p *Buffer) PeekU8() (uint8, error) {
	b, err := p.PeekArray(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (p *Buffer) writeFixed(width int, put func([]byte)) error {
	if err := p.grow(width); err != nil {
		return err
	}
	put(p.buf[p.position : p.position+width])
	p.position += width
	return nil
}

func (p *Buffer) readFixed(width int, get func([]byte) uint64) (uint64, error) {
	if err := p.checkRead(width); err != nil {
		return 0, err
	}
	v := get(p.buf[p.position : p.position+width])
	p.position += width
	return v, nil
}

func (p *Buffer) peekFixed(width int, get func([]byte) uint64) (uint64, error) {
	if err := p.checkRead(width); err != nil {
		return 0, err
	}
	return get(p.buf[p.position : p.position+width]), nil
}

// --- 16-bit ---

func (p *Buffer) WriteU16LE(v uint16) error {
	return p.writeFixed(2, func(b []byte) { binary.LittleEndian.PutUint16(b, v) })
}
func (p *Buffer) WriteU16BE(v uint16) error {
	return p.writeFixed(2, func(b []byte) { binary.BigEndian.PutUint16(b, v) })
}
func (p *Buffer) WriteU16H(v uint16) error {
	if codec.HostIsLittleEndian {
		return p.WriteU16LE(v)
	}
	return p.WriteU16BE(v)
}
func (p *Buffer) WriteS16LE(v int16) error { return p.WriteU16LE(uint16(v)) }
func (p *Buffer) WriteS16BE(v int16) error { return p.WriteU16BE(uint16(v)) }
func (p *Buffer) WriteS16H(v int16) error  { return p.WriteU16H(uint16(v)) }

func (p *Buffer) ReadU16LE() (uint16, error) {
	v, err := p.readFixed(2, func(b []byte) uint64 { return uint64(binary.LittleEndian.Uint16(b)) })
	return uint16(v), err
}
func (p *Buffer) ReadU16BE() (uint16, error) {
	v, err := p.readFixed(2, func(b []byte) uint64 { return uint64(binary.BigEndian.Uint16(b)) })
	return uint16(v), err
}
func (p *Buffer) ReadU16H() (uint16, error) {
	if codec.HostIsLittleEndian {
		return p.ReadU16LE()
	}
	return p.ReadU16BE()
}
func (p *Buffer) ReadS16LE() (int16, error) { v, err := p.ReadU16LE(); return int16(v), err }
func (p *Buffer) ReadS16BE() (int16, error) { v, err := p.ReadU16BE(); return int16(v), err }
func (p *Buffer) ReadS16H() (int16, error)  { v, err := p.ReadU16H(); return int16(v), err }

func (p *Buffer) PeekU16LE() (uint16, error) {
	v, err := p.peekFixed(2, func(b []byte) uint64 { return uint64(binary.LittleEndian.Uint16(b)) })
	return uint16(v), err
}
func (p *Buffer) PeekU16BE() (uint16, error) {
	v, err := p.peekFixed(2, func(b []byte) uint64 { return uint64(binary.BigEndian.Uint16(b)) })
	return uint16(v), err
}

// --- 32-bit ---

func (p *Buffer) WriteU32LE(v uint32) error {
	return p.writeFixed(4, func(b []byte) { binary.LittleEndian.PutUint32(b, v) })
}
func (p *Buffer) WriteU32BE(v uint32) error {
	return p.writeFixed(4, func(b []byte) { binary.BigEndian.PutUint32(b, v) })
}
func (p *Buffer) WriteU32H(v uint32) error {
	if codec.HostIsLittleEndian {
		return p.WriteU32LE(v)
	}
	return p.WriteU32BE(v)
}
func (p *Buffer) WriteS32LE(v int32) error { return p.WriteU32LE(uint32(v)) }
func (p *Buffer) WriteS32BE(v int32) error { return p.WriteU32BE(uint32(v)) }
func (p *Buffer) WriteS32H(v int32) error  { return p.WriteU32H(uint32(v)) }

func (p *Buffer) ReadU32LE() (uint32, error) {
	v, err := p.readFixed(4, func(b []byte) uint64 { return uint64(binary.LittleEndian.Uint32(b)) })
	return uint32(v), err
}
func (p *Buffer) ReadU32BE() (uint32, error) {
	v, err := p.readFixed(4, func(b []byte) uint64 { return uint64(binary.BigEndian.Uint32(b)) })
	return uint32(v), err
}
func (p *Buffer) ReadU32H() (uint32, error) {
	if codec.HostIsLittleEndian {
		return p.ReadU32LE()
	}
	return p.ReadU32BE()
}
func (p *Buffer) ReadS32LE() (int32, error) { v, err := p.ReadU32LE(); return int32(v), err }
func (p *Buffer) ReadS32BE() (int32, error) { v, err := p.ReadU32BE(); return int32(v), err }
func (p *Buffer) ReadS32H() (int32, error)  { v, err := p.ReadU32H(); return int32(v), err }

func (p *Buffer) PeekU32LE() (uint32, error) {
	v, err := p.peekFixed(4, func(b []byte) uint64 { return uint64(binary.LittleEndian.Uint32(b)) })
	return uint32(v), err
}
func (p *Buffer) PeekU32BE() (uint32, error) {
	v, err := p.peekFixed(4, func(b []byte) uint64 { return uint64(binary.BigEndian.Uint32(b)) })
	return uint32(v), err
}

// --- 64-bit ---

func (p *Buffer) WriteU64LE(v uint64) error {
	return p.writeFixed(8, func(b []byte) { binary.LittleEndian.PutUint64(b, v) })
}
func (p *Buffer) WriteU64BE(v uint64) error {
	return p.writeFixed(8, func(b []byte) { binary.BigEndian.PutUint64(b, v) })
}
func (p *Buffer) WriteU64H(v uint64) error {
	if codec.HostIsLittleEndian {
		return p.WriteU64LE(v)
	}
	return p.WriteU64BE(v)
}
func (p *Buffer) WriteS64LE(v int64) error { return p.WriteU64LE(uint64(v)) }
func (p *Buffer) WriteS64BE(v int64) error { return p.WriteU64BE(uint64(v)) }
func (p *Buffer) WriteS64H(v int64) error  { return p.WriteU64H(uint64(v)) }

func (p *Buffer) ReadU64LE() (uint64, error) {
	return p.readFixed(8, binary.LittleEndian.Uint64)
}
func (p *Buffer) ReadU64BE() (uint64, error) {
	return p.readFixed(8, binary.BigEndian.Uint64)
}
func (p *Buffer) ReadU64H() (uint64, error) {
	if codec.HostIsLittleEndian {
		return p.ReadU64LE()
	}
	return p.ReadU64BE()
}
func (p *Buffer) ReadS64LE() (int64, error) { v, err := p.ReadU64LE(); return int64(v), err }
func (p *Buffer) ReadS64BE() (int64, error) { v, err := p.ReadU64BE(); return int64(v), err }
func (p *Buffer) ReadS64H() (int64, error)  { v, err := p.ReadU64H(); return int64(v), err }

func (p *Buffer) PeekU64LE() (uint64, error) {
	return p.peekFixed(8, binary.LittleEndian.Uint64)
}
func (p *Buffer) PeekU64BE() (uint64, error) {
	return p.peekFixed(8, binary.BigEndian.Uint64)
}

// --- float32 ---

// WriteF32 writes the raw IEEE-754 bit pattern of v in host byte order.
func (p *Buffer) WriteF32(v float32) error {
	bits := math.Float32bits(v)
	return p.writeFixed(4, func(b []byte) {
		if codec.HostIsLittleEndian {
			binary.LittleEndian.PutUint32(b, bits)
		} else {
			binary.BigEndian.PutUint32(b, bits)
		}
	})
}

// ReadF32 reads the raw IEEE-754 bit pattern of a float32 in host byte
// order.
func (p *Buffer) ReadF32() (float32, error) {
	v, err := p.readFixed(4, func(b []byte) uint64 {
		if codec.HostIsLittleEndian {
			return uint64(binary.LittleEndian.Uint32(b))
		}
		return uint64(binary.BigEndian.Uint32(b))
	})
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v)), nil
}
