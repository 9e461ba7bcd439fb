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

// Package ring implements a wait-free single-producer/single-consumer byte
// ring. Where the platform supports it, the backing storage is mapped
// twice consecutively in the process's address space so a read or write
// view of up to Capacity() bytes is always contiguous, even when it
// straddles the wrap point; on platforms without that trick the ring
// falls back to a plain buffer and splits views at the wrap point
// internally, without changing the public contract.
package ring

import (
	"errors"
	"sync/atomic"

	"github.com/comphack/lobbycore/pkg/mathext"
)

// ErrCapacityTooSmall is returned by New when min_capacity is too small to
// form a usable ring.
var ErrCapacityTooSmall = errors.New("ring: capacity must be greater than one")

// Ring is a wait-free SPSC byte ring. Exactly one goroutine may act as
// producer (Write side) and exactly one as consumer (Read side); those may
// be the same goroutine, but two goroutines must never both call the
// producer or both call the consumer methods concurrently.
type Ring struct {
	buf          []byte
	mirrored     bool
	capacity     int32
	capacityMask int32
	readIndex    atomic.Int32
	writeIndex   atomic.Int32
	unmap        func() error
}

// New allocates a ring able to hold at least minCapacity bytes minus one
// (one slot is sacrificed to distinguish empty from full). The requested
// capacity is rounded up to the larger of the system page size and the
// next power of two.
func New(minCapacity int) (*Ring, error) {
	if minCapacity <= 1 {
		return nil, ErrCapacityTooSmall
	}

	capacity := mathext.NextPowerOfTwo(minCapacity)
	if page := pageSize(); capacity < page {
		// pageSize() is itself a power of two, so the larger of two
		// powers of two is still a power of two.
		capacity = page
	}

	r := &Ring{
		capacity:     int32(capacity),
		capacityMask: int32(capacity - 1),
	}

	if buf, unmap, err := newMirrorMapped(capacity); err == nil {
		r.buf = buf
		r.unmap = unmap
		r.mirrored = true
	} else {
		r.buf = make([]byte, capacity)
		r.mirrored = false
	}

	return r, nil
}

// Close releases any OS resources backing a mirror-mapped ring. It is a
// no-op for a ring that fell back to a plain buffer.
func (r *Ring) Close() error {
	if r.unmap != nil {
		return r.unmap()
	}
	return nil
}

// Capacity returns the ring's usable byte capacity, including the one
// sacrificed slot.
func (r *Ring) Capacity() int32 { return r.capacity }

// Free returns the number of bytes currently free for writing.
func (r *Ring) Free() int32 {
	read := r.readIndex.Load()
	write := r.writeIndex.Load()
	return (read - write - 1) & r.capacityMask
}

// Available returns the number of bytes currently available for reading.
func (r *Ring) Available() int32 {
	read := r.readIndex.Load()
	write := r.writeIndex.Load()
	return (r.capacity - (read - write)) & r.capacityMask
}

// BeginRead returns a contiguous slice of up to size bytes available to
// read, and writes back the size actually granted. It returns nil if no
// bytes are available. The caller must follow with EndRead, passing the
// number of bytes it actually consumed.
func (r *Ring) BeginRead(size int32) ([]byte, int32) {
	available := r.Available()
	if size > available {
		size = available
	}
	if size <= 0 {
		return nil, 0
	}
	idx := r.readIndex.Load()
	if r.mirrored {
		return r.buf[idx : idx+size], size
	}
	end := idx + size
	if end <= r.capacity {
		return r.buf[idx:end], size
	}
	// Wrap point straddled without a mirror mapping: only the
	// contiguous head up to capacity can be handed out in one view.
	return r.buf[idx:r.capacity], r.capacity - idx
}

// EndRead advances the read index by min(size, available) bytes and
// returns the number of bytes still available afterward.
func (r *Ring) EndRead(size int32) int32 {
	available := r.Available()
	if size > available {
		size = available
	}
	if size > 0 {
		idx := r.readIndex.Load()
		r.readIndex.Store((idx + size) & r.capacityMask)
	}
	return available - size
}

// Read is a convenience wrapper around BeginRead/EndRead that copies into
// dst and returns the number of bytes read.
func (r *Ring) Read(dst []byte) int32 {
	view, granted := r.BeginRead(int32(len(dst)))
	if granted > 0 {
		copy(dst, view[:granted])
	}
	r.EndRead(granted)
	return granted
}

// BeginWrite returns a contiguous slice of up to size bytes free to write
// into, and writes back the size actually granted. It returns nil if no
// bytes are free. The caller must follow with EndWrite, passing the
// number of bytes it actually produced.
func (r *Ring) BeginWrite(size int32) ([]byte, int32) {
	free := r.Free()
	if size > free {
		size = free
	}
	if size <= 0 {
		return nil, 0
	}
	idx := r.writeIndex.Load()
	if r.mirrored {
		return r.buf[idx : idx+size], size
	}
	end := idx + size
	if end <= r.capacity {
		return r.buf[idx:end], size
	}
	return r.buf[idx:r.capacity], r.capacity - idx
}

// EndWrite advances the write index by min(size, free) bytes and returns
// the number of bytes still free afterward.
func (r *Ring) EndWrite(size int32) int32 {
	free := r.Free()
	if size > free {
		size = free
	}
	if size > 0 {
		idx := r.writeIndex.Load()
		r.writeIndex.Store((idx + size) & r.capacityMask)
	}
	return free - size
}

// Write is a convenience wrapper around BeginWrite/EndWrite that copies
// src in and returns the number of bytes written.
func (r *Ring) Write(src []byte) int32 {
	view, granted := r.BeginWrite(int32(len(src)))
	if granted > 0 {
		copy(view[:granted], src[:granted])
	}
	r.EndWrite(granted)
	return granted
}
