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

package ring

import (
	"bytes"
	"testing"
)

func TestNewRejectsTinyCapacity(t *testing.T) {
	if _, err := New(1); err == nil {
		t.Error("New(1) should fail")
	}
	if _, err := New(0); err == nil {
		t.Error("New(0) should fail")
	}
}

func TestCapacityIsPowerOfTwoAtLeastPageSize(t *testing.T) {
	r, err := New(100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	c := r.Capacity()
	if c&(c-1) != 0 {
		t.Errorf("Capacity() = %d, not a power of two", c)
	}
	if int(c) < pageSize() {
		t.Errorf("Capacity() = %d, smaller than page size %d", c, pageSize())
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	r, err := New(64)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	payload := []byte("hello ring buffer")
	if n := r.Write(payload); n != int32(len(payload)) {
		t.Fatalf("Write() = %d, want %d", n, len(payload))
	}

	dst := make([]byte, len(payload))
	if n := r.Read(dst); n != int32(len(payload)) {
		t.Fatalf("Read() = %d, want %d", n, len(payload))
	}
	if !bytes.Equal(dst, payload) {
		t.Errorf("Read() = %q, want %q", dst, payload)
	}
}

func TestFreeAvailableConservation(t *testing.T) {
	r, err := New(64)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	total := r.Capacity() - 1
	if got := r.Free(); got != total {
		t.Fatalf("Free() on empty ring = %d, want %d", got, total)
	}
	if got := r.Available(); got != 0 {
		t.Fatalf("Available() on empty ring = %d, want 0", got)
	}

	written := r.Write(bytes.Repeat([]byte{0x42}, int(total)))
	if written != total {
		t.Fatalf("Write() = %d, want %d", written, total)
	}
	if got := r.Free(); got != 0 {
		t.Errorf("Free() on full ring = %d, want 0", got)
	}
	if got := r.Available(); got != total {
		t.Errorf("Available() on full ring = %d, want %d", got, total)
	}
}

func TestWrapAroundStaysContiguous(t *testing.T) {
	r, err := New(64)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	total := int(r.Capacity())
	// Push the write index close to the wrap point, drain it, then write a
	// block that straddles the wrap. On a mirror-mapped ring BeginWrite
	// must hand back the whole block in one contiguous slice.
	filler := bytes.Repeat([]byte{0x01}, total-4)
	r.Write(filler)
	drain := make([]byte, total-4)
	r.Read(drain)

	straddle := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x11, 0x22}
	view, granted := r.BeginWrite(int32(len(straddle)))
	if r.mirrored && int(granted) != len(straddle) {
		t.Fatalf("BeginWrite() on mirrored ring granted %d, want %d (should not split at wrap)", granted, len(straddle))
	}
	copy(view[:granted], straddle[:granted])
	r.EndWrite(granted)

	got := make([]byte, granted)
	r.Read(got)
	if !bytes.Equal(got, straddle[:granted]) {
		t.Errorf("round trip across wrap = % x, want % x", got, straddle[:granted])
	}
}
