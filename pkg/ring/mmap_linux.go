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

//go:build linux

package ring

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

func pageSize() int {
	return unix.Getpagesize()
}

// newMirrorMapped reserves a 2*capacity region with an anonymous
// PROT_NONE mapping, then overlays the same memfd-backed page twice, once
// per half, using MAP_FIXED. A view starting anywhere in the first half
// and running up to capacity bytes therefore never crosses into unmapped
// memory. This is the same trick original_source's RingBuffer.cpp performs
// with mkstemp+mmap on /dev/shm; memfd_create avoids touching the
// filesystem entirely.
func newMirrorMapped(capacity int) ([]byte, func() error, error) {
	fd, err := unix.MemfdCreate("lobbycore-ring", 0)
	if err != nil {
		return nil, nil, fmt.Errorf("ring: memfd_create: %w", err)
	}
	defer unix.Close(fd)

	if err := unix.Ftruncate(fd, int64(capacity)); err != nil {
		return nil, nil, fmt.Errorf("ring: ftruncate: %w", err)
	}

	reservation, err := unix.Mmap(-1, 0, capacity*2, unix.PROT_NONE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("ring: reserve mapping: %w", err)
	}
	base := uintptr(unsafe.Pointer(&reservation[0]))

	if err := mmapFixed(fd, base, capacity); err != nil {
		unix.Munmap(reservation)
		return nil, nil, fmt.Errorf("ring: first mirror mapping: %w", err)
	}
	if err := mmapFixed(fd, base+uintptr(capacity), capacity); err != nil {
		unix.Munmap(reservation)
		return nil, nil, fmt.Errorf("ring: second mirror mapping: %w", err)
	}

	unmap := func() error {
		return unix.Munmap(reservation)
	}
	return reservation[:capacity], unmap, nil
}

// mmapFixed overlays fd's contents at the exact address addr, replacing
// whatever PROT_NONE placeholder mapping is already reserved there.
func mmapFixed(fd int, addr uintptr, length int) error {
	r1, _, errno := unix.Syscall6(unix.SYS_MMAP, addr, uintptr(length),
		uintptr(unix.PROT_READ|unix.PROT_WRITE), uintptr(unix.MAP_SHARED|unix.MAP_FIXED),
		uintptr(fd), 0)
	if errno != 0 {
		return errno
	}
	if r1 != addr {
		return fmt.Errorf("kernel placed mapping at %#x, want %#x", r1, addr)
	}
	return nil
}
