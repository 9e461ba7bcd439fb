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

import "math/bits"

// Swap16 reverses the byte order of a 16-bit value.
func Swap16(v uint16) uint16 { return bits.ReverseBytes16(v) }

// Swap32 reverses the byte order of a 32-bit value.
func Swap32(v uint32) uint32 { return bits.ReverseBytes32(v) }

// Swap64 reverses the byte order of a 64-bit value.
func Swap64(v uint64) uint64 { return bits.ReverseBytes64(v) }

// HostIsLittleEndian reports whether the running process is little-endian.
var HostIsLittleEndian = isLittleEndianHost()

func isLittleEndianHost() bool {
	var x uint16 = 1
	b := [2]byte{}
	b[0] = byte(x)
	b[1] = byte(x >> 8)
	return b[0] == 1
}

// HtoLE16 converts a host-order value to little-endian.
func HtoLE16(v uint16) uint16 {
	if HostIsLittleEndian {
		return v
	}
	return Swap16(v)
}

// HtoBE16 converts a host-order value to big-endian.
func HtoBE16(v uint16) uint16 {
	if HostIsLittleEndian {
		return Swap16(v)
	}
	return v
}

// LEtoH16 converts a little-endian value to host order.
func LEtoH16(v uint16) uint16 { return HtoLE16(v) }

// BEtoH16 converts a big-endian value to host order.
func BEtoH16(v uint16) uint16 { return HtoBE16(v) }

// HtoLE32 converts a host-order value to little-endian.
func HtoLE32(v uint32) uint32 {
	if HostIsLittleEndian {
		return v
	}
	return Swap32(v)
}

// HtoBE32 converts a host-order value to big-endian.
func HtoBE32(v uint32) uint32 {
	if HostIsLittleEndian {
		return Swap32(v)
	}
	return v
}

// LEtoH32 converts a little-endian value to host order.
func LEtoH32(v uint32) uint32 { return HtoLE32(v) }

// BEtoH32 converts a big-endian value to host order.
func BEtoH32(v uint32) uint32 { return HtoBE32(v) }

// HtoLE64 converts a host-order value to little-endian.
func HtoLE64(v uint64) uint64 {
	if HostIsLittleEndian {
		return v
	}
	return Swap64(v)
}

// HtoBE64 converts a host-order value to big-endian.
func HtoBE64(v uint64) uint64 {
	if HostIsLittleEndian {
		return Swap64(v)
	}
	return v
}

// LEtoH64 converts a little-endian value to host order.
func LEtoH64(v uint64) uint64 { return HtoLE64(v) }

// BEtoH64 converts a big-endian value to host order.
func BEtoH64(v uint64) uint64 { return HtoBE64(v) }
