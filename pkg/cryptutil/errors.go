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

// Package cryptutil implements the Blowfish and Diffie-Hellman primitives
// the handshake and steady-state frame envelope rely on.
package cryptutil

import "errors"

var (
	ErrInvalidKeySize     = errors.New("cryptutil: key has an invalid size")
	ErrInvalidBlockSize   = errors.New("cryptutil: buffer is not a multiple of the block size")
	ErrMagicMismatch      = errors.New("cryptutil: file magic does not match")
	ErrTruncatedFrame     = errors.New("cryptutil: frame shorter than its declared padded size")
	ErrRealSizeTooLarge   = errors.New("cryptutil: real size exceeds padded size")
	ErrPaddedSizeTooLarge = errors.New("cryptutil: padded size exceeds the maximum packet size")
	ErrInvalidHex         = errors.New("cryptutil: malformed hex string")
	ErrInvalidRandomLen   = errors.New("cryptutil: hex digit count must be even and at least 2, or <= 0 for the default")
)
