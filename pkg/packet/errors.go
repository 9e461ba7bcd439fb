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
	"errors"
	"fmt"

	"github.com/comphack/lobbycore/pkg/stderror"
)

var (
	errOutOfWindow = errors.New("position or size would leave the legal window")
	errShortDest   = errors.New("destination buffer is smaller than requested read size")
	errCodec       = errors.New("string could not be encoded in the requested codepage")
)

// Error is returned by every PacketBuffer operation that would move
// position or size outside their legal window. It carries a snapshot of
// the offending buffer's position and size so the caller can log useful
// context without holding a reference to a buffer that may be reused or
// reset immediately after the error is returned.
type Error struct {
	Op       string
	Position int
	Size     int
	Capacity int
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("packet: %s failed (position=%d size=%d capacity=%d): %v", e.Op, e.Position, e.Size, e.Capacity, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Typed returns a stderror.TypedError tagged PACKET_BOUNDS_ERROR, for
// callers that classify errors by stderror.ErrorType.
func (e *Error) Typed() stderror.TypedError {
	return stderror.WrapErrorWithType(e, stderror.PACKET_BOUNDS_ERROR)
}

func boundsError(op string, position, size, capacity int, cause error) error {
	return &Error{Op: op, Position: position, Size: size, Capacity: capacity, Cause: cause}
}
