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

package stderror

// ErrorType provides a marker of runtime error.
type ErrorType uint8

const (
	NO_ERROR ErrorType = iota
	UNKNOWN_ERROR

	// INVALID_ARGUMENT_ERROR marks a null / zero-sized buffer, an odd
	// random-size request, or an invalid encoding selector.
	INVALID_ARGUMENT_ERROR

	// PACKET_BOUNDS_ERROR marks a PacketBuffer read/write/seek that would
	// leave the legal [0, MAX_PACKET_SIZE] or [0, size] window.
	PACKET_BOUNDS_ERROR

	// FRAMING_ERROR marks a decoded command whose declared size is
	// impossible, or a frame whose command lengths and padding don't sum
	// exactly to the frame length.
	FRAMING_ERROR

	// CRYPTO_ERROR marks a Diffie-Hellman failure, a ciphertext length
	// that isn't a multiple of the block size, or a magic/IV mismatch.
	CRYPTO_ERROR

	// IO_ERROR marks a socket accept/connect/read/write failure, or a
	// memory-mapping failure in the ring buffer.
	IO_ERROR

	// RUNTIME_INVARIANT_ERROR marks a violation of a construction-time
	// invariant, such as a ring buffer touched from more than the two
	// permitted sides.
	RUNTIME_INVARIANT_ERROR

	// Retained from the teacher's own taxonomy; not emitted by this core,
	// but kept so downstream code that already switches on ErrorType does
	// not need a parallel enum.
	PROTOCOL_ERROR
	NETWORK_ERROR
)

// TypedError annotates an error with a type.
type TypedError struct {
	err     error
	errType ErrorType
}

var _ error = TypedError{}

func (e TypedError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return ""
}

func (e TypedError) Unwrap() error {
	return e.err
}

// WrapErrorWithType creates a new TypedError object
// from an error and annotate it with a type.
func WrapErrorWithType(err error, t ErrorType) TypedError {
	return TypedError{
		err:     err,
		errType: t,
	}
}

// GetErrorType returns the type associated with an error.
func GetErrorType(err error) ErrorType {
	if err == nil {
		return NO_ERROR
	}
	if typedError, ok := err.(TypedError); ok {
		return typedError.errType
	}
	return UNKNOWN_ERROR
}

// IsFatalToConnection returns true if an error of this type must close the
// connection it originated on, per the propagation policy: InvalidArgument,
// PacketBounds, and Framing errors are fatal to that connection only; Io and
// Crypto failures during handshake are fatal to that connection as well.
func IsFatalToConnection(t ErrorType) bool {
	switch t {
	case INVALID_ARGUMENT_ERROR, PACKET_BOUNDS_ERROR, FRAMING_ERROR, CRYPTO_ERROR, IO_ERROR:
		return true
	default:
		return false
	}
}
