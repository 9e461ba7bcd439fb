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

package conn

import (
	"errors"

	"github.com/comphack/lobbycore/pkg/stderror"
)

var (
	ErrUnexpectedGreeting = errors.New("conn: unexpected handshake greeting")
	ErrBaseMismatch       = errors.New("conn: peer's diffie-hellman base does not match configuration")
	ErrCommandTooShort    = errors.New("conn: command size_le is smaller than the 4-byte header it must include")
	ErrCommandOverrun     = errors.New("conn: command body runs past the end of the frame")
	ErrFrameNotConsumed   = errors.New("conn: commands did not exactly account for the frame's padding")
	ErrWrongStatus        = errors.New("conn: operation is not valid in the connection's current status")
)

func handshakeError(err error) error {
	return stderror.WrapErrorWithType(err, stderror.CRYPTO_ERROR)
}

func framingError(err error) error {
	return stderror.WrapErrorWithType(err, stderror.FRAMING_ERROR)
}
