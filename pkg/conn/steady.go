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
	"context"
	"encoding/binary"
	"io"

	"github.com/comphack/lobbycore/pkg/cryptutil"
	"github.com/comphack/lobbycore/pkg/log"
	"github.com/comphack/lobbycore/pkg/metrics"
	"github.com/comphack/lobbycore/pkg/packet"
)

const commandHeaderSize = 6

// ReadFrame blocks for exactly one steady-state frame: an 8-byte header
// (stage A), then padded_size more bytes (stage B), decrypts it, and
// enqueues each embedded command onto the connection's sink. It returns
// after fully processing one frame, or the first error encountered. Every
// error except ErrWrongStatus has already torn the connection down via
// Fail before returning; ErrWrongStatus leaves the connection untouched.
func (c *Connection) ReadFrame(ctx context.Context) error {
	if c.Status() != StatusEncrypted {
		return ErrWrongStatus
	}

	header := make([]byte, 8)
	if _, err := io.ReadFull(c.socket, header); err != nil {
		c.Fail("frame_read_header", err)
		return err
	}
	paddedSize := binary.BigEndian.Uint32(header[0:4])
	realSize := binary.BigEndian.Uint32(header[4:8])
	if realSize > paddedSize {
		err := framingError(cryptutil.ErrRealSizeTooLarge)
		c.Fail("frame_bad_header", err)
		return err
	}
	if paddedSize > uint32(packet.MaxPacketSize-len(header)) {
		err := framingError(cryptutil.ErrPaddedSizeTooLarge)
		c.Fail("frame_bad_header", err)
		return err
	}

	// The body lands directly in the connection's receive buffer rather
	// than a fresh allocation: Direct also enforces the MaxPacketSize
	// bound above, and the buffer is owned exclusively by this goroutine
	// for the lifetime of one frame.
	body, err := c.recv.Direct(int(paddedSize))
	if err != nil {
		c.Fail("frame_bad_header", err)
		return err
	}
	if _, err := io.ReadFull(c.socket, body); err != nil {
		c.Fail("frame_read_body", err)
		return err
	}

	frame := make([]byte, 0, len(header)+len(body))
	frame = append(frame, header...)
	frame = append(frame, body...)
	plaintext, _, err := cryptutil.DecodeFrame(c.block, frame)
	if err != nil {
		c.Fail("frame_decrypt", err)
		return framingError(err)
	}

	if err := c.dispatchCommands(ctx, plaintext); err != nil {
		c.Fail("frame_dispatch", err)
		return framingError(err)
	}
	return nil
}

// dispatchCommands walks the 6-byte-header commands packed into a
// decrypted frame body and enqueues each onto the sink.
func (c *Connection) dispatchCommands(ctx context.Context, body []byte) error {
	pos := 0
	for pos < len(body) {
		if pos+commandHeaderSize > len(body) {
			return ErrCommandOverrun
		}
		sizeBE := binary.BigEndian.Uint16(body[pos : pos+2])
		sizeLE := binary.LittleEndian.Uint16(body[pos+2 : pos+4])
		code := binary.LittleEndian.Uint16(body[pos+4 : pos+6])
		if sizeLE < 4 {
			return ErrCommandTooShort
		}
		if sizeBE != sizeLE {
			log.WithFields(log.Fields{
				log.FieldConnID: c.id,
				"size_be":       sizeBE,
				"size_le":       sizeLE,
			}).Warnf("command header size mismatch, ignoring big-endian field")
		}
		total := 2 + int(sizeLE)
		if pos+total > len(body) {
			return ErrCommandOverrun
		}

		commandBody := body[pos+commandHeaderSize : pos+total]
		p := packet.New()
		if err := p.WriteArray(commandBody); err != nil {
			return err
		}
		ro := p.IntoReadOnly()

		if err := c.sink.Enqueue(ctx, c.id, code, ro); err != nil {
			return err
		}
		metrics.CommandsDispatched.Add(1)
		pos += total
	}
	if pos != len(body) {
		return ErrFrameNotConsumed
	}
	return nil
}
