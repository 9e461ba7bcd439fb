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

import "github.com/comphack/lobbycore/pkg/cryptutil"

// SendPacket encrypts plaintext into a steady-state frame and enqueues it
// for delivery. If nothing else is currently draining the outgoing queue,
// a single writer goroutine is started; only one write is ever in flight
// per connection, preserving call order.
func (c *Connection) SendPacket(plaintext []byte) error {
	if c.Status() != StatusEncrypted {
		return ErrWrongStatus
	}
	frame := cryptutil.EncodeFrame(c.block, plaintext)

	c.outMu.Lock()
	c.outQueue = append(c.outQueue, frame)
	startWriter := !c.writing
	if startWriter {
		c.writing = true
	}
	c.outMu.Unlock()

	if startWriter {
		go c.drainOutQueue()
	}
	return nil
}

func (c *Connection) drainOutQueue() {
	for {
		c.outMu.Lock()
		if len(c.outQueue) == 0 {
			c.writing = false
			c.outMu.Unlock()
			return
		}
		frame := c.outQueue[0]
		c.outQueue = c.outQueue[1:]
		c.outMu.Unlock()

		if _, err := c.socket.Write(frame); err != nil {
			c.Fail("frame_write", err)
			return
		}
	}
}

// Broadcast sends the same plaintext to every connection in conns. Each
// connection encrypts it under its own session key; a failure on one
// connection does not affect the others.
func Broadcast(conns []*Connection, plaintext []byte) {
	for _, c := range conns {
		_ = c.SendPacket(plaintext)
	}
}
