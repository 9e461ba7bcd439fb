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
	"crypto/cipher"
	"net"
	"sync"
	"sync/atomic"

	"github.com/comphack/lobbycore/pkg/cryptutil"
	"github.com/comphack/lobbycore/pkg/log"
	"github.com/comphack/lobbycore/pkg/netutil"
	"github.com/comphack/lobbycore/pkg/packet"
	"github.com/comphack/lobbycore/pkg/stderror"
)

// MessageSink receives decoded commands as the steady-state parser peels
// them off a frame. lobby.Queue implements this.
type MessageSink interface {
	Enqueue(ctx context.Context, connID uint64, code uint16, body *packet.ReadOnlyPacket) error
}

// Connection is one TCP socket's state machine: role, handshake progress,
// session key, and the two byte buffers (receive, plus a pending-write
// queue) the FSM drives directly. The zero value is not usable; construct
// one with New.
type Connection struct {
	id         uint64
	role       Role
	socket     net.Conn
	remoteAddr string
	sink       MessageSink

	status atomic.Int32

	dh    *cryptutil.DHContext
	block cipher.Block

	// recv is the steady-state receive buffer: ReadFrame fills it directly
	// via Direct, which enforces MaxPacketSize on the attacker-controlled
	// padded_size before any bytes are read off the socket.
	recv *packet.Buffer

	outMu    sync.Mutex
	outQueue [][]byte
	writing  bool
}

// New wraps an accepted or dialed socket in a Connection, in status
// StatusConnected.
func New(id uint64, role Role, socket net.Conn, sink MessageSink) *Connection {
	remoteAddr := "unknown"
	if addr := socket.RemoteAddr(); !netutil.IsNilNetAddr(addr) {
		remoteAddr = addr.String()
	}
	c := &Connection{
		id:         id,
		role:       role,
		socket:     socket,
		remoteAddr: remoteAddr,
		sink:       sink,
		recv:       packet.New(),
	}
	c.status.Store(int32(StatusConnected))
	return c
}

// ID returns the connection's server-assigned identifier.
func (c *Connection) ID() uint64 { return c.id }

// Role reports whether this connection is playing the client or server
// side of the handshake.
func (c *Connection) Role() Role { return c.role }

// RemoteAddr returns the cached remote address string, safe to call after
// the socket has been closed.
func (c *Connection) RemoteAddr() string { return c.remoteAddr }

// Status returns the connection's current lifecycle status.
func (c *Connection) Status() Status { return Status(c.status.Load()) }

func (c *Connection) setStatus(s Status) { c.status.Store(int32(s)) }

// Fail tears the socket down and drops the DH context and session key,
// transitioning the connection to StatusNotConnected, which is terminal.
// A clean peer close (stderror.IsClosed/IsEOF) is logged at debug level;
// anything else is logged as the one fatal error line the propagation
// policy allows per failure.
func (c *Connection) Fail(kind string, err error) {
	if stderror.IsClosed(err) || stderror.IsEOF(err) {
		log.ConnectionClosed(c.remoteAddr, c.id, kind)
	} else {
		log.ConnectionError(c.remoteAddr, c.id, kind, err)
	}
	c.socket.Close()
	c.dh = nil
	c.block = nil
	c.setStatus(StatusNotConnected)
}

// Close tears the connection down without logging an error, for orderly
// shutdown paths.
func (c *Connection) Close() error {
	c.dh = nil
	c.block = nil
	c.setStatus(StatusNotConnected)
	return c.socket.Close()
}
