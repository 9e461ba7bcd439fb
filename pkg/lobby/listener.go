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

package lobby

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/comphack/lobbycore/pkg/conn"
	"github.com/comphack/lobbycore/pkg/cryptutil"
	"github.com/comphack/lobbycore/pkg/log"
	"github.com/comphack/lobbycore/pkg/metrics"
	"github.com/comphack/lobbycore/pkg/netutil"
	"github.com/comphack/lobbycore/pkg/rng"
)

// ClientTimeout is the window a connection is allowed to sit without a
// complete frame arriving before it is presumed dead.
const ClientTimeout = 15 * time.Second

// SocketTimeout is the read deadline applied while the server side of the
// handshake runs. Once the connection is encrypted only the per-frame
// ClientTimeout deadline applies; there is no extra grace period before a
// stalled socket is closed.
const SocketTimeout = 17 * time.Second

const defaultBase = "2"

// Listener accepts connections on a TCP address, drives each one through
// the server handshake and steady state, and feeds decoded commands into
// a shared Queue.
type Listener struct {
	ln      net.Listener
	base    string
	queue   *Queue
	nextID  atomic.Uint64
	dhMu    sync.Mutex
	dh      *cryptutil.DHContext
	connsMu sync.Mutex
	conns   map[uint64]*conn.Connection
}

// NewListener binds address (host:port, or ":port" for "any") and returns
// a Listener ready to Serve. If dhPrimeHex is non-empty, it is loaded as
// the shared DH prime instead of lazily generating one on first accept.
func NewListener(address string, dhPrimeHex string, queue *Queue) (*Listener, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			return netutil.ReuseAddrPort(network, address, c)
		},
	}
	ln, err := lc.Listen(context.Background(), "tcp", address)
	if err != nil {
		return nil, err
	}
	l := &Listener{
		ln:    ln,
		base:  defaultBase,
		queue: queue,
		conns: make(map[uint64]*conn.Connection),
	}
	if dhPrimeHex != "" {
		dh, err := cryptutil.LoadDHHex(dhPrimeHex)
		if err != nil {
			ln.Close()
			return nil, err
		}
		l.dh = dh
	}
	return l, nil
}

// Addr returns the listener's bound address.
func (l *Listener) Addr() net.Addr { return l.ln.Addr() }

// Close stops accepting new connections.
func (l *Listener) Close() error { return l.ln.Close() }

// sharedDH returns the process-wide DH parameter set, lazily generating
// one on first use and logging a warning that callers should persist the
// prime so restarts don't invalidate outstanding client state.
func (l *Listener) sharedDH() (*cryptutil.DHContext, error) {
	l.dhMu.Lock()
	defer l.dhMu.Unlock()
	if l.dh != nil {
		return l.dh, nil
	}
	dh, err := cryptutil.GenerateDH()
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{}).Warnf(
		"generated a fresh diffie-hellman prime; persist it and pass it back via LoadDHHex on the next start")
	l.dh = dh
	return dh, nil
}

// Serve accepts connections until ctx is cancelled or the listener is
// closed, spawning one goroutine per connection to run its handshake and
// then its steady-state read loop.
func (l *Listener) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		l.ln.Close()
	}()

	for {
		socket, err := l.ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				return err
			}
		}
		go l.handleAccept(ctx, socket)
	}
}

func (l *Listener) handleAccept(ctx context.Context, socket net.Conn) {
	dh, err := l.sharedDH()
	if err != nil {
		log.ConnectionError(socket.RemoteAddr().String(), 0, "dh_unavailable", err)
		socket.Close()
		return
	}
	// Each connection gets a private copy of the parameter set: same
	// prime and base, independent private exponent.
	perConn, err := cryptutil.LoadDHBytes(dh.Save())
	if err != nil {
		log.ConnectionError(socket.RemoteAddr().String(), 0, "dh_copy_failed", err)
		socket.Close()
		return
	}

	id := l.nextID.Add(1)
	c := conn.New(id, conn.RoleServer, socket, l.queue)

	l.connsMu.Lock()
	l.conns[id] = c
	l.connsMu.Unlock()
	metrics.CurrEstablished.Add(1)
	defer func() {
		l.connsMu.Lock()
		delete(l.conns, id)
		l.connsMu.Unlock()
		metrics.CurrEstablished.Add(-1)
	}()

	metrics.HandshakeStarted.Add(1)
	socket.SetReadDeadline(time.Now().Add(SocketTimeout))
	if err := c.RunServerHandshake(perConn, l.base); err != nil {
		metrics.HandshakeFailed.Add(1)
		return
	}
	metrics.HandshakeCompleted.Add(1)
	metrics.PassiveOpens.Add(1)

	for {
		// Jittered so a burst of connections opened together don't all
		// time out on the same tick and pile onto the log/metrics path.
		socket.SetReadDeadline(time.Now().Add(rng.Jitter(ClientTimeout, 0.2)))
		if err := c.ReadFrame(ctx); err != nil {
			metrics.FrameDecryptFailed.Add(1)
			return
		}
		metrics.FramesDecoded.Add(1)
		if ctx.Err() != nil {
			c.Close()
			return
		}
	}
}

// Connections returns a snapshot of currently active connections, for use
// with conn.Broadcast.
func (l *Listener) Connections() []*conn.Connection {
	l.connsMu.Lock()
	defer l.connsMu.Unlock()
	out := make([]*conn.Connection, 0, len(l.conns))
	for _, c := range l.conns {
		out = append(out, c)
	}
	return out
}
