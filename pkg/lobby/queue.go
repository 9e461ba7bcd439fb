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

	"github.com/comphack/lobbycore/pkg/metrics"
	"github.com/comphack/lobbycore/pkg/packet"
)

// Queue is the FIFO message conduit between the I/O side of every
// connection and the worker goroutines that act on decoded commands. A
// buffered channel already gives Go the lock-protected FIFO the source
// system builds by hand; Enqueue blocking under backpressure plays the
// role the SPSC ring buffer (pkg/ring) plays for the raw-byte path.
type Queue struct {
	messages chan Message
}

// NewQueue returns a Queue that can hold up to capacity messages before
// Enqueue blocks.
func NewQueue(capacity int) *Queue {
	return &Queue{messages: make(chan Message, capacity)}
}

// Enqueue implements conn.MessageSink: it blocks until the decoded command
// is accepted onto the queue or ctx is done.
func (q *Queue) Enqueue(ctx context.Context, connID uint64, code uint16, body *packet.ReadOnlyPacket) error {
	m := Message{ConnID: connID, Code: code, Body: body}
	select {
	case q.messages <- m:
		return nil
	default:
	}
	metrics.RingWriteBlocked.Add(1)
	select {
	case q.messages <- m:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryEnqueue enqueues m without blocking, reporting whether it fit.
func (q *Queue) TryEnqueue(m Message) bool {
	select {
	case q.messages <- m:
		return true
	default:
		return false
	}
}

// Dequeue blocks until a message is available or ctx is done.
func (q *Queue) Dequeue(ctx context.Context) (Message, error) {
	select {
	case m := <-q.messages:
		return m, nil
	default:
	}
	metrics.RingReadBlocked.Add(1)
	select {
	case m := <-q.messages:
		return m, nil
	case <-ctx.Done():
		return Message{}, ctx.Err()
	}
}

// Len reports how many messages are currently buffered.
func (q *Queue) Len() int { return len(q.messages) }
