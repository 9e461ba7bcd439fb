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
	"net"
	"sync"
	"testing"

	"github.com/comphack/lobbycore/pkg/cryptutil"
	"github.com/comphack/lobbycore/pkg/packet"
)

const testDHBase = "2"

type recordingSink struct {
	mu       sync.Mutex
	messages []struct {
		Code uint16
		Body []byte
	}
}

func (s *recordingSink) Enqueue(ctx context.Context, connID uint64, code uint16, body *packet.ReadOnlyPacket) error {
	raw, _ := body.ReadArray(body.Size())
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, struct {
		Code uint16
		Body []byte
	}{Code: code, Body: raw})
	return nil
}

func handshakePair(t *testing.T) (*Connection, *Connection) {
	t.Helper()
	clientSocket, serverSocket := net.Pipe()

	dh, err := cryptutil.GenerateDH()
	if err != nil {
		t.Fatalf("GenerateDH: %v", err)
	}

	clientSink := &recordingSink{}
	serverSink := &recordingSink{}
	client := New(1, RoleClient, clientSocket, clientSink)
	server := New(2, RoleServer, serverSocket, serverSink)

	errCh := make(chan error, 2)
	go func() { errCh <- server.RunServerHandshake(dh, testDHBase) }()
	go func() { errCh <- client.RunClientHandshake(testDHBase) }()

	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			t.Fatalf("handshake: %v", err)
		}
	}
	if client.Status() != StatusEncrypted || server.Status() != StatusEncrypted {
		t.Fatalf("status after handshake: client=%v server=%v", client.Status(), server.Status())
	}
	return client, server
}

func TestHandshakeReachesEncrypted(t *testing.T) {
	client, server := handshakePair(t)
	defer client.Close()
	defer server.Close()
}

func TestSendPacketRoundTrip(t *testing.T) {
	client, server := handshakePair(t)
	defer client.Close()
	defer server.Close()

	// A single command: code=0x1234, body="hi".
	body := []byte("hi")
	cmd := make([]byte, commandHeaderSize+len(body))
	binary.LittleEndian.PutUint16(cmd[2:4], uint16(commandHeaderSize-2+len(body)))
	binary.LittleEndian.PutUint16(cmd[4:6], 0x1234)
	copy(cmd[6:], body)

	doneCh := make(chan error, 1)
	go func() { doneCh <- server.ReadFrame(context.Background()) }()

	if err := client.SendPacket(cmd); err != nil {
		t.Fatalf("SendPacket: %v", err)
	}
	if err := <-doneCh; err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}

	sink := server.sink.(*recordingSink)
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(sink.messages))
	}
	if sink.messages[0].Code != 0x1234 {
		t.Errorf("code = %#x, want 0x1234", sink.messages[0].Code)
	}
	if string(sink.messages[0].Body) != "hi" {
		t.Errorf("body = %q, want %q", sink.messages[0].Body, "hi")
	}
}

func TestReadFrameRejectsOversizedPaddedSize(t *testing.T) {
	client, server := handshakePair(t)
	defer client.Close()
	defer server.Close()

	// A client claiming a ~4 GB padded_size must be rejected before the
	// server allocates or reads a single body byte.
	header := make([]byte, 8)
	binary.BigEndian.PutUint32(header[0:4], 0xFFFFFFFF)
	binary.BigEndian.PutUint32(header[4:8], 0)

	doneCh := make(chan error, 1)
	go func() { doneCh <- server.ReadFrame(context.Background()) }()

	if _, err := client.socket.Write(header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if err := <-doneCh; err == nil {
		t.Fatal("ReadFrame() error = nil, want a framing error for an oversized padded_size")
	}
}

func TestDispatchCommandsRejectsShortSize(t *testing.T) {
	c := &Connection{}
	body := make([]byte, commandHeaderSize)
	binary.LittleEndian.PutUint16(body[2:4], 3) // < 4, invalid
	if err := c.dispatchCommands(context.Background(), body); err != ErrCommandTooShort {
		t.Errorf("dispatchCommands() error = %v, want ErrCommandTooShort", err)
	}
}

func TestDispatchCommandsRejectsOverrun(t *testing.T) {
	c := &Connection{}
	body := make([]byte, commandHeaderSize)
	binary.LittleEndian.PutUint16(body[2:4], 100) // claims more than available
	if err := c.dispatchCommands(context.Background(), body); err != ErrCommandOverrun {
		t.Errorf("dispatchCommands() error = %v, want ErrCommandOverrun", err)
	}
}
