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

// Package lobby wires the packet and crypto building blocks into a
// running connection state machine: it accepts sockets, drives the
// handshake, parses steady-state frames into commands, and hands them off
// to whatever business logic sits above the core.
package lobby

import "github.com/comphack/lobbycore/pkg/packet"

// Message is a decoded command handed off from the connection FSM to a
// worker: the connection it arrived on, its command code, and an
// immutable view of its body.
type Message struct {
	ConnID uint64
	Code   uint16
	Body   *packet.ReadOnlyPacket
}
