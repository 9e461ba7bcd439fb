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

// Package conn implements the per-socket connection state machine: role
// dispatch through the handshake, the encrypted steady state, and
// teardown, replacing the source system's member-function-pointer parser
// with an explicit Status plus a small set of driver functions the caller
// invokes in sequence.
package conn

// Status is the connection's position in the handshake/steady-state
// lifecycle. Once a Connection reaches StatusEncrypted it never reverts
// to a handshake status; any error sends it straight to
// StatusNotConnected, which is terminal.
type Status int32

const (
	StatusNotConnected Status = iota
	StatusConnecting
	StatusConnected
	StatusWaitingEncryption
	StatusEncrypted
)

func (s Status) String() string {
	switch s {
	case StatusNotConnected:
		return "not_connected"
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	case StatusWaitingEncryption:
		return "waiting_encryption"
	case StatusEncrypted:
		return "encrypted"
	default:
		return "unknown"
	}
}

// Role identifies which side of the handshake a Connection plays.
type Role int32

const (
	RoleClient Role = iota
	RoleServer
)

func (r Role) String() string {
	if r == RoleServer {
		return "server"
	}
	return "client"
}
