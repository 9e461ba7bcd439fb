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

package metrics

var (
	// Current number of established connections.
	CurrEstablished = RegisterMetric("connections", "CurrEstablished")

	// Connections that completed their handshake as the accepting side.
	PassiveOpens = RegisterMetric("connections", "PassiveOpens")

	// Handshakes attempted, completed, and abandoned partway through.
	HandshakeStarted   = RegisterMetric("handshake", "started")
	HandshakeCompleted = RegisterMetric("handshake", "completed")
	HandshakeFailed    = RegisterMetric("handshake", "failed")

	// Steady-state framing outcomes.
	FramesDecoded      = RegisterMetric("framing", "decoded")
	FrameDecryptFailed = RegisterMetric("framing", "decrypt.failed")
	CommandsDispatched = RegisterMetric("framing", "dispatched")

	// Backpressure on the typed-message queue that stands in for the
	// source system's ring buffer on the decoded-command path.
	RingWriteBlocked = RegisterMetric("ring", "write.blocked")
	RingReadBlocked  = RegisterMetric("ring", "read.blocked")
)
