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

// Length-prefixed string helpers. Only the big-endian prefix variant is
// implemented: every length-prefixed string on the wire (handshake
// greeting, DH parameters) is big-endian, and nothing in this core ever
// needs a little-endian or host-endian length prefix. Add
// WriteStringLen16LE/WriteStringLen32LE etc. if a future caller needs
// them; don't add them speculatively.
package packet

import "github.com/comphack/lobbycore/pkg/codec"

// WriteStringLen16 writes s encoded in enc, prefixed by its encoded byte
// length as a big-endian u16. If nullTerminate is set the terminator is
// included in both the prefix and the payload.
func (p *Buffer) WriteStringLen16(enc codec.Encoding, s string, nullTerminate bool) error {
	encoded := codec.ToEncoding(enc, s, nullTerminate)
	if encoded == nil {
		return boundsError("WriteStringLen16", p.position, p.size, MaxPacketSize, errCodec)
	}
	n, err := clampUint16(len(encoded))
	if err != nil {
		return boundsError("WriteStringLen16", p.position, p.size, MaxPacketSize, err)
	}
	if err := p.WriteU16BE(n); err != nil {
		return err
	}
	return p.WriteArray(encoded)
}

// ReadStringLen16 reads a big-endian u16 length prefix followed by that
// many encoded bytes, decoded as enc.
func (p *Buffer) ReadStringLen16(enc codec.Encoding) (string, error) {
	n, err := p.ReadU16BE()
	if err != nil {
		return "", err
	}
	return p.ReadString(enc, int(n))
}

// WriteStringLen32 is WriteStringLen16 with a big-endian u32 length prefix.
func (p *Buffer) WriteStringLen32(enc codec.Encoding, s string, nullTerminate bool) error {
	encoded := codec.ToEncoding(enc, s, nullTerminate)
	if encoded == nil {
		return boundsError("WriteStringLen32", p.position, p.size, MaxPacketSize, errCodec)
	}
	n, err := clampUint32(len(encoded))
	if err != nil {
		return boundsError("WriteStringLen32", p.position, p.size, MaxPacketSize, err)
	}
	if err := p.WriteU32BE(n); err != nil {
		return err
	}
	return p.WriteArray(encoded)
}

// ReadStringLen32 reads a big-endian u32 length prefix followed by that
// many encoded bytes, decoded as enc.
func (p *Buffer) ReadStringLen32(enc codec.Encoding) (string, error) {
	n, err := p.ReadU32BE()
	if err != nil {
		return "", err
	}
	return p.ReadString(enc, int(n))
}

func clampUint16(n int) (uint16, error) {
	if n < 0 || n > 0xFFFF {
		return 0, errOutOfWindow
	}
	return uint16(n), nil
}
