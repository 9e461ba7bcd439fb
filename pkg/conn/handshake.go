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
	"encoding/binary"
	"io"

	"github.com/comphack/lobbycore/pkg/codec"
	"github.com/comphack/lobbycore/pkg/cryptutil"
	"github.com/comphack/lobbycore/pkg/packet"
)

const greetingMagic = 1
const greetingVersion = 8

func writeGreeting(w io.Writer) error {
	var buf [8]byte
	binary.BigEndian.PutUint32(buf[0:4], greetingMagic)
	binary.BigEndian.PutUint32(buf[4:8], greetingVersion)
	_, err := w.Write(buf[:])
	return err
}

func readGreeting(r io.Reader) error {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	if binary.BigEndian.Uint32(buf[0:4]) != greetingMagic || binary.BigEndian.Uint32(buf[4:8]) != greetingVersion {
		return ErrUnexpectedGreeting
	}
	return nil
}

func writeLengthPrefixedString(w io.Writer, s string) error {
	p := packet.New()
	if err := p.WriteStringLen32(codec.Utf8, s, false); err != nil {
		return err
	}
	p.Rewind()
	body, err := p.ReadArray(p.Size())
	if err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

// RunClientHandshake drives the initiator side of the handshake: send the
// greeting, read the server's DH parameters, derive the session key, and
// send back the client's public value. On success the connection is
// StatusEncrypted; on any error it is StatusNotConnected.
func (c *Connection) RunClientHandshake(dhBase string) error {
	c.setStatus(StatusConnecting)
	if err := writeGreeting(c.socket); err != nil {
		c.Fail("handshake_write_greeting", err)
		return handshakeError(err)
	}
	c.setStatus(StatusWaitingEncryption)

	expected := 16 + len(dhBase) + 2*cryptutil.KeyHex
	raw := make([]byte, expected)
	if _, err := io.ReadFull(c.socket, raw); err != nil {
		c.Fail("handshake_read_params", err)
		return handshakeError(err)
	}

	p := packet.New()
	if err := p.WriteArray(raw); err != nil {
		c.Fail("handshake_parse_params", err)
		return handshakeError(err)
	}
	p.Rewind()

	confirm, err := p.ReadU32BE()
	if err != nil || confirm != 0 {
		c.Fail("handshake_parse_params", ErrUnexpectedGreeting)
		return handshakeError(ErrUnexpectedGreeting)
	}
	base, err := p.ReadStringLen32(codec.Utf8)
	if err != nil {
		c.Fail("handshake_parse_params", err)
		return handshakeError(err)
	}
	if base != dhBase {
		c.Fail("handshake_base_mismatch", ErrBaseMismatch)
		return handshakeError(ErrBaseMismatch)
	}
	primeHex, err := p.ReadStringLen32(codec.Utf8)
	if err != nil {
		c.Fail("handshake_parse_params", err)
		return handshakeError(err)
	}
	serverPublicHex, err := p.ReadStringLen32(codec.Utf8)
	if err != nil {
		c.Fail("handshake_parse_params", err)
		return handshakeError(err)
	}

	dh, err := cryptutil.LoadDHHex(primeHex)
	if err != nil {
		c.Fail("handshake_load_dh", err)
		return handshakeError(err)
	}
	shared, err := dh.Shared(serverPublicHex)
	if err != nil {
		c.Fail("handshake_compute_shared", err)
		return handshakeError(err)
	}
	block, err := cryptutil.NewBlowfishCipher(cryptutil.SessionKey(shared))
	if err != nil {
		c.Fail("handshake_derive_key", err)
		return handshakeError(err)
	}

	if err := writeLengthPrefixedString(c.socket, dh.PublicHex()); err != nil {
		c.Fail("handshake_send_public", err)
		return handshakeError(err)
	}

	c.dh = dh
	c.block = block
	c.setStatus(StatusEncrypted)
	return nil
}

// RunServerHandshake drives the acceptor side of the handshake using a DH
// parameter set the listener already generated (or loaded) once and
// shares, by value, across every accepted connection.
func (c *Connection) RunServerHandshake(dh *cryptutil.DHContext, dhBase string) error {
	c.setStatus(StatusWaitingEncryption)
	if err := readGreeting(c.socket); err != nil {
		c.Fail("handshake_read_greeting", err)
		return handshakeError(err)
	}

	var confirm [4]byte
	binary.BigEndian.PutUint32(confirm[:], 0)
	if _, err := c.socket.Write(confirm[:]); err != nil {
		c.Fail("handshake_write_params", err)
		return handshakeError(err)
	}
	if err := writeLengthPrefixedString(c.socket, dhBase); err != nil {
		c.Fail("handshake_write_params", err)
		return handshakeError(err)
	}
	if err := writeLengthPrefixedString(c.socket, dh.PrimeHex()); err != nil {
		c.Fail("handshake_write_params", err)
		return handshakeError(err)
	}
	if err := writeLengthPrefixedString(c.socket, dh.PublicHex()); err != nil {
		c.Fail("handshake_write_params", err)
		return handshakeError(err)
	}

	expected := 4 + cryptutil.KeyHex
	raw := make([]byte, expected)
	if _, err := io.ReadFull(c.socket, raw); err != nil {
		c.Fail("handshake_read_client_public", err)
		return handshakeError(err)
	}
	p := packet.New()
	if err := p.WriteArray(raw); err != nil {
		c.Fail("handshake_parse_client_public", err)
		return handshakeError(err)
	}
	p.Rewind()
	clientPublicHex, err := p.ReadStringLen32(codec.Utf8)
	if err != nil {
		c.Fail("handshake_parse_client_public", err)
		return handshakeError(err)
	}

	shared, err := dh.Shared(clientPublicHex)
	if err != nil {
		c.Fail("handshake_compute_shared", err)
		return handshakeError(err)
	}
	block, err := cryptutil.NewBlowfishCipher(cryptutil.SessionKey(shared))
	if err != nil {
		c.Fail("handshake_derive_key", err)
		return handshakeError(err)
	}

	c.dh = dh
	c.block = block
	c.setStatus(StatusEncrypted)
	return nil
}
