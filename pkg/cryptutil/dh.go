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

package cryptutil

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

const (
	// KeyBits is the size of a generated DH prime, in bits.
	KeyBits = 1024
	// KeyBytes is KeyBits expressed in bytes.
	KeyBytes = KeyBits / 8
	// KeyHex is the number of hex characters a left-zero-padded public
	// value or prime occupies.
	KeyHex = KeyBytes * 2
)

var dhBase = big.NewInt(2)

// DHContext holds one side's Diffie-Hellman state: a prime shared with the
// peer, and this side's private exponent and derived public value.
//
// No suitable ecosystem Diffie-Hellman implementation appears anywhere in
// the retrieval corpus, so this is built directly on math/big; see
// DESIGN.md.
type DHContext struct {
	prime   *big.Int
	private *big.Int
	public  *big.Int
}

// GenerateDH produces a fresh KeyBits-bit prime and a random private
// exponent, and derives the corresponding public value.
func GenerateDH() (*DHContext, error) {
	prime, err := rand.Prime(rand.Reader, KeyBits)
	if err != nil {
		return nil, err
	}
	return newDHContext(prime)
}

// LoadDHHex reconstructs a context from a persisted prime given as a hex
// string, generating a fresh private exponent.
func LoadDHHex(primeHex string) (*DHContext, error) {
	prime, ok := new(big.Int).SetString(primeHex, 16)
	if !ok {
		return nil, ErrInvalidHex
	}
	return newDHContext(prime)
}

// LoadDHBytes reconstructs a context from a persisted prime given as
// big-endian bytes, generating a fresh private exponent.
func LoadDHBytes(primeBytes []byte) (*DHContext, error) {
	prime := new(big.Int).SetBytes(primeBytes)
	return newDHContext(prime)
}

func newDHContext(prime *big.Int) (*DHContext, error) {
	private, err := rand.Int(rand.Reader, prime)
	if err != nil {
		return nil, err
	}
	public := new(big.Int).Exp(dhBase, private, prime)
	return &DHContext{prime: prime, private: private, public: public}, nil
}

// Save returns the prime as KeyBytes big-endian bytes, left-zero-padded.
func (c *DHContext) Save() []byte {
	return leftPad(c.prime.Bytes(), KeyBytes)
}

// PublicHex returns this side's public value as a KeyHex-character,
// left-zero-padded lowercase hex string.
func (c *DHContext) PublicHex() string {
	return hex.EncodeToString(leftPad(c.public.Bytes(), KeyBytes))
}

// PrimeHex returns the shared prime as a KeyHex-character, left-zero-padded
// lowercase hex string, as sent over the wire during the server handshake.
func (c *DHContext) PrimeHex() string {
	return hex.EncodeToString(leftPad(c.prime.Bytes(), KeyBytes))
}

// Shared computes the 128-byte shared secret from the peer's public value,
// given as a hex string.
func (c *DHContext) Shared(peerPublicHex string) ([]byte, error) {
	peerPublic, ok := new(big.Int).SetString(peerPublicHex, 16)
	if !ok {
		return nil, ErrInvalidHex
	}
	shared := new(big.Int).Exp(peerPublic, c.private, c.prime)
	return leftPad(shared.Bytes(), KeyBytes), nil
}

// SessionKey derives the Blowfish session key from a shared secret: the
// first 8 bytes.
func SessionKey(shared []byte) []byte {
	if len(shared) < 8 {
		padded := make([]byte, 8)
		copy(padded[8-len(shared):], shared)
		return padded
	}
	return shared[:8]
}

func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b[len(b)-size:]
	}
	padded := make([]byte, size)
	copy(padded[size-len(b):], b)
	return padded
}

// ComputeSharedHex is the small-modulus exponentiation gen_diffie_hellman
// exposes directly: it interprets base, modulus, and exponent as hex
// strings, computes base^exponent mod modulus, and hex-encodes the result.
// padWidth left-zero-pads the returned string to at least that many hex
// characters; 0 leaves it at the natural (always even) byte-aligned width.
func ComputeSharedHex(baseHex, modulusHex, exponentHex string, padWidth int) (string, error) {
	base, ok := new(big.Int).SetString(baseHex, 16)
	if !ok {
		return "", ErrInvalidHex
	}
	modulus, ok := new(big.Int).SetString(modulusHex, 16)
	if !ok {
		return "", ErrInvalidHex
	}
	exponent, ok := new(big.Int).SetString(exponentHex, 16)
	if !ok {
		return "", ErrInvalidHex
	}

	result := new(big.Int).Exp(base, exponent, modulus)
	b := result.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}
	s := hex.EncodeToString(b)
	if len(s)%2 != 0 {
		s = "0" + s
	}
	for len(s) < padWidth {
		s = "0" + s
	}
	return s, nil
}
