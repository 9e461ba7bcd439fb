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
	"crypto/cipher"
	"encoding/binary"

	"github.com/comphack/lobbycore/pkg/packet"
)

const frameHeaderSize = 8

// EncodeFrame encrypts plaintext under block in ECB mode and wraps it in
// the steady-state wire header:
//
//	u32_be padded_size   u32_be real_size   ciphertext
func EncodeFrame(block cipher.Block, plaintext []byte) []byte {
	body := make([]byte, len(plaintext))
	copy(body, plaintext)
	body = EncryptECB(block, body)

	out := make([]byte, frameHeaderSize+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(len(body)))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(plaintext)))
	copy(out[frameHeaderSize:], body)
	return out
}

// DecodeFrame parses a steady-state frame header out of frame, decrypts
// the ciphertext under block, and returns the plaintext truncated to the
// declared real_size. frame may contain trailing bytes belonging to the
// next frame; only padded_size+8 bytes are consumed.
func DecodeFrame(block cipher.Block, frame []byte) (plaintext []byte, consumed int, err error) {
	if len(frame) < frameHeaderSize {
		return nil, 0, ErrTruncatedFrame
	}
	paddedSize := binary.BigEndian.Uint32(frame[0:4])
	realSize := binary.BigEndian.Uint32(frame[4:8])
	if realSize > paddedSize {
		return nil, 0, ErrRealSizeTooLarge
	}
	if paddedSize > uint32(packet.MaxPacketSize-frameHeaderSize) {
		return nil, 0, ErrPaddedSizeTooLarge
	}
	if paddedSize%uint32(block.BlockSize()) != 0 {
		return nil, 0, ErrInvalidBlockSize
	}
	total := frameHeaderSize + int(paddedSize)
	if len(frame) < total {
		return nil, 0, ErrTruncatedFrame
	}

	body := make([]byte, paddedSize)
	copy(body, frame[frameHeaderSize:total])
	body = DecryptECB(block, body, int(realSize))
	return body, total, nil
}

// EncryptFile builds the encrypted-file envelope:
//
//	char[4] magic   u32_le original_size   Blowfish-CBC(plaintext)
func EncryptFile(magic string, key, iv []byte, plaintext []byte) ([]byte, error) {
	if len(magic) != 4 {
		return nil, ErrMagicMismatch
	}
	block, err := NewBlowfishCipher(key)
	if err != nil {
		return nil, err
	}
	ivCopy := make([]byte, len(iv))
	copy(ivCopy, iv)

	body := make([]byte, len(plaintext))
	copy(body, plaintext)
	body = EncryptCBC(block, body, ivCopy)

	out := make([]byte, 8+len(body))
	copy(out[0:4], magic)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(plaintext)))
	copy(out[8:], body)
	return out, nil
}

// DecryptFile reverses EncryptFile, verifying the magic and truncating
// the decrypted body to the original size recorded in the header.
func DecryptFile(magic string, key, iv []byte, data []byte) ([]byte, error) {
	if len(data) < 8 {
		return nil, ErrTruncatedFrame
	}
	if string(data[0:4]) != magic {
		return nil, ErrMagicMismatch
	}
	originalSize := binary.LittleEndian.Uint32(data[4:8])

	block, err := NewBlowfishCipher(key)
	if err != nil {
		return nil, err
	}
	ivCopy := make([]byte, len(iv))
	copy(ivCopy, iv)

	body := make([]byte, len(data)-8)
	copy(body, data[8:])
	body = DecryptCBC(block, body, ivCopy)

	if int(originalSize) > len(body) {
		return nil, ErrRealSizeTooLarge
	}
	return body[:originalSize], nil
}
