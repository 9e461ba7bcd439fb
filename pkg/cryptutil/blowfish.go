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

	"golang.org/x/crypto/blowfish"
)

// NewBlowfishCipher constructs a Blowfish block cipher from a key of any
// length blowfish.NewCipher accepts.
func NewBlowfishCipher(key []byte) (cipher.Block, error) {
	block, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, ErrInvalidKeySize
	}
	return block, nil
}

// EncryptECB encrypts every 8-byte block of buf in place. If buf's length
// is not a multiple of the block size, the tail is treated as zero-padded
// and buf is grown to the next multiple of 8 before encrypting; the grown
// slice is returned.
func EncryptECB(block cipher.Block, buf []byte) []byte {
	bs := block.BlockSize()
	if rem := len(buf) % bs; rem != 0 {
		buf = append(buf, make([]byte, bs-rem)...)
	}
	for i := 0; i+bs <= len(buf); i += bs {
		block.Encrypt(buf[i:i+bs], buf[i:i+bs])
	}
	return buf
}

// DecryptECB decrypts every full 8-byte block of buf in place and ignores
// any partial tail shorter than the block size. If realSize is >= 0, the
// returned slice is truncated to that length; pass a negative realSize to
// keep the full decrypted length.
func DecryptECB(block cipher.Block, buf []byte, realSize int) []byte {
	bs := block.BlockSize()
	full := len(buf) - len(buf)%bs
	for i := 0; i+bs <= full; i += bs {
		block.Decrypt(buf[i:i+bs], buf[i:i+bs])
	}
	if realSize >= 0 && realSize <= full {
		return buf[:realSize]
	}
	return buf[:full]
}

// EncryptCBC XOR-chains and encrypts buf in place, padding a partial tail
// with zeros as EncryptECB does. iv is updated in place to the final
// ciphertext block so a caller can encrypt a stream incrementally across
// several calls.
func EncryptCBC(block cipher.Block, buf []byte, iv []byte) []byte {
	bs := block.BlockSize()
	if rem := len(buf) % bs; rem != 0 {
		buf = append(buf, make([]byte, bs-rem)...)
	}
	prev := iv
	for i := 0; i+bs <= len(buf); i += bs {
		chunk := buf[i : i+bs]
		for j := 0; j < bs; j++ {
			chunk[j] ^= prev[j]
		}
		block.Encrypt(chunk, chunk)
		prev = chunk
	}
	if len(buf) >= bs {
		copy(iv, buf[len(buf)-bs:])
	}
	return buf
}

// DecryptCBC reverses EncryptCBC. Any partial tail shorter than the block
// size is left untouched and excluded from the returned slice. iv is
// updated in place to the last observed ciphertext block.
func DecryptCBC(block cipher.Block, buf []byte, iv []byte) []byte {
	bs := block.BlockSize()
	full := len(buf) - len(buf)%bs
	prev := make([]byte, bs)
	copy(prev, iv)
	for i := 0; i+bs <= full; i += bs {
		chunk := buf[i : i+bs]
		cipherBlock := make([]byte, bs)
		copy(cipherBlock, chunk)
		block.Decrypt(chunk, chunk)
		for j := 0; j < bs; j++ {
			chunk[j] ^= prev[j]
		}
		prev = cipherBlock
	}
	copy(iv, prev)
	return buf[:full]
}
