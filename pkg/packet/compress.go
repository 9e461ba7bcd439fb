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

package packet

import (
	"bytes"
	"compress/flate"
	"io"
)

// Compress reads n bytes starting at the current position, deflates them
// at the given level, and replaces those n bytes in place with the
// compressed form. The cursor is left just past the compressed data. It
// returns the number of compressed bytes written.
//
// No compression library appears anywhere in the retrieval corpus, so
// this leans on compress/flate rather than inventing a codec; see
// DESIGN.md.
func (p *Buffer) Compress(n int, level int) (int, error) {
	raw, err := p.ReadArray(n)
	if err != nil {
		return 0, err
	}

	var out bytes.Buffer
	w, err := flate.NewWriter(&out, level)
	if err != nil {
		return 0, boundsError("Compress", p.position, p.size, MaxPacketSize, err)
	}
	if _, err := w.Write(raw); err != nil {
		return 0, boundsError("Compress", p.position, p.size, MaxPacketSize, err)
	}
	if err := w.Close(); err != nil {
		return 0, boundsError("Compress", p.position, p.size, MaxPacketSize, err)
	}

	compressed := out.Bytes()
	start := p.position - n
	tail := append([]byte(nil), p.buf[p.position:p.size]...)
	if err := p.Seek(start); err != nil {
		return 0, err
	}
	p.EraseRight()
	if err := p.WriteArray(compressed); err != nil {
		return 0, err
	}
	if err := p.WriteArray(tail); err != nil {
		return 0, err
	}
	p.position = start + len(compressed)
	return len(compressed), nil
}

// Decompress reads n bytes starting at the current position, inflates
// them, and replaces those n bytes in place with the decompressed form.
// The cursor is left just past the decompressed data. It returns the
// number of decompressed bytes written.
func (p *Buffer) Decompress(n int) (int, error) {
	raw, err := p.ReadArray(n)
	if err != nil {
		return 0, err
	}

	r := flate.NewReader(bytes.NewReader(raw))
	defer r.Close()
	decompressed, err := io.ReadAll(r)
	if err != nil {
		return 0, boundsError("Decompress", p.position, p.size, MaxPacketSize, err)
	}

	start := p.position - n
	if err := p.Seek(start); err != nil {
		return 0, err
	}
	p.EraseRight()
	if err := p.WriteArray(decompressed); err != nil {
		return 0, err
	}
	return len(decompressed), nil
}
