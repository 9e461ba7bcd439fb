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
	"fmt"
	"strings"
)

const dumpBytesPerLine = 16

// HexDump renders the buffer's valid bytes (0..size) as a multi-line hex
// dump, 16 bytes per line, with an offset column, a hex column split into
// two 8-byte groups, and an ASCII sidebar with '.' standing in for
// non-printable bytes. The byte at the current cursor position, if any, is
// bracketed with '{' '}' instead of surrounded by spaces so a reader can
// spot where a parse stopped.
func (p *Buffer) HexDump() string {
	var b strings.Builder
	cursor := p.position
	for lineStart := 0; lineStart < p.size; lineStart += dumpBytesPerLine {
		lineEnd := lineStart + dumpBytesPerLine
		if lineEnd > p.size {
			lineEnd = p.size
		}
		line := p.buf[lineStart:lineEnd]

		if cursor == lineStart {
			fmt.Fprintf(&b, "%04X {", lineStart)
		} else {
			fmt.Fprintf(&b, "%04X  ", lineStart)
		}

		for i := 0; i < dumpBytesPerLine; i++ {
			off := lineStart + i
			if i == 8 {
				b.WriteByte(' ')
			}
			switch {
			case off >= lineEnd:
				b.WriteString("   ")
			case off == cursor:
				fmt.Fprintf(&b, "%02X}", line[i])
			case off == cursor-1 && cursor < lineEnd:
				fmt.Fprintf(&b, "%02X{", line[i])
			default:
				fmt.Fprintf(&b, "%02X ", line[i])
			}
		}

		b.WriteString(" ")
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c >= 0x20 && c < 0x7f {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump is an alias for HexDump kept for callers migrating from packet
// inspection tools that expect a Dump method.
func (p *Buffer) Dump() string { return p.HexDump() }
