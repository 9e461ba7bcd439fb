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

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	c, err := Load([]string{"-file-key", "00112233445566778899aabbccddeeff", "-file-iv", "0011223344556677"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ListenAddress != "any" || c.Port != 10666 || c.FileMagic != "CHED" || c.DHPrime != "" {
		t.Errorf("defaults = %+v, want listen=any port=10666 magic=CHED and no DH prime", c)
	}
}

func TestLoadValid(t *testing.T) {
	c, err := Load([]string{
		"-listen", "any",
		"-port", "10999",
		"-file-key", "000102030405060708090a0b0c0d0e0f",
		"-file-iv", "0001020304050607",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Addr() != ":10999" {
		t.Errorf("Addr() = %q, want %q", c.Addr(), ":10999")
	}
	if len(c.FileKey) != 16 || len(c.FileIV) != 8 {
		t.Errorf("FileKey/FileIV lengths = %d/%d, want 16/8", len(c.FileKey), len(c.FileIV))
	}
}

func TestValidateRejectsBadMagic(t *testing.T) {
	c := &Config{FileMagic: "TOOLONG", FileKey: make([]byte, 16), FileIV: make([]byte, 8)}
	if err := c.Validate(); err != ErrInvalidMagic {
		t.Errorf("Validate() = %v, want ErrInvalidMagic", err)
	}
}
