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

// Package config loads the typed settings lobbyd and compcrypt need to
// run: the address to listen on, an optional persisted Diffie-Hellman
// prime, and the magic/key/IV that identify an encrypted file format. The
// source system hand-rolls its own CLI dispatch instead of pulling in a
// flag/config library, and no such library appears anywhere else in the
// retrieval corpus either, so this is built directly on the standard
// library's flag package (see DESIGN.md).
package config

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
)

// ErrInvalidMagic is returned when FileMagic is not exactly 4 bytes.
var ErrInvalidMagic = errors.New("config: file magic must be exactly 4 bytes")

// ErrInvalidKeyLen is returned when FileKey is not exactly 16 bytes.
var ErrInvalidKeyLen = errors.New("config: file key must be exactly 16 bytes")

// ErrInvalidIVLen is returned when FileIV is not exactly 8 bytes.
var ErrInvalidIVLen = errors.New("config: file IV must be exactly 8 bytes")

// Config holds every setting the lobby server and the file encryption
// tools need. ListenAddress may be "any" to bind every interface.
type Config struct {
	ListenAddress string
	Port          uint16
	DHPrime       string // hex-encoded, empty to generate one at startup
	FileMagic     string // exactly 4 ASCII bytes
	FileKey       []byte // exactly 16 bytes
	FileIV        []byte // exactly 8 bytes
}

// Addr returns the host:port pair Listen should bind, translating the
// "any" sentinel to an empty host.
func (c *Config) Addr() string {
	host := c.ListenAddress
	if host == "any" {
		host = ""
	}
	return fmt.Sprintf("%s:%d", host, c.Port)
}

// Validate checks that FileMagic, FileKey, and FileIV have the lengths the
// encrypted file format requires.
func (c *Config) Validate() error {
	if len(c.FileMagic) != 4 {
		return ErrInvalidMagic
	}
	if len(c.FileKey) != 16 {
		return ErrInvalidKeyLen
	}
	if len(c.FileIV) != 8 {
		return ErrInvalidIVLen
	}
	return nil
}

// Load parses args (typically os.Args[1:]) into a Config and validates it.
// -listen, -port, -dh-prime and -file-magic have defaults; -file-key and
// -file-iv have none, so Load fails unless both are given on the command
// line.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("lobbyd", flag.ContinueOnError)
	listenAddress := fs.String("listen", "any", "address to listen on, or \"any\" for every interface")
	port := fs.Uint("port", 10666, "TCP port to listen on")
	dhPrime := fs.String("dh-prime", "", "hex-encoded diffie-hellman prime to reuse across restarts (generated if empty)")
	fileMagic := fs.String("file-magic", "CHED", "4-byte magic identifying an encrypted file")
	fileKeyHex := fs.String("file-key", "", "hex-encoded 16-byte key for encrypted files")
	fileIVHex := fs.String("file-iv", "", "hex-encoded 8-byte IV for encrypted files")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fileKey, err := hex.DecodeString(*fileKeyHex)
	if err != nil {
		return nil, fmt.Errorf("config: decoding file-key: %w", err)
	}
	fileIV, err := hex.DecodeString(*fileIVHex)
	if err != nil {
		return nil, fmt.Errorf("config: decoding file-iv: %w", err)
	}

	c := &Config{
		ListenAddress: *listenAddress,
		Port:          uint16(*port),
		DHPrime:       *dhPrime,
		FileMagic:     *fileMagic,
		FileKey:       fileKey,
		FileIV:        fileIV,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
