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

// Command compcrypt encrypts or decrypts a single file under the
// Blowfish-CBC encrypted file format.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/comphack/lobbycore/pkg/cli"
	"github.com/comphack/lobbycore/pkg/cryptutil"
	"github.com/comphack/lobbycore/pkg/log"
)

var (
	magic  = flag.String("magic", "CHED", "4-byte magic identifying the encrypted file format")
	keyHex = flag.String("key", "", "hex-encoded 16-byte Blowfish key")
	ivHex  = flag.String("iv", "", "hex-encoded 8-byte Blowfish IV")
)

func init() {
	cli.SetBinaryName("compcrypt")
	log.SetFormatter(&log.CliFormatter{})

	cli.RegisterCallback([]string{"", "encrypt"}, requireTwoPaths, runEncrypt)
	cli.RegisterCallback([]string{"", "decrypt"}, requireTwoPaths, runDecrypt)
	cli.RegisterCallback([]string{"", "help"}, func([]string) error { return nil }, runHelp)
}

func requireTwoPaths(args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: %s {encrypt|decrypt} IN OUT", os.Args[0])
	}
	return cli.UnexpectedArgsError(args, 4)
}

func loadKeyIV() ([]byte, []byte, error) {
	key, err := hex.DecodeString(*keyHex)
	if err != nil || len(key) != 16 {
		return nil, nil, fmt.Errorf("-key must be 32 hex characters (16 bytes)")
	}
	iv, err := hex.DecodeString(*ivHex)
	if err != nil || len(iv) != 8 {
		return nil, nil, fmt.Errorf("-iv must be 16 hex characters (8 bytes)")
	}
	return key, iv, nil
}

func runEncrypt(args []string) error {
	key, iv, err := loadKeyIV()
	if err != nil {
		return err
	}
	plaintext, err := os.ReadFile(args[2])
	if err != nil {
		return err
	}
	ciphertext, err := cryptutil.EncryptFile(*magic, key, iv, plaintext)
	if err != nil {
		return err
	}
	return os.WriteFile(args[3], ciphertext, 0o644)
}

func runDecrypt(args []string) error {
	key, iv, err := loadKeyIV()
	if err != nil {
		return err
	}
	ciphertext, err := os.ReadFile(args[2])
	if err != nil {
		return err
	}
	plaintext, err := cryptutil.DecryptFile(*magic, key, iv, ciphertext)
	if err != nil {
		return err
	}
	return os.WriteFile(args[3], plaintext, 0o644)
}

func runHelp([]string) error {
	cli.PrintHelp("compcrypt", []cli.HelpEntry{
		{Cmd: "encrypt IN OUT", Help: []string{"encrypt IN, writing the result to OUT"}},
		{Cmd: "decrypt IN OUT", Help: []string{"decrypt IN, writing the result to OUT"}},
	})
	return nil
}

func main() {
	// -magic/-key/-iv must precede the command: compcrypt -key ... encrypt IN OUT.
	// flag.Parse stops at the first non-flag argument, leaving the command
	// and its positional arguments in flag.Args().
	flag.Parse()
	os.Args = append([]string{os.Args[0]}, flag.Args()...)

	if err := cli.ParseAndExecute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
