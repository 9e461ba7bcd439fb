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

package log

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestCliFormatterOmitsFieldsAndLevel(t *testing.T) {
	f := &CliFormatter{}
	out, err := f.Format(&logrus.Entry{
		Level:   logrus.ErrorLevel,
		Message: "handshake failed",
		Data:    logrus.Fields{"remote_addr": "10.0.0.1:1234"},
	})
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if got := string(out); got != "handshake failed\n" {
		t.Errorf("CliFormatter output = %q, want %q", got, "handshake failed\n")
	}
}

func TestDaemonFormatterIncludesFields(t *testing.T) {
	f := &DaemonFormatter{NoTimestamp: true}
	out, err := f.Format(&logrus.Entry{
		Level:   logrus.ErrorLevel,
		Message: "framing error",
		Data:    logrus.Fields{"conn_id": uint64(7)},
	})
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "ERROR framing error") {
		t.Errorf("DaemonFormatter output = %q, want it to contain %q", got, "ERROR framing error")
	}
	if !strings.Contains(got, "conn_id=7") {
		t.Errorf("DaemonFormatter output = %q, want it to contain %q", got, "conn_id=7")
	}
}

func TestNilFormatterProducesNoOutput(t *testing.T) {
	f := &NilFormatter{}
	out, err := f.Format(&logrus.Entry{Message: "should not appear"})
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("NilFormatter output = %q, want empty", out)
	}
}
