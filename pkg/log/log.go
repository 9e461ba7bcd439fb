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

// Package log wraps github.com/sirupsen/logrus with the two formatters the
// core needs (a quiet CLI formatter for the compcrypt tools, a field-carrying
// daemon formatter for lobbyd) and the field names the connection FSM
// attaches to every fatal error it logs.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Field keys attached to connection FSM error log lines.
const (
	FieldRemoteAddr = "remote_addr"
	FieldConnID     = "conn_id"
	FieldErrorKind  = "error_kind"
)

var std = logrus.New()

func init() {
	std.SetOutput(os.Stdout)
	std.SetFormatter(&CliFormatter{})
}

// SetOutput redirects where log lines are written.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// SetFormatter installs the formatter used to render log entries.
func SetFormatter(f logrus.Formatter) {
	std.SetFormatter(f)
}

// SetLevel sets the minimum level that is emitted.
func SetLevel(level logrus.Level) {
	std.SetLevel(level)
}

// Fields is a shorthand for a set of structured log fields.
type Fields = logrus.Fields

// WithFields returns an entry pre-populated with the given fields.
func WithFields(fields Fields) *logrus.Entry {
	return std.WithFields(fields)
}

// WithError returns an entry pre-populated with an "error" field.
func WithError(err error) *logrus.Entry {
	return std.WithError(err)
}

func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { std.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { std.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }

// IsLevelEnabled returns true if logging at the given level would produce
// output with the current logger configuration.
func IsLevelEnabled(level logrus.Level) bool {
	return std.IsLevelEnabled(level)
}

// ConnectionError logs exactly one error line for a fatal connection
// failure, including the remote address (when known) and the error kind,
// per the propagation policy: every fatal error emits exactly one error
// log line and never a stack trace.
func ConnectionError(remoteAddr string, connID uint64, kind string, err error) {
	WithFields(Fields{
		FieldRemoteAddr: remoteAddr,
		FieldConnID:     connID,
		FieldErrorKind:  kind,
	}).Error(err)
}

// ConnectionClosed logs a connection teardown that was caused by the peer
// going away cleanly (closed socket, EOF) rather than a protocol or I/O
// fault. It is logged at debug level, not error, so a normal disconnect
// doesn't masquerade as a fatal error in the daemon's default log output.
func ConnectionClosed(remoteAddr string, connID uint64, kind string) {
	WithFields(Fields{
		FieldRemoteAddr: remoteAddr,
		FieldConnID:     connID,
		FieldErrorKind:  kind,
	}).Debug("connection closed by peer")
}
