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
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// LogPrefix is a fixed string printed at the beginning of each line with
// DaemonFormatter. It can be set as a build time variable to help
// distinguish log output from multiple deployments.
var LogPrefix = ""

// CliFormatter is a log formatter that works best for command output, such
// as the compcrypt tools. It doesn't print time, level, or field data.
type CliFormatter struct{}

var _ logrus.Formatter = &CliFormatter{}

func (f *CliFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf *bytes.Buffer
	if entry.Buffer != nil {
		buf = entry.Buffer
	} else {
		buf = &bytes.Buffer{}
	}
	buf.WriteString(entry.Message)
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// DaemonFormatter is the formatter used by lobbyd. It always includes a
// timestamp, level, and message, plus any structured fields sorted by key
// so log lines are diffable.
type DaemonFormatter struct {
	NoTimestamp bool
}

var _ logrus.Formatter = &DaemonFormatter{}

func (f *DaemonFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	userKeys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		userKeys = append(userKeys, k)
	}
	sort.Strings(userKeys)

	var buf *bytes.Buffer
	if entry.Buffer != nil {
		buf = entry.Buffer
	} else {
		buf = &bytes.Buffer{}
	}

	buf.WriteString(LogPrefix)
	if !f.NoTimestamp {
		buf.WriteString(entry.Time.Format(time.RFC3339))
		buf.WriteString(" ")
	}
	buf.WriteString(strings.ToUpper(entry.Level.String()))
	buf.WriteString(" ")
	buf.WriteString(entry.Message)
	for _, k := range userKeys {
		fmt.Fprintf(buf, " %s=%v", k, entry.Data[k])
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// NilFormatter prints no log. It is used by embedders of the core (such as
// a test harness or an alternative front-end) that want to disable logging
// without threading a verbosity flag through every call site.
type NilFormatter struct{}

var _ logrus.Formatter = &NilFormatter{}

func (f *NilFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return []byte{}, nil
}
