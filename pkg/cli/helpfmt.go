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

package cli

import "github.com/comphack/lobbycore/pkg/log"

// HelpEntry describes one command line for PrintHelp: the invocation
// itself, plus one or more description lines printed indented below it.
type HelpEntry struct {
	Cmd  string
	Help []string
}

type helpFormatter struct {
	appName  string
	entries  []helpCmdEntry
	advanced []helpCmdEntry
}

type helpCmdEntry struct {
	cmd  string
	help []string
}

// PrintHelp writes a usage message for appName followed by entries.
func PrintHelp(appName string, entries []HelpEntry) {
	f := helpFormatter{appName: appName}
	for _, e := range entries {
		f.entries = append(f.entries, helpCmdEntry{cmd: e.Cmd, help: e.Help})
	}
	f.print()
}

func (m helpFormatter) print() {
	if m.appName != "" {
		log.Infof("Usage: %s <COMMAND> [<ARGS>]", m.appName)
		log.Infof("")
	}
	if len(m.entries) != 0 {
		log.Infof("Commands:")
		for _, entry := range m.entries {
			log.Infof("  %s", entry.cmd)
			for _, line := range entry.help {
				log.Infof("        %s", line)
			}
			log.Infof("")
		}
	}
	if len(m.advanced) != 0 {
		log.Infof("Commands for developers and experienced users:")
		for _, entry := range m.advanced {
			log.Infof("  %s", entry.cmd)
			for _, line := range entry.help {
				log.Infof("        %s", line)
			}
			log.Infof("")
		}
	}
}
