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

//go:build !linux

package ring

import "errors"

func pageSize() int {
	return 4096
}

// newMirrorMapped always fails on platforms without a Linux-style
// memfd_create/MAP_FIXED path; Ring falls back to a plain buffer and
// splits views at the wrap point instead.
func newMirrorMapped(capacity int) ([]byte, func() error, error) {
	return nil, nil, errors.New("ring: mirror mapping not implemented on this platform")
}
