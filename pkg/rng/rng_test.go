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

package rng

import (
	"testing"
	"time"
)

func TestIntRangeBounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := IntRange(5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("IntRange(5, 10) = %d, want [5, 10)", v)
		}
	}
}

func TestIntRangeEmptyRange(t *testing.T) {
	if v := IntRange(10, 10); v != 10 {
		t.Errorf("IntRange(10, 10) = %d, want 10", v)
	}
}

func TestJitterBounds(t *testing.T) {
	base := 10 * time.Second
	for i := 0; i < 1000; i++ {
		v := Jitter(base, 0.2)
		if v < base || v >= base+2*time.Second {
			t.Fatalf("Jitter(10s, 0.2) = %v, want [10s, 12s)", v)
		}
	}
}

func TestJitterZeroFraction(t *testing.T) {
	base := 5 * time.Second
	if v := Jitter(base, 0); v != base {
		t.Errorf("Jitter with zero fraction = %v, want %v", v, base)
	}
}
