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

package metrics

import "testing"

func TestRegisterMetricReturnsSameInstance(t *testing.T) {
	a := RegisterMetric("test-group", "widgets")
	b := RegisterMetric("test-group", "widgets")
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Load() = %d, want 3 (RegisterMetric should return the same *Metric)", b.Load())
	}
}

func TestMetricGroupNewLogFields(t *testing.T) {
	RegisterMetric("test-fields", "a").Add(1)
	RegisterMetric("test-fields", "b").Add(2)

	group := GetMetricGroupByName("test-fields")
	if group == nil {
		t.Fatal("GetMetricGroupByName returned nil for a registered group")
	}
	fields := group.NewLogFields()
	if fields["a"] != int64(1) || fields["b"] != int64(2) {
		t.Errorf("fields = %v, want a=1 b=2", fields)
	}
}

func TestGetMetricGroupByNameMissing(t *testing.T) {
	if GetMetricGroupByName("no-such-group") != nil {
		t.Error("GetMetricGroupByName should return nil for an unregistered group")
	}
}
