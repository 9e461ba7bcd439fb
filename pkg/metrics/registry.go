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

// Package metrics is an in-process registry of named int64 counters,
// organized into groups that log together. The registry half of the
// source system's metrics package is kept; the protobuf-backed
// export/time-series half is not, since it depends on generated code this
// module does not produce (see DESIGN.md).
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/comphack/lobbycore/pkg/log"
)

var metricMap sync.Map

// Metric holds a named int64 value safe for concurrent use.
type Metric struct {
	name  string
	value atomic.Int64
}

// Name returns the metric's name within its group.
func (m *Metric) Name() string { return m.name }

// Add adjusts the metric by delta and returns the new value.
func (m *Metric) Add(delta int64) int64 { return m.value.Add(delta) }

// Load returns the metric's current value.
func (m *Metric) Load() int64 { return m.value.Load() }

// MetricGroup holds every metric registered under the same group name.
type MetricGroup struct {
	name    string
	metrics sync.Map
}

// NewLogFields builds log.Fields from every metric currently in the group.
func (g *MetricGroup) NewLogFields() log.Fields {
	f := log.Fields{}
	g.metrics.Range(func(k, v any) bool {
		metric := v.(*Metric)
		f[metric.Name()] = metric.Load()
		return true
	})
	return f
}

// RegisterMetric registers metricName under groupName, returning the
// existing Metric if one is already registered under that pair.
func RegisterMetric(groupName, metricName string) *Metric {
	group, _ := metricMap.LoadOrStore(groupName, &MetricGroup{name: groupName})
	metricGroup := group.(*MetricGroup)
	metric, _ := metricGroup.metrics.LoadOrStore(metricName, &Metric{name: metricName})
	return metric.(*Metric)
}

// GetMetricGroupByName returns the named group, or nil if nothing has been
// registered under it.
func GetMetricGroupByName(groupName string) *MetricGroup {
	group, ok := metricMap.Load(groupName)
	if !ok {
		return nil
	}
	return group.(*MetricGroup)
}

// LogSnapshot writes every registered group's current values to the log at
// info level, groups sorted by name so output is diffable across runs.
func LogSnapshot() {
	var names []string
	metricMap.Range(func(k, v any) bool {
		names = append(names, k.(string))
		return true
	})
	sort.Strings(names)
	for _, name := range names {
		group := GetMetricGroupByName(name)
		if group == nil {
			continue
		}
		log.WithFields(group.NewLogFields()).Infof(fmt.Sprintf("[metrics - %s]", strings.ToLower(name)))
	}
}
