// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

// Package metrics exposes a built acph.Tree's Efficiency as Prometheus
// gauges, for the acph-bench command.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/adesutherland/acph"
)

// Tree wraps a tree's efficiency stats as a set of Prometheus gauges.
type Tree struct {
	slotsUsed       prometheus.Gauge
	slotsEmpty      prometheus.Gauge
	maxCompareDepth prometheus.Gauge
	slotEfficiency  prometheus.Gauge
}

// NewTree registers the gauges with the default Prometheus registry.
func NewTree() *Tree {
	return &Tree{
		slotsUsed: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "acph_slots_used",
			Help: "total number of slots allocated across every node in the tree",
		}),
		slotsEmpty: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "acph_slots_empty",
			Help: "number of allocated slots that hold neither a leaf nor a branch",
		}),
		maxCompareDepth: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "acph_max_compare_depth",
			Help: "longest root-to-leaf chain of branch nodes in the tree, plus one",
		}),
		slotEfficiency: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "acph_slot_efficiency",
			Help: "fraction of slots in the tree occupied by a leaf or a branch",
		}),
	}
}

// Observe updates the gauges from a tree's current Efficiency snapshot.
func (t *Tree) Observe(stats acph.Stats) {
	t.slotsUsed.Set(float64(stats.SlotsUsed))
	t.slotsEmpty.Set(float64(stats.SlotsEmpty))
	t.maxCompareDepth.Set(float64(stats.MaxCompareDepth))
	t.slotEfficiency.Set(stats.SlotEfficiency())
}
