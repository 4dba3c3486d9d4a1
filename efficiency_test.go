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

package acph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adesutherland/acph"
)

func TestEfficiencySingleLevel(t *testing.T) {
	tree, err := acph.BuildStrings([]string{"a", "b", "c"}, []acph.Payload{1, 2, 3})
	require.NoError(t, err)

	stats := tree.Efficiency()
	assert.Equal(t, 1, stats.MaxCompareDepth)
	assert.Greater(t, stats.SlotsUsed, 0)
	assert.GreaterOrEqual(t, stats.SlotsUsed, stats.SlotsEmpty)
}

func TestEfficiencyDepthGrowsWithRecursion(t *testing.T) {
	tree, err := acph.BuildStrings(
		[]string{"AB", "ABC", "ABCD", "ABCDE", "ABCDEF"},
		[]acph.Payload{2, 3, 4, 5, 6},
	)
	require.NoError(t, err)

	stats := tree.Efficiency()
	assert.Greater(t, stats.MaxCompareDepth, 1)
}

func TestSlotEfficiencyRange(t *testing.T) {
	tree, err := acph.BuildBytes([]byte{'a', 'b', 'c', 'd'}, []acph.Payload{1, 2, 3, 4})
	require.NoError(t, err)

	eff := tree.Efficiency().SlotEfficiency()
	assert.GreaterOrEqual(t, eff, 0.0)
	assert.LessOrEqual(t, eff, 1.0)
}

func TestSlotEfficiencyEmptyTree(t *testing.T) {
	var s acph.Stats
	assert.Equal(t, 0.0, s.SlotEfficiency())
}
