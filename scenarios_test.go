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
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adesutherland/acph"
)

// TestScenarioNames mirrors the reference test suite's first scenario: a
// handful of short, everyday names, none a prefix of another.
func TestScenarioNames(t *testing.T) {
	names := []string{"Mr Smith", "Mr Jones", "Ms Leonard", "Ms James", "Mrs Peabody", "Mr Smile"}
	payloads := make([]acph.Payload, len(names))
	for i := range names {
		payloads[i] = i
	}

	tree, err := acph.BuildStrings(names, payloads)
	require.NoError(t, err)

	for i, name := range names {
		payload, ok := tree.LookupString(name)
		require.True(t, ok)
		assert.Equal(t, i, payload)
	}

	_, ok := tree.LookupString("NeverAValidValueInTheseTests")
	assert.False(t, ok)
}

// TestScenarioNestedPrefixes mirrors the reference test suite's second
// scenario: every key is a prefix of the next, forcing a deep recursive
// split purely on length.
func TestScenarioNestedPrefixes(t *testing.T) {
	keys := []string{"AB", "ABC", "ABCD", "ABCDE", "ABCDEF"}
	payloads := []acph.Payload{2, 3, 4, 5, 6}

	tree, err := acph.BuildStrings(keys, payloads)
	require.NoError(t, err)

	for i, key := range keys {
		payload, ok := tree.LookupString(key)
		require.True(t, ok)
		assert.Equal(t, payloads[i], payload)
	}

	_, ok := tree.LookupString("A")
	assert.False(t, ok)
	_, ok = tree.LookupString("ABCDEFG")
	assert.False(t, ok)
}

// TestScenarioExactDuplicate mirrors the reference test suite's duplicate
// detection scenario.
func TestScenarioExactDuplicate(t *testing.T) {
	_, err := acph.BuildStrings([]string{"AB", "AB"}, []acph.Payload{1, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, acph.ErrDuplicateKey)
}

// TestScenarioFullByteAlphabet exercises the single-byte specialization
// over every possible byte value at once.
func TestScenarioFullByteAlphabet(t *testing.T) {
	chars := make([]byte, 256)
	payloads := make([]acph.Payload, 256)
	for i := range chars {
		chars[i] = byte(i)
		payloads[i] = i
	}

	tree, err := acph.BuildBytes(chars, payloads)
	require.NoError(t, err)

	for i := 0; i < 256; i++ {
		payload, ok := tree.LookupByte(byte(i))
		require.True(t, ok)
		assert.Equal(t, i, payload)
	}
}

// TestScenarioIntegersWithMiss mirrors the reference test suite's integer
// scenario, including a lookup for a value never inserted.
func TestScenarioIntegersWithMiss(t *testing.T) {
	ints := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9000, 100000}
	payloads := []acph.Payload{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine thousand", "one hundred thousand"}

	tree, err := acph.BuildInts64(ints, payloads)
	require.NoError(t, err)

	for i, v := range ints {
		payload, ok := tree.LookupInt64(v)
		require.True(t, ok)
		assert.Equal(t, payloads[i], payload)
	}

	_, ok := tree.LookupInt64(0)
	assert.False(t, ok)
}

// TestScenarioManyRandomStrings builds a tree over a large population of
// pseudo-random strings and checks that every key is found, every absent
// key is reported missing, and the tree's worst-case comparison depth
// stays below the population size rather than degenerating to one node per
// key.
func TestScenarioManyRandomStrings(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 1000

	seen := make(map[string]bool, n)
	keys := make([]string, 0, n)
	for len(keys) < n {
		b := make([]byte, 8+rng.Intn(8))
		for i := range b {
			b[i] = byte('a' + rng.Intn(26))
		}
		s := string(b)
		if seen[s] {
			continue
		}
		seen[s] = true
		keys = append(keys, s)
	}

	payloads := make([]acph.Payload, n)
	for i := range payloads {
		payloads[i] = i
	}

	tree, err := acph.BuildStrings(keys, payloads)
	require.NoError(t, err)

	for i, key := range keys {
		payload, ok := tree.LookupString(key)
		require.True(t, ok)
		assert.Equal(t, i, payload)
	}

	for i := 0; i < 100; i++ {
		miss := fmt.Sprintf("__not_a_key__%d", i)
		_, ok := tree.LookupString(miss)
		assert.False(t, ok)
	}

	stats := tree.Efficiency()
	assert.Less(t, stats.MaxCompareDepth, n, "max compare depth should not degenerate to one node per key")
}
