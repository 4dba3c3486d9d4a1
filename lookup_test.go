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

func TestLookupMissingKey(t *testing.T) {
	tree, err := acph.BuildStrings([]string{"Mr Smith", "Mr Jones"}, []acph.Payload{0, 1})
	require.NoError(t, err)

	_, ok := tree.Lookup([]byte("Mr Brown"))
	assert.False(t, ok)
}

func TestLookupPanicsOnWrongTreeKind(t *testing.T) {
	binary, err := acph.BuildStrings([]string{"a"}, []acph.Payload{1})
	require.NoError(t, err)
	assert.Panics(t, func() {
		binary.LookupByte('a')
	})

	chars, err := acph.BuildBytes([]byte{'a'}, []acph.Payload{1})
	require.NoError(t, err)
	assert.Panics(t, func() {
		chars.Lookup([]byte("a"))
	})
}

func TestLookupIntegerMissZero(t *testing.T) {
	tree, err := acph.BuildInts64([]int64{1, 2, 3, -7, 1000}, []acph.Payload{"a", "b", "c", "d", "e"})
	require.NoError(t, err)

	for _, v := range []int64{1, 2, 3, -7, 1000} {
		_, ok := tree.LookupInt64(v)
		assert.True(t, ok, "expected %d to be found", v)
	}

	_, ok := tree.LookupInt64(0)
	assert.False(t, ok)
}

func TestLookupFloat64(t *testing.T) {
	tree, err := acph.BuildFloat64s([]float64{1.5, -2.25, 0, 3.14159}, []acph.Payload{1, 2, 3, 4})
	require.NoError(t, err)

	payload, ok := tree.LookupFloat64(3.14159)
	require.True(t, ok)
	assert.Equal(t, acph.Payload(4), payload)

	_, ok = tree.LookupFloat64(2.71828)
	assert.False(t, ok)
}
