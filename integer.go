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

package acph

import (
	"encoding/binary"
	"fmt"
)

// BuildInts64 builds a tree over a set of 64-bit integers, each encoded as 8 bytes, little-endian, so that
// the tree is reproducible across platforms regardless of native byte order.
// ints and payloads must have equal length, and ints must be pairwise
// distinct.
func BuildInts64(ints []int64, payloads []Payload, opts ...Option) (*Tree, error) {
	if len(ints) != len(payloads) {
		return nil, fmt.Errorf("%d keys, %d payloads: %w", len(ints), len(payloads), ErrLengthMismatch)
	}

	keys := make([][]byte, len(ints))
	for i, v := range ints {
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, uint64(v))
		keys[i] = b
	}

	return BuildBinary(keys, payloads, opts...)
}

// LookupInt64 returns the payload associated with v and reports whether v
// was present in the tree.
func (t *Tree) LookupInt64(v int64) (Payload, bool) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return t.Lookup(b)
}
