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
	"math"
)

// BuildFloat64s builds a tree over a set of 64-bit floats, each encoded via its IEEE 754 bit pattern as 8
// bytes, little-endian. floats and payloads must have equal length, and
// floats must be pairwise distinct (note that +0 and -0 encode to different
// keys, and NaN keys compare distinct by bit pattern, not by IEEE equality).
func BuildFloat64s(floats []float64, payloads []Payload, opts ...Option) (*Tree, error) {
	if len(floats) != len(payloads) {
		return nil, fmt.Errorf("%d keys, %d payloads: %w", len(floats), len(payloads), ErrLengthMismatch)
	}

	keys := make([][]byte, len(floats))
	for i, v := range floats {
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, math.Float64bits(v))
		keys[i] = b
	}

	return BuildBinary(keys, payloads, opts...)
}

// LookupFloat64 returns the payload associated with v and reports whether v
// was present in the tree.
func (t *Tree) LookupFloat64(v float64) (Payload, bool) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return t.Lookup(b)
}
