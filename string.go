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

import "fmt"

// BuildStrings builds a tree over a set of strings,
// treating each string as its raw bytes. strings and payloads must have
// equal length, and strings must be pairwise distinct.
func BuildStrings(strings []string, payloads []Payload, opts ...Option) (*Tree, error) {
	if len(strings) != len(payloads) {
		return nil, fmt.Errorf("%d keys, %d payloads: %w", len(strings), len(payloads), ErrLengthMismatch)
	}

	keys := make([][]byte, len(strings))
	for i, s := range strings {
		keys[i] = []byte(s)
	}

	return BuildBinary(keys, payloads, opts...)
}

// LookupString returns the payload associated with s and reports whether s
// was present in the tree.
func (t *Tree) LookupString(s string) (Payload, bool) {
	return t.Lookup([]byte(s))
}
