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

// Package acph implements Adaptive Columnar Perfect Hashing: given a static
// set of keys, each associated with an opaque payload, it builds an
// immutable lookup structure that answers membership queries and returns the
// associated payload with at most one full-key comparison.
//
// # Design
//
// A tree is built once, from a finite set of keys, and never mutated again.
// Each node in the tree picks the byte column of the input keys that best
// separates them, and finds the smallest perfect hash - a (prime, width)
// pair - that routes every distinct byte value at that column to its own
// slot. Keys that still collide (same byte at that column) are grouped and
// the process recurses on the sub-population, choosing that group's column
// afresh from column 0, until every group holds a single key.
//
// Unlike a single flat perfect hash over the whole key set, the column
// choice and the (prime, width) pair are both local to a node: the structure
// adapts itself layer by layer to whatever part of the keyspace it is
// currently discriminating, which is where "adaptive" and "columnar" in the
// name come from.
//
// # Usage
//
//	tree, err := acph.BuildStrings([]string{"Mr Smith", "Mr Jones"}, []acph.Payload{0, 1})
//	if err != nil {
//		// err wraps acph.ErrDuplicateKey if two keys were byte-identical.
//	}
//	payload, ok := tree.Lookup([]byte("Mr Smith"))
//
// # Non-goals
//
// The tree is immutable once built: there is no insert, update, or delete.
// There is no persistence format, no thread-safe mutation path, and no
// cryptographic guarantee on the hash function - it is a fast, deterministic
// separator, not a MAC. Perfection is only guaranteed per node, not across
// the whole tree.
package acph
