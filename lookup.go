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

import "bytes"

// lookupBinary walks n for key, descending through branch slots one column
// at a time, and compares the full key against a leaf's stored key exactly
// once before returning.
func lookupBinary(key []byte, n *node) (Payload, bool) {
	for {
		c := n.columnByte(key)
		s := n.hash(c)
		slot := &n.slots[s]

		switch slot.kind {
		case slotEmpty:
			return nil, false
		case slotLeaf:
			if !bytes.Equal(slot.key, key) {
				return nil, false
			}
			return slot.payload, true
		case slotBranch:
			n = slot.child
		}
	}
}

// lookupCharacter looks up a single byte in a character tree built by
// buildCharacter. A character tree is one level deep by construction,
// so no descent is needed.
func lookupCharacter(c byte, n *node) (Payload, bool) {
	s := n.hash(c)
	slot := &n.slots[s]
	if slot.kind != slotLeaf || slot.char != c {
		return nil, false
	}
	return slot.payload, true
}

// Lookup returns the payload associated with key and reports whether key was
// present in the tree. Lookup panics if the tree was built by BuildBytes;
// use LookupByte for those trees.
func (t *Tree) Lookup(key []byte) (Payload, bool) {
	if t.single {
		panic("acph: Lookup called on a tree built by BuildBytes, use LookupByte")
	}
	return lookupBinary(key, t.root)
}

// LookupByte returns the payload associated with the single byte c and
// reports whether c was present in the tree. LookupByte panics if the tree
// was not built by BuildBytes.
func (t *Tree) LookupByte(c byte) (Payload, bool) {
	if !t.single {
		panic("acph: LookupByte called on a tree not built by BuildBytes, use Lookup")
	}
	return lookupCharacter(c, t.root)
}
