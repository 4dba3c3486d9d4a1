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

// Stats reports how efficiently a tree uses its slot tables. SlotsUsed is
// the total number of slots allocated across every node in the tree, not
// the number of keys stored.
type Stats struct {
	SlotsUsed       int // total slot count across every node in the tree
	SlotsEmpty      int // slots that hold neither a leaf nor a branch
	MaxCompareDepth int // longest root-to-leaf chain of branch nodes, plus one
}

// stats walks n and its descendants, accumulating the total slot count and
// the empty slot count, and reports the deepest branch chain at or beneath n.
// Every node contributes at least one comparison, even one with no branch
// slots at all, since reaching n and testing its slots is itself one
// comparison; a branch slot can only add to that by the depth of its child.
func (n *node) stats() (total, empty, maxDepth int) {
	total = len(n.slots)

	for i := range n.slots {
		switch n.slots[i].kind {
		case slotEmpty:
			empty++
		case slotBranch:
			childTotal, childEmpty, childDepth := n.slots[i].child.stats()
			total += childTotal
			empty += childEmpty
			if childDepth > maxDepth {
				maxDepth = childDepth
			}
		}
	}

	return total, empty, maxDepth + 1
}

// Efficiency reports Stats for the whole tree.
func (t *Tree) Efficiency() Stats {
	total, empty, depth := t.root.stats()
	return Stats{
		SlotsUsed:       total,
		SlotsEmpty:      empty,
		MaxCompareDepth: depth,
	}
}

// SlotEfficiency returns the fraction of slots in the tree that are occupied
// by a leaf or a branch, in the range [0, 1]. It reports 0 for an empty tree.
func (s Stats) SlotEfficiency() float64 {
	if s.SlotsUsed == 0 {
		return 0
	}
	occupied := s.SlotsUsed - s.SlotsEmpty
	return float64(occupied) / float64(s.SlotsUsed)
}
