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
	"fmt"
	"io"

	"github.com/gammazero/deque"
)

// LeafPrinter formats a leaf's key and payload for Dump and DumpLevels. The
// default used when none is given prints the key as a hex-encoded binary
// string, truncated past 20 bytes.
type LeafPrinter func(key []byte, payload Payload) string

func defaultLeafPrinter(key []byte, _ Payload) string {
	n := len(key)
	truncated := n > 20
	if truncated {
		n = 20
	}
	s := fmt.Sprintf("0x%x", key[:n])
	if truncated {
		s += "..."
	}
	return s
}

// Dump writes a human-readable, indented rendering of the tree to w, one
// line per node header and one line per slot, in depth-first order.
// A nil printer uses the default.
func (t *Tree) Dump(w io.Writer, printer LeafPrinter) error {
	if printer == nil {
		printer = defaultLeafPrinter
	}
	return dumpNode(w, t.root, 0, printer)
}

func dumpNode(w io.Writer, n *node, level int, printer LeafPrinter) error {
	indent := func() string {
		b := make([]byte, level*3)
		for i := range b {
			b[i] = ' '
		}
		return string(b)
	}

	if _, err := fmt.Fprintf(w, "%sslots %d, column %d, prime %d\n", indent(), len(n.slots), n.column, n.prime); err != nil {
		return fmt.Errorf("could not write node header: %w", err)
	}

	for i := range n.slots {
		s := &n.slots[i]
		switch s.kind {
		case slotEmpty:
			if _, err := fmt.Fprintf(w, "%sslot %d: empty\n", indent(), i); err != nil {
				return fmt.Errorf("could not write empty slot: %w", err)
			}
		case slotLeaf:
			if _, err := fmt.Fprintf(w, "%sslot %d: 0x%02x -> %s\n", indent(), i, s.char, printer(s.key, s.payload)); err != nil {
				return fmt.Errorf("could not write leaf slot: %w", err)
			}
		case slotBranch:
			if _, err := fmt.Fprintf(w, "%sslot %d: 0x%02x -> child\n", indent(), i, s.char); err != nil {
				return fmt.Errorf("could not write branch slot: %w", err)
			}
			if err := dumpNode(w, s.child, level+1, printer); err != nil {
				return err
			}
		}
	}

	return nil
}

// DumpLevels writes the same information as Dump, but in breadth-first
// order: every node at depth 0, then every node at depth 1, and so on.
// Useful for inspecting how population thins out level by level on a wide
// tree.
func (t *Tree) DumpLevels(w io.Writer, printer LeafPrinter) error {
	if printer == nil {
		printer = defaultLeafPrinter
	}

	q := deque.New(64)
	q.PushBack(levelNode{n: t.root, level: 0})

	for q.Len() > 0 {
		ln := q.PopFront().(levelNode)
		n := ln.n

		indent := fmt.Sprintf("L%d ", ln.level)
		if _, err := fmt.Fprintf(w, "%sslots %d, column %d, prime %d\n", indent, len(n.slots), n.column, n.prime); err != nil {
			return fmt.Errorf("could not write node header: %w", err)
		}

		for i := range n.slots {
			s := &n.slots[i]
			switch s.kind {
			case slotEmpty:
				if _, err := fmt.Fprintf(w, "%sslot %d: empty\n", indent, i); err != nil {
					return fmt.Errorf("could not write empty slot: %w", err)
				}
			case slotLeaf:
				if _, err := fmt.Fprintf(w, "%sslot %d: 0x%02x -> %s\n", indent, i, s.char, printer(s.key, s.payload)); err != nil {
					return fmt.Errorf("could not write leaf slot: %w", err)
				}
			case slotBranch:
				if _, err := fmt.Fprintf(w, "%sslot %d: 0x%02x -> child\n", indent, i, s.char); err != nil {
					return fmt.Errorf("could not write branch slot: %w", err)
				}
				q.PushBack(levelNode{n: s.child, level: ln.level + 1})
			}
		}
	}

	return nil
}

// levelNode pairs a node with its depth for the breadth-first walk in
// DumpLevels.
type levelNode struct {
	n     *node
	level int
}
