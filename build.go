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

	"github.com/rs/zerolog"
)

// Tree is an immutable lookup structure built once from a finite key set. The
// zero value is not usable; construct one with BuildBinary or one of the
// typed builders (BuildStrings, BuildInts64, BuildFloat64s, BuildBytes).
type Tree struct {
	root   *node
	single bool // true when built by buildCharacter: lookups go through LookupByte
	log    zerolog.Logger
}

// options holds the state every functional Option mutates.
type options struct {
	log zerolog.Logger
}

// Option configures a builder. See WithLogger.
type Option func(*options)

// WithLogger attaches a logger the builder uses to report its progress: one
// Debug event per node built, recording the population size, the chosen
// column, and the winning (prime, width) pair. The default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// BuildBinary builds a tree over arbitrary byte-slice keys. keys and
// payloads must have equal length, and keys must be pairwise distinct;
// BuildBinary returns an error wrapping ErrLengthMismatch or ErrDuplicateKey
// otherwise.
func BuildBinary(keys [][]byte, payloads []Payload, opts ...Option) (*Tree, error) {
	if len(keys) != len(payloads) {
		return nil, fmt.Errorf("%d keys, %d payloads: %w", len(keys), len(payloads), ErrLengthMismatch)
	}

	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if len(keys) == 0 {
		return &Tree{root: newNode(primeTable[0], 0), log: o.log}, nil
	}

	b := &builder{log: o.log}
	root, err := b.build(keys, payloads)
	if err != nil {
		return nil, fmt.Errorf("could not build tree: %w", err)
	}

	return &Tree{root: root, log: o.log}, nil
}

// builder carries the state shared across one BuildBinary call's recursion.
type builder struct {
	log zerolog.Logger
}

// build constructs the node that discriminates keys (all distinct,
// non-empty), choosing its own column independently of any ancestor.
// It owns copies of the keys it stores in leaves, so the caller's slices can
// be reused or discarded.
func (b *builder) build(keys [][]byte, payloads []Payload) (*node, error) {
	col, buf, sentinel := b.selectColumn(keys)

	if sentinel {
		if len(keys) > 1 {
			return nil, fmt.Errorf("%d keys identical from column %d on: %w", len(keys), col, ErrDuplicateKey)
		}
		// A single remaining key with no further bytes to discriminate on:
		// fall through and build the (trivial, one-slot) node below exactly
		// as any other column, so the shape of the tree stays uniform.
	}

	unique, peak := analyzeDistribution(buf)
	n := searchHash(buf, peak, unique)
	n.column = col

	b.log.Debug().
		Int("column", col).
		Int("population", len(keys)).
		Int("prime", int(n.prime)).
		Int("width", int(n.width)+1).
		Msg("node built")

	// Group keys/payloads by the slot their column byte lands in.
	type group struct {
		keys     [][]byte
		payloads []Payload
	}
	groups := make(map[byte]*group, len(n.slots))
	for i, key := range keys {
		c := buf[i]
		s := n.hash(c)
		g := groups[s]
		if g == nil {
			g = &group{}
			groups[s] = g
		}
		g.keys = append(g.keys, key)
		g.payloads = append(g.payloads, payloads[i])
	}

	for s := range n.slots {
		g, ok := groups[byte(s)]
		if !ok {
			continue
		}

		if len(g.keys) == 1 {
			n.slots[s].kind = slotLeaf
			n.slots[s].key = append([]byte(nil), g.keys[0]...)
			n.slots[s].payload = g.payloads[0]
			continue
		}

		child, err := b.build(g.keys, g.payloads)
		if err != nil {
			return nil, err
		}
		n.slots[s].kind = slotBranch
		n.slots[s].child = child
	}

	return n, nil
}

// selectColumn picks the byte column that best discriminates keys: the one
// whose byte distribution has the lowest peak multiplicity. It always scans starting at column 0, independently of which
// columns an ancestor node already chose - a column an ancestor already
// found uniform for a larger population can still be the one that separates
// this smaller subgroup. It extracts the winning column's bytes (one per
// key, substituting the sentinel 0 past a key's length) into the returned
// buf.
//
// Scanning stops once every key is exhausted at the current column (every
// byte is the sentinel 0): going further could never change the picture, so
// that column is evaluated once and then the search ends. If no earlier
// column ever beat that terminal one on peak, sentinel is reported true and
// the caller must treat the population as duplicates (unless there is only
// one key left).
func (b *builder) selectColumn(keys [][]byte) (col int, buf []byte, sentinel bool) {
	maxLen := 0
	for _, k := range keys {
		if len(k) > maxLen {
			maxLen = len(k)
		}
	}

	bestPeak := len(keys) + 1
	bestBuf := make([]byte, len(keys))
	scratch := make([]byte, len(keys))

	for c := 0; c <= maxLen; c++ {
		allSentinel := true
		for i, key := range keys {
			if c < len(key) {
				scratch[i] = key[c]
				allSentinel = false
			} else {
				scratch[i] = 0
			}
		}

		_, peak := analyzeDistribution(scratch)

		if peak < bestPeak {
			bestPeak = peak
			col = c
			copy(bestBuf, scratch)
		}

		if allSentinel {
			break
		}
	}

	unique, _ := analyzeDistribution(bestBuf)
	sentinel = unique == 1

	return col, bestBuf, sentinel
}

// buildCharacter builds a tree over single bytes. Unlike BuildBinary, duplicate bytes are not an error:
// the last occurrence of a repeated byte wins its slot, since there is no
// column left to discriminate between them (see DESIGN.md Open Questions).
func buildCharacter(chars []byte, payloads []Payload) *node {
	unique, peak := analyzeDistribution(chars)
	if len(chars) == 0 {
		unique, peak = 0, 0
	}

	n := searchHash(chars, peak, unique)
	n.column = 0

	for i, c := range chars {
		s := n.hash(c)
		n.slots[s].kind = slotLeaf
		n.slots[s].char = c
		n.slots[s].key = []byte{c}
		n.slots[s].payload = payloads[i]
	}

	return n
}

// BuildBytes builds a tree over single-byte keys.
// chars and payloads must have equal length. Repeated bytes are allowed: the
// last occurrence of a byte in chars determines its payload.
func BuildBytes(chars []byte, payloads []Payload, opts ...Option) (*Tree, error) {
	if len(chars) != len(payloads) {
		return nil, fmt.Errorf("%d keys, %d payloads: %w", len(chars), len(payloads), ErrLengthMismatch)
	}

	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	root := buildCharacter(chars, payloads)
	return &Tree{root: root, single: true, log: o.log}, nil
}

// Close releases any resources held by the tree. The Go runtime's garbage
// collector reclaims a tree's nodes once it is unreachable, so Close has
// nothing to do; it exists for API symmetry with the reference
// implementation's destroy operation.
func (t *Tree) Close() error {
	return nil
}
