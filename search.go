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

// primeTable is the fixed, ordered list of multipliers the per-node hash
// search probes. It is part of the contract: two implementations
// that disagree on this list build different trees from identical input.
var primeTable = [...]byte{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 113, 127, 131, 137, 149, 151, 157, 163,
	167, 173, 211, 223, 227, 229, 233, 239, 241, 251,
}

// searchHash finds the smallest width and a prime from primeTable such that
// every distinct byte value in column maps to a distinct slot. peak
// is the caller's precomputed lower bound on the worst slot's load and
// unique is the distinct-byte count of column, both from analyzeDistribution.
//
// The returned node's slots carry count and char but no key, payload, or
// child yet - populating those is the builder's job, since only the builder
// knows which keys and payloads belong to each slot.
//
// The search always succeeds: width==identityWidth with the identity hash
// can never collide, so the loop is guaranteed to terminate with a result
// on or before that width.
func searchHash(column []byte, peak, unique int) *node {
	bestScore := len(column) + 1
	var bestPrime, bestWidth byte
	var bestSlots [identityWidth + 1]slot

	var scratch [identityWidth + 1]slot

	for width := unique - 1; width <= maxPrimeSearchWidth; width++ {
		w := byte(width)

		for _, prime := range primeTable {
			for i := 0; i <= width; i++ {
				scratch[i] = slot{}
			}

			collision := false
			score := peak

			for _, c := range column {
				s := hashByte(c, prime, w)
				switch scratch[s].count {
				case 0:
					scratch[s].char = c
					scratch[s].count = 1
				default:
					if scratch[s].char != c {
						collision = true
					} else {
						scratch[s].count++
						if scratch[s].count > score {
							score = scratch[s].count
						}
					}
				}
				if collision {
					break
				}
			}

			if collision {
				continue
			}

			if score < bestScore {
				bestScore = score
				bestPrime = prime
				bestWidth = w
				copy(bestSlots[:width+1], scratch[:width+1])
			}

			if bestScore == peak {
				goto done
			}
		}
	}

done:
	n := newNode(bestPrime, bestWidth)
	for i := range n.slots {
		if bestSlots[i].count == 0 {
			continue
		}
		n.slots[i].char = bestSlots[i].char
		n.slots[i].count = bestSlots[i].count
	}

	return n
}
