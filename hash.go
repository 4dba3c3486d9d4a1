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

// hashByte computes a node's per-slot hash of byte c under multiplier prime
// and zero-based width. The expression is part of the on-disk-free
// contract: two builds of the same input must pick the same tree, so every
// implementation must reproduce it exactly, including the width==255
// shortcut.
//
// The multiplication is carried out in 16-bit width before the modulus is
// applied. Doing it in 8 bits with wraparound, as a naive byte-for-byte port
// of the C expression would, changes which configurations collide and
// desyncs the tree from the reference construction.
func hashByte(c, prime, width byte) byte {
	if width == identityWidth {
		return c
	}
	a := uint16(prime)
	x := (a - 1) ^ uint16(c)
	return byte((x * a) % (uint16(width) + 1))
}
