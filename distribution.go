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

// analyzeDistribution summarizes a byte sequence: the number of distinct
// byte values it contains, and the highest multiplicity of any single value.
// An empty sequence reports (0, 0).
func analyzeDistribution(b []byte) (unique, peak int) {
	if len(b) == 0 {
		return 0, 0
	}

	var counts [256]int
	for _, c := range b {
		counts[c]++
	}

	for _, n := range counts {
		if n == 0 {
			continue
		}
		unique++
		if n > peak {
			peak = n
		}
	}

	return unique, peak
}
