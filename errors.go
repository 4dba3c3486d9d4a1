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

import "errors"

// ErrDuplicateKey is returned by the binary tree builders when two or more
// input keys are byte-identical. Callers can check for it with errors.Is.
var ErrDuplicateKey = errors.New("acph: duplicate key in input")

// ErrLengthMismatch is returned when the keys and payloads given to a
// builder do not have the same length.
var ErrLengthMismatch = errors.New("acph: keys and payloads must have equal length")
