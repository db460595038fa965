/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package distribution

import "iter"

// Sequence is an unbounded lazy stream of samples. Each call to Next
// computes a fresh value; nothing is cached and a Sequence cannot be
// rewound. Sample again by creating a new Sequence.
type Sequence struct {
	next func() int
}

func newSequence(next func() int) *Sequence {
	return &Sequence{next: next}
}

// Next draws the next value.
func (s *Sequence) Next() int {
	return s.next()
}

// Take pulls the next n values.
func (s *Sequence) Take(n int) []int {
	if n <= 0 {
		return []int{}
	}
	vals := make([]int, n)
	for i := range vals {
		vals[i] = s.next()
	}
	return vals
}

// All returns an iterator over the remaining values. It never
// ends on its own; the caller must break out of the loop.
func (s *Sequence) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			if !yield(s.next()) {
				return
			}
		}
	}
}
