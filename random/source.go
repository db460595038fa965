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

package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source produces uniformly distributed non-negative integers.
type Source interface {
	// Int63 returns a non-negative pseudo-random 63-bit integer.
	Int63() int64
}

var _ Source = &System{}

// System is a math/rand based Source that is safe for
// concurrent use.
type System struct {
	mu  sync.Mutex
	src rand.Source
}

// NewSystem returns an instance of the System source
// seeded with the provided seed.
func NewSystem(seed int64) *System {
	return &System{
		src: rand.NewSource(seed),
	}
}

// Int63 returns the next value of the underlying generator.
func (s *System) Int63() int64 {
	s.mu.Lock()
	v := s.src.Int63()
	s.mu.Unlock()
	return v
}

var (
	defaultOnce   sync.Once
	defaultSource *System
)

// Default returns the process-wide System source, seeded
// from the clock on first use.
func Default() Source {
	defaultOnce.Do(func() {
		defaultSource = NewSystem(time.Now().UnixNano())
	})
	return defaultSource
}
