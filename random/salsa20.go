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
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/salsa20"
)

var _ Source = &Salsa20{}

// Salsa20 is a deterministic Source. Values are taken from the
// salsa20 key stream determined by key, using a fresh nonce for
// every draw, so the same key always yields the same sequence.
type Salsa20 struct {
	key     *[32]byte
	mu      sync.Mutex
	counter uint64
}

// NewSalsa20 returns an instance of the Salsa20 source.
// The key is copied.
func NewSalsa20(key *[32]byte) *Salsa20 {
	k := *key
	return &Salsa20{
		key: &k,
	}
}

// Int63 returns the next value of the key stream.
func (s *Salsa20) Int63() int64 {
	s.mu.Lock()
	n := s.counter
	s.counter++
	s.mu.Unlock()

	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, n)
	in := make([]byte, 8)
	out := make([]byte, 8)

	salsa20.XORKeyStream(out, in, nonce, s.key)

	return int64(binary.LittleEndian.Uint64(out) >> 1)
}
