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
	"crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
)

var _ Source = &Crypto{}

// Crypto samples values from the operating system's
// cryptographically secure random number generator.
type Crypto struct{}

// NewCrypto returns an instance of the Crypto source.
func NewCrypto() *Crypto {
	return &Crypto{}
}

// Int63 reads 8 random bytes and clears the sign bit.
// It panics if the system generator cannot be read.
func (c *Crypto) Int63() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(errors.Wrap(err, "cannot read system randomness"))
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1)
}
