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

// Package random includes sources of uniformly distributed
// non-negative integers.
//
// Package random provides the Source interface along with
// different implementations of this interface. Its primary purpose
// is to feed the samplers of package distribution, which only rely
// on a source being uniform over its own range [0, 2^63).
//
// Any math/rand.Source can be used as a Source directly.
package random
