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

// Package distribution includes discrete probability distributions
// with their statistical properties, probability functions and
// samplers.
//
// Package distribution provides the DiscreteUniform distribution over
// an inclusive integer interval [lower, upper]. Sampling draws from a
// random.Source, which is injected and can be replaced at any time.
// Parameter checking follows control.Settings; when checking is
// disabled the caller is responsible for lower <= upper and the
// results for an inverted interval are meaningless.
//
// A DiscreteUniform is not safe for concurrent mutation. Reads and
// the pure computations may be shared freely.
package distribution
