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

import (
	"math"

	"github.com/kparrigan/mathnet-numerics/control"
	"github.com/kparrigan/mathnet-numerics/random"
	"github.com/pkg/errors"
)

// Sample draws a single value from the discrete uniform distribution
// over [lower, upper] without constructing a DiscreteUniform.
// The bounds are checked according to control.Default.
func Sample(src random.Source, lower, upper int) (int, error) {
	return SampleWith(control.Default, src, lower, upper)
}

// SampleWith is like Sample, checking the bounds according to c.
func SampleWith(c *control.Settings, src random.Source, lower, upper int) (int, error) {
	if err := checkSampler(c, src, lower, upper); err != nil {
		return 0, err
	}
	return drawSample(src, lower, upper), nil
}

// Samples returns an unbounded lazy Sequence of draws from the
// discrete uniform distribution over [lower, upper]. The bounds are
// checked once, according to control.Default.
func Samples(src random.Source, lower, upper int) (*Sequence, error) {
	return SamplesWith(control.Default, src, lower, upper)
}

// SamplesWith is like Samples, checking the bounds according to c.
func SamplesWith(c *control.Settings, src random.Source, lower, upper int) (*Sequence, error) {
	if err := checkSampler(c, src, lower, upper); err != nil {
		return nil, err
	}
	return newSequence(func() int {
		return drawSample(src, lower, upper)
	}), nil
}

// Fill overwrites every element of values with a draw from the
// discrete uniform distribution over [lower, upper].
func Fill(src random.Source, values []int, lower, upper int) error {
	if err := checkSampler(control.Default, src, lower, upper); err != nil {
		return err
	}
	for i := range values {
		values[i] = drawSample(src, lower, upper)
	}
	return nil
}

// PMF returns the probability of the outcome k under the discrete
// uniform distribution over [lower, upper].
func PMF(lower, upper, k int) (float64, error) {
	if err := validate(control.Default, lower, upper); err != nil {
		return 0, err
	}
	d := DiscreteUniform{lower: lower, upper: upper}
	return d.Probability(k), nil
}

// PMFLn returns the log probability of the outcome k under the
// discrete uniform distribution over [lower, upper].
func PMFLn(lower, upper, k int) (float64, error) {
	if err := validate(control.Default, lower, upper); err != nil {
		return math.NaN(), err
	}
	d := DiscreteUniform{lower: lower, upper: upper}
	return d.ProbabilityLn(k), nil
}

// CDF returns the probability that an outcome of the discrete
// uniform distribution over [lower, upper] is at most x.
func CDF(lower, upper int, x float64) (float64, error) {
	if err := validate(control.Default, lower, upper); err != nil {
		return 0, err
	}
	d := DiscreteUniform{lower: lower, upper: upper}
	return d.CumulativeDistribution(x), nil
}

func checkSampler(c *control.Settings, src random.Source, lower, upper int) error {
	if src == nil {
		return errors.Wrap(ErrInvalidArgument, "random source must not be nil")
	}
	return validate(c, lower, upper)
}
