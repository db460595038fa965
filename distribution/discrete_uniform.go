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
	"fmt"
	"math"

	"github.com/kparrigan/mathnet-numerics/control"
	"github.com/kparrigan/mathnet-numerics/random"
	"github.com/pkg/errors"
)

// DiscreteUniform is the discrete uniform distribution over the
// integers lower, lower+1, ..., upper.
type DiscreteUniform struct {
	lower int
	upper int
	// Source of the raw values used for sampling
	source random.Source
	// Settings consulted when the bounds change
	control *control.Settings
}

// Option configures a DiscreteUniform on construction.
type Option func(*DiscreteUniform) error

// WithSource sets the random source used for sampling.
func WithSource(src random.Source) Option {
	return func(d *DiscreteUniform) error {
		return d.SetRandomSource(src)
	}
}

// WithControl sets the settings that decide whether the bounds
// are checked. Without it control.Default is used.
func WithControl(c *control.Settings) Option {
	return func(d *DiscreteUniform) error {
		d.control = c
		return nil
	}
}

// NewDiscreteUniform returns an instance of the DiscreteUniform
// distribution with the given inclusive bounds. It samples from
// random.Default unless another source is set with WithSource.
// Returns ErrInvalidParameter if checking is enabled and
// lower > upper.
func NewDiscreteUniform(lower, upper int, opts ...Option) (*DiscreteUniform, error) {
	d := &DiscreteUniform{
		control: control.Default,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if d.source == nil {
		d.source = random.Default()
	}
	if err := d.SetParameters(lower, upper); err != nil {
		return nil, err
	}
	return d, nil
}

// SetParameters validates the pair of bounds and commits both of them.
// On error neither bound is changed.
func (d *DiscreteUniform) SetParameters(lower, upper int) error {
	if err := validate(d.control, lower, upper); err != nil {
		return err
	}
	d.lower = lower
	d.upper = upper
	return nil
}

// LowerBound returns the inclusive lower bound.
func (d *DiscreteUniform) LowerBound() int {
	return d.lower
}

// SetLowerBound changes the lower bound, checking it against
// the current upper bound.
func (d *DiscreteUniform) SetLowerBound(lower int) error {
	return d.SetParameters(lower, d.upper)
}

// UpperBound returns the inclusive upper bound.
func (d *DiscreteUniform) UpperBound() int {
	return d.upper
}

// SetUpperBound changes the upper bound, checking it against
// the current lower bound.
func (d *DiscreteUniform) SetUpperBound(upper int) error {
	return d.SetParameters(d.lower, upper)
}

// RandomSource returns the source used for sampling.
func (d *DiscreteUniform) RandomSource() random.Source {
	return d.source
}

// SetRandomSource replaces the source used for sampling.
// Returns ErrInvalidArgument for a nil source, keeping the
// previous one.
func (d *DiscreteUniform) SetRandomSource(src random.Source) error {
	if src == nil {
		return errors.Wrap(ErrInvalidArgument, "random source must not be nil")
	}
	d.source = src
	return nil
}

// width is the number of outcomes as a float, so that it does
// not overflow for wide intervals.
func (d *DiscreteUniform) width() float64 {
	return float64(d.upper) - float64(d.lower) + 1
}

// Mean returns (lower + upper) / 2.
func (d *DiscreteUniform) Mean() float64 {
	return (float64(d.lower) + float64(d.upper)) / 2
}

// Variance returns ((upper - lower + 1)^2 - 1) / 12.
func (d *DiscreteUniform) Variance() float64 {
	w := d.width()
	return (w*w - 1) / 12
}

// StdDev returns the standard deviation.
func (d *DiscreteUniform) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Entropy returns ln(upper - lower + 1).
func (d *DiscreteUniform) Entropy() float64 {
	return math.Log(d.width())
}

// Skewness is always 0 since the distribution is symmetric.
func (d *DiscreteUniform) Skewness() float64 {
	return 0
}

// Mode returns floor((lower + upper) / 2).
func (d *DiscreteUniform) Mode() int {
	return floorMidpoint(d.lower, d.upper)
}

// Median returns floor((lower + upper) / 2).
func (d *DiscreteUniform) Median() int {
	return floorMidpoint(d.lower, d.upper)
}

// Minimum returns the lower bound.
func (d *DiscreteUniform) Minimum() int {
	return d.lower
}

// Maximum returns the upper bound.
func (d *DiscreteUniform) Maximum() int {
	return d.upper
}

// floorMidpoint computes floor((a + b) / 2) without overflowing.
// Arithmetic shifts round toward negative infinity.
func floorMidpoint(a, b int) int {
	return (a >> 1) + (b >> 1) + (a & b & 1)
}

// Probability returns the probability of the outcome k.
func (d *DiscreteUniform) Probability(k int) float64 {
	if k >= d.lower && k <= d.upper {
		return 1 / d.width()
	}
	return 0
}

// ProbabilityLn returns the natural logarithm of the probability
// of the outcome k, negative infinity outside [lower, upper].
func (d *DiscreteUniform) ProbabilityLn(k int) float64 {
	if k >= d.lower && k <= d.upper {
		return -math.Log(d.width())
	}
	return math.Inf(-1)
}

// CumulativeDistribution returns the probability that an outcome
// is at most x.
func (d *DiscreteUniform) CumulativeDistribution(x float64) float64 {
	if x < float64(d.lower) {
		return 0
	}
	if x >= float64(d.upper) {
		return 1
	}
	return math.Min(1, (math.Floor(x)-float64(d.lower)+1)/d.width())
}

// Sample draws a single value. The bounds are not checked.
func (d *DiscreteUniform) Sample() int {
	return drawSample(d.source, d.lower, d.upper)
}

// Samples returns an unbounded lazy Sequence of draws. Every pull
// reads the current bounds and random source of d, so changes to d
// apply to the values pulled afterwards.
func (d *DiscreteUniform) Samples() *Sequence {
	return newSequence(func() int {
		return drawSample(d.source, d.lower, d.upper)
	})
}

func (d *DiscreteUniform) String() string {
	return fmt.Sprintf("DiscreteUniform(Lower = %d, Upper = %d)", d.lower, d.upper)
}

// drawSample reduces a raw value of src modulo the number of
// outcomes and shifts it by lower. The result carries the modulo
// bias of the reduction. Nothing is checked here.
//
// The width is computed in uint64 and the shift wraps, so the result
// stays in range even for [math.MinInt, math.MaxInt], whose width of
// 2^64 wraps to 0.
func drawSample(src random.Source, lower, upper int) int {
	w := uint64(upper-lower) + 1
	if w == 0 {
		return lower + int(src.Int63())
	}
	return lower + int(uint64(src.Int63())%w)
}
