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

package distribution_test

import (
	"math"
	"testing"

	"github.com/kparrigan/mathnet-numerics/distribution"
	"github.com/kparrigan/mathnet-numerics/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscreteUniform_Samples(t *testing.T) {
	d, err := distribution.NewDiscreteUniform(0, 9, distribution.WithSource(&counter{}))
	require.NoError(t, err)

	s := d.Samples()
	assert.Equal(t, []int{0, 1, 2}, s.Take(3))

	// bounds are read on every pull
	require.NoError(t, d.SetParameters(100, 101))
	assert.Equal(t, 101, s.Next())
	assert.Equal(t, 100, s.Next())

	// so is the source
	require.NoError(t, d.SetRandomSource(&counter{n: 1}))
	assert.Equal(t, 101, s.Next())
}

func TestSequence_NotRestartable(t *testing.T) {
	d, err := distribution.NewDiscreteUniform(0, 1<<40, distribution.WithSource(random.NewSystem(5)))
	require.NoError(t, err)

	s := d.Samples()
	first := s.Take(10)
	second := s.Take(10)
	assert.NotEqual(t, first, second, "a sequence should not replay its values")

	for _, v := range append(first, second...) {
		assert.True(t, d.Probability(v) > 0, "sampled value should be inside the range")
	}

	s1, err := distribution.Samples(random.NewSystem(5), -3, 3)
	require.NoError(t, err)
	a := s1.Take(20)
	b := s1.Take(20)
	assert.NotEqual(t, a, b, "a sequence should not replay its values")
	for _, v := range append(a, b...) {
		assert.True(t, v >= -3 && v <= 3)
	}
}

func TestSequence_Take(t *testing.T) {
	s, err := distribution.Samples(&counter{}, 0, 4)
	require.NoError(t, err)

	assert.Empty(t, s.Take(0))
	assert.Empty(t, s.Take(-1))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 0}, s.Take(6))
}

func TestSequence_All(t *testing.T) {
	s, err := distribution.Samples(&counter{}, 10, 12)
	require.NoError(t, err)

	var got []int
	for v := range s.All() {
		got = append(got, v)
		if len(got) == 5 {
			break
		}
	}
	assert.Equal(t, []int{10, 11, 12, 10, 11}, got)
	assert.Equal(t, 12, s.Next(), "All should consume the sequence")
}

func TestSample_Static(t *testing.T) {
	v, err := distribution.Sample(&counter{n: 7}, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = distribution.Sample(&counter{}, 4, 2)
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)

	_, err = distribution.SampleWith(unchecked, &counter{}, 4, 2)
	assert.NoError(t, err)

	_, err = distribution.Sample(nil, 0, 1)
	assert.ErrorIs(t, err, distribution.ErrInvalidArgument)

	src := random.NewCrypto()
	for i := 0; i < 1000; i++ {
		v, err := distribution.Sample(src, -1, 1)
		require.NoError(t, err)
		assert.True(t, v >= -1 && v <= 1)
	}
}

func TestSamples_Static(t *testing.T) {
	s, err := distribution.Samples(&counter{}, 3, 2)
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
	assert.Nil(t, s)

	s, err = distribution.SamplesWith(unchecked, &counter{}, 3, 2)
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = distribution.Samples(nil, 0, 1)
	assert.ErrorIs(t, err, distribution.ErrInvalidArgument)

	s, err = distribution.Samples(&counter{}, 5, 5)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, 5, s.Next())
	}
}

func TestFill(t *testing.T) {
	vals := make([]int, 8)
	require.NoError(t, distribution.Fill(&counter{}, vals, -1, 2))
	assert.Equal(t, []int{-1, 0, 1, 2, -1, 0, 1, 2}, vals)

	assert.ErrorIs(t, distribution.Fill(&counter{}, vals, 2, -1), distribution.ErrInvalidParameter)
	assert.Equal(t, []int{-1, 0, 1, 2, -1, 0, 1, 2}, vals, "a failed fill should leave values untouched")
}

func TestPMF_CDF_Static(t *testing.T) {
	p, err := distribution.PMF(0, 3, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, p, eps)

	p, err = distribution.PMF(0, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	lp, err := distribution.PMFLn(0, 3, 1)
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(4), lp, eps)

	lp, err = distribution.PMFLn(0, 3, -1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(lp, -1))

	c, err := distribution.CDF(0, 3, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c, eps)

	c, err = distribution.CDF(0, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c)

	_, err = distribution.PMF(3, 0, 1)
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
	_, err = distribution.PMFLn(3, 0, 1)
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
	_, err = distribution.CDF(3, 0, 1)
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
}
