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

// Package runner evaluates and samples a configured discrete
// uniform distribution for the discreteuniform tool.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/bmizerany/perks/quantile"
	"github.com/dustin/go-humanize"
	"github.com/kparrigan/mathnet-numerics/distribution"
	"github.com/kparrigan/mathnet-numerics/internal/config"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// maxTableRows bounds the PMF/CDF table printed by Stats.
const maxTableRows = 50

// Build creates the distribution described by conf.
func Build(conf *config.Config) (*distribution.DiscreteUniform, error) {
	src, err := conf.NewSource()
	if err != nil {
		return nil, err
	}
	d, err := distribution.NewDiscreteUniform(conf.Lower, conf.Upper,
		distribution.WithControl(conf.Control()),
		distribution.WithSource(src),
	)
	if err != nil {
		return nil, errors.Wrap(err, "cannot build distribution")
	}
	return d, nil
}

// Stats writes the moments of d followed by a table of its
// probability and cumulative distribution functions.
func Stats(w io.Writer, d *distribution.DiscreteUniform) error {
	_, err := fmt.Fprintf(w, `%s
  mean      %.6f
  variance  %.6f
  stddev    %.6f
  entropy   %.6f
  skewness  %.6f
  mode      %d
  median    %d
  min       %d
  max       %d
`,
		d, d.Mean(), d.Variance(), d.StdDev(), d.Entropy(), d.Skewness(),
		d.Mode(), d.Median(), d.Minimum(), d.Maximum())
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%12s %12s %12s\n", "k", "pmf", "cdf"); err != nil {
		return err
	}
	for i, k := 0, d.LowerBound(); i < maxTableRows && k <= d.UpperBound(); i, k = i+1, k+1 {
		if _, err := fmt.Fprintf(w, "%12d %12.6f %12.6f\n", k, d.Probability(k), d.CumulativeDistribution(float64(k))); err != nil {
			return err
		}
		if k == math.MaxInt {
			break
		}
	}
	return nil
}

// Summary describes a batch of draws.
type Summary struct {
	Count int
	Mean  float64
	Min   int
	Max   int
	P50   float64
	P90   float64
	P99   float64
}

func (s *Summary) String() string {
	return fmt.Sprintf("draws %s - mean %.4f - min %d - p50 %.1f - p90 %.1f - p99 %.1f - max %d",
		humanize.Comma(int64(s.Count)), s.Mean, s.Min, s.P50, s.P90, s.P99, s.Max)
}

// Run draws conf.Count values from d, writing one value per line to w,
// paced to conf.Rate draws per second when the rate is positive.
// It stops early with the context error if ctx is done.
func Run(ctx context.Context, w io.Writer, d *distribution.DiscreteUniform, conf *config.Config) (*Summary, error) {
	slog.Info("Sampling", slog.String("distribution", d.String()), slog.Int("count", conf.Count))

	var limiter *rate.Limiter
	if conf.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(conf.Rate), int(math.Max(1, conf.Rate)))
	}

	stream := quantile.NewTargeted(0.50, 0.90, 0.99)
	s := &Summary{Min: math.MaxInt, Max: math.MinInt}
	sum := 0.0

	seq := d.Samples()
	for i := 0; i < conf.Count; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil, errors.Wrap(err, "sampling interrupted")
			}
		} else if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "sampling interrupted")
		}

		v := seq.Next()
		if _, err := fmt.Fprintln(w, v); err != nil {
			return nil, err
		}
		stream.Insert(float64(v))
		sum += float64(v)
		s.Count++
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}

	if s.Count == 0 {
		return &Summary{}, nil
	}
	s.Mean = sum / float64(s.Count)
	s.P50 = stream.Query(0.50)
	s.P90 = stream.Query(0.90)
	s.P99 = stream.Query(0.99)
	return s, nil
}
