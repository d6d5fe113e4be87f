// Package stats holds the small statistics helpers the autoplay harness
// reports with.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic accumulates a running mean and variance of pushed values
// without keeping them, using Welford's algorithm.
type Statistic struct {
	total int
	min   float64
	max   float64

	// For Welford's algorithm:
	oldM float64
	newM float64
	oldS float64
	newS float64
}

func (s *Statistic) Push(val float64) {
	s.total++
	if s.total == 1 {
		s.oldM = val
		s.newM = val
		s.oldS = 0
		s.min = val
		s.max = val
	} else {
		s.newM = s.oldM + (val-s.oldM)/float64(s.total)
		s.newS = s.oldS + (val-s.oldM)*(val-s.newM)
		s.oldM = s.newM
		s.oldS = s.newS
		s.min = math.Min(s.min, val)
		s.max = math.Max(s.max, val)
	}
}

func (s *Statistic) Total() int {
	return s.total
}

func (s *Statistic) Mean() float64 {
	if s.total > 0 {
		return s.newM
	}
	return 0.0
}

func (s *Statistic) Variance() float64 {
	if s.total <= 1 {
		return 0.0
	}
	return s.newS / float64(s.total-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) Min() float64 {
	return s.min
}

func (s *Statistic) Max() float64 {
	return s.max
}

// ZVal returns the two-tailed Z-value associated with a specific confidence
// interval. The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}

// MeanInterval returns the confidence interval around the mean at the given
// level, e.g. 95 for a 95% interval.
func (s *Statistic) MeanInterval(confidenceInterval float64) (float64, float64) {
	if s.total == 0 {
		return 0, 0
	}
	margin := ZVal(confidenceInterval) * s.Stdev() / math.Sqrt(float64(s.total))
	return s.Mean() - margin, s.Mean() + margin
}
