package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		values []int
		mean   float64
		stdev  float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, v := range c.values {
			s.Push(float64(v))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.Equal(s.Total(), len(c.values))
	}
}

func TestMinMax(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	for _, v := range []float64{4, 2, 6, 3, 3} {
		s.Push(v)
	}
	is.Equal(s.Min(), 2.0)
	is.Equal(s.Max(), 6.0)
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	// The textbook two-tailed z values.
	is.True(FuzzyEqual(ZVal(95), 1.959964))
	is.True(FuzzyEqual(ZVal(99), 2.575829))
}

func TestMeanInterval(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	for _, v := range []float64{3, 4, 5, 4, 4, 3, 5, 4} {
		s.Push(v)
	}
	lo, hi := s.MeanInterval(95)
	is.True(lo < s.Mean())
	is.True(hi > s.Mean())
	is.True(FuzzyEqual((lo+hi)/2, s.Mean()))
}
