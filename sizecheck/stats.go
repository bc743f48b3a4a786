package sizecheck

import "math"

// runningStat accumulates a mean and variance incrementally (Welford's
// algorithm), single-pass over a running sample count instead of a fixed
// slice.
type runningStat struct {
	count int
	mean  float64
	m2    float64 // sum of squared deviations from the running mean
}

func (s *runningStat) add(x float64) {
	s.count++
	delta := x - s.mean
	s.mean += delta / float64(s.count)
	delta2 := x - s.mean
	s.m2 += delta * delta2
}

func (s *runningStat) stddev() float64 {
	if s.count < 2 {
		return 0
	}

	return math.Sqrt(s.m2 / float64(s.count-1))
}

// zscore reports how many standard deviations x is from the running mean.
// ok is false when there are too few samples (<2) to have a meaningful
// spread - guards against flagging a regression off a single baseline point.
func (s *runningStat) zscore(x float64) (z float64, ok bool) {
	if s.count < 2 {
		return 0, false
	}
	sd := s.stddev()
	if sd == 0 {
		if x == s.mean {
			return 0, true
		}

		return math.Inf(1), true
	}

	return (x - s.mean) / sd, true
}
