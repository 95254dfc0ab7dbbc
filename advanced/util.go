package advanced

import "math"

const Epsilon = 1e-9

// Tolerance based float equality. The engine itself compares exactly, like the
// predicates it is built on; this is for callers and tests.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s PointSet) Add(p *Point) {
	s[p] = struct{}{}
}

func (s PointSet) Has(p *Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) Equals(other PointSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}
