package sweepline

import (
	"math/big"
	"math/rand/v2"
)

// randomSegments returns n segments with integer coordinates in [0,size), including point segments and duplicates.
func randomSegments(rng *rand.Rand, n, size int) []Segment {
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Seg(rng.Int64N(int64(size)), rng.Int64N(int64(size)), rng.Int64N(int64(size)), rng.Int64N(int64(size)))
	}
	return segs
}

// randomRationalSegments returns n segments with coordinates p/q for p in [0,size) and q in [1,3].
func randomRationalSegments(rng *rand.Rand, n, size int) []Segment {
	coord := func() *big.Rat {
		return big.NewRat(rng.Int64N(int64(size)), 1+rng.Int64N(3))
	}
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Segment{Point{coord(), coord()}, Point{coord(), coord()}}
	}
	return segs
}

// benchmarkSegments returns n parallel segments crossed by one long segment, giving n intersections.
func benchmarkSegments(n int) []Segment {
	segs := make([]Segment, 0, n+1)
	for i := range int64(n) {
		segs = append(segs, Seg(0, i, 10000, i+100))
	}
	return append(segs, Seg(10000, 0, 0, 10000))
}

func cloneSegments(segs []Segment) []Segment {
	return append([]Segment(nil), segs...)
}
