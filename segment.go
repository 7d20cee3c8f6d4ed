package sweepline

import (
	"fmt"
	"math/big"
)

// Segment is a straight line segment between its endpoints A and B. A segment with A equal to B is a point segment.
type Segment struct {
	A, B Point
}

// Seg returns the segment between (ax,ay) and (bx,by) with integer coordinates.
func Seg(ax, ay, bx, by int64) Segment {
	return Segment{Pt(ax, ay), Pt(bx, by)}
}

// IsVertical returns true if both endpoints have the same X, which includes point segments.
func (s Segment) IsVertical() bool {
	return s.A.X.Cmp(s.B.X) == 0
}

// IsPoint returns true if both endpoints are equal.
func (s Segment) IsPoint() bool {
	return s.A.Equals(s.B)
}

// Slope returns dy/dx of the segment, or nil for vertical segments.
func (s Segment) Slope() *big.Rat {
	if s.IsVertical() {
		return nil
	}
	dy := new(big.Rat).Sub(s.B.Y, s.A.Y)
	return dy.Quo(dy, new(big.Rat).Sub(s.B.X, s.A.X))
}

// Normalize swaps the endpoints so that A comes before B in sweep order.
func (s *Segment) Normalize() {
	if s.B.Less(s.A) {
		s.A, s.B = s.B, s.A
	}
}

// Normalized returns a copy with A before B in sweep order.
func (s Segment) Normalized() Segment {
	s.Normalize()
	return s
}

// Equals returns true if both segments have exactly equal endpoints in the same order.
func (s Segment) Equals(t Segment) bool {
	return s.A.Equals(t.A) && s.B.Equals(t.B)
}

// Compare orders segments by A and then by B.
func (s Segment) Compare(t Segment) int {
	if c := s.A.Compare(t.A); c != 0 {
		return c
	}
	return s.B.Compare(t.B)
}

func (s Segment) String() string {
	return fmt.Sprintf("%v, %v", s.A, s.B)
}
