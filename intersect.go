package sweepline

import (
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// Points is a list of points, for example the raw intersections returned by LineLine.
type Points []Point

// LineLine appends the intersections between the segments (a,b) and (c,d) and returns the extended list. Non-parallel segments add at most one point. Collinear segments add the two extremes of their overlap, which may coincide. Two coinciding point segments add their point twice, a point segment lying on a proper segment adds it once. Results are not filtered, callers discard the points they don't need. For collinear segments the endpoints must be normalized, i.e. a <= b and c <= d.
func (zs Points) LineLine(a, b, c, d Point) Points {
	ba := b.Sub(a)
	dc := d.Sub(c)
	ca := c.Sub(a)

	div := ba.PerpDot(dc)
	caPerpBa := ca.PerpDot(ba)
	caPerpDc := ca.PerpDot(dc)
	if div.Sign() == 0 {
		// parallel
		if caPerpBa.Sign() != 0 || caPerpDc.Sign() != 0 {
			return zs
		}

		// collinear
		zero := new(big.Rat)
		ba2 := ba.Dot(ba)
		dc2 := dc.Dot(dc)
		if ba2.Sign() == 0 && dc2.Sign() == 0 {
			// a == b and c == d
			if a.Equals(c) {
				zs = append(zs, a, a)
			}
		} else if ba2.Sign() == 0 {
			// a == b, keep a if it lies on (c,d)
			if between(zero, dc.Dot(a.Sub(c)), dc2) {
				zs = append(zs, a)
			}
		} else if dc2.Sign() == 0 {
			// c == d, keep c if it lies on (a,b)
			if between(zero, ba.Dot(ca), ba2) {
				zs = append(zs, c)
			}
		} else {
			var ps [4]Point
			n := 0
			if between(zero, dc.Dot(a.Sub(c)), dc2) {
				ps[n] = a
				n++
			}
			if between(zero, dc.Dot(b.Sub(c)), dc2) {
				ps[n] = b
				n++
			}
			if between(zero, ba.Dot(ca), ba2) {
				ps[n] = c
				n++
			}
			if between(zero, ba.Dot(d.Sub(a)), ba2) {
				ps[n] = d
				n++
			}
			if 0 < n {
				lo, hi := ps[0], ps[0]
				for _, p := range ps[1:n] {
					if p.Less(lo) {
						lo = p
					} else if hi.Less(p) {
						hi = p
					}
				}
				zs = append(zs, lo, hi)
			}
		}
		return zs
	}

	t := new(big.Rat).Quo(caPerpBa, div)
	s := new(big.Rat).Quo(caPerpDc, div)
	if unit(t) && unit(s) {
		zs = append(zs, a.Add(ba.Mul(s)))
	}
	return zs
}

// unit is true when 0 <= t <= 1.
func unit(t *big.Rat) bool {
	return 0 <= t.Sign() && t.Cmp(ratOne) <= 0
}

var ratOne = big.NewRat(1, 1)

// Sort sorts the points in sweep order.
func (zs Points) Sort() {
	slices.SortFunc(zs, Point.Compare)
}

func (zs Points) String() string {
	sb := strings.Builder{}
	for i, z := range zs {
		if i != 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", z)
	}
	return sb.String()
}
