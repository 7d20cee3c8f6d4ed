package sweepline

import (
	"fmt"
	"math"
	"math/big"
)

// Point is a coordinate in 2D space with exact rational components. The rationals of a point are never modified once the point is constructed, so points and their copies may share them.
type Point struct {
	X, Y *big.Rat
}

// Pt returns the point (x,y) with integer coordinates.
func Pt(x, y int64) Point {
	return Point{big.NewRat(x, 1), big.NewRat(y, 1)}
}

// NewPoint returns the point (x,y), copying the rationals.
func NewPoint(x, y *big.Rat) Point {
	return Point{new(big.Rat).Set(x), new(big.Rat).Set(y)}
}

// ParsePoint parses exact coordinates written as integers, decimals, exponents, or fractions such as 2/3.
func ParsePoint(x, y string) (Point, error) {
	rx, ok := new(big.Rat).SetString(x)
	if !ok {
		return Point{}, fmt.Errorf("bad coordinate: %s", x)
	}
	ry, ok := new(big.Rat).SetString(y)
	if !ok {
		return Point{}, fmt.Errorf("bad coordinate: %s", y)
	}
	return Point{rx, ry}, nil
}

// FloatPoint returns the exact point of the floating point coordinates (x,y). It returns false when either is not finite.
func FloatPoint(x, y float64) (Point, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return Point{}, false
	}
	return Point{new(big.Rat).SetFloat64(x), new(big.Rat).SetFloat64(y)}, true
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{new(big.Rat).Add(p.X, q.X), new(big.Rat).Add(p.Y, q.Y)}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{new(big.Rat).Sub(p.X, q.X), new(big.Rat).Sub(p.Y, q.Y)}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f *big.Rat) Point {
	return Point{new(big.Rat).Mul(f, p.X), new(big.Rat).Mul(f, p.Y)}
}

// Dot returns the dot product between OP and OQ.
func (p Point) Dot(q Point) *big.Rat {
	r := new(big.Rat).Mul(p.X, q.X)
	return r.Add(r, new(big.Rat).Mul(p.Y, q.Y))
}

// PerpDot returns the perp dot product between OP and OQ, i.e. the determinant of [P Q]. It is zero when OP and OQ are parallel.
func (p Point) PerpDot(q Point) *big.Rat {
	r := new(big.Rat).Mul(p.X, q.Y)
	return r.Sub(r, new(big.Rat).Mul(p.Y, q.X))
}

// Equals returns true if P and Q are exactly equal.
func (p Point) Equals(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Compare orders points from left to right and then from bottom to top. It returns -1, 0, or +1.
func (p Point) Compare(q Point) int {
	if c := p.X.Cmp(q.X); c != 0 {
		return c
	}
	return p.Y.Cmp(q.Y)
}

// Less returns true if P comes before Q in sweep order.
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

// Float64 returns the nearest floating point coordinates.
func (p Point) Float64() (float64, float64) {
	x, _ := p.X.Float64()
	y, _ := p.Y.Float64()
	return x, y
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X.RatString(), p.Y.RatString())
}

// pointKey identifies a point by value, rationals are always normalized so equal values have equal strings.
type pointKey struct {
	x, y string
}

func (p Point) key() pointKey {
	return pointKey{p.X.String(), p.Y.String()}
}

// between is true when lo <= x <= hi.
func between(lo, x, hi *big.Rat) bool {
	return lo.Cmp(x) <= 0 && x.Cmp(hi) <= 0
}
