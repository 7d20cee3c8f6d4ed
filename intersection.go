package sweepline

import (
	"fmt"
	"slices"
	"strings"
)

// Intersection is a point where two or more segments meet, with all segments passing through it.
type Intersection struct {
	Point
	Segments []*Segment
}

// Equals returns true if both have the same point and the same segments, regardless of segment order and orientation.
func (z Intersection) Equals(o Intersection) bool {
	if !z.Point.Equals(o.Point) || len(z.Segments) != len(o.Segments) {
		return false
	}
	a, b := normalizedSegments(z.Segments), normalizedSegments(o.Segments)
	for i := range a {
		if a[i].Compare(b[i]) != 0 {
			return false
		}
	}
	return true
}

func normalizedSegments(segs []*Segment) []Segment {
	r := make([]Segment, len(segs))
	for i, seg := range segs {
		r[i] = seg.Normalized()
	}
	slices.SortFunc(r, Segment.Compare)
	return r
}

func (z Intersection) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "pos=%v segs=[", z.Point)
	for i, seg := range z.Segments {
		if i != 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%v", seg)
	}
	sb.WriteString("]")
	return sb.String()
}

// Intersections is a list of intersections, usually in sweep order.
type Intersections []Intersection

// Has returns true if there are intersections.
func (zs Intersections) Has() bool {
	return 0 < len(zs)
}

// Points returns the intersection points.
func (zs Intersections) Points() Points {
	ps := make(Points, len(zs))
	for i, z := range zs {
		ps[i] = z.Point
	}
	return ps
}

// Equals returns true if both lists have equal intersections in the same order.
func (zs Intersections) Equals(os Intersections) bool {
	return slices.EqualFunc(zs, os, Intersection.Equals)
}

// Sort sorts the intersections in sweep order.
func (zs Intersections) Sort() {
	slices.SortStableFunc(zs, func(a, b Intersection) int {
		return a.Point.Compare(b.Point)
	})
}

func (zs Intersections) String() string {
	sb := strings.Builder{}
	for i, z := range zs {
		fmt.Fprintf(&sb, "%v %v\n", i, z)
	}
	return sb.String()
}
