package sweepline

import (
	"maps"
	"math"
	"slices"

	"github.com/tidwall/rtree"
)

// BruteForce returns all intersections of the segments by testing every pair of segments whose bounding boxes overlap. It is slow but simple and serves as a reference for the sweep. The result is sorted in sweep order and segments are not modified.
func BruteForce(segments []Segment) Intersections {
	norm := make([]Segment, len(segments))
	var tr rtree.RTreeG[int]
	for i, seg := range segments {
		norm[i] = seg.Normalized()
		min, max := floatBounds(norm[i])
		tr.Insert(min, max, i)
	}

	type hit struct {
		Point
		segs map[int]bool
	}
	hits := map[pointKey]*hit{}
	var zs Points
	for i := range norm {
		min, max := floatBounds(norm[i])
		tr.Search(min, max, func(_, _ [2]float64, j int) bool {
			if j <= i {
				return true
			}
			zs = zs[:0].LineLine(norm[i].A, norm[i].B, norm[j].A, norm[j].B)
			for _, z := range zs {
				h, ok := hits[z.key()]
				if !ok {
					h = &hit{z, map[int]bool{}}
					hits[z.key()] = h
				}
				h.segs[i] = true
				h.segs[j] = true
			}
			return true
		})
	}

	res := make(Intersections, 0, len(hits))
	for _, h := range hits {
		z := Intersection{Point: h.Point}
		for _, i := range slices.Sorted(maps.Keys(h.segs)) {
			z.Segments = append(z.Segments, &segments[i])
		}
		res = append(res, z)
	}
	res.Sort()
	return res
}

// floatBounds returns a bounding box that contains the exact segment, by widening the rounded coordinates by one ulp.
func floatBounds(s Segment) ([2]float64, [2]float64) {
	ax, ay := s.A.Float64()
	bx, by := s.B.Float64()
	min := [2]float64{math.Min(ax, bx), math.Min(ay, by)}
	max := [2]float64{math.Max(ax, bx), math.Max(ay, by)}
	for k := range 2 {
		min[k] = math.Nextafter(min[k], math.Inf(-1))
		max[k] = math.Nextafter(max[k], math.Inf(1))
	}
	return min, max
}
