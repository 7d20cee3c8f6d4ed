// Package sweepline finds all intersection points of a set of line segments with exact rational arithmetic using the Bentley-Ottmann sweep line algorithm.
//
// The sweep line moves from left to right and, for equal X, from bottom to top. Each intersection point is reported exactly once together with every segment that passes through it, including segments that merely touch it with an endpoint, collinear overlapping segments, vertical segments, and point segments.
package sweepline

import (
	"math/big"
	"slices"
)

// IntersectionFunc receives an intersection point and the segments passing through it, at least two. The slice is reused between calls and must be copied to be retained.
type IntersectionFunc func(p Point, segments []*Segment)

// IntersectionsFunc calls fn for every intersection point of the segments in sweep order. Segments are normalized in place so that A comes before B, and the pointers passed to fn refer into segments.
func IntersectionsFunc(segments []Segment, fn IntersectionFunc) {
	newSweeper(segments, fn).run()
}

// IntersectionPoints returns all intersection points of the segments in sweep order. Segments are normalized in place.
func IntersectionPoints(segments []Segment) Points {
	var zs Points
	IntersectionsFunc(segments, func(p Point, _ []*Segment) {
		zs = append(zs, p)
	})
	return zs
}

// Collect returns all intersection points of the segments in sweep order with the segments passing through them. Segments are normalized in place.
func Collect(segments []Segment) Intersections {
	var zs Intersections
	IntersectionsFunc(segments, func(p Point, segs []*Segment) {
		zs = append(zs, Intersection{p, slices.Clone(segs)})
	})
	return zs
}

type sweeper struct {
	arena  *linkArena[Segment]
	queue  *eventQueue
	status *sweepStatus
	fn     IntersectionFunc

	point Point // current event point
	after bool  // order the groups through the event point as they leave it

	// one more than the largest absolute slope, which orders vertical lines after all others
	sentinel, negSentinel *big.Rat

	pending linkList[Segment]
	groups  []*group // groups through the event point
	through []*Segment
	zs      Points
}

func newSweeper(segments []Segment, fn IntersectionFunc) *sweeper {
	elems := make([]*Segment, len(segments))
	maxSlope := new(big.Rat)
	for i := range segments {
		seg := &segments[i]
		seg.Normalize()
		if slope := seg.Slope(); slope != nil {
			if slope.Sign() < 0 {
				slope.Neg(slope)
			}
			if maxSlope.Cmp(slope) < 0 {
				maxSlope = slope
			}
		}
		elems[i] = seg
	}

	s := &sweeper{
		arena:       newLinkArena(elems),
		fn:          fn,
		point:       Pt(0, 0),
		sentinel:    new(big.Rat).Add(maxSlope, ratOne),
		negSentinel: new(big.Rat).Neg(new(big.Rat).Add(maxSlope, ratOne)),
	}
	s.queue = newEventQueue(s.arena)
	s.status = newSweepStatus(s.arena, s.key)
	s.pending = s.arena.newList(memberLink)
	for i := range segments {
		s.queue.getOrCreate(segments[i].A).start.PushBack(i)
	}
	return s
}

// key returns the position of l on the sweep line at the current event point. The height is the Y of l at the X of the event point, which for vertical lines is the Y of the event point clamped to their extent. Lines of equal height are ordered by the order in which they leave that height when approaching the event point, or after it when s.after is set.
func (s *sweeper) key(l *line) sweepKey {
	if l.vertical {
		lo, hi := l.a.Y, l.b.Y
		up := lo.Cmp(hi) < 0
		if !up {
			lo, hi = hi, lo
		}
		y := s.point.Y
		if y.Cmp(lo) < 0 {
			y = lo
		} else if hi.Cmp(y) < 0 {
			y = hi
		}
		if up != s.after {
			return sweepKey{y, s.negSentinel}
		}
		return sweepKey{y, s.sentinel}
	}

	y := new(big.Rat).Mul(l.slope, s.point.X)
	y.Add(y, l.intercept)
	if (y.Cmp(s.point.Y) < 0) != s.after {
		return sweepKey{y, l.slope}
	}
	return sweepKey{y, l.negSlope}
}

// probes returns the keys that bound all groups passing through the event point, being those of a unit vertical going up and one going down from the event point.
func (s *sweeper) probes() (sweepKey, sweepKey) {
	above := s.point.Add(Pt(0, 1))
	up, down := newLine(s.point, above), newLine(above, s.point)
	return s.key(&up), s.key(&down)
}

// schedule adds the intersections of both groups past the event point to the queue.
func (s *sweeper) schedule(g0, g1 *group) {
	s.zs = s.zs[:0].LineLine(g0.a, g0.b, g1.a, g1.b)
	for _, z := range s.zs {
		if s.point.Less(z) {
			s.queue.getOrCreate(z)
		}
	}
}

func (s *sweeper) run() {
	for s.step() {
	}
}

// step handles the next event point and returns false when the queue is empty.
func (s *sweeper) step() bool {
	ev := s.queue.peekMin()
	if ev == nil {
		return false
	}
	s.point = ev.Point

	// insert starting segments
	s.pending.Steal(ev.start)
	for !s.pending.Empty() {
		i := s.pending.PopFront()
		seg := s.arena.Get(i)
		if s.point.Less(seg.B) {
			s.queue.getOrCreate(seg.B).end.PushBack(i)
		}

		n := s.status.add(i, seg)
		g := n.group
		if prev := n.Prev(); prev != nil {
			s.schedule(prev.group, g)
		}
		if next := g.node.Next(); next != nil {
			s.schedule(g, next.group)
		}
	}

	// groups through the event point are contiguous
	lo, hi := s.probes()
	begin := s.status.lowerBound(lo)
	var prev, next *group
	if begin == nil {
		if last := s.status.Last(); last != nil {
			prev = last.group
		}
	} else if n := begin.Prev(); n != nil {
		prev = n.group
	}
	s.groups = s.groups[:0]
	n := begin
	for ; n != nil && s.key(&n.line).compare(hi) <= 0; n = n.Next() {
		s.groups = append(s.groups, n.group)
	}
	if n != nil {
		next = n.group
	}

	s.through = s.through[:0]
	for _, g := range s.groups {
		for _, seg := range g.members.All() {
			s.through = append(s.through, seg)
		}
	}
	if 1 < len(s.through) {
		s.fn(s.point, s.through)
	}

	// reorder the groups through the event point as they leave it
	for _, g := range s.groups {
		s.status.remove(g.node)
	}
	s.after = true
	for i := range ev.end.All() {
		s.arena.erase(memberLink, i)
	}
	for _, g := range s.groups {
		if s.point.Less(g.b) && !g.members.Empty() {
			s.status.insert(g)
		} else {
			s.arena.freeList(g.members)
		}
	}
	s.after = false

	// new neighbours at the boundaries
	if prev != nil {
		if n := prev.node.Next(); n != nil {
			s.schedule(prev, n.group)
		}
	}
	if next != nil {
		if n := next.node.Prev(); n != nil {
			s.schedule(n.group, next)
		}
	}

	s.queue.removeMin()
	return true
}
