package sweepline

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync"
)

// line is the supporting line of a segment or group together with its extent from a to b.
type line struct {
	a, b     Point
	vertical bool

	// nil for vertical lines
	slope, negSlope, intercept *big.Rat
}

func newLine(a, b Point) line {
	l := line{a: a, b: b, vertical: a.X.Cmp(b.X) == 0}
	if !l.vertical {
		l.slope = Segment{a, b}.Slope()
		l.negSlope = new(big.Rat).Neg(l.slope)
		l.intercept = new(big.Rat).Mul(l.slope, a.X)
		l.intercept.Sub(a.Y, l.intercept)
	}
	return l
}

// group is a set of collinear segments that overlap on the sweep line. Its extent spans all members that were ever added.
type group struct {
	line
	members linkList[Segment]
	node    *statusNode
}

func (g *group) add(i int, seg *Segment) {
	if seg.A.Less(g.a) {
		g.a = seg.A
	}
	if g.b.Less(seg.B) {
		g.b = seg.B
	}
	g.members.PushBack(i)
}

func (g *group) String() string {
	return fmt.Sprintf("%v, %v members=%d", g.a, g.b, g.members.Len())
}

// sweepKey orders lines along the sweep line by their height y and then by a tiebreak t.
type sweepKey struct {
	y, t *big.Rat
}

func (k sweepKey) compare(o sweepKey) int {
	if c := k.y.Cmp(o.y); c != 0 {
		return c
	}
	return k.t.Cmp(o.t)
}

func (k sweepKey) String() string {
	return fmt.Sprintf("(%v, %v)", k.y.RatString(), k.t.RatString())
}

type statusNode struct {
	parent, left, right *statusNode
	height              int

	*group
}

func (n *statusNode) Prev() *statusNode {
	// go left
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right // find the right-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.left == n {
		n = n.parent // find first parent for which we're right
	}
	return n.parent // can be nil
}

func (n *statusNode) Next() *statusNode {
	// go right
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left // find the left-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.right == n {
		n = n.parent // find first parent for which we're left
	}
	return n.parent // can be nil
}

func (n *statusNode) balance() int {
	r := 0
	if n.left != nil {
		r -= n.left.height
	}
	if n.right != nil {
		r += n.right.height
	}
	return r
}

func (n *statusNode) updateHeight() {
	n.height = 0
	if n.left != nil {
		n.height = n.left.height
	}
	if n.right != nil && n.height < n.right.height {
		n.height = n.right.height
	}
	n.height++
}

func (n *statusNode) swapChild(a, b *statusNode) {
	if n.right == a {
		n.right = b
	} else {
		n.left = b
	}
	if b != nil {
		b.parent = n
	}
}

func (a *statusNode) rotateLeft() *statusNode {
	b := a.right
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.right = b.left; a.right != nil {
		a.right.parent = a
	}
	b.left = a
	return b
}

func (a *statusNode) rotateRight() *statusNode {
	b := a.left
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.left = b.right; a.left != nil {
		a.left.parent = a
	}
	b.right = a
	return b
}

func (n *statusNode) Print(w io.Writer, indent int) {
	if n.right != nil {
		n.right.Print(w, indent+1)
	} else if n.left != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
	fmt.Fprintf(w, "%v%v\n", strings.Repeat("  ", indent), n.group)
	if n.left != nil {
		n.left.Print(w, indent+1)
	} else if n.right != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
}

// sweepStatus is an AVL tree of the active groups ordered by their key at the current event point. Keys change as the sweep advances, but the order of the groups in the tree only changes by removal and reinsertion.
type sweepStatus struct {
	root  *statusNode
	pool  *sync.Pool
	key   func(*line) sweepKey
	arena *linkArena[Segment]
	size  int
}

func newSweepStatus(arena *linkArena[Segment], key func(*line) sweepKey) *sweepStatus {
	return &sweepStatus{
		pool:  &sync.Pool{New: func() any { return &statusNode{} }},
		key:   key,
		arena: arena,
	}
}

func (s *sweepStatus) newNode(g *group) *statusNode {
	n := s.pool.Get().(*statusNode)
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 1
	n.group = g
	n.group.node = n
	return n
}

func (s *sweepStatus) returnNode(n *statusNode) {
	n.group.node = nil
	n.group = nil // help the GC
	s.pool.Put(n)
}

func (s *sweepStatus) find(k sweepKey) (*statusNode, int) {
	n := s.root
	for n != nil {
		cmp := k.compare(s.key(&n.line))
		if cmp < 0 {
			if n.left == nil {
				return n, -1
			}
			n = n.left
		} else if 0 < cmp {
			if n.right == nil {
				return n, 1
			}
			n = n.right
		} else {
			break
		}
	}
	return n, 0
}

func (s *sweepStatus) rebalance(n *statusNode) {
	for {
		oheight := n.height
		if balance := n.balance(); balance == 2 {
			// Tree is excessively right-heavy, rotate it to the left.
			if n.right != nil && n.right.balance() < 0 {
				// Right tree is left-heavy, which would cause the next rotation to result in
				// overall left-heaviness. Rotate the right tree to the right to counteract this.
				n.right = n.right.rotateRight()
				n.right.right.updateHeight()
			}
			n = n.rotateLeft()
			n.left.updateHeight()
		} else if balance == -2 {
			// Tree is excessively left-heavy, rotate it to the right
			if n.left != nil && n.left.balance() > 0 {
				// The left tree is right-heavy, which would cause the next rotation to result in
				// overall right-heaviness. Rotate the left tree to the left to compensate.
				n.left = n.left.rotateLeft()
				n.left.left.updateHeight()
			}
			n = n.rotateRight()
			n.right.updateHeight()
		} else if balance < -2 || 2 < balance {
			panic("bug: tree too far out of shape")
		}

		n.updateHeight()
		if n.parent == nil {
			s.root = n
			return
		}
		if oheight == n.height {
			return
		}
		n = n.parent
	}
}

func (s *sweepStatus) String() string {
	if s.root == nil {
		return "nil"
	}

	sb := strings.Builder{}
	s.root.Print(&sb, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func (s *sweepStatus) Len() int {
	return s.size
}

func (s *sweepStatus) First() *statusNode {
	if s.root == nil {
		return nil
	}
	n := s.root
	for n.left != nil {
		n = n.left
	}
	return n
}

func (s *sweepStatus) Last() *statusNode {
	if s.root == nil {
		return nil
	}
	n := s.root
	for n.right != nil {
		n = n.right
	}
	return n
}

// lowerBound returns the first node with a key not less than k, or nil.
func (s *sweepStatus) lowerBound(k sweepKey) *statusNode {
	var lb *statusNode
	for n := s.root; n != nil; {
		if k.compare(s.key(&n.line)) <= 0 {
			lb = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return lb
}

// insert adds a group whose key differs from all others.
func (s *sweepStatus) insert(g *group) *statusNode {
	if s.root == nil {
		s.size++
		s.root = s.newNode(g)
		return s.root
	}

	n, cmp := s.find(s.key(&g.line))
	if cmp == 0 {
		panic(fmt.Sprintf("bug: groups with equal keys %v and %v", g, n.group))
	}

	// rotations may move the new node away from its parent
	c := s.newNode(g)
	c.parent = n
	if cmp < 0 {
		// lower
		n.left = c
		if n.right == nil {
			s.rebalance(n)
		}
	} else {
		// higher
		n.right = c
		if n.left == nil {
			s.rebalance(n)
		}
	}
	s.size++
	return c
}

// add inserts segment i into the group with an equal key, which must be collinear and overlapping, or into a new group. It returns the node of the group.
func (s *sweepStatus) add(i int, seg *Segment) *statusNode {
	l := newLine(seg.A, seg.B)
	k := s.key(&l)
	var g *group
	if n := s.lowerBound(k); n != nil && k.compare(s.key(&n.line)) == 0 {
		// extend the group out of the tree so that its key never changes in place
		g = n.group
		s.remove(n)
	} else {
		g = &group{line: l, members: s.arena.newList(memberLink)}
	}
	g.add(i, seg)
	return s.insert(g)
}

// remove deletes the node from the tree. Nodes swap groups while removing, hold on to the group instead of the node.
func (s *sweepStatus) remove(n *statusNode) {
	s.size--
	var o *statusNode
	for {
		if n.height == 1 {
			o = n.parent
			if o != nil {
				o.swapChild(n, nil)
				s.rebalance(o)
			} else {
				s.root = nil
			}
			s.returnNode(n)
			return
		} else if n.right != nil {
			o = n.right
			for o.left != nil {
				o = o.left
			}
		} else if n.left != nil {
			o = n.left
			for o.right != nil {
				o = o.right
			}
		} else {
			panic("bug: inner node without children")
		}
		n.group, o.group = o.group, n.group
		n.group.node, o.group.node = n, o
		n = o
	}
}

// validate checks the tree structure and that the keys are strictly increasing at the current event point.
func (s *sweepStatus) validate() error {
	if s.root != nil && s.root.parent != nil {
		return fmt.Errorf("bug: root has parent")
	}
	size := 0
	var prev *statusNode
	for n := s.First(); n != nil; n = n.Next() {
		size++
		if n.group == nil || n.group.node != n {
			return fmt.Errorf("bug: bad group back reference at node %d", size)
		} else if n.members.Empty() {
			return fmt.Errorf("bug: empty group %v", n.group)
		}
		h := n.height
		if n.updateHeight(); h != n.height {
			return fmt.Errorf("bug: bad height %d for %v", h, n.group)
		} else if b := n.balance(); b < -1 || 1 < b {
			return fmt.Errorf("bug: unbalanced %v", n.group)
		}
		if prev != nil {
			if k0, k1 := s.key(&prev.line), s.key(&n.line); 0 <= k0.compare(k1) {
				return fmt.Errorf("bug: keys out of order %v >= %v for groups %v and %v\n%v", k0, k1, prev.group, n.group, s)
			}
		}
		prev = n
	}
	if size != s.size {
		return fmt.Errorf("bug: size %d but %d nodes", s.size, size)
	}
	return nil
}
