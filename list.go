package sweepline

import (
	"fmt"
	"iter"
)

// linkField selects one of the independent links of an arena slot, so that an element can be a member of one list per field at the same time.
type linkField int

const (
	memberLink linkField = iota // start list of an event, then member list of a group
	endLink                     // end list of an event
	numLinkFields
)

func (f linkField) String() string {
	switch f {
	case memberLink:
		return "member"
	case endLink:
		return "end"
	}
	return fmt.Sprintf("linkField(%d)", int(f))
}

type link struct {
	prev, next int
}

// linkArena stores the links of a fixed set of elements addressed by index. The elements are owned by the caller, the arena only points to them. Slots past the elements are list sentinels, which are recycled once their list is freed. An unlinked slot links to itself.
type linkArena[T any] struct {
	elems []*T
	links [][numLinkFields]link
	free  []int // released sentinels
}

func newLinkArena[T any](elems []*T) *linkArena[T] {
	a := &linkArena[T]{
		elems: elems,
		links: make([][numLinkFields]link, len(elems), 2*len(elems)+1),
	}
	for i := range a.links {
		a.reset(i)
	}
	return a
}

func (a *linkArena[T]) reset(i int) {
	for f := range a.links[i] {
		a.links[i][f] = link{i, i}
	}
}

// Len returns the number of elements.
func (a *linkArena[T]) Len() int {
	return len(a.elems)
}

// Get returns the element at index i.
func (a *linkArena[T]) Get(i int) *T {
	return a.elems[i]
}

// newList returns an empty list over field f.
func (a *linkArena[T]) newList(f linkField) linkList[T] {
	var i int
	if n := len(a.free); 0 < n {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		i = len(a.links)
		a.links = append(a.links, [numLinkFields]link{})
	}
	a.reset(i)
	return linkList[T]{a, f, i}
}

// freeList unlinks all remaining members of l and releases its sentinel. The list must not be used afterwards.
func (a *linkArena[T]) freeList(l linkList[T]) {
	if l.a != a || l.sentinel < a.Len() {
		panic("bug: list does not belong to arena")
	}
	for i := a.links[l.sentinel][l.field].next; i != l.sentinel; {
		next := a.links[i][l.field].next
		a.links[i][l.field] = link{i, i}
		i = next
	}
	a.reset(l.sentinel)
	a.free = append(a.free, l.sentinel)
}

// linked returns true if element i is a member of some list over field f.
func (a *linkArena[T]) linked(f linkField, i int) bool {
	return a.links[i][f].next != i
}

// erase removes element i from whichever list over field f it is in. Erasing an unlinked element does nothing.
func (a *linkArena[T]) erase(f linkField, i int) {
	l := a.links[i][f]
	a.links[l.prev][f].next = l.next
	a.links[l.next][f].prev = l.prev
	a.links[i][f] = link{i, i}
}

// linkList is a doubly linked list of arena elements over a single link field. It is a handle, copies refer to the same list.
type linkList[T any] struct {
	a        *linkArena[T]
	field    linkField
	sentinel int
}

func (l linkList[T]) insertBefore(at, i int) {
	if i < 0 || l.a.Len() <= i {
		panic(fmt.Sprintf("bug: element %d out of range", i))
	} else if l.a.linked(l.field, i) {
		panic(fmt.Sprintf("bug: element %d already in a %v list", i, l.field))
	}
	prev := l.a.links[at][l.field].prev
	l.a.links[i][l.field] = link{prev, at}
	l.a.links[prev][l.field].next = i
	l.a.links[at][l.field].prev = i
}

// PushBack appends element i.
func (l linkList[T]) PushBack(i int) {
	l.insertBefore(l.sentinel, i)
}

// PushFront prepends element i.
func (l linkList[T]) PushFront(i int) {
	l.insertBefore(l.a.links[l.sentinel][l.field].next, i)
}

// Empty returns true if the list has no elements.
func (l linkList[T]) Empty() bool {
	return l.a.links[l.sentinel][l.field].next == l.sentinel
}

// Len returns the number of elements, it walks the list.
func (l linkList[T]) Len() int {
	n := 0
	for i := l.a.links[l.sentinel][l.field].next; i != l.sentinel; i = l.a.links[i][l.field].next {
		n++
	}
	return n
}

// Front returns the index of the first element, or -1 if the list is empty.
func (l linkList[T]) Front() int {
	if l.Empty() {
		return -1
	}
	return l.a.links[l.sentinel][l.field].next
}

// PopFront removes and returns the index of the first element. The list must not be empty.
func (l linkList[T]) PopFront() int {
	if l.Empty() {
		panic("bug: pop from empty list")
	}
	i := l.a.links[l.sentinel][l.field].next
	l.a.erase(l.field, i)
	return i
}

// Steal moves all elements of o to the back of l, leaving o empty.
func (l linkList[T]) Steal(o linkList[T]) {
	if l.a != o.a || l.field != o.field {
		panic("bug: steal between incompatible lists")
	} else if l.sentinel == o.sentinel || o.Empty() {
		return
	}
	links, f := l.a.links, l.field
	first, last := links[o.sentinel][f].next, links[o.sentinel][f].prev
	tail := links[l.sentinel][f].prev
	links[tail][f].next = first
	links[first][f].prev = tail
	links[last][f].next = l.sentinel
	links[l.sentinel][f].prev = last
	links[o.sentinel][f] = link{o.sentinel, o.sentinel}
}

// All iterates over the indices and elements in order. The current element may be erased during iteration.
func (l linkList[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := l.a.links[l.sentinel][l.field].next; i != l.sentinel; {
			next := l.a.links[i][l.field].next
			if !yield(i, l.a.elems[i]) {
				return
			}
			i = next
		}
	}
}
