package sweepline

import (
	"fmt"
	"io"
	"strings"
)

// event is a point in the event queue with the segments that start and end there.
type event struct {
	Point
	start linkList[Segment] // segments with A at the point
	end   linkList[Segment] // segments with B at the point
}

func (ev *event) String() string {
	return fmt.Sprintf("%v start=%d end=%d", ev.Point, ev.start.Len(), ev.end.Len())
}

// eventQueue is a priority queue of distinct event points in sweep order, with a lookup of events by point so that an event is created at most once.
type eventQueue struct {
	heap   []*event
	events map[pointKey]*event
	arena  *linkArena[Segment]
}

func newEventQueue(arena *linkArena[Segment]) *eventQueue {
	return &eventQueue{
		events: map[pointKey]*event{},
		arena:  arena,
	}
}

func (q *eventQueue) len() int {
	return len(q.heap)
}

// getOrCreate returns the event at p, adding it to the queue if it doesn't exist.
func (q *eventQueue) getOrCreate(p Point) *event {
	k := p.key()
	if ev, ok := q.events[k]; ok {
		return ev
	}
	ev := &event{
		Point: p,
		start: q.arena.newList(memberLink),
		end:   q.arena.newList(endLink),
	}
	q.events[k] = ev
	q.heap = append(q.heap, ev)
	q.up(len(q.heap) - 1)
	return ev
}

// peekMin returns the first event, or nil if the queue is empty.
func (q *eventQueue) peekMin() *event {
	if len(q.heap) == 0 {
		return nil
	}
	return q.heap[0]
}

// removeMin retires the first event and frees its lists.
func (q *eventQueue) removeMin() {
	n := len(q.heap) - 1
	q.swap(0, n)
	q.down(0, n)

	ev := q.heap[n]
	q.heap[n] = nil
	q.heap = q.heap[:n]
	delete(q.events, ev.key())
	q.arena.freeList(ev.start)
	q.arena.freeList(ev.end)
}

func (q *eventQueue) less(i, j int) bool {
	return q.heap[i].Less(q.heap[j].Point)
}

func (q *eventQueue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
}

// from container/heap
func (q *eventQueue) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.less(j, i) {
			break
		}
		q.swap(i, j)
		j = i
	}
}

func (q *eventQueue) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		i = j
	}
}

// Print writes the events in sweep order.
func (q *eventQueue) Print(w io.Writer) {
	h := &eventQueue{heap: make([]*event, len(q.heap))}
	copy(h.heap, q.heap)

	n := len(h.heap) - 1
	for 0 < n {
		h.swap(0, n)
		h.down(0, n)
		n--
	}
	for k := len(h.heap) - 1; 0 <= k; k-- {
		fmt.Fprintln(w, len(h.heap)-1-k, h.heap[k])
	}
}

func (q *eventQueue) String() string {
	sb := strings.Builder{}
	q.Print(&sb)
	return strings.TrimSuffix(sb.String(), "\n")
}
