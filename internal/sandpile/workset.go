package sandpile

// workSet is a FIFO queue of piles that may need to topple, with a
// membership set so a pile is never queued twice.
type workSet struct {
	queue   []Point
	head    int
	members map[Point]struct{}
}

func newWorkSet() workSet {
	return workSet{members: make(map[Point]struct{})}
}

// push queues p unless it is already pending. It reports whether p was added.
func (w *workSet) push(p Point) bool {
	if _, ok := w.members[p]; ok {
		return false
	}
	w.members[p] = struct{}{}
	w.queue = append(w.queue, p)
	return true
}

// pop removes the oldest pending pile.
func (w *workSet) pop() (Point, bool) {
	if w.head >= len(w.queue) {
		return Point{}, false
	}
	p := w.queue[w.head]
	w.head++
	delete(w.members, p)
	if w.head == len(w.queue) {
		w.queue = w.queue[:0]
		w.head = 0
	} else if w.head > 1024 && w.head*2 > len(w.queue) {
		n := copy(w.queue, w.queue[w.head:])
		w.queue = w.queue[:n]
		w.head = 0
	}
	return p, true
}

func (w *workSet) len() int { return len(w.queue) - w.head }

func (w *workSet) snapshot() []Point {
	out := make([]Point, w.len())
	copy(out, w.queue[w.head:])
	return out
}
