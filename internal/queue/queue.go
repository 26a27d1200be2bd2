// Package queue provides a value-based priority queue for nearest-neighbor
// candidate tracking.
package queue

// Item represents an item in the priority queue.
type Item struct {
	ID       int     // ID is the pattern index of the item.
	Distance float32 // Distance is the priority of the item in the queue.
}

// PriorityQueue is a binary heap of Items. Value-based storage keeps it
// allocation-free after the initial capacity is reached.
type PriorityQueue struct {
	isMaxHeap bool
	items     []Item
}

// NewMin initializes a new priority queue with minimum priority on top.
func NewMin(capacity int) *PriorityQueue {
	return &PriorityQueue{isMaxHeap: false, items: make([]Item, 0, capacity)}
}

// NewMax initializes a new priority queue with maximum priority on top.
func NewMax(capacity int) *PriorityQueue {
	return &PriorityQueue{isMaxHeap: true, items: make([]Item, 0, capacity)}
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Top returns the top element of the heap without removing it.
func (pq *PriorityQueue) Top() (Item, bool) {
	if len(pq.items) == 0 {
		return Item{}, false
	}
	return pq.items[0], true
}

// Push inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue) Push(item Item) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// Pop removes and returns the top element while maintaining the heap invariant.
func (pq *PriorityQueue) Pop() (Item, bool) {
	n := len(pq.items)
	if n == 0 {
		return Item{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = Item{}
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

func (pq *PriorityQueue) less(i, j int) bool {
	if pq.items[i].Distance != pq.items[j].Distance {
		if pq.isMaxHeap {
			return pq.items[i].Distance > pq.items[j].Distance
		}
		return pq.items[i].Distance < pq.items[j].Distance
	}
	// Tie break on ID so heap order is deterministic.
	if pq.isMaxHeap {
		return pq.items[i].ID > pq.items[j].ID
	}
	return pq.items[i].ID < pq.items[j].ID
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}

// TopK tracks the k smallest-distance items seen so far using a bounded
// max-heap: the current worst candidate sits on top and is evicted whenever
// a better one arrives.
type TopK struct {
	k  int
	pq *PriorityQueue
}

// NewTopK creates a TopK tracker for the k nearest candidates. k must be > 0.
func NewTopK(k int) *TopK {
	return &TopK{k: k, pq: NewMax(k)}
}

// Offer considers a candidate for inclusion among the k nearest.
func (t *TopK) Offer(item Item) {
	if t.pq.Len() < t.k {
		t.pq.Push(item)
		return
	}
	worst, _ := t.pq.Top()
	if item.Distance < worst.Distance || (item.Distance == worst.Distance && item.ID < worst.ID) {
		t.pq.Pop()
		t.pq.Push(item)
	}
}

// Items drains the tracker and returns the kept candidates ordered by
// ascending distance, ties broken by ascending ID. The tracker is empty
// afterwards.
func (t *TopK) Items() []Item {
	out := make([]Item, t.pq.Len())
	for i := t.pq.Len() - 1; i >= 0; i-- {
		out[i], _ = t.pq.Pop()
	}
	return out
}
