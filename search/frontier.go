package search

import "container/heap"

// frontier is the ordering policy that distinguishes the algorithms.
// Entries may be duplicated; popNext discards stale ones lazily.
type frontier interface {
	push(idx int)
	// popNext drains entries for which the stale predicate holds and returns
	// the next live entry, or ok=false once the frontier is exhausted.
	popNext() (idx int, ok bool)
}

// fifoFrontier pops in strict insertion order.
type fifoFrontier struct {
	queue []int
	head  int
	stale func(idx int) bool
}

func newFIFOFrontier(capacity int, stale func(int) bool) *fifoFrontier {
	return &fifoFrontier{queue: make([]int, 0, capacity), stale: stale}
}

func (f *fifoFrontier) push(idx int) {
	f.queue = append(f.queue, idx)
}

func (f *fifoFrontier) popNext() (int, bool) {
	for f.head < len(f.queue) && f.stale(f.queue[f.head]) {
		f.head++
	}
	if f.head == len(f.queue) {
		return 0, false
	}
	idx := f.queue[f.head]
	f.head++

	return idx, true
}

// priorityFrontier pops the entry with the smallest key. The key is taken
// when the entry is pushed; a later improvement pushes a new entry and the
// old one is skipped once its cell is visited.
type priorityFrontier struct {
	pq    nodePQ
	key   func(idx int) float64
	stale func(idx int) bool
}

func newPriorityFrontier(capacity int, key func(int) float64, stale func(int) bool) *priorityFrontier {
	f := &priorityFrontier{
		pq:    make(nodePQ, 0, capacity),
		key:   key,
		stale: stale,
	}
	heap.Init(&f.pq)

	return f
}

func (f *priorityFrontier) push(idx int) {
	heap.Push(&f.pq, &nodeItem{idx: idx, key: f.key(idx)})
}

func (f *priorityFrontier) popNext() (int, bool) {
	for f.pq.Len() > 0 && f.stale(f.pq[0].idx) {
		heap.Pop(&f.pq)
	}
	if f.pq.Len() == 0 {
		return 0, false
	}

	return heap.Pop(&f.pq).(*nodeItem).idx, true
}

// nodeItem is a frontier entry: a cell index and its priority at push time.
type nodeItem struct {
	idx int
	key float64
}

// nodePQ is a min-heap of *nodeItem ordered by key ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller key → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].key < pq[j].key }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
