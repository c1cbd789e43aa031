package search

import "container/heap"

// frontier is the working set of discovered, not yet finalized cells.
// key is only meaningful for priority frontiers.
type frontier interface {
	Push(idx, key int)
	Pop() int
	Len() int
}

// queue is a FIFO frontier.
type queue struct {
	items []int
	head  int
}

func newQueue(capacity int) *queue { return &queue{items: make([]int, 0, capacity)} }

func (q *queue) Push(idx, _ int) { q.items = append(q.items, idx) }

func (q *queue) Pop() int {
	idx := q.items[q.head]
	q.head++
	return idx
}

func (q *queue) Len() int { return len(q.items) - q.head }

// stack is a LIFO frontier.
type stack []int

func newStack(capacity int) *stack {
	s := make(stack, 0, capacity)
	return &s
}

func (s *stack) Push(idx, _ int) { *s = append(*s, idx) }

func (s *stack) Pop() int {
	old := *s
	idx := old[len(old)-1]
	*s = old[:len(old)-1]
	return idx
}

func (s *stack) Len() int { return len(*s) }

// priority is a min-heap frontier ordered by key, then by insertion order.
// Decrease-key is lazy: a better key pushes a fresh entry and the stale one
// is dropped by the engine when popped.
type priority struct {
	pq  nodePQ
	seq int
}

func newPriority(capacity int) *priority {
	p := &priority{pq: make(nodePQ, 0, capacity)}
	heap.Init(&p.pq)
	return p
}

func (p *priority) Push(idx, key int) {
	heap.Push(&p.pq, &nodeItem{idx: idx, key: key, seq: p.seq})
	p.seq++
}

func (p *priority) Pop() int { return heap.Pop(&p.pq).(*nodeItem).idx }

func (p *priority) Len() int { return p.pq.Len() }

// nodeItem is one heap entry.
type nodeItem struct {
	idx int // row-major cell index
	key int // priority, smaller first
	seq int // insertion counter, breaks ties
}

// nodePQ implements heap.Interface over *nodeItem.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
