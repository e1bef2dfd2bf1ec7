package scoring

import "container/heap"

// boundedMinHeap retains at most capacity Candidates, always the ones with
// the highest ContentScore seen so far. No priority-queue library appears
// anywhere in the example corpus, so this uses container/heap directly.
type boundedMinHeap struct {
	items []Candidate
	cap   int
}

func newBoundedMinHeap(cap int) *boundedMinHeap {
	h := &boundedMinHeap{cap: cap}
	heap.Init(h)
	return h
}

func (h *boundedMinHeap) Len() int { return len(h.items) }
func (h *boundedMinHeap) Less(i, j int) bool {
	return h.items[i].ContentScore < h.items[j].ContentScore
}
func (h *boundedMinHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *boundedMinHeap) Push(x any) { h.items = append(h.items, x.(Candidate)) }

func (h *boundedMinHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// Offer admits c if the heap has room, or if c outscores the current
// minimum, evicting that minimum.
func (h *boundedMinHeap) Offer(c Candidate) {
	if h.cap <= 0 {
		return
	}
	if h.Len() < h.cap {
		heap.Push(h, c)
		return
	}
	if h.Len() > 0 && c.ContentScore > h.items[0].ContentScore {
		heap.Pop(h)
		heap.Push(h, c)
	}
}

// DrainAscending removes and returns every retained candidate in ascending
// score order (the order §4.2's dequeue loop expects).
func (h *boundedMinHeap) DrainAscending() []Candidate {
	out := make([]Candidate, 0, h.Len())
	for h.Len() > 0 {
		out = append(out, heap.Pop(h).(Candidate))
	}
	return out
}
