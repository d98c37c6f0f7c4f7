package fakeasync

import "container/heap"

// timerHeap implements container/heap.Interface for fakeTimer, sorted by
// nextFire (earliest first — min-heap) with creation order breaking ties.
type timerHeap []*fakeTimer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].nextFire != h[j].nextFire {
		return h[i].nextFire < h[j].nextFire
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*fakeTimer)
	t.heapIndex = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// insert adds a timer to the heap and marks it active.
func (h *timerHeap) insert(t *fakeTimer) {
	t.active = true
	heap.Push(h, t)
}

// remove takes a timer out of the heap and marks it inactive. Removing an
// absent timer is a no-op.
func (h *timerHeap) remove(t *fakeTimer) {
	if !t.active {
		return
	}
	heap.Remove(h, t.heapIndex)
	t.active = false
	t.heapIndex = -1
}

// reschedule restores the heap invariant after t.nextFire changed in place.
func (h *timerHeap) reschedule(t *fakeTimer) {
	heap.Fix(h, t.heapIndex)
}

// earliest returns the active timer with the smallest nextFire, or nil when
// the heap is empty.
func (h timerHeap) earliest() *fakeTimer {
	if len(h) == 0 {
		return nil
	}
	return h[0]
}
