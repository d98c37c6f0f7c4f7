package fakeasync

// microtaskQueue is a strict-FIFO queue of zero-argument callbacks:
// insertion order is execution order, with no bound on depth.
type microtaskQueue struct {
	callbacks []func()
}

func (q *microtaskQueue) enqueue(callback func()) {
	q.callbacks = append(q.callbacks, callback)
}

func (q *microtaskQueue) len() int {
	return len(q.callbacks)
}

// drainAll runs queued callbacks until the queue is empty, re-checking
// emptiness after each one so callbacks that enqueue further microtasks see
// those run too before drainAll returns. A callback that enqueues without
// bound hangs this call, mirroring real event-loop starvation.
func (q *microtaskQueue) drainAll() {
	for len(q.callbacks) > 0 {
		callback := q.callbacks[0]
		q.callbacks[0] = nil
		q.callbacks = q.callbacks[1:]
		callback()
	}
}
