package bridge

import "sync"

// queue is an unbounded multi-producer, single-consumer FIFO of envelopes.
//
// Producers are counted: once the last one is released, pop hands out what
// is still buffered and then reports end of stream. The consumer closes the
// queue when it stops, after which every push fails.
type queue struct {
	mu        sync.Mutex
	items     []envelope
	producers int
	closed    bool

	// signal wakes the consumer. Buffered so a notify between the
	// consumer's check and its receive is not lost.
	signal chan struct{}
}

func newQueue() *queue {
	return &queue{signal: make(chan struct{}, 1)}
}

// acquire registers a new producer. It fails once the consumer is gone or
// every earlier producer has been released.
func (q *queue) acquire() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed || q.producers == 0 {
		return false
	}
	q.producers++
	return true
}

// release unregisters a producer.
func (q *queue) release() {
	q.mu.Lock()
	q.producers--
	last := q.producers == 0
	q.mu.Unlock()

	if last {
		q.notify()
	}
}

// push appends e. Never blocks; reports false if the consumer is gone.
func (q *queue) push(e envelope) bool {
	q.mu.Lock()
	if q.closed || q.producers == 0 {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, e)
	q.mu.Unlock()

	q.notify()
	return true
}

// pop blocks until an envelope is available. It reports false once every
// producer is released and the buffer is empty, or the queue is closed.
func (q *queue) pop() (envelope, bool) {
	for {
		q.mu.Lock()
		if q.closed {
			q.mu.Unlock()
			return nil, false
		}
		if len(q.items) > 0 {
			e := q.items[0]
			q.items[0] = nil
			q.items = q.items[1:]
			if len(q.items) == 0 {
				q.items = nil
			}
			q.mu.Unlock()
			return e, true
		}
		if q.producers == 0 {
			q.mu.Unlock()
			return nil, false
		}
		q.mu.Unlock()

		<-q.signal
	}
}

// close marks the consumer as gone and returns whatever was still buffered.
func (q *queue) close() []envelope {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	rest := q.items
	q.items = nil
	return rest
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *queue) notify() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}
