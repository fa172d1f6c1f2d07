// Package ring provides fixed-capacity stack and queue containers.
//
// Both containers saturate instead of growing: an insert against a full
// container is rejected and reported to the caller, never silently
// reallocated. History trackers and layer stores rely on this to keep
// their memory use bounded and their overflow behavior deterministic.
package ring

// Stack is a fixed-capacity LIFO stack.
// The zero value is unusable; create one with NewStack.
type Stack[T any] struct {
	buf []T
	n   int
}

// NewStack creates a stack that holds at most capacity elements.
// A non-positive capacity yields a stack that rejects every push.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{buf: make([]T, capacity)}
}

// Push places v on top of the stack.
// It reports false, leaving the stack unchanged, when the stack is full.
func (s *Stack[T]) Push(v T) bool {
	if s.n == len(s.buf) {
		return false
	}
	s.buf[s.n] = v
	s.n++
	return true
}

// Pop removes and returns the top element.
// The second return value is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.n == 0 {
		return zero, false
	}
	s.n--
	v := s.buf[s.n]
	s.buf[s.n] = zero
	return v, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if s.n == 0 {
		return zero, false
	}
	return s.buf[s.n-1], true
}

// Len returns the number of stored elements.
func (s *Stack[T]) Len() int { return s.n }

// Cap returns the fixed capacity.
func (s *Stack[T]) Cap() int { return len(s.buf) }

// Full reports whether a Push would be rejected.
func (s *Stack[T]) Full() bool { return s.n == len(s.buf) }

// Queue is a fixed-capacity FIFO ring buffer.
// The zero value is unusable; create one with NewQueue.
type Queue[T any] struct {
	buf  []T
	head int
	n    int
}

// NewQueue creates a queue that holds at most capacity elements.
// A non-positive capacity yields a queue that rejects every enqueue.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{buf: make([]T, capacity)}
}

// Enqueue appends v at the tail.
// It reports false, leaving the queue unchanged, when the queue is full.
func (q *Queue[T]) Enqueue(v T) bool {
	if q.n == len(q.buf) {
		return false
	}
	q.buf[(q.head+q.n)%len(q.buf)] = v
	q.n++
	return true
}

// Dequeue removes and returns the head element.
// The second return value is false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.n == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return v, true
}

// At returns the element at logical position i, where 0 is the head.
// It panics if i is out of range, matching slice indexing behavior.
func (q *Queue[T]) At(i int) T {
	if i < 0 || i >= q.n {
		panic("ring: queue index out of range")
	}
	return q.buf[(q.head+i)%len(q.buf)]
}

// Reverse reverses the stored order in place: head becomes tail.
func (q *Queue[T]) Reverse() {
	for i, j := 0, q.n-1; i < j; i, j = i+1, j-1 {
		a := (q.head + i) % len(q.buf)
		b := (q.head + j) % len(q.buf)
		q.buf[a], q.buf[b] = q.buf[b], q.buf[a]
	}
}

// Len returns the number of stored elements.
func (q *Queue[T]) Len() int { return q.n }

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Full reports whether an Enqueue would be rejected.
func (q *Queue[T]) Full() bool { return q.n == len(q.buf) }
