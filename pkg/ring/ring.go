// Package ring provides a fixed-capacity FIFO queue backed by a ring buffer.
//
// The buffer allocates its backing storage once, at construction time, and
// never grows. Enqueueing into a full buffer is refused rather than
// evicting older items, which makes it suitable as a bounded work queue
// where drop-on-full is the desired backpressure behavior.
//
// Buffer is not safe for concurrent use; callers that share one across
// goroutines must serialize access externally.
package ring

// Buffer is a bounded FIFO queue over elements of type T.
//
// The zero value is not usable; construct with New.
type Buffer[T any] struct {
	items []T
	// head is the index of the next element to dequeue, tail the index of
	// the next free slot. Both wrap modulo capacity; size disambiguates
	// the head == tail case.
	head int
	tail int
	size int
}

// New returns an empty Buffer holding at most capacity elements.
// A capacity below 1 is raised to 1.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer[T]{items: make([]T, capacity)}
}

// Enqueue appends item at the tail. It returns false, without storing the
// item, when the buffer is already full. No element is ever overwritten.
func (b *Buffer[T]) Enqueue(item T) bool {
	if b.size == len(b.items) {
		return false
	}
	b.items[b.tail] = item
	b.tail = (b.tail + 1) % len(b.items)
	b.size++
	return true
}

// Dequeue removes and returns the head element. The second return value is
// false when the buffer is empty.
func (b *Buffer[T]) Dequeue() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}
	item := b.items[b.head]
	b.items[b.head] = zero // drop the reference so the element can be collected
	b.head = (b.head + 1) % len(b.items)
	b.size--
	return item, true
}

// Len returns the number of elements currently queued.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the fixed capacity the buffer was constructed with.
func (b *Buffer[T]) Cap() int { return len(b.items) }
