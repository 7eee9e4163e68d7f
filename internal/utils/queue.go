package utils

// Queue is a first-in first-out queue backed by a growable ring buffer
type Queue[T any] struct {
	items []T
	head  int
	count int
}

func (q *Queue[T]) Len() int { return q.count }

func (q *Queue[T]) Push(item T) {
	if q.count == len(q.items) {
		q.grow()
	}

	q.items[(q.head+q.count)%len(q.items)] = item
	q.count++
}

// Front returns the oldest item in the queue without removing it. The boolean is false
// when the queue is empty.
func (q *Queue[T]) Front() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}

	return q.items[q.head], true
}

// Pop removes and returns the oldest item in the queue. The boolean is false when the
// queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}

	item := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.count--

	return item, true
}

// Each calls visit on every item from oldest to newest
func (q *Queue[T]) Each(visit func(item T)) {
	for i := 0; i < q.count; i++ {
		visit(q.items[(q.head+i)%len(q.items)])
	}
}

func (q *Queue[T]) Clear() {
	var zero T
	for i := range q.items {
		q.items[i] = zero
	}
	q.head = 0
	q.count = 0
}

func (q *Queue[T]) grow() {
	newSize := len(q.items) * 2
	if newSize == 0 {
		newSize = 4
	}

	items := make([]T, newSize)
	for i := 0; i < q.count; i++ {
		items[i] = q.items[(q.head+i)%len(q.items)]
	}

	q.items = items
	q.head = 0
}
