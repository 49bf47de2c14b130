package Queues

// Ring is a growable circular array queue. The zero value is an empty queue
// ready to use. The tree height walks push one level of nodes at a time, so
// the capacity converges to the widest level.
type Ring[T any] struct {
	sz, head, tail uint
	content        []T
}

func MakeRing[T any](initCap uint) *Ring[T] {
	return &Ring[T]{content: make([]T, initCap)}
}

func (u *Ring[T]) Empty() bool {
	return u.sz == 0
}

func (u *Ring[T]) Size() uint {
	return u.sz
}

// grow to newLen and unwrap the content so that head is 0.
func (u *Ring[T]) grow(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.head, u.tail = 0, u.sz
	u.content = nc
}

func (u *Ring[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.grow(u.sz*3/2 + 2)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *Ring[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T) // drop the reference for the collector
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *Ring[T]) Peek() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	return u.content[u.head], nil
}

// Clear the queue keeping its capacity.
func (u *Ring[T]) Clear() {
	clear(u.content)
	u.head, u.tail, u.sz = 0, 0, 0
}
