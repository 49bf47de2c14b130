package Queues

// Queue is a FIFO.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
