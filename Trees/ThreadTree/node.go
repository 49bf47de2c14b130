package ThreadTree

import "github.com/g-m-twostay/go-bstrees/Queues"

// edge is the right link of a node. When owned is true, to is the right
// subtree and belongs to the node. Otherwise to is a thread: a reference to
// the in-order successor that is owned by some other node, or nil for none.
// Only owned edges may be followed when copying, releasing or restructuring.
type edge[T any] struct {
	to    *node[T]
	owned bool
}

// A node in the ThreadTree. l is owned by the node.
type node[T any] struct {
	v T
	l *node[T]
	r edge[T]
}

// right child of n, nil if n has no owned right subtree.
func (n *node[T]) right() *node[T] {
	if n.r.owned {
		return n.r.to
	}
	return nil
}

// setRight makes c the owned right subtree of n, dropping any thread.
func (n *node[T]) setRight(c *node[T]) {
	n.r = edge[T]{c, c != nil}
}

func leftmost[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// build a subtree from the strictly ascending s by taking the middle element as root.
// Time: O(n)
func build[T any](s []T) *node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	n := &node[T]{v: s[mid], l: build(s[:mid])}
	n.setRight(build(s[mid+1:]))
	return n
}

// clone the owned structure of the subtree rooting at cur; threads aren't copied.
func clone[T any](cur *node[T]) *node[T] {
	if cur == nil {
		return nil
	}
	c := &node[T]{v: cur.v, l: clone(cur.l)}
	c.setRight(clone(cur.right()))
	return c
}

// release unlinks every node of the subtree rooting at cur, following owned
// edges only, so that no detached node keeps a thread into a live tree.
func release[T any](cur *node[T]) {
	for cur != nil {
		release(cur.l)
		next := cur.right()
		cur.l, cur.r = nil, edge[T]{}
		cur = next
	}
}

// thread installs the successor threads of the subtree rooting at cur in
// in-order. prev is the node visited right before the subtree; the last node
// visited is returned.
func thread[T any](cur, prev *node[T]) *node[T] {
	if cur == nil {
		return prev
	}
	prev = thread(cur.l, prev)
	if prev != nil && !prev.r.owned {
		prev.r = edge[T]{to: cur}
	}
	return thread(cur.right(), cur)
}

func inOrder[T any](cur *node[T], s []T) []T {
	if cur == nil {
		return s
	}
	s = inOrder(cur.l, s)
	s = append(s, cur.v)
	return inOrder(cur.right(), s)
}

func postOrder[T any](cur *node[T], s []T) []T {
	if cur == nil {
		return s
	}
	s = postOrder(cur.l, s)
	s = postOrder(cur.right(), s)
	return append(s, cur.v)
}

// nodes of the subtree in in-order, following owned edges.
func nodes[T any](cur *node[T], s []*node[T]) []*node[T] {
	if cur == nil {
		return s
	}
	s = nodes(cur.l, s)
	s = append(s, cur)
	return nodes(cur.right(), s)
}

// height counts the levels below and including root, one level at a time.
func height[T any](root *node[T]) (h uint) {
	if root == nil {
		return 0
	}
	q := Queues.MakeRing[*node[T]](1)
	for q.Push(root); !q.Empty(); h++ {
		for n := q.Size(); n > 0; n-- {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if r := cur.right(); r != nil {
				q.Push(r)
			}
		}
	}
	return
}
