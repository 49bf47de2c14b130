package RankTree

import (
	"github.com/g-m-twostay/go-bstrees/Queues"
	"golang.org/x/exp/constraints"
)

// A node in the RankTree. l and r are owned by the node.
// lc is the exact number of nodes in the subtree rooted at l.
type node[T any, S constraints.Unsigned] struct {
	v    T
	l, r *node[T, S]
	lc   S
}

// build a subtree from the strictly ascending s by taking the middle element as root.
// The result has the minimal height ceil(log2(len(s)+1)).
// Time: O(n)
func build[T any, S constraints.Unsigned](s []T) *node[T, S] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	return &node[T, S]{s[mid], build[T, S](s[:mid]), build[T, S](s[mid+1:]), S(mid)}
}

// clone the subtree rooting at cur.
func clone[T any, S constraints.Unsigned](cur *node[T, S]) *node[T, S] {
	if cur == nil {
		return nil
	}
	return &node[T, S]{cur.v, clone(cur.l), clone(cur.r), cur.lc}
}

func inOrder[T any, S constraints.Unsigned](cur *node[T, S], s []T) []T {
	if cur == nil {
		return s
	}
	s = inOrder(cur.l, s)
	s = append(s, cur.v)
	return inOrder(cur.r, s)
}

func postOrder[T any, S constraints.Unsigned](cur *node[T, S], s []T) []T {
	if cur == nil {
		return s
	}
	s = postOrder(cur.l, s)
	s = postOrder(cur.r, s)
	return append(s, cur.v)
}

// height counts the levels below and including root, one level at a time.
func height[T any, S constraints.Unsigned](root *node[T, S]) (h uint) {
	if root == nil {
		return 0
	}
	q := Queues.MakeRing[*node[T, S]](1)
	for q.Push(root); !q.Empty(); h++ {
		for n := q.Size(); n > 0; n-- {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
	return
}
