package ThreadTree

import (
	"cmp"

	"github.com/g-m-twostay/go-bstrees/Trees"
)

// ThreadTree is an unbalanced binary search tree with no repeated values whose
// nodes lacking a right subtree can point to their in-order successor
// instead. These threads allow walking the tree in ascending order with
// amortized O(1) per step and no stack.
// Threads are a cache of the in-order sequence: they are installed by
// FinalizeThreading and become stale on every successful Insert, Remove,
// Assign or Clear. Sorted and Ascend refuse to walk stale threads.
// The structure itself never depends on threads, so the tree stays valid
// regardless of whether it's threaded.
// The zero value isn't usable; create a ThreadTree with New, New1, NewOrdered, From or From1.
type ThreadTree[T any] struct {
	root     *node[T]
	sz       uint
	threaded bool
	lt, eq   func(T, T) bool
}

var _ Trees.Tree[int] = (*ThreadTree[int])(nil)

// New ThreadTree for the builtin ordered types.
func New[T cmp.Ordered]() *ThreadTree[T] {
	return New1(cmp.Less[T], equal[T])
}

// New1 is the New equivalence for any type, ordered by lessThan and compared by equals.
// equals must be consistent with lessThan, see Trees.Ordered.
func New1[T any](lessThan, equals func(T, T) bool) *ThreadTree[T] {
	return &ThreadTree[T]{lt: lessThan, eq: equals}
}

// NewOrdered is the New equivalence for keys implementing Trees.Ordered.
func NewOrdered[T Trees.Ordered[T]]() *ThreadTree[T] {
	return New1(T.LessThan, T.Equals)
}

// From builds a ThreadTree holding the elements of vs. When vs is strictly
// ascending the tree is built by median split in O(n) and has the minimal
// height ceil(log2(n+1)); otherwise the elements are inserted one by one in
// O(n*D) and repeated elements are dropped. The tree isn't threaded.
func From[T cmp.Ordered](vs []T) *ThreadTree[T] {
	u := New[T]()
	u.Assign(vs)
	return u
}

// From1 is the From equivalence of New1.
func From1[T any](vs []T, lessThan, equals func(T, T) bool) *ThreadTree[T] {
	u := New1(lessThan, equals)
	u.Assign(vs)
	return u
}

func equal[T comparable](a, b T) bool {
	return a == b
}

// Assign replaces the content of the tree with the elements of vs, see From.
func (u *ThreadTree[T]) Assign(vs []T) {
	if u.Clear(); Trees.StrictlyAscending(vs, u.lt) {
		u.root, u.sz = build(vs), uint(len(vs))
	} else {
		for _, v := range vs {
			u.Insert(v)
		}
	}
}

// Clone returns a deep copy of u sharing no nodes with it. The copy isn't threaded.
// Time: O(n)
func (u *ThreadTree[T]) Clone() *ThreadTree[T] {
	return &ThreadTree[T]{clone(u.root), u.sz, false, u.lt, u.eq}
}

// Clear [Trees.Tree.Clear]
// Time: O(n)
func (u *ThreadTree[T]) Clear() {
	release(u.root)
	u.root, u.sz, u.threaded = nil, 0, false
}

// Size [Trees.Tree.Size]
// Time: O(1); Space: O(1)
func (u *ThreadTree[T]) Size() uint {
	return u.sz
}

func (u *ThreadTree[T]) Empty() bool {
	return u.sz == 0
}

// Threaded reports whether the threads match the current structure.
func (u *ThreadTree[T]) Threaded() bool {
	return u.threaded
}

// insert v to the subtree rooting at cur and return the new root of the subtree.
// A thread in the way is overwritten by the new owned right child.
func (u *ThreadTree[T]) insert(cur *node[T], v T) (*node[T], bool) {
	if cur == nil {
		return &node[T]{v: v}, true
	}
	inserted := false
	if u.eq(v, cur.v) {
		return cur, false
	} else if u.lt(v, cur.v) {
		cur.l, inserted = u.insert(cur.l, v)
	} else {
		var r *node[T]
		r, inserted = u.insert(cur.right(), v)
		cur.setRight(r)
	}
	return cur, inserted
}

// Insert [Trees.Tree.Insert]. Recursive.
// Time: O(D)
func (u *ThreadTree[T]) Insert(v T) bool {
	var inserted bool
	if u.root, inserted = u.insert(u.root, v); inserted {
		u.sz++
		u.threaded = false
	}
	return inserted
}

// remove v from the subtree rooting at cur and return the new root of the
// subtree. A node with two children takes the value of its in-order successor,
// which is unlinked instead.
func (u *ThreadTree[T]) remove(cur *node[T], v T) (*node[T], bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if u.eq(v, cur.v) {
		l, r := cur.l, cur.right()
		if l != nil && r != nil {
			var p *node[T]
			succ := r
			for succ.l != nil {
				p, succ = succ, succ.l
			}
			cur.v = succ.v
			if p == nil {
				cur.setRight(succ.right())
			} else {
				p.l = succ.right()
			}
			succ.l, succ.r = nil, edge[T]{}
			return cur, true
		}
		cur.l, cur.r = nil, edge[T]{}
		if l == nil {
			return r, true
		}
		return l, true
	} else if u.lt(v, cur.v) {
		cur.l, deleted = u.remove(cur.l, v)
	} else if r := cur.right(); r != nil {
		r, deleted = u.remove(r, v)
		cur.setRight(r)
	}
	return cur, deleted
}

// Remove [Trees.Tree.Remove]. Recursive.
// Time: O(D)
func (u *ThreadTree[T]) Remove(v T) bool {
	var deleted bool
	if u.root, deleted = u.remove(u.root, v); deleted {
		u.sz--
		u.threaded = false
	}
	return deleted
}

// Has [Trees.Tree.Has]
// Time: O(D); Space: O(1)
func (u *ThreadTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if u.eq(v, cur.v) {
			return true
		} else if u.lt(v, cur.v) {
			cur = cur.l
		} else {
			cur = cur.right()
		}
	}
	return false
}

// Minimum [Trees.Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *ThreadTree[T]) Minimum() (T, error) {
	if u.root == nil {
		return *new(T), &Trees.EmptyTreeError{Op: "Minimum"}
	}
	return leftmost(u.root).v, nil
}

// Maximum [Trees.Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *ThreadTree[T]) Maximum() (T, error) {
	cur := u.root
	if cur == nil {
		return *new(T), &Trees.EmptyTreeError{Op: "Maximum"}
	}
	for r := cur.right(); r != nil; r = cur.right() {
		cur = r
	}
	return cur.v, nil
}

// FinalizeThreading points every node without a right subtree to its in-order
// successor. It must be called again after modifying the tree and before
// calling Sorted or Ascend.
// Time: O(n)
func (u *ThreadTree[T]) FinalizeThreading() {
	if last := thread(u.root, nil); last != nil && !last.r.owned {
		last.r = edge[T]{}
	}
	u.threaded = true
}

// Ascend calls f on every element in ascending order until f returns false.
// It follows the threads and uses no stack: each step either jumps through a
// thread or descends to the leftmost node of a right subtree.
// Returns EmptyTreeError on an empty tree and StaleThreadsError if the tree
// was modified after the last FinalizeThreading.
// Time: O(n) for the whole walk; Space: O(1)
func (u *ThreadTree[T]) Ascend(f func(T) bool) error {
	if u.root == nil {
		return &Trees.EmptyTreeError{Op: "Ascend"}
	}
	if !u.threaded {
		return &Trees.StaleThreadsError{}
	}
	for cur := leftmost(u.root); f(cur.v) && cur.r.to != nil; {
		if cur.r.owned {
			cur = leftmost(cur.r.to)
		} else {
			cur = cur.r.to
		}
	}
	return nil
}

// Sorted returns every element in ascending order using the threads, see Ascend.
func (u *ThreadTree[T]) Sorted() ([]T, error) {
	if u.root == nil {
		return nil, &Trees.EmptyTreeError{Op: "Sorted"}
	}
	s := make([]T, 0, u.sz)
	err := u.Ascend(func(v T) bool {
		s = append(s, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Height [Trees.Tree.Height]
// Time: O(n); Space: O(width)
func (u *ThreadTree[T]) Height() uint {
	return height(u.root)
}

// Serialize [Trees.Tree.Serialize]. Recursive; follows owned edges only so it
// doesn't depend on the threads.
func (u *ThreadTree[T]) Serialize() (in, post []T) {
	in = inOrder(u.root, make([]T, 0, u.sz))
	post = postOrder(u.root, make([]T, 0, u.sz))
	return
}

// Corrupt [Trees.Tree.Corrupt]. Checks the ordering and the size, and every
// thread when the tree is threaded.
func (u *ThreadTree[T]) Corrupt() bool {
	ns := nodes(u.root, make([]*node[T], 0, u.sz))
	if uint(len(ns)) != u.sz {
		return true
	}
	for i, n := range ns {
		if i > 0 && !u.lt(ns[i-1].v, n.v) {
			return true
		}
		if n.r.owned && n.r.to == nil {
			return true
		}
		if u.threaded && !n.r.owned {
			if (i+1 < len(ns) && n.r.to != ns[i+1]) || (i+1 == len(ns) && n.r.to != nil) {
				return true
			}
		}
	}
	return false
}
