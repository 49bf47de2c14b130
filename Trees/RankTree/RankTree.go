package RankTree

import (
	"cmp"

	"github.com/g-m-twostay/go-bstrees/Trees"
	"golang.org/x/exp/constraints"
)

// RankTree is an unbalanced binary search tree with no repeated values. Every
// node counts the nodes of its left subtree, which gives the rank of a node
// without visiting the rest of the tree. Select and RankOf are therefore O(D)
// where D is the depth of the tree; D is O(log n) for random insertion orders
// and for trees built by From on sorted input, but O(n) in the worst case as
// nothing rebalances the tree.
// T is the type of values it will hold, S is the type of the variables
// used for storing the left subtree counts and the size. S must be wide enough
// for the size of the tree, otherwise the counters overflow.
// The zero value isn't usable; create a RankTree with New, New1, NewOrdered, From or From1.
type RankTree[T any, S constraints.Unsigned] struct {
	root   *node[T, S]
	sz     S
	lt, eq func(T, T) bool
}

var _ Trees.Tree[int] = (*RankTree[int, uint])(nil)

// New RankTree for the builtin ordered types.
func New[T cmp.Ordered, S constraints.Unsigned]() *RankTree[T, S] {
	return New1[T, S](cmp.Less[T], equal[T])
}

// New1 is the New equivalence for any type, ordered by lessThan and compared by equals.
// equals must be consistent with lessThan, see Trees.Ordered.
func New1[T any, S constraints.Unsigned](lessThan, equals func(T, T) bool) *RankTree[T, S] {
	return &RankTree[T, S]{lt: lessThan, eq: equals}
}

// NewOrdered is the New equivalence for keys implementing Trees.Ordered.
func NewOrdered[T Trees.Ordered[T], S constraints.Unsigned]() *RankTree[T, S] {
	return New1[T, S](T.LessThan, T.Equals)
}

// From builds a RankTree holding the elements of vs. When vs is strictly
// ascending the tree is built directly with minimal height in O(n); otherwise
// the elements are inserted one by one and repeated elements are dropped.
// vs isn't retained.
func From[T cmp.Ordered, S constraints.Unsigned](vs []T) *RankTree[T, S] {
	u := New[T, S]()
	u.Assign(vs)
	return u
}

// From1 is the From equivalence of New1.
func From1[T any, S constraints.Unsigned](vs []T, lessThan, equals func(T, T) bool) *RankTree[T, S] {
	u := New1[T, S](lessThan, equals)
	u.Assign(vs)
	return u
}

func equal[T comparable](a, b T) bool {
	return a == b
}

// Assign replaces the content of the tree with the elements of vs, see From.
func (u *RankTree[T, S]) Assign(vs []T) {
	if u.root, u.sz = nil, 0; Trees.StrictlyAscending(vs, u.lt) {
		u.root, u.sz = build[T, S](vs), S(len(vs))
	} else {
		for _, v := range vs {
			u.Insert(v)
		}
	}
}

// Clone returns a deep copy of u sharing no nodes with it.
// Time: O(n)
func (u *RankTree[T, S]) Clone() *RankTree[T, S] {
	return &RankTree[T, S]{clone(u.root), u.sz, u.lt, u.eq}
}

// Clear [Trees.Tree.Clear]
// Time: O(1)
func (u *RankTree[T, S]) Clear() {
	u.root, u.sz = nil, 0
}

// Size [Trees.Tree.Size]
// Time: O(1); Space: O(1)
func (u *RankTree[T, S]) Size() uint {
	return uint(u.sz)
}

func (u *RankTree[T, S]) Empty() bool {
	return u.sz == 0
}

// insert v to the subtree rooting at *curPtr. Every node on the path where v
// goes left gains one node in its left subtree.
func (u *RankTree[T, S]) insert(curPtr **node[T, S], v T) bool {
	if cur := *curPtr; cur == nil {
		*curPtr = &node[T, S]{v: v}
		return true
	} else if u.eq(v, cur.v) {
		return false
	} else if u.lt(v, cur.v) {
		if u.insert(&cur.l, v) {
			cur.lc++
			return true
		}
		return false
	} else {
		return u.insert(&cur.r, v)
	}
}

// Insert [Trees.Tree.Insert]. Recursive.
// Time: O(D)
func (u *RankTree[T, S]) Insert(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// remove v from the subtree rooting at *curPtr. A node with two children takes
// the value of its in-order successor, and the successor node is the one
// unlinked; the left counts are decremented along the path that actually lost
// a node, which includes the successor path.
func (u *RankTree[T, S]) remove(curPtr **node[T, S], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if u.eq(v, cur.v) {
		if cur.l == nil {
			*curPtr = cur.r
		} else if cur.r == nil {
			*curPtr = cur.l
		} else {
			t := &cur.r
			for (*t).l != nil {
				(*t).lc--
				t = &(*t).l
			}
			succ := *t
			cur.v = succ.v
			*t, cur = succ.r, succ
		}
		cur.l, cur.r = nil, nil
		return true
	}
	if u.lt(v, cur.v) {
		if u.remove(&cur.l, v) {
			cur.lc--
			return true
		}
		return false
	}
	return u.remove(&cur.r, v)
}

// Remove [Trees.Tree.Remove]. Recursive.
// Time: O(D)
func (u *RankTree[T, S]) Remove(v T) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

// Has [Trees.Tree.Has]
// Time: O(D); Space: O(1)
func (u *RankTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if u.eq(v, cur.v) {
			return true
		} else if u.lt(v, cur.v) {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum [Trees.Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *RankTree[T, S]) Minimum() (T, error) {
	cur := u.root
	if cur == nil {
		return *new(T), &Trees.EmptyTreeError{Op: "Minimum"}
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, nil
}

// Maximum [Trees.Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *RankTree[T, S]) Maximum() (T, error) {
	cur := u.root
	if cur == nil {
		return *new(T), &Trees.EmptyTreeError{Op: "Maximum"}
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, nil
}

// Select the k-th smallest element, 1<=k<=Size(). At each node the node itself
// is at rank lc+1 of its subtree; smaller k go left, larger k go right
// with the ranks of the left subtree and the node discounted.
// Time: O(D); Space: O(1)
func (u *RankTree[T, S]) Select(k uint) (T, error) {
	if u.root == nil {
		return *new(T), &Trees.EmptyTreeError{Op: "Select"}
	}
	if k < 1 || k > uint(u.sz) {
		return *new(T), &Trees.RankError{K: k, Size: uint(u.sz)}
	}
	cur, t := u.root, S(k)
	for t != cur.lc+1 {
		if t <= cur.lc {
			cur = cur.l
		} else {
			t -= cur.lc + 1
			cur = cur.r
		}
	}
	return cur.v, nil
}

// RankOf v in the tree according to in-order, starting from 1. Returns (0, false) if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *RankTree[T, S]) RankOf(v T) (uint, bool) {
	var ra S = 0
	for cur := u.root; cur != nil; {
		if u.eq(v, cur.v) {
			return uint(ra + cur.lc + 1), true
		} else if u.lt(v, cur.v) {
			cur = cur.l
		} else {
			ra += cur.lc + 1
			cur = cur.r
		}
	}
	return 0, false
}

// Height [Trees.Tree.Height]
// Time: O(n); Space: O(width)
func (u *RankTree[T, S]) Height() uint {
	return height(u.root)
}

// Serialize [Trees.Tree.Serialize]. Recursive.
func (u *RankTree[T, S]) Serialize() (in, post []T) {
	in = inOrder(u.root, make([]T, 0, u.sz))
	post = postOrder(u.root, make([]T, 0, u.sz))
	return
}

// corrupt checks the subtree rooting at cur whose values must lie in the open
// interval (lo, hi); nil bounds are unbounded. Returns the size of the subtree.
func (u *RankTree[T, S]) corrupt(cur *node[T, S], lo, hi *T) (S, bool) {
	if cur == nil {
		return 0, false
	}
	if (lo != nil && !u.lt(*lo, cur.v)) || (hi != nil && !u.lt(cur.v, *hi)) {
		return 0, true
	}
	ls, bad := u.corrupt(cur.l, lo, &cur.v)
	if bad || ls != cur.lc {
		return 0, true
	}
	rs, bad := u.corrupt(cur.r, &cur.v, hi)
	return ls + rs + 1, bad
}

// Corrupt [Trees.Tree.Corrupt]. Checks the ordering, every left count, and the size.
func (u *RankTree[T, S]) Corrupt() bool {
	n, bad := u.corrupt(u.root, nil, nil)
	return bad || n != u.sz
}
