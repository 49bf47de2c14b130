// Package oracle is a reference ordered set used by the tree tests to check
// their results against a well known B-tree implementation.
package oracle

import (
	"cmp"

	"github.com/google/btree"
)

const degree = 16

type Set[T cmp.Ordered] struct {
	t *btree.BTreeG[T]
}

func New[T cmp.Ordered]() *Set[T] {
	return &Set[T]{btree.NewG[T](degree, cmp.Less[T])}
}

// Insert v, false if it was already present.
func (u *Set[T]) Insert(v T) bool {
	_, replaced := u.t.ReplaceOrInsert(v)
	return !replaced
}

// Remove v, false if it was absent.
func (u *Set[T]) Remove(v T) bool {
	_, found := u.t.Delete(v)
	return found
}

func (u *Set[T]) Has(v T) bool {
	return u.t.Has(v)
}

func (u *Set[T]) Len() int {
	return u.t.Len()
}

// Sorted returns every element in ascending order.
func (u *Set[T]) Sorted() []T {
	s := make([]T, 0, u.t.Len())
	u.t.Ascend(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}
