package Trees

import "strconv"

// Tree is the ordered set surface shared by the unbalanced binary search trees
// in this module. Keys are unique; insertion of an existing key and removal of
// an absent key both report false and leave the tree unchanged.
// Receivers returning an error instead of a value fail with one of the error
// types below and never panic on an empty tree. Methods implemented recursively
// are noted by the implementations.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v is already present.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false if v is absent.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree. EmptyTreeError when the tree is empty.
	Minimum() (T, error)
	//Maximum element of the tree. EmptyTreeError when the tree is empty.
	Maximum() (T, error)
	//Size of the tree.
	Size() uint
	//Empty reports Size()==0.
	Empty() bool
	//Height is the number of levels of the tree, 0 when empty.
	Height() uint
	//Serialize returns the in-order and post-order sequences of the tree.
	//Two trees with equal sequences have the same shape.
	Serialize() (in, post []T)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
	//Clear removes every element.
	Clear()
}

// Ordered is for user-defined keys. LessThan must be a strict weak order and
// Equals must agree with it: !a.LessThan(b) && !b.LessThan(a) implies a.Equals(b).
type Ordered[T any] interface {
	LessThan(T) bool
	Equals(T) bool
}

// EmptyTreeError is returned when Op needs at least one element.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty: cannot " + e.Op + "."
}

// RankError is returned when a rank K isn't within [1, Size].
type RankError struct {
	K, Size uint
}

func (e *RankError) Error() string {
	return "rank " + strconv.FormatUint(uint64(e.K), 10) + " out of range [1, " + strconv.FormatUint(uint64(e.Size), 10) + "]"
}

// StaleThreadsError is returned by threaded traversals when the tree changed
// after its threads were last installed.
type StaleThreadsError struct {
}

func (e *StaleThreadsError) Error() string {
	return "threads are stale: call FinalizeThreading after modifying the tree"
}

// StrictlyAscending reports whether every element of vs is less than the next one.
// Time: O(n)
func StrictlyAscending[T any](vs []T, lt func(T, T) bool) bool {
	for i := 1; i < len(vs); i++ {
		if !lt(vs[i-1], vs[i]) {
			return false
		}
	}
	return true
}
