package main

import (
	"iter"
	"maps"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bstrees/Trees/RankTree"
	"github.com/g-m-twostay/go-bstrees/Trees/ThreadTree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// subject is the part of an ordered set the measurement exercises.
type subject interface {
	Insert(v int) bool
	Remove(v int) bool
	Has(v int) bool
}

var subjects = map[string]func() subject{
	"rank":     func() subject { return RankTree.New[int, uint32]() },
	"thread":   func() subject { return ThreadTree.New[int]() },
	"btree":    func() subject { return bTree{btree.NewOrderedG[int](16)} },
	"llrb":     func() subject { return llrbTree{llrb.New()} },
	"redblack": func() subject { return redBlack{redblacktree.NewWithIntComparator()} },
}

func subjectNames() iter.Seq[string] {
	return maps.Keys(subjects)
}

type bTree struct {
	t *btree.BTreeG[int]
}

func (u bTree) Insert(v int) bool {
	_, replaced := u.t.ReplaceOrInsert(v)
	return !replaced
}
func (u bTree) Remove(v int) bool {
	_, found := u.t.Delete(v)
	return found
}
func (u bTree) Has(v int) bool {
	return u.t.Has(v)
}

type llrbTree struct {
	t *llrb.LLRB
}

func (u llrbTree) Insert(v int) bool {
	return u.t.ReplaceOrInsert(llrb.Int(v)) == nil
}
func (u llrbTree) Remove(v int) bool {
	return u.t.Delete(llrb.Int(v)) != nil
}
func (u llrbTree) Has(v int) bool {
	return u.t.Has(llrb.Int(v))
}

type redBlack struct {
	t *redblacktree.Tree
}

func (u redBlack) Insert(v int) bool {
	if _, found := u.t.Get(v); found {
		return false
	}
	u.t.Put(v, struct{}{})
	return true
}
func (u redBlack) Remove(v int) bool {
	if _, found := u.t.Get(v); !found {
		return false
	}
	u.t.Remove(v)
	return true
}
func (u redBlack) Has(v int) bool {
	_, found := u.t.Get(v)
	return found
}
