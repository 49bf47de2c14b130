package ThreadTree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/g-m-twostay/go-bstrees/Trees"
	"github.com/g-m-twostay/go-bstrees/Trees/internal/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _R = rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

func sorted(t *testing.T, tree *ThreadTree[int]) []int {
	t.Helper()
	tree.FinalizeThreading()
	require.False(t, tree.Corrupt())
	s, err := tree.Sorted()
	require.NoError(t, err)
	return s
}

func Test_Insert(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for range tAddN {
		b := _R.Intn(tAddValRange)
		_, in := content[b]
		if tree.Insert(b) == in {
			t.Errorf("insert of key %v returned %v with presence %v", b, !in, in)
		}
		content[b] = struct{}{}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	s := sorted(t, tree)
	if len(s) != len(content) {
		t.Errorf("sorted size is %d, want %d", len(s), len(content))
	}
	for _, v := range s {
		if _, in := content[v]; !in {
			t.Errorf("sorted has non existent key %v", v)
		}
	}
	if !slices.IsSorted(s) {
		t.Errorf("sorted is not sorted")
	}
}

func Test_Remove(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	if tree.Remove(0) {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = _R.Intn(tAddValRange)
		tree.Insert(a[i])
		content[a[i]] = struct{}{}
	}
	tree.FinalizeThreading()
	for i := range _R.Intn(len(a)) {
		_, in := content[a[i]]
		if tree.Remove(a[i]) != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if tree.Remove(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		delete(content, a[i])
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

// TestSorted_Mixed interleaves mutations, which leave stale threads behind in
// the nodes, with refinalizing and walking the threads.
func TestSorted_Mixed(t *testing.T) {
	tree := New[int]()
	ref := oracle.New[int]()
	for i := range tAddN * 2 {
		v := _R.Intn(tAddValRange / 4)
		if _R.Intn(3) == 0 {
			require.Equal(t, ref.Remove(v), tree.Remove(v), "remove %d", v)
		} else {
			require.Equal(t, ref.Insert(v), tree.Insert(v), "insert %d", v)
		}
		require.Equal(t, uint(ref.Len()), tree.Size())
		if i%97 == 0 && ref.Len() > 0 {
			in, _ := tree.Serialize()
			want := ref.Sorted()
			require.Equal(t, want, in)
			require.Equal(t, want, sorted(t, tree))
		}
	}
}

func TestSorted_SmallShapes(t *testing.T) {
	for _, vs := range [][]int{
		{1},
		{2, 1}, // left only
		{1, 2}, // right only
		{3, 1, 2},
		{1, 3, 2},
		{5, 3, 8, 1, 4, 7, 9},
	} {
		tree := New[int]()
		for _, v := range vs {
			tree.Insert(v)
		}
		want := slices.Clone(vs)
		slices.Sort(want)
		in, _ := tree.Serialize()
		require.Equal(t, want, in)
		require.Equal(t, want, sorted(t, tree), "shape %v", vs)

		tree = From(vs)
		require.Equal(t, want, sorted(t, tree), "built %v", vs)
	}
}

func TestSorted_Errors(t *testing.T) {
	tree := New[int]()
	var ee *Trees.EmptyTreeError
	_, err := tree.Sorted()
	require.True(t, errors.As(err, &ee))
	tree.FinalizeThreading()
	_, err = tree.Sorted()
	require.True(t, errors.As(err, &ee))
	_, err = tree.Minimum()
	require.True(t, errors.As(err, &ee))
	_, err = tree.Maximum()
	require.True(t, errors.As(err, &ee))

	tree.Insert(2)
	var se *Trees.StaleThreadsError
	_, err = tree.Sorted()
	require.True(t, errors.As(err, &se))
	tree.FinalizeThreading()
	require.True(t, tree.Threaded())
	require.False(t, tree.Insert(2), "duplicate")
	require.True(t, tree.Threaded(), "a failed insert keeps the threads")
	require.False(t, tree.Remove(7))
	require.True(t, tree.Threaded(), "a failed remove keeps the threads")
	require.True(t, tree.Insert(1))
	require.False(t, tree.Threaded())
	err = tree.Ascend(func(int) bool { return true })
	require.True(t, errors.As(err, &se))
}

func TestAscend_Stop(t *testing.T) {
	tree := From([]int{1, 2, 3, 4, 5, 6})
	tree.FinalizeThreading()
	var got []int
	require.NoError(t, tree.Ascend(func(v int) bool {
		got = append(got, v)
		return v < 3
	}))
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestDuplicate(t *testing.T) {
	tree := From([]int{2, 1, 3})
	before, _ := tree.Serialize()
	require.False(t, tree.Insert(2))
	require.Equal(t, uint(3), tree.Size())
	after, _ := tree.Serialize()
	require.Equal(t, before, after)
}

func TestRemove_TwoChildren(t *testing.T) {
	tree := From([]int{5, 3, 8, 7, 9})
	tree.FinalizeThreading()
	require.True(t, tree.Remove(5))
	in, post := tree.Serialize()
	require.Equal(t, []int{3, 7, 8, 9}, in)
	require.Equal(t, []int{3, 9, 8, 7}, post)
	require.Equal(t, []int{3, 7, 8, 9}, sorted(t, tree))
	// The removed successor node is detached and no thread reaches it.
	for _, n := range nodes(tree.root, nil) {
		if n.r.to != nil {
			require.True(t, tree.Has(n.r.to.v))
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tree := New[int]()
	for _, v := range _R.Perm(200) {
		tree.Insert(v * 2)
	}
	in0, post0 := tree.Serialize()
	for range 100 {
		v := _R.Intn(200)*2 + 1
		require.True(t, tree.Insert(v))
		require.True(t, tree.Remove(v))
		in, post := tree.Serialize()
		require.Equal(t, in0, in)
		require.Equal(t, post0, post)
		require.Equal(t, uint(200), tree.Size())
	}
}

func TestFrom_Sorted(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 100, 1023, 1024} {
		s := make([]int, n)
		for i := range s {
			s[i] = i - n/2
		}
		tree := From(s)
		require.Equal(t, uint(n), tree.Size())
		require.Equal(t, ceilLog2(n+1), tree.Height(), "n=%d", n)
		if n > 0 {
			require.Equal(t, s, sorted(t, tree))
		}
	}
}

func TestFrom_Unsorted(t *testing.T) {
	tree := From([]int{4, 2, 9, 2, 4, 1})
	require.Equal(t, uint(4), tree.Size())
	require.Equal(t, []int{1, 2, 4, 9}, sorted(t, tree))
	tree.Assign([]int{10, 20, 30})
	require.False(t, tree.Threaded())
	require.Equal(t, uint(2), tree.Height())
	require.Equal(t, []int{10, 20, 30}, sorted(t, tree))
}

func TestClone(t *testing.T) {
	tree := From([]int{5, 3, 8, 1, 4, 7, 9})
	tree.FinalizeThreading()
	c := tree.Clone()
	require.False(t, c.Threaded())
	require.True(t, tree.Threaded())
	_, err := c.Sorted()
	var se *Trees.StaleThreadsError
	require.True(t, errors.As(err, &se))

	shared := make(map[*node[int]]struct{})
	for _, n := range nodes(tree.root, nil) {
		shared[n] = struct{}{}
	}
	for _, n := range nodes(c.root, nil) {
		_, in := shared[n]
		assert.False(t, in, "node %d is shared", n.v)
		assert.False(t, !n.r.owned && n.r.to != nil, "copied thread at %d", n.v)
	}
	require.True(t, c.Remove(5))
	require.Equal(t, []int{1, 3, 4, 7, 8, 9}, sorted(t, c))
	s, err := tree.Sorted()
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, s)
}

func TestClear(t *testing.T) {
	tree := From([]int{5, 3, 8, 1, 4, 7, 9})
	tree.FinalizeThreading()
	root := tree.root
	tree.Clear()
	require.True(t, tree.Empty())
	require.Nil(t, root.l)
	require.Nil(t, root.r.to)
	require.Equal(t, uint(0), tree.Height())
	tree.Insert(1)
	require.Equal(t, []int{1}, sorted(t, tree))
}

func TestMinMax(t *testing.T) {
	tree := From([]int{5, 3, 8, 1, 4, 7, 9})
	tree.FinalizeThreading()
	v, err := tree.Minimum()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	// the maximum must not be confused with the thread of 4 or 5's subtree.
	v, err = tree.Maximum()
	require.NoError(t, err)
	require.Equal(t, 9, v)
	require.True(t, tree.Remove(9))
	v, err = tree.Maximum()
	require.NoError(t, err)
	require.Equal(t, 8, v)
}

type rev int

func (a rev) LessThan(b rev) bool { return a > b }
func (a rev) Equals(b rev) bool   { return a == b }

func TestNewOrdered(t *testing.T) {
	tree := NewOrdered[rev]()
	for _, v := range []rev{2, 9, 4, 1} {
		tree.Insert(v)
	}
	tree.FinalizeThreading()
	s, err := tree.Sorted()
	require.NoError(t, err)
	require.Equal(t, []rev{9, 4, 2, 1}, s)
}

func ceilLog2(n int) uint {
	var h uint
	for x := 1; x < n; x <<= 1 {
		h++
	}
	return h
}
