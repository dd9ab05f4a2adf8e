// Package fenwick provides a binary-indexed tree over float64 values with
// O(log n) point updates and prefix-sum queries, plus an O(n) bulk rebuild.
//
// The tree is used to index size deviations of overridden rows/columns, so n
// here is the number of overrides, not the logical axis length.
package fenwick

// Tree is a binary-indexed (Fenwick) tree. The zero value is an empty tree.
//
// Tree is not safe for concurrent use.
type Tree struct {
	// sums is 1-based: sums[i] holds the partial sum of the range
	// (i - lowbit(i), i].
	sums []float64
}

// New returns a tree sized for n values, all zero.
func New(n int) *Tree {
	return &Tree{sums: make([]float64, n+1)}
}

// Len returns the number of values the tree indexes.
func (t *Tree) Len() int {
	return len(t.sums) - 1
}

// Add adds delta to the value at index i (0-based).
func (t *Tree) Add(i int, delta float64) {
	for j := i + 1; j < len(t.sums); j += j & -j {
		t.sums[j] += delta
	}
}

// PrefixSum returns the sum of the values at indices [0, n).
// n is clamped to the tree length.
func (t *Tree) PrefixSum(n int) float64 {
	if n > len(t.sums)-1 {
		n = len(t.sums) - 1
	}
	var sum float64
	for j := n; j > 0; j -= j & -j {
		sum += t.sums[j]
	}
	return sum
}

// Rebuild replaces the tree contents with the given values in O(n).
// The internal array is reused when it has sufficient capacity, so a Tree
// that shrinks and grows repeatedly settles into a steady allocation state.
func (t *Tree) Rebuild(values []float64) {
	n := len(values)
	if cap(t.sums) >= n+1 {
		t.sums = t.sums[:n+1]
	} else {
		t.sums = make([]float64, n+1)
	}
	t.sums[0] = 0
	copy(t.sums[1:], values)
	// Propagate each node into its parent. This builds the tree in a single
	// left-to-right pass instead of n separate Add calls.
	for i := 1; i <= n; i++ {
		if j := i + (i & -i); j <= n {
			t.sums[j] += t.sums[i]
		}
	}
}
