// SPDX-License-Identifier: MIT
// Package: lvlife/unionfind

package unionfind

import "fmt"

// UnionFind is a disjoint-set forest with path compression and union-by-size.
// parent[x] is always a valid id; size[r] is meaningful only for roots.
// A UnionFind is not safe for concurrent use.
type UnionFind struct {
	parent []int
	size   []int
	sets   int
}

// New returns a forest of n singleton sets.
// Returns ErrInvalidSize if n ≤ 0.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the size of the universe.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Sets returns the current number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// Find returns the root of the set containing x.
// Every id on the path from x to the root is repointed at the root.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(x int) (int, error) {
	if err := uf.check(x); err != nil {
		return 0, err
	}

	return uf.find(x), nil
}

// Union merges the sets containing a and b. Merging a set with itself is a no-op.
// The root with the smaller weight is attached under the other; on a tie
// b's root is attached under a's root.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Union(a, b int) error {
	if err := uf.check(a); err != nil {
		return err
	}
	if err := uf.check(b); err != nil {
		return err
	}
	uf.union(a, b)

	return nil
}

// Connected reports whether a and b belong to the same set.
func (uf *UnionFind) Connected(a, b int) (bool, error) {
	if err := uf.check(a); err != nil {
		return false, err
	}
	if err := uf.check(b); err != nil {
		return false, err
	}

	return uf.find(a) == uf.find(b), nil
}

// SetSize returns the number of ids in the set containing x.
func (uf *UnionFind) SetSize(x int) (int, error) {
	if err := uf.check(x); err != nil {
		return 0, err
	}

	return uf.size[uf.find(x)], nil
}

func (uf *UnionFind) check(x int) error {
	if x < 0 || x >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, x, len(uf.parent))
	}

	return nil
}

// find locates the root, then walks the path a second time repointing
// each node at it. x must be in range.
func (uf *UnionFind) find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

func (uf *UnionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.sets--
}
