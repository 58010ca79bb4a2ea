// SPDX-License-Identifier: MIT
// Package: lvlife/unionfind
//
// Package unionfind implements a disjoint-set forest over the integer
// universe [0, n).
//
// What:
//
//   - New(n) starts with n singleton sets; every id is its own root, weight 1.
//   - Find(x) returns x's root and compresses the whole lookup path so every
//     visited id points straight at the root afterwards.
//   - Union(a, b) links the lighter root under the heavier one and adds the
//     weights. On a tie b's root goes under a's root.
//
// Why:
//
//   - Connected components from a stream of pairwise joins, without building
//     an explicit adjacency list (see gridgraph.Communities).
//
// Complexity:
//
//   - New:   O(n) time and memory.
//   - Find / Union / Connected: amortized O(α(n)), α = inverse Ackermann.
//     Both path compression and union-by-size are needed for that bound.
//
// Errors:
//
//   - ErrInvalidSize: New was called with n ≤ 0.
//   - ErrIndexOutOfRange: an id outside [0, n) was passed. Callers that derive
//     ids from valid coordinates never see it; it signals a caller defect.
package unionfind
