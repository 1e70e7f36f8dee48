// Package cluster finds connected components over an arbitrary pixel
// predicate and an arbitrary (possibly asymmetric) neighbor relation.
//
// It generalizes a fixed "value >= threshold, 4-/8-connectivity" grid
// scan to arbitrary membership and adjacency functions: here,
// membership is "is a cluster point" and adjacency is the reduced
// direct-neighbor relation, not plain 4-/8-connectivity.
//
// Complexity: O(rows*cols*d) time, O(rows*cols) memory, where d is the
// branching factor of the supplied neighbor function (at most 8 here).
package cluster
