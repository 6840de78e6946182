// Package hierarchy builds the per-run classifier index and answers the
// closure queries every validation rule is written against.
//
// Build performs one linear pass over the package tree and collects, keyed
// by element ID:
//
//   - the classifier table, in traversal order (first encounter wins)
//   - parent/child links induced by generalization edges (source → targets)
//   - mediation incidence and the accumulated opposing lower bounds
//   - characterization marks on both ends (target and bearer)
//
// The closure queries then run against this frozen index:
//
//	IsSubtypeOf(a, b)            — strict reachability via ≥1 generalization
//	LeastUpperBound(a, b)        — first common ancestor-or-self
//	GreatestLowerBound(a, b)     — first common descendant-or-self
//	DisjointUpward(a, b)         — no common ancestor, or a disjoint
//	                               generalization set splits the lineages
//	DisjointDownward(a, b)       — no common descendant
//	HasIntrinsicProperties(id)   — own attributes, characterization, or an
//	                               ancestor with either
//	MediationLowerSum(id)        — inherited opposing-mediation lower bounds
//
// Every recursive query guards against cycles with an explicit visited set
// that is pushed on entry and popped on exit, so a node may be revisited on
// a different path but never recursed into twice on the same path. This is a
// correctness requirement for imported or malformed models, which may
// contain generalization cycles the editor would normally prevent.
//
// The index is read-only after Build and holds no locks; one index serves
// one validation run and is then discarded.
package hierarchy
