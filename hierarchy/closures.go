package hierarchy

import (
	"strings"

	"github.com/dolezvo1/ontoval/ontology"
)

// visited is the per-call cycle guard: push on entry, pop on exit, so a node
// may appear on many distinct paths but never twice on one path.
type visited map[string]struct{}

func (v visited) enter(id string) bool {
	if _, seen := v[id]; seen {
		return false
	}
	v[id] = struct{}{}

	return true
}

func (v visited) exit(id string) { delete(v, id) }

// IsSubtypeOf reports whether a reaches b through one or more generalization
// edges. It is strict: a class is not its own subtype unless the model
// contains an explicit self-edge. Safe on cyclic input.
func (ix *Index) IsSubtypeOf(a, b string) bool {
	return ix.isSubtypeOf(a, b, make(visited))
}

func (ix *Index) isSubtypeOf(a, b string, seen visited) bool {
	if !seen.enter(a) {
		return false
	}
	defer seen.exit(a)

	for _, p := range ix.parents[a] {
		if p.Target == b || ix.isSubtypeOf(p.Target, b, seen) {
			return true
		}
	}

	return false
}

// reaches is equal-or-subtype-of: the ⊑ relation of the disjointness rules.
func (ix *Index) reaches(a, b string) bool {
	return a == b || ix.IsSubtypeOf(a, b)
}

// LeastUpperBound returns the first ancestor-or-self of a (depth-first over
// parent links) that also bounds b from above. ok is false when the two
// classifiers share no upper bound.
func (ix *Index) LeastUpperBound(a, b string) (string, bool) {
	return ix.lub(a, b, make(visited))
}

func (ix *Index) lub(a, b string, seen visited) (string, bool) {
	if !seen.enter(a) {
		return "", false
	}
	defer seen.exit(a)

	if ix.reaches(b, a) {
		return a, true
	}
	for _, p := range ix.parents[a] {
		if id, ok := ix.lub(p.Target, b, seen); ok {
			return id, true
		}
	}

	return "", false
}

// GreatestLowerBound returns the first descendant-or-self of a (depth-first
// over child links) that also lies below b. ok is false when the two
// classifiers share no lower bound.
func (ix *Index) GreatestLowerBound(a, b string) (string, bool) {
	return ix.glb(a, b, make(visited))
}

func (ix *Index) glb(a, b string, seen visited) (string, bool) {
	if !seen.enter(a) {
		return "", false
	}
	defer seen.exit(a)

	if ix.reaches(a, b) {
		return a, true
	}
	for _, c := range ix.children[a] {
		if id, ok := ix.glb(c.Source, b, seen); ok {
			return id, true
		}
	}

	return "", false
}

// DisjointUpward reports whether a and b provably denote disjoint extensions
// looking up the hierarchy: either they share no upper bound at all, or some
// disjoint generalization set places them under two different branches.
func (ix *Index) DisjointUpward(a, b string) bool {
	if a == b {
		return false
	}
	if _, ok := ix.LeastUpperBound(a, b); !ok {
		return true
	}
	for _, g := range ix.gens {
		if !g.Disjoint {
			continue
		}
		for _, s1 := range g.Sources {
			if !ix.reaches(a, s1) {
				continue
			}
			for _, s2 := range g.Sources {
				if s1 != s2 && ix.reaches(b, s2) {
					return true
				}
			}
		}
	}

	return false
}

// DisjointDownward reports whether a and b provably share no instances
// looking down the hierarchy, i.e. no classifier specializes both.
func (ix *Index) DisjointDownward(a, b string) bool {
	if a == b {
		return false
	}
	_, ok := ix.GreatestLowerBound(a, b)

	return !ok
}

// AncestorSatisfies reports whether any strict ancestor of id has a
// recognized stereotype matching pred.
func (ix *Index) AncestorSatisfies(id string, pred func(ontology.Class) bool) bool {
	return ix.ancestorSatisfies(id, pred, make(visited))
}

func (ix *Index) ancestorSatisfies(id string, pred func(ontology.Class) bool, seen visited) bool {
	if !seen.enter(id) {
		return false
	}
	defer seen.exit(id)

	for _, p := range ix.parents[id] {
		if st, ok := ix.stereos[p.Target]; ok && pred(st) {
			return true
		}
		if ix.ancestorSatisfies(p.Target, pred, seen) {
			return true
		}
	}

	return false
}

// HasIntrinsicProperties reports whether the classifier carries intrinsic
// properties: a non-blank attribute compartment, a characterizing quality or
// mode, or (transitively) an ancestor with either.
func (ix *Index) HasIntrinsicProperties(id string) bool {
	return ix.hasIntrinsic(id, make(visited))
}

func (ix *Index) hasIntrinsic(id string, seen visited) bool {
	if !seen.enter(id) {
		return false
	}
	defer seen.exit(id)

	if c, ok := ix.classes[id]; ok && strings.TrimSpace(c.Properties) != "" {
		return true
	}
	if _, ok := ix.bearers[id]; ok {
		return true
	}
	for _, p := range ix.parents[id] {
		if ix.hasIntrinsic(p.Target, seen) {
			return true
		}
	}

	return false
}

// MediationLowerSum totals the opposing mediation lower bounds reachable
// from the classifier: its own accumulated bounds plus, per generalization
// it sources, the minimum across targets when the set is disjoint and the
// sum across targets otherwise.
func (ix *Index) MediationLowerSum(id string) uint64 {
	return ix.mediationLower(id, make(visited))
}

func (ix *Index) mediationLower(id string, seen visited) uint64 {
	if !seen.enter(id) {
		return 0
	}
	defer seen.exit(id)

	sum := ix.opposingLower[id]
	for _, g := range ix.gensBySource[id] {
		if len(g.Targets) == 0 {
			continue
		}
		if g.Disjoint {
			best := ix.mediationLower(g.Targets[0], seen)
			for _, t := range g.Targets[1:] {
				if v := ix.mediationLower(t, seen); v < best {
					best = v
				}
			}
			sum += best
		} else {
			for _, t := range g.Targets {
				sum += ix.mediationLower(t, seen)
			}
		}
	}

	return sum
}
