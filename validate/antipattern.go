package validate

import (
	"github.com/dolezvo1/ontoval/hierarchy"
	"github.com/dolezvo1/ontoval/ontology"
)

// antipatterns runs the twelve detectors in fixed order. Each detector is an
// independent pass over the shared index; none mutate it, and all tolerate
// disconnected or partial graphs.
func antipatterns(ix *hierarchy.Index) []Problem {
	var problems []Problem
	for _, detect := range []func(*hierarchy.Index) []Problem{
		detectBinOver,
		detectDecInt,
		detectDepPhase,
		detectFreeRole,
		detectGSRig,
		detectHetColl,
		detectHomoFunc,
		detectMixRig,
		detectMultDep,
		detectRelRig,
		detectUndefFormal,
		detectUndefPhase,
	} {
		problems = append(problems, detect(ix)...)
	}

	return problems
}

func antiPattern(id string, kind Kind) Problem {
	return Problem{ElementID: id, Kind: kind}
}

// detectBinOver flags associations whose two ends may overlap: a self-loop,
// a subtype pair, or two comparable classifiers that are not provably
// disjoint (upward for sortals/relators/modes, both directions for mixins).
func detectBinOver(ix *hierarchy.Index) []Problem {
	comparable := func(st ontology.Class) bool {
		return st.IsSortal() || st == ontology.Relator || st == ontology.Mode
	}

	var problems []Problem
	for _, a := range ix.Associations() {
		if a.Source == a.Target {
			problems = append(problems, antiPattern(a.ID(), BinOver))

			continue
		}
		sst, sok := ix.Stereotype(a.Source)
		tst, tok := ix.Stereotype(a.Target)
		if !sok || !tok {
			continue
		}
		if ix.IsSubtypeOf(a.Source, a.Target) || ix.IsSubtypeOf(a.Target, a.Source) {
			problems = append(problems, antiPattern(a.ID(), BinOver))

			continue
		}
		switch {
		case comparable(sst) && comparable(tst):
			if !ix.DisjointUpward(a.Source, a.Target) {
				problems = append(problems, antiPattern(a.ID(), BinOver))
			}
		case sst.IsMixin() && tst.IsMixin():
			if !ix.DisjointUpward(a.Source, a.Target) || !ix.DisjointDownward(a.Source, a.Target) {
				problems = append(problems, antiPattern(a.ID(), BinOver))
			}
		}
	}

	return problems
}

// detectDecInt flags classifiers reachable as subtypes through more than one
// effective classification axis: disjoint sets weigh 1, overlapping sets
// weigh their count of non-abstract targets.
func detectDecInt(ix *hierarchy.Index) []Problem {
	weights := make(map[string]int)
	for _, g := range ix.Generalizations() {
		weight := 1
		if !g.Disjoint {
			weight = 0
			for _, t := range g.Targets {
				if c, ok := ix.Class(t); ok && !c.Abstract {
					weight++
				}
			}
		}
		for _, s := range g.Sources {
			if _, ok := ix.Class(s); ok {
				weights[s] += weight
			}
		}
	}

	var problems []Problem
	for _, id := range ix.Classifiers() {
		if weights[id] > 1 {
			problems = append(problems, antiPattern(id, DecInt))
		}
	}

	return problems
}

// detectDepPhase flags phases that participate in a mediation: a phase's
// extension should depend on intrinsic change, not on a relator.
func detectDepPhase(ix *hierarchy.Index) []Problem {
	var problems []Problem
	for _, id := range ix.Classifiers() {
		if st, ok := ix.Stereotype(id); ok && st == ontology.Phase && len(ix.Mediations(id)) > 0 {
			problems = append(problems, antiPattern(id, DepPhase))
		}
	}

	return problems
}

// detectFreeRole flags roles that participate in no mediation at all.
func detectFreeRole(ix *hierarchy.Index) []Problem {
	var problems []Problem
	for _, id := range ix.Classifiers() {
		if st, ok := ix.Stereotype(id); ok && st == ontology.Role && len(ix.Mediations(id)) == 0 {
			problems = append(problems, antiPattern(id, FreeRole))
		}
	}

	return problems
}

// detectGSRig flags generalization sets whose sources mix rigid and
// anti-rigid stereotypes.
func detectGSRig(ix *hierarchy.Index) []Problem {
	var problems []Problem
	for _, g := range ix.Generalizations() {
		var rigid, antiRigid bool
		for _, s := range g.Sources {
			st, ok := ix.Stereotype(s)
			if !ok {
				continue
			}
			rigid = rigid || st.IsRigid()
			antiRigid = antiRigid || st.IsAntiRigid()
		}
		if rigid && antiRigid {
			problems = append(problems, antiPattern(g.ID(), GSRig))
		}
	}

	return problems
}

// detectHetColl flags collectives that are the whole of more than one
// memberOf relation, i.e. collectives with heterogeneous member types.
func detectHetColl(ix *hierarchy.Index) []Problem {
	counts := relationSourceCounts(ix, ontology.MemberOf)

	var problems []Problem
	for _, id := range ix.Classifiers() {
		if st, ok := ix.Stereotype(id); ok && st == ontology.Collective && counts[id] > 1 {
			problems = append(problems, antiPattern(id, HetColl))
		}
	}

	return problems
}

// detectHomoFunc flags wholes composed of exactly one kind of component.
func detectHomoFunc(ix *hierarchy.Index) []Problem {
	counts := relationSourceCounts(ix, ontology.ComponentOf)

	var problems []Problem
	for _, id := range ix.Classifiers() {
		if counts[id] == 1 {
			problems = append(problems, antiPattern(id, HomoFunc))
		}
	}

	return problems
}

// detectMixRig flags mixins whose subtypes are all rigid or all anti-rigid;
// a mixin is meant to abstract over both.
func detectMixRig(ix *hierarchy.Index) []Problem {
	var problems []Problem
	for _, id := range ix.Classifiers() {
		st, ok := ix.Stereotype(id)
		if !ok || st != ontology.Mixin {
			continue
		}
		var rigid, antiRigid bool
		for _, g := range ix.GeneralizationsByTarget(id) {
			for _, s := range g.Sources {
				if cst, ok := ix.Stereotype(s); ok {
					rigid = rigid || cst.IsRigid()
					antiRigid = antiRigid || cst.IsAntiRigid()
				}
			}
		}
		if rigid != antiRigid {
			problems = append(problems, antiPattern(id, MixRig))
		}
	}

	return problems
}

// detectMultDep flags classifiers mediated by more than one distinct relator.
func detectMultDep(ix *hierarchy.Index) []Problem {
	var problems []Problem
	for _, id := range ix.Classifiers() {
		relators := make(map[string]struct{})
		for _, a := range ix.Mediations(id) {
			other := a.Target
			if other == id {
				other = a.Source
			}
			if st, ok := ix.Stereotype(other); ok && st == ontology.Relator {
				relators[other] = struct{}{}
			}
		}
		if len(relators) > 1 {
			problems = append(problems, antiPattern(id, MultDep))
		}
	}

	return problems
}

// detectRelRig flags relators (direct or inherited) mediating a rigid
// classifier.
func detectRelRig(ix *hierarchy.Index) []Problem {
	isRelator := func(st ontology.Class) bool { return st == ontology.Relator }

	var problems []Problem
	for _, id := range ix.Classifiers() {
		st, ok := ix.Stereotype(id)
		if !ok {
			continue
		}
		if st != ontology.Relator && !ix.AncestorSatisfies(id, isRelator) {
			continue
		}
		for _, a := range ix.Mediations(id) {
			other := a.Target
			if other == id {
				other = a.Source
			}
			if ost, ok := ix.Stereotype(other); ok && ost.IsRigid() {
				problems = append(problems, antiPattern(id, RelRig))

				break
			}
		}
	}

	return problems
}

// detectUndefFormal flags formal relations whose comparison basis is
// undefined: an endpoint with no intrinsic properties anywhere in its
// ancestry.
func detectUndefFormal(ix *hierarchy.Index) []Problem {
	var problems []Problem
	for _, a := range ix.Associations() {
		rel, ok := ontology.ParseRelation(a.Stereotype)
		if !ok || rel != ontology.Formal {
			continue
		}
		if !ix.HasIntrinsicProperties(a.Source) || !ix.HasIntrinsicProperties(a.Target) {
			problems = append(problems, antiPattern(a.ID(), UndefFormal))
		}
	}

	return problems
}

// detectUndefPhase flags phases whose partition is not grounded in any
// intrinsic property of a supertype.
func detectUndefPhase(ix *hierarchy.Index) []Problem {
	var problems []Problem
	for _, id := range ix.Classifiers() {
		st, ok := ix.Stereotype(id)
		if !ok || st != ontology.Phase {
			continue
		}
		grounded := false
		for _, g := range ix.GeneralizationsBySource(id) {
			for _, t := range g.Targets {
				if ix.HasIntrinsicProperties(t) {
					grounded = true
				}
			}
		}
		if !grounded {
			problems = append(problems, antiPattern(id, UndefPhase))
		}
	}

	return problems
}

// relationSourceCounts counts, per source classifier, the associations
// carrying the given stereotype.
func relationSourceCounts(ix *hierarchy.Index, rel ontology.Relation) map[string]int {
	counts := make(map[string]int)
	for _, a := range ix.Associations() {
		if r, ok := ontology.ParseRelation(a.Stereotype); ok && r == rel {
			counts[a.Source]++
		}
	}

	return counts
}
