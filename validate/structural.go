package validate

import (
	"errors"
	"fmt"

	"github.com/dolezvo1/ontoval/hierarchy"
	"github.com/dolezvo1/ontoval/model"
	"github.com/dolezvo1/ontoval/multiplicity"
	"github.com/dolezvo1/ontoval/ontology"
)

// identityInterval is the accumulated min/max count of identity principles a
// classifier receives: its own provision plus what flows down every
// generalization it sources. RequiresIdentity stereotypes must end at
// exactly 1..1.
type identityInterval struct {
	min, max int
}

type structuralPass struct {
	ix       *hierarchy.Index
	identity map[string]*identityInterval
	problems []Problem
}

// structural runs the per-element decision table over the tree, then the
// aggregate checks over classifiers in first-seen order.
func structural(root *model.Package, ix *hierarchy.Index) []Problem {
	p := &structuralPass{
		ix:       ix,
		identity: make(map[string]*identityInterval),
	}

	root.Walk(func(el model.Element) bool {
		switch e := el.(type) {
		case *model.Class:
			p.checkClass(e)
		case *model.Generalization:
			p.checkGeneralization(e)
		case *model.Association:
			p.checkAssociation(e)
		}

		return true
	})

	p.aggregate()

	return p.problems
}

func (p *structuralPass) report(id string, kind Kind, format string, args ...any) {
	p.problems = append(p.problems, Problem{
		ElementID: id,
		Kind:      kind,
		Message:   fmt.Sprintf(format, args...),
	})
}

func (p *structuralPass) identityOf(id string) *identityInterval {
	iv, ok := p.identity[id]
	if !ok {
		iv = &identityInterval{}
		p.identity[id] = iv
	}

	return iv
}

func (p *structuralPass) checkClass(c *model.Class) {
	st, ok := ontology.ParseClass(c.Stereotype)
	if !ok {
		p.report(c.ID(), InvalidStereotype,
			"«%s» is not a recognized class stereotype", c.Stereotype)

		return
	}
	if st.IsIdentityProvider() {
		iv := p.identityOf(c.ID())
		iv.min++
		iv.max++
	}
}

func (p *structuralPass) checkGeneralization(g *model.Generalization) {
	// 1. Count targets that carry a principle of identity downwards.
	providers := 0
	allCarry := len(g.Targets) > 0
	for _, t := range g.Targets {
		st, ok := p.ix.Stereotype(t)
		if !ok {
			allCarry = false

			continue
		}
		if st.IsIdentityProvider() || st.RequiresIdentity() {
			providers++
		} else {
			allCarry = false
		}
	}

	// 2. Scale the identity interval by the set semantics. A singleton edge
	//    degenerates to ordinary binary generalization regardless of flags.
	singleton := len(g.Sources) == 1 && len(g.Targets) == 1
	var dmin, dmax int
	switch {
	case g.Disjoint || singleton:
		if allCarry {
			dmin = 1
		}
		dmax = min(providers, 1)
	case g.Covering:
		dmin = min(providers, 1)
		dmax = providers
	default:
		// Overlapping and non-covering: identity may also arrive from
		// outside the set.
		dmin = 0
		dmax = providers + 1
	}

	// 3. Propagate onto every source and check pairwise legality.
	for _, s := range g.Sources {
		if _, ok := p.ix.Class(s); !ok {
			continue
		}
		iv := p.identityOf(s)
		iv.min += dmin
		iv.max += dmax

		sst, ok := p.ix.Stereotype(s)
		if !ok {
			continue // already reported as InvalidStereotype
		}
		for _, t := range g.Targets {
			tst, ok := p.ix.Stereotype(t)
			if !ok {
				continue
			}
			if !sst.CanSpecialize(tst) {
				p.report(g.ID(), InvalidSubtyping,
					"«%s» cannot be subtype of «%s»", sst, tst)
			}
		}
	}
}

func (p *structuralPass) checkAssociation(a *model.Association) {
	rel, ok := ontology.ParseRelation(a.Stereotype)
	if !ok {
		p.report(a.ID(), InvalidStereotype,
			"«%s» is not a recognized association stereotype", a.Stereotype)

		return
	}

	// Plain associations and formal relations may omit multiplicities and
	// may touch instances; the other stereotypes may not.
	if rel == ontology.Plain || rel == ontology.Formal {
		p.checkOptionalMultiplicity(a.ID(), "source", a.SourceMultiplicity)
		p.checkOptionalMultiplicity(a.ID(), "target", a.TargetMultiplicity)
		if rel == ontology.Formal {
			p.requireClassEnds(a)
		}

		return
	}

	if !p.requireClassEnds(a) {
		return
	}

	src, srcOK := p.parseRequiredMultiplicity(a.ID(), "source", a.SourceMultiplicity)
	tgt, tgtOK := p.parseRequiredMultiplicity(a.ID(), "target", a.TargetMultiplicity)
	multOK := srcOK && tgtOK

	sst, sok := p.ix.Stereotype(a.Source)
	tst, tok := p.ix.Stereotype(a.Target)

	switch rel {
	case ontology.Mediation:
		if multOK && (!src.LowerAtLeast(1) || !tgt.LowerAtLeast(1)) {
			p.report(a.ID(), InvalidRelation,
				"mediation requires a lower bound of at least 1 on both ends")
		}

	case ontology.Characterization:
		if multOK && !src.IsExactly(1) {
			p.report(a.ID(), InvalidRelation,
				"characterization source multiplicity must be exactly 1..1")
		}
		if multOK && !tgt.LowerAtLeast(1) {
			p.report(a.ID(), InvalidRelation,
				"characterization target lower bound must be at least 1")
		}
		if tok && tst != ontology.Quality && tst != ontology.Mode {
			p.report(a.ID(), InvalidRelation,
				"characterization must target a «quality» or «mode», not «%s»", tst)
		}

	case ontology.Structuration:
		if multOK && !tgt.IsExactly(1) {
			p.report(a.ID(), InvalidRelation,
				"structuration target multiplicity must be exactly 1..1")
		}
		if sok && sst != ontology.Quality {
			p.report(a.ID(), InvalidRelation,
				"structuration source must be a «quality», not «%s»", sst)
		}
		if tok && tst != ontology.Quality && tst != ontology.Mode {
			p.report(a.ID(), InvalidRelation,
				"structuration must target a «quality» or «mode», not «%s»", tst)
		}

	case ontology.ComponentOf:
		if sok && !sst.IsSortal() {
			p.report(a.ID(), InvalidRelation,
				"componentOf whole must be a sortal, not «%s»", sst)
		}
		if tok && !tst.IsSortal() {
			p.report(a.ID(), InvalidRelation,
				"componentOf part must be a sortal, not «%s»", tst)
		}
		p.requirePartLowerBound(a.ID(), rel, tgt, multOK)

	case ontology.SubcollectionOf:
		if sok && sst != ontology.Collective {
			p.report(a.ID(), InvalidRelation,
				"subcollectionOf whole must be a «collective», not «%s»", sst)
		}
		if tok && tst != ontology.Collective {
			p.report(a.ID(), InvalidRelation,
				"subcollectionOf part must be a «collective», not «%s»", tst)
		}
		p.requirePartLowerBound(a.ID(), rel, tgt, multOK)

	case ontology.MemberOf:
		if sok && sst != ontology.Collective {
			p.report(a.ID(), InvalidRelation,
				"memberOf whole must be a «collective», not «%s»", sst)
		}
		p.requirePartLowerBound(a.ID(), rel, tgt, multOK)

	case ontology.Containment:
		if sok && sst != ontology.Quantity {
			p.report(a.ID(), InvalidRelation,
				"containment whole must be a «quantity», not «%s»", sst)
		}
		p.requirePartLowerBound(a.ID(), rel, tgt, multOK)

	case ontology.SubquantityOf:
		if sok && sst != ontology.Quantity {
			p.report(a.ID(), InvalidRelation,
				"subquantityOf whole must be a «quantity», not «%s»", sst)
		}
		if tok && tst != ontology.Quantity {
			p.report(a.ID(), InvalidRelation,
				"subquantityOf part must be a «quantity», not «%s»", tst)
		}
		p.requirePartLowerBound(a.ID(), rel, tgt, multOK)
	}
}

// checkOptionalMultiplicity validates a label that is allowed to be absent.
func (p *structuralPass) checkOptionalMultiplicity(id, end, label string) {
	r, err := multiplicity.Parse(label)
	switch {
	case err == nil && !r.Valid():
		p.report(id, InvalidRelation,
			"%s multiplicity %q has lower bound above upper bound", end, label)
	case err != nil && !errors.Is(err, multiplicity.ErrEmpty):
		p.report(id, InvalidRelation, "%s multiplicity %q does not parse", end, label)
	}
}

// parseRequiredMultiplicity validates a label that must be present.
func (p *structuralPass) parseRequiredMultiplicity(id, end, label string) (multiplicity.Range, bool) {
	r, err := multiplicity.Parse(label)
	if err != nil {
		p.report(id, InvalidRelation, "%s multiplicity %q does not parse", end, label)

		return multiplicity.Range{}, false
	}
	if !r.Valid() {
		p.report(id, InvalidRelation,
			"%s multiplicity %q has lower bound above upper bound", end, label)

		return multiplicity.Range{}, false
	}

	return r, true
}

func (p *structuralPass) requirePartLowerBound(id string, rel ontology.Relation, part multiplicity.Range, multOK bool) {
	if multOK && !part.LowerAtLeast(1) {
		p.report(id, InvalidRelation,
			"%s part lower bound must be at least 1", rel)
	}
}

// requireClassEnds reports whether both endpoints resolve to classes;
// stereotyped relations may not touch instances or dangling IDs.
func (p *structuralPass) requireClassEnds(a *model.Association) bool {
	_, sok := p.ix.Class(a.Source)
	_, tok := p.ix.Class(a.Target)
	if !sok || !tok {
		p.report(a.ID(), InvalidRelation,
			"«%s» must connect two classes", a.Stereotype)

		return false
	}

	return true
}

func (p *structuralPass) aggregate() {
	for _, id := range p.ix.Classifiers() {
		c, _ := p.ix.Class(id)
		st, ok := p.ix.Stereotype(id)
		if !ok {
			continue // unrecognized stereotype already reported
		}

		if st.RequiresIdentity() {
			iv := p.identityOf(id)
			if iv.min != 1 || iv.max != 1 {
				p.report(id, InvalidIdentity,
					"element does not have exactly one identity provider (found %d..%d)",
					iv.min, iv.max)
			}
		}

		if st == ontology.Role && p.ix.MediationLowerSum(id) == 0 {
			p.report(id, InvalidRole, "role is not mediated by any relator")
		}

		relatorish := st == ontology.Relator ||
			p.ix.AncestorSatisfies(id, func(s ontology.Class) bool { return s == ontology.Relator })
		if relatorish && !c.Abstract && p.ix.MediationLowerSum(id) < 2 {
			p.report(id, InvalidRelator,
				"concrete relator must mediate at least two entities")
		}

		if st == ontology.Phase && !p.inPhasePartition(id) {
			p.report(id, InvalidPhase,
				"phase must belong to a disjoint and complete phase partition")
		}

		if st.IsMixin() && !c.Abstract {
			p.report(id, InvalidNonabstractMixin, "«%s» must be abstract", st)
		}

		if (st == ontology.Quality || st == ontology.Mode) && !p.ix.Characterized(id) {
			p.report(id, InvalidMissingCharacterization,
				"«%s» must characterize some classifier", st)
		}
	}
}

// inPhasePartition reports whether the classifier is a source of at least
// one disjoint-and-covering generalization set.
func (p *structuralPass) inPhasePartition(id string) bool {
	for _, g := range p.ix.GeneralizationsBySource(id) {
		if g.Disjoint && g.Covering {
			return true
		}
	}

	return false
}
