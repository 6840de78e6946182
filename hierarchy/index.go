package hierarchy

import (
	"github.com/dolezvo1/ontoval/model"
	"github.com/dolezvo1/ontoval/multiplicity"
	"github.com/dolezvo1/ontoval/ontology"
)

// Parent is one subtyping link from a classifier to one target of a
// generalization it sources.
type Parent struct {
	Gen    *model.Generalization
	Target string // supertype class ID
}

// Child is the inverse link: one source of a generalization targeting a
// classifier.
type Child struct {
	Gen    *model.Generalization
	Source string // subtype class ID
}

// Index is the aggregate view of one model snapshot. It is built in a single
// collection pass and queried read-only afterwards.
type Index struct {
	classes map[string]*model.Class
	stereos map[string]ontology.Class // recognized stereotypes only
	order   []string                  // class IDs in traversal order

	gens   []*model.Generalization
	assocs []*model.Association

	parents      map[string][]Parent
	children     map[string][]Child
	gensBySource map[string][]*model.Generalization
	gensByTarget map[string][]*model.Generalization

	mediations    map[string][]*model.Association
	opposingLower map[string]uint64
	characterized map[string]struct{} // quality/mode targets of characterization
	bearers       map[string]struct{} // sources of characterization
}

// Build walks the package tree once and assembles the index. A nil root
// yields an empty index.
func Build(root *model.Package) *Index {
	ix := &Index{
		classes:       make(map[string]*model.Class),
		stereos:       make(map[string]ontology.Class),
		parents:       make(map[string][]Parent),
		children:      make(map[string][]Child),
		gensBySource:  make(map[string][]*model.Generalization),
		gensByTarget:  make(map[string][]*model.Generalization),
		mediations:    make(map[string][]*model.Association),
		opposingLower: make(map[string]uint64),
		characterized: make(map[string]struct{}),
		bearers:       make(map[string]struct{}),
	}
	if root == nil {
		return ix
	}

	root.Walk(func(el model.Element) bool {
		switch e := el.(type) {
		case *model.Class:
			ix.addClass(e)
		case *model.Generalization:
			ix.addGeneralization(e)
		case *model.Association:
			ix.addAssociation(e)
		}
		// Instances, comments and comment links carry no hierarchy facts.
		return true
	})

	return ix
}

func (ix *Index) addClass(c *model.Class) {
	if _, dup := ix.classes[c.ID()]; dup {
		return
	}
	ix.classes[c.ID()] = c
	ix.order = append(ix.order, c.ID())
	if st, ok := ontology.ParseClass(c.Stereotype); ok {
		ix.stereos[c.ID()] = st
	}
}

func (ix *Index) addGeneralization(g *model.Generalization) {
	ix.gens = append(ix.gens, g)
	for _, s := range g.Sources {
		ix.gensBySource[s] = append(ix.gensBySource[s], g)
		for _, t := range g.Targets {
			ix.parents[s] = append(ix.parents[s], Parent{Gen: g, Target: t})
		}
	}
	for _, t := range g.Targets {
		ix.gensByTarget[t] = append(ix.gensByTarget[t], g)
		for _, s := range g.Sources {
			ix.children[t] = append(ix.children[t], Child{Gen: g, Source: s})
		}
	}
}

func (ix *Index) addAssociation(a *model.Association) {
	ix.assocs = append(ix.assocs, a)

	rel, ok := ontology.ParseRelation(a.Stereotype)
	if !ok {
		return
	}
	switch rel {
	case ontology.Mediation:
		ix.mediations[a.Source] = append(ix.mediations[a.Source], a)
		if a.Target != a.Source {
			ix.mediations[a.Target] = append(ix.mediations[a.Target], a)
		}
		// Each end inherits the opposite end's lower bound. Unparsed labels
		// contribute nothing here; the structural pass reports them.
		if r, err := multiplicity.Parse(a.TargetMultiplicity); err == nil {
			ix.opposingLower[a.Source] += r.Lower
		}
		if r, err := multiplicity.Parse(a.SourceMultiplicity); err == nil {
			ix.opposingLower[a.Target] += r.Lower
		}
	case ontology.Characterization:
		ix.characterized[a.Target] = struct{}{}
		ix.bearers[a.Source] = struct{}{}
	}
}

// Class resolves a class ID. ok is false for instances and unknown IDs.
func (ix *Index) Class(id string) (*model.Class, bool) {
	c, ok := ix.classes[id]

	return c, ok
}

// Stereotype resolves the recognized stereotype of a class ID. ok is false
// when the ID is not a class or its stereotype literal is unrecognized.
func (ix *Index) Stereotype(id string) (ontology.Class, bool) {
	st, ok := ix.stereos[id]

	return st, ok
}

// Classifiers returns class IDs in traversal order. The slice is shared;
// callers must not mutate it.
func (ix *Index) Classifiers() []string { return ix.order }

// Generalizations returns all generalization edges in traversal order.
func (ix *Index) Generalizations() []*model.Generalization { return ix.gens }

// Associations returns all associations in traversal order.
func (ix *Index) Associations() []*model.Association { return ix.assocs }

// Parents returns the direct supertype links of a classifier.
func (ix *Index) Parents(id string) []Parent { return ix.parents[id] }

// Children returns the direct subtype links of a classifier.
func (ix *Index) Children(id string) []Child { return ix.children[id] }

// GeneralizationsBySource returns the generalizations the classifier is a
// source (subtype) of.
func (ix *Index) GeneralizationsBySource(id string) []*model.Generalization {
	return ix.gensBySource[id]
}

// GeneralizationsByTarget returns the generalizations the classifier is a
// target (supertype) of.
func (ix *Index) GeneralizationsByTarget(id string) []*model.Generalization {
	return ix.gensByTarget[id]
}

// Mediations returns every mediation association touching the classifier.
func (ix *Index) Mediations(id string) []*model.Association { return ix.mediations[id] }

// Characterized reports whether the classifier is the target of at least one
// characterization association.
func (ix *Index) Characterized(id string) bool {
	_, ok := ix.characterized[id]

	return ok
}
