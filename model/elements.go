package model

import "github.com/google/uuid"

// Element is any member of a package's containment tree.
// ID returns the element's stable identity, unique within a diagram.
type Element interface {
	ID() string
}

// NewID returns a fresh element identifier.
func NewID() string { return uuid.NewString() }

// Navigability marks one association end.
type Navigability uint8

const (
	NavigabilityUnspecified Navigability = iota
	Navigable
	NonNavigable
)

// String returns the display name of the navigability marker.
func (n Navigability) String() string {
	switch n {
	case Navigable:
		return "navigable"
	case NonNavigable:
		return "non-navigable"
	default:
		return "unspecified"
	}
}

// Aggregation marks the aggregation kind of one association end.
type Aggregation uint8

const (
	AggregationNone Aggregation = iota
	AggregationShared
	AggregationComposite
)

// String returns the display name of the aggregation marker.
func (a Aggregation) String() string {
	switch a {
	case AggregationShared:
		return "shared"
	case AggregationComposite:
		return "composite"
	default:
		return "none"
	}
}

// Class is an OntoUML class: a classifier with an ontological stereotype.
// Stereotype is kept as the raw literal; Properties and Functions are the
// editor's free-text compartments.
type Class struct {
	id string

	Name       string
	Stereotype string
	Abstract   bool
	Properties string
	Functions  string
	Comment    string
}

func (c *Class) ID() string { return c.id }

// Instance is an object diagram element. Validation ignores it everywhere
// except generic containment traversal and plain associations.
type Instance struct {
	id string

	Name    string
	Type    string
	Slots   string
	Comment string
}

func (i *Instance) ID() string { return i.id }

// Generalization is an n-ary-to-n-ary subtyping edge: every source is a
// direct subtype of every target. With more than one source it represents a
// generalization set carrying the Disjoint/Covering semantics; a singleton
// disjoint+covering edge degenerates to ordinary binary generalization.
type Generalization struct {
	id string

	Sources []string // subtype class IDs
	Targets []string // supertype class IDs

	SetName  string
	Disjoint bool
	Covering bool
	Comment  string
}

func (g *Generalization) ID() string { return g.id }

// Association is a directed, possibly stereotyped edge between two
// classifiers (classes or, for plain associations, instances).
type Association struct {
	id string

	Stereotype string

	Source             string
	SourceMultiplicity string
	SourceRole         string
	SourceReading      string
	SourceNavigability Navigability
	SourceAggregation  Aggregation

	Target             string
	TargetMultiplicity string
	TargetRole         string
	TargetReading      string
	TargetNavigability Navigability
	TargetAggregation  Aggregation

	Comment string
}

func (a *Association) ID() string { return a.id }

// Comment carries free text and no ontological semantics.
type Comment struct {
	id string

	Text string
}

func (c *Comment) ID() string { return c.id }

// CommentLink anchors a comment to an element. No semantics.
type CommentLink struct {
	id string

	From string // comment ID
	To   string // element ID
}

func (l *CommentLink) ID() string { return l.id }

// Package is a container of elements, recursively nestable.
type Package struct {
	id string

	Name     string
	Elements []Element
	Comment  string
}

func (p *Package) ID() string { return p.id }

// Add appends elements to the package in declaration order.
func (p *Package) Add(elements ...Element) {
	p.Elements = append(p.Elements, elements...)
}

// Walk visits every element of the package tree depth-first in declaration
// order, recursing into nested packages after visiting them. The visit
// function returns false to stop the traversal; Walk reports whether the
// traversal ran to completion.
func (p *Package) Walk(visit func(Element) bool) bool {
	for _, el := range p.Elements {
		if !visit(el) {
			return false
		}
		if sub, ok := el.(*Package); ok {
			if !sub.Walk(visit) {
				return false
			}
		}
	}

	return true
}
