package model

// ClassOption configures optional fields of a new Class.
type ClassOption func(*Class)

// WithAbstract marks the class abstract.
func WithAbstract() ClassOption {
	return func(c *Class) { c.Abstract = true }
}

// WithProperties sets the free-text attribute compartment.
func WithProperties(text string) ClassOption {
	return func(c *Class) { c.Properties = text }
}

// WithFunctions sets the free-text operation compartment.
func WithFunctions(text string) ClassOption {
	return func(c *Class) { c.Functions = text }
}

// WithClassComment attaches a comment to the class.
func WithClassComment(text string) ClassOption {
	return func(c *Class) { c.Comment = text }
}

// NewClass creates a class with a fresh ID. The stereotype is kept verbatim;
// NewClass performs no validation.
func NewClass(name, stereotype string, opts ...ClassOption) *Class {
	c := &Class{id: NewID(), Name: name, Stereotype: stereotype}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewInstance creates an instance specification with a fresh ID.
func NewInstance(name, typ string) *Instance {
	return &Instance{id: NewID(), Name: name, Type: typ}
}

// GeneralizationOption configures optional fields of a new Generalization.
type GeneralizationOption func(*Generalization)

// WithSetName names the generalization set.
func WithSetName(name string) GeneralizationOption {
	return func(g *Generalization) { g.SetName = name }
}

// WithDisjoint sets the isDisjoint flag of the generalization set.
func WithDisjoint(disjoint bool) GeneralizationOption {
	return func(g *Generalization) { g.Disjoint = disjoint }
}

// WithCovering sets the isCovering flag of the generalization set.
func WithCovering(covering bool) GeneralizationOption {
	return func(g *Generalization) { g.Covering = covering }
}

// NewGeneralization creates a subtyping edge from every source to every
// target. Sources and targets are class IDs.
func NewGeneralization(sources, targets []string, opts ...GeneralizationOption) *Generalization {
	g := &Generalization{id: NewID(), Sources: sources, Targets: targets}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AssociationOption configures optional fields of a new Association.
type AssociationOption func(*Association)

// WithMultiplicities sets both end multiplicity labels (source, target).
func WithMultiplicities(source, target string) AssociationOption {
	return func(a *Association) {
		a.SourceMultiplicity = source
		a.TargetMultiplicity = target
	}
}

// WithRoles sets both end role labels.
func WithRoles(source, target string) AssociationOption {
	return func(a *Association) {
		a.SourceRole = source
		a.TargetRole = target
	}
}

// WithReadings sets both end reading labels.
func WithReadings(source, target string) AssociationOption {
	return func(a *Association) {
		a.SourceReading = source
		a.TargetReading = target
	}
}

// WithNavigability sets both end navigability markers.
func WithNavigability(source, target Navigability) AssociationOption {
	return func(a *Association) {
		a.SourceNavigability = source
		a.TargetNavigability = target
	}
}

// WithAggregation sets both end aggregation markers.
func WithAggregation(source, target Aggregation) AssociationOption {
	return func(a *Association) {
		a.SourceAggregation = source
		a.TargetAggregation = target
	}
}

// NewAssociation creates a directed edge between two classifier IDs.
// The stereotype is kept verbatim; NewAssociation performs no validation.
func NewAssociation(stereotype, source, target string, opts ...AssociationOption) *Association {
	a := &Association{id: NewID(), Stereotype: stereotype, Source: source, Target: target}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// NewComment creates a comment element with a fresh ID.
func NewComment(text string) *Comment {
	return &Comment{id: NewID(), Text: text}
}

// NewCommentLink anchors comment from to element to.
func NewCommentLink(from, to string) *CommentLink {
	return &CommentLink{id: NewID(), From: from, To: to}
}

// NewPackage creates a package containing the given elements.
func NewPackage(name string, elements ...Element) *Package {
	return &Package{id: NewID(), Name: name, Elements: elements}
}
