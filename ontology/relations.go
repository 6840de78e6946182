package ontology

// Relation enumerates the OntoUML association stereotypes. Plain is the
// unstereotyped association (the empty literal).
type Relation uint8

const (
	Plain Relation = iota
	Formal
	Mediation
	Characterization
	Structuration
	ComponentOf
	Containment
	MemberOf
	SubcollectionOf
	SubquantityOf
)

// ParseRelation maps an association stereotype literal to its Relation
// variant. The empty string is the plain association; anything else outside
// the vocabulary yields ok == false.
func ParseRelation(s string) (Relation, bool) {
	switch s {
	case "":
		return Plain, true
	case "formal":
		return Formal, true
	case "mediation":
		return Mediation, true
	case "characterization":
		return Characterization, true
	case "structuration":
		return Structuration, true
	case "componentOf":
		return ComponentOf, true
	case "containment":
		return Containment, true
	case "memberOf":
		return MemberOf, true
	case "subcollectionOf":
		return SubcollectionOf, true
	case "subquantityOf":
		return SubquantityOf, true
	default:
		return 0, false
	}
}

// String returns the stereotype literal; the plain association is "".
func (r Relation) String() string {
	switch r {
	case Plain:
		return ""
	case Formal:
		return "formal"
	case Mediation:
		return "mediation"
	case Characterization:
		return "characterization"
	case Structuration:
		return "structuration"
	case ComponentOf:
		return "componentOf"
	case Containment:
		return "containment"
	case MemberOf:
		return "memberOf"
	case SubcollectionOf:
		return "subcollectionOf"
	case SubquantityOf:
		return "subquantityOf"
	default:
		return "unknown"
	}
}

// IsPartWhole reports whether the relation is one of the fixed-shape
// part-whole stereotypes (whole at the source end).
func (r Relation) IsPartWhole() bool {
	switch r {
	case ComponentOf, Containment, MemberOf, SubcollectionOf, SubquantityOf:
		return true
	default:
		return false
	}
}
