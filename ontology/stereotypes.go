package ontology

// Class enumerates the OntoUML class stereotypes. The zero value is Kind;
// callers distinguish "no stereotype" via the ok result of ParseClass, never
// via a sentinel variant.
type Class uint8

const (
	// Sortals
	Kind Class = iota
	Subkind
	Phase
	Role
	Collective
	Quantity
	Relator
	// Non-sortals
	Category
	PhaseMixin
	RoleMixin
	Mixin
	// Aspects
	Mode
	Quality
)

// ParseClass maps a stereotype literal to its Class variant.
// It is total: unrecognized input (including "") yields ok == false.
func ParseClass(s string) (Class, bool) {
	switch s {
	case "kind":
		return Kind, true
	case "subkind":
		return Subkind, true
	case "phase":
		return Phase, true
	case "role":
		return Role, true
	case "collective":
		return Collective, true
	case "quantity":
		return Quantity, true
	case "relator":
		return Relator, true
	case "category":
		return Category, true
	case "phaseMixin":
		return PhaseMixin, true
	case "roleMixin":
		return RoleMixin, true
	case "mixin":
		return Mixin, true
	case "mode":
		return Mode, true
	case "quality":
		return Quality, true
	default:
		return 0, false
	}
}

// String returns the stereotype literal as written in a model.
func (c Class) String() string {
	switch c {
	case Kind:
		return "kind"
	case Subkind:
		return "subkind"
	case Phase:
		return "phase"
	case Role:
		return "role"
	case Collective:
		return "collective"
	case Quantity:
		return "quantity"
	case Relator:
		return "relator"
	case Category:
		return "category"
	case PhaseMixin:
		return "phaseMixin"
	case RoleMixin:
		return "roleMixin"
	case Mixin:
		return "mixin"
	case Mode:
		return "mode"
	case Quality:
		return "quality"
	default:
		return "unknown"
	}
}

// IsRigid reports whether the stereotype applies necessarily to its
// instances across their whole lifetime.
func (c Class) IsRigid() bool {
	switch c {
	case Kind, Subkind, Collective, Quantity, Relator, Category, Mode, Quality:
		return true
	default:
		return false
	}
}

// IsAntiRigid reports whether the stereotype applies only contingently
// (phases and roles, sortal or mixin).
func (c Class) IsAntiRigid() bool {
	switch c {
	case Role, Phase, PhaseMixin, RoleMixin:
		return true
	default:
		return false
	}
}

// IsIdentityProvider reports whether instances of the stereotype supply
// their own principle of identity.
func (c Class) IsIdentityProvider() bool {
	switch c {
	case Kind, Collective, Quantity, Relator, Quality, Mode:
		return true
	default:
		return false
	}
}

// RequiresIdentity reports whether the stereotype must carry exactly one
// principle of identity, own or inherited. Only the non-sortal mixins are
// exempt.
func (c Class) RequiresIdentity() bool {
	switch c {
	case Category, Mixin, PhaseMixin, RoleMixin:
		return false
	default:
		return true
	}
}

// IsSortal reports whether the stereotype is a substantial sortal
// (relators and aspects excluded).
func (c Class) IsSortal() bool {
	switch c {
	case Kind, Subkind, Phase, Role, Collective, Quantity:
		return true
	default:
		return false
	}
}

// IsMixin reports whether the stereotype is one of the non-sortal mixins.
func (c Class) IsMixin() bool {
	switch c {
	case Category, Mixin, PhaseMixin, RoleMixin:
		return true
	default:
		return false
	}
}
