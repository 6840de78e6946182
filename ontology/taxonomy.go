package ontology

// CanSpecialize reports whether a class stereotyped c may appear as a direct
// subtype of a class stereotyped parent. Every pair outside this table is an
// illegal generalization.
func (c Class) CanSpecialize(parent Class) bool {
	// Any identity provider or mixin-family stereotype may rise into the
	// abstract non-sortals.
	switch c {
	case Kind, Collective, Quantity, Relator, Quality, Mode, Category, Mixin:
		if parent == Category || parent == Mixin {
			return true
		}
	}

	// The anti-rigid / subkind sortals may specialize any identity carrier.
	switch c {
	case Subkind, Phase, Role:
		switch parent {
		case Kind, Subkind, Collective, Quantity, Relator, Category, Mixin, Mode, Quality:
			return true
		}
	}

	switch c {
	case Phase:
		return parent == Phase || parent == PhaseMixin
	case Role:
		return parent == Role || parent == RoleMixin
	case PhaseMixin:
		return parent == Mixin || parent == PhaseMixin || parent == Category
	case RoleMixin:
		return parent == Mixin || parent == RoleMixin || parent == Category || parent == PhaseMixin
	}

	return false
}
