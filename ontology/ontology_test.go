package ontology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dolezvo1/ontoval/ontology"
)

var allClasses = []ontology.Class{
	ontology.Kind, ontology.Subkind, ontology.Phase, ontology.Role,
	ontology.Collective, ontology.Quantity, ontology.Relator,
	ontology.Category, ontology.PhaseMixin, ontology.RoleMixin, ontology.Mixin,
	ontology.Mode, ontology.Quality,
}

func TestParseClass_RoundTrip(t *testing.T) {
	for _, c := range allClasses {
		got, ok := ontology.ParseClass(c.String())
		assert.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}
}

func TestParseClass_Unrecognized(t *testing.T) {
	for _, s := range []string{"", "Kind", "kinds", "antirigid", "«kind»"} {
		_, ok := ontology.ParseClass(s)
		assert.False(t, ok, "%q must not parse", s)
	}
}

func TestParseRelation_RoundTrip(t *testing.T) {
	for _, r := range []ontology.Relation{
		ontology.Plain, ontology.Formal, ontology.Mediation,
		ontology.Characterization, ontology.Structuration,
		ontology.ComponentOf, ontology.Containment, ontology.MemberOf,
		ontology.SubcollectionOf, ontology.SubquantityOf,
	} {
		got, ok := ontology.ParseRelation(r.String())
		assert.True(t, ok)
		assert.Equal(t, r, got)
	}

	_, ok := ontology.ParseRelation("material")
	assert.False(t, ok)
}

func TestRigidity_Partition(t *testing.T) {
	// Every class stereotype is exactly one of rigid / anti-rigid.
	for _, c := range allClasses {
		assert.NotEqual(t, c.IsRigid(), c.IsAntiRigid(), c.String())
	}
}

func TestIdentityPredicates(t *testing.T) {
	providers := map[ontology.Class]bool{
		ontology.Kind: true, ontology.Collective: true, ontology.Quantity: true,
		ontology.Relator: true, ontology.Quality: true, ontology.Mode: true,
	}
	exempt := map[ontology.Class]bool{
		ontology.Category: true, ontology.Mixin: true,
		ontology.PhaseMixin: true, ontology.RoleMixin: true,
	}
	for _, c := range allClasses {
		assert.Equal(t, providers[c], c.IsIdentityProvider(), c.String())
		assert.Equal(t, !exempt[c], c.RequiresIdentity(), c.String())
		assert.Equal(t, exempt[c], c.IsMixin(), c.String())
	}
}

func TestCanSpecialize(t *testing.T) {
	legal := []struct{ child, parent ontology.Class }{
		{ontology.Subkind, ontology.Kind},
		{ontology.Subkind, ontology.Collective},
		{ontology.Subkind, ontology.Quantity},
		{ontology.Subkind, ontology.Relator},
		{ontology.Role, ontology.Kind},
		{ontology.Role, ontology.Role},
		{ontology.Role, ontology.RoleMixin},
		{ontology.Phase, ontology.Kind},
		{ontology.Phase, ontology.Phase},
		{ontology.Phase, ontology.PhaseMixin},
		{ontology.Kind, ontology.Category},
		{ontology.Kind, ontology.Mixin},
		{ontology.Relator, ontology.Category},
		{ontology.Category, ontology.Category},
		{ontology.PhaseMixin, ontology.Category},
		{ontology.RoleMixin, ontology.PhaseMixin},
		{ontology.Mode, ontology.Mixin},
	}
	for _, p := range legal {
		assert.True(t, p.child.CanSpecialize(p.parent),
			"«%s» -> «%s» must be legal", p.child, p.parent)
	}

	illegal := []struct{ child, parent ontology.Class }{
		{ontology.Kind, ontology.Subkind}, // reversed
		{ontology.Kind, ontology.Kind},
		{ontology.Category, ontology.Kind},
		{ontology.Mixin, ontology.RoleMixin},
		{ontology.PhaseMixin, ontology.RoleMixin},
		{ontology.Quality, ontology.Kind},
		{ontology.Role, ontology.PhaseMixin},
		{ontology.Phase, ontology.RoleMixin},
	}
	for _, p := range illegal {
		assert.False(t, p.child.CanSpecialize(p.parent),
			"«%s» -> «%s» must be illegal", p.child, p.parent)
	}
}
