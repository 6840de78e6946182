// Package ontology defines the closed OntoUML stereotype vocabularies and
// their classification predicates.
//
// Two tagged enums cover every literal the modeling surface can produce:
//
//	Class    — kind, subkind, phase, role, collective, quantity, relator
//	           (sortals); category, phaseMixin, roleMixin, mixin (non-sortals);
//	           mode, quality (aspects)
//	Relation — plain association plus formal, mediation, characterization,
//	           structuration, componentOf, containment, memberOf,
//	           subcollectionOf, subquantityOf
//
// ParseClass and ParseRelation are total over arbitrary strings: anything
// outside the vocabulary (including the empty class stereotype) reports
// ok == false and is left to the validator to diagnose. No function in this
// package returns an error or panics.
//
// Classification predicates:
//
//   - IsRigid / IsAntiRigid       — modal rigidity of the stereotype
//   - IsIdentityProvider          — supplies a principle of identity
//   - RequiresIdentity            — must inherit exactly one such principle
//   - IsSortal / IsMixin          — grouping used by the relation checks
//   - CanSpecialize(parent)       — the legal direct-generalization table
//
// All predicates are O(1) switches over the enum; adding a stereotype is a
// compile-visible change to every match.
package ontology
