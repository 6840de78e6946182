// Package model holds the read-only OntoUML class-diagram element tree.
//
// Elements live in flat, ID-keyed form: classifiers carry a stable string ID
// and edges (generalizations, associations, comment links) reference them by
// ID only — there are no shared element pointers and therefore nothing to
// lock during an analytical pass. Packages nest; every other element is a
// leaf of its containing package.
//
// Element kinds:
//
//	Package        — container, recursively nestable
//	Class          — stereotype literal, abstract flag, free-text
//	                 properties/functions
//	Instance       — opaque to every ontological check
//	Generalization — n-ary sources → n-ary targets with generalization-set
//	                 flags (disjoint, covering)
//	Association    — directed source → target with stereotype and per-end
//	                 multiplicity/role/reading labels
//	Comment        — free text, no semantics
//	CommentLink    — comment anchor, no semantics
//
// Constructors issue fresh UUID element IDs; the validator treats IDs as
// opaque keys. Stereotype and multiplicity fields stay free text on purpose:
// recognizing them is the validator's job, and malformed text must degrade
// to a diagnostic rather than being rejected here.
//
// The model is owned and mutated by the surrounding editor; this package
// only defines its shape and the Walk traversal primitive.
package model
