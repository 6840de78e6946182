// Package multiplicity parses UML multiplicity labels into ranges.
//
// Grammar (no surrounding whitespace significance beyond trimming):
//
//	""      → ErrEmpty (absent; the caller decides whether absence is legal)
//	"*"     → 0..∞
//	"n"     → n..n
//	"l..u"  → l..u
//	"l..*"  → l..∞
//
// Anything else → ErrSyntax. Parsing is total: it never panics, and an
// inverted range such as "3..1" parses successfully but reports
// Valid() == false so the validator can point at the offending label.
//
// Errors:
//
//	ErrEmpty  - the label is empty or blank.
//	ErrSyntax - the label does not match the grammar.
//
// Branch on them with errors.Is; call sites wrap with %w.
package multiplicity
