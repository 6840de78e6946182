// Package ontoval analyzes OntoUML class-diagram models for
// well-formedness errors and heuristic anti-patterns.
//
// What is ontoval?
//
//	A pure, read-only rule engine over a conceptual-modeling graph:
//		• ontology/     — the closed stereotype taxonomy & classification predicates
//		• multiplicity/ — the "l..u" range grammar as a total parser
//		• model/        — packages, classes, generalizations, associations (flat,
//		                  ID-keyed, no shared mutable references)
//		• hierarchy/    — one collection pass + cycle-guarded closure queries
//		                  (subtype-of, bound search, disjointness)
//		• validate/     — the structural validator and twelve anti-pattern
//		                  detectors, producing an ordered diagnostic list
//
// Why ontoval?
//
//   - Total over malformed input – unknown stereotypes and unparseable
//     multiplicities become diagnostics, never panics or aborts
//   - Deterministic – one call, one finite, order-stable problem list
//   - Pure Go – no cgo, no hidden deps, no I/O
//
// A validation run takes a root *model.Package plus two phase switches and
// returns every finding keyed by element ID, errors first:
//
//	problems, err := validate.Validate(root,
//		validate.WithErrors(true),
//		validate.WithAntiPatterns(true))
//
// The caller owns the model and must not mutate it during a run; ontoval
// itself takes no locks and writes nothing.
//
// Dive into each package's doc.go for grammar, taxonomy tables and the
// per-detector rules.
package ontoval
