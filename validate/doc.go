// Package validate runs OntoUML well-formedness and anti-pattern analysis
// over a model tree and returns an ordered diagnostic list.
//
// A run is one call:
//
//	problems, err := validate.Validate(root)
//
// Phases (each individually switchable via options):
//
//  1. Errors — the structural rules: stereotype recognition, subtyping
//     legality, multiplicity well-formedness, relation endpoint shapes, and
//     the aggregated identity/role/relator/phase/mixin/characterization
//     checks.
//  2. Anti-patterns — twelve heuristic detectors (BinOver, DecInt, DepPhase,
//     FreeRole, GSRig, HetColl, HomoFunc, MixRig, MultDep, RelRig,
//     UndefFormal, UndefPhase) flagging structurally legal but ontologically
//     suspicious shapes.
//
// Output is finite and order-stable: errors first, then anti-patterns, each
// phase in element-traversal order (aggregate findings follow the
// per-element ones in classifier first-seen order). Malformed input —
// unknown stereotypes, unparseable multiplicities, dangling references —
// always degrades to a diagnostic on the offending element and never
// suppresses diagnostics elsewhere in the graph. The only call error is
// ErrModelNil.
//
// The run is synchronous and strictly read-only. No locks are taken; the
// caller must not mutate the model concurrently (run on the owning thread or
// validate a snapshot). Nothing survives between runs.
package validate
