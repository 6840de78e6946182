package validate

import "errors"

// ErrModelNil is returned when a nil root package is passed to Validate.
var ErrModelNil = errors.New("validate: model is nil")

// Kind identifies one diagnostic rule. The first block are hard
// well-formedness errors; the second block are anti-pattern warnings.
type Kind uint8

const (
	InvalidStereotype Kind = iota
	InvalidSubtyping
	InvalidRelation
	InvalidIdentity
	InvalidRole
	InvalidRelator
	InvalidPhase
	InvalidNonabstractMixin
	InvalidMissingCharacterization

	BinOver
	DecInt
	DepPhase
	FreeRole
	GSRig
	HetColl
	HomoFunc
	MixRig
	MultDep
	RelRig
	UndefFormal
	UndefPhase
)

// IsAntiPattern reports whether the kind is a heuristic warning rather than
// a well-formedness error.
func (k Kind) IsAntiPattern() bool { return k >= BinOver }

// String returns the diagnostic code.
func (k Kind) String() string {
	switch k {
	case InvalidStereotype:
		return "InvalidStereotype"
	case InvalidSubtyping:
		return "InvalidSubtyping"
	case InvalidRelation:
		return "InvalidRelation"
	case InvalidIdentity:
		return "InvalidIdentity"
	case InvalidRole:
		return "InvalidRole"
	case InvalidRelator:
		return "InvalidRelator"
	case InvalidPhase:
		return "InvalidPhase"
	case InvalidNonabstractMixin:
		return "InvalidNonabstractMixin"
	case InvalidMissingCharacterization:
		return "InvalidMissingCharacterization"
	case BinOver:
		return "BinOver"
	case DecInt:
		return "DecInt"
	case DepPhase:
		return "DepPhase"
	case FreeRole:
		return "FreeRole"
	case GSRig:
		return "GSRig"
	case HetColl:
		return "HetColl"
	case HomoFunc:
		return "HomoFunc"
	case MixRig:
		return "MixRig"
	case MultDep:
		return "MultDep"
	case RelRig:
		return "RelRig"
	case UndefFormal:
		return "UndefFormal"
	case UndefPhase:
		return "UndefPhase"
	default:
		return "Unknown"
	}
}

// Problem is one diagnostic: the offending element, the rule, and free text
// for the results table. Anti-pattern findings carry no message.
type Problem struct {
	ElementID string
	Kind      Kind
	Message   string
}

// IsAntiPattern reports whether the problem is a warning.
func (p Problem) IsAntiPattern() bool { return p.Kind.IsAntiPattern() }

// Options selects which phases a validation run performs.
type Options struct {
	// CheckErrors runs the structural well-formedness rules.
	CheckErrors bool

	// CheckAntiPatterns runs the twelve anti-pattern detectors.
	CheckAntiPatterns bool
}

// DefaultOptions enables both phases.
func DefaultOptions() Options {
	return Options{CheckErrors: true, CheckAntiPatterns: true}
}

// Option configures a validation run. Use with Validate(root, opts...).
type Option func(*Options)

// WithErrors toggles the structural error phase.
func WithErrors(on bool) Option {
	return func(o *Options) { o.CheckErrors = on }
}

// WithAntiPatterns toggles the anti-pattern phase.
func WithAntiPatterns(on bool) Option {
	return func(o *Options) { o.CheckAntiPatterns = on }
}
