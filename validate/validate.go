package validate

import (
	"github.com/dolezvo1/ontoval/hierarchy"
	"github.com/dolezvo1/ontoval/model"
)

// Validate analyzes the model rooted at root and returns every finding,
// errors first, each phase in element-traversal order. Each call recomputes
// from scratch; an empty result with a nil error means the model is clean.
func Validate(root *model.Package, opts ...Option) ([]Problem, error) {
	// 1. Guard the only illegal call shape.
	if root == nil {
		return nil, ErrModelNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. One collection pass feeds both phases.
	ix := hierarchy.Build(root)

	// 4. Phases in fixed order: errors, then anti-patterns.
	var problems []Problem
	if o.CheckErrors {
		problems = append(problems, structural(root, ix)...)
	}
	if o.CheckAntiPatterns {
		problems = append(problems, antipatterns(ix)...)
	}

	return problems, nil
}
