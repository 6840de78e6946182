package validate_test

import (
	"fmt"

	"github.com/dolezvo1/ontoval/model"
	"github.com/dolezvo1/ontoval/validate"
)

// ExampleValidate builds a small conceptual model with one structural error
// (a role that no relator mediates) and prints every finding.
func ExampleValidate() {
	person := model.NewClass("Person", "kind")
	student := model.NewClass("Student", "role")
	root := model.NewPackage("university", person, student,
		model.NewGeneralization(
			[]string{student.ID()}, []string{person.ID()},
			model.WithDisjoint(true), model.WithCovering(true),
		),
	)

	problems, err := validate.Validate(root)
	if err != nil {
		fmt.Println("validate:", err)
		return
	}
	for _, p := range problems {
		if p.Message == "" {
			fmt.Println(p.Kind)
			continue
		}
		fmt.Printf("%s: %s\n", p.Kind, p.Message)
	}

	// Output:
	// InvalidRole: role is not mediated by any relator
	// FreeRole
}
