package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolezvo1/ontoval/hierarchy"
	"github.com/dolezvo1/ontoval/model"
	"github.com/dolezvo1/ontoval/ontology"
)

// chain builds Person <- Student <- GradStudent with binary generalizations.
func chain(t *testing.T) (*hierarchy.Index, *model.Class, *model.Class, *model.Class) {
	t.Helper()
	person := model.NewClass("Person", "kind")
	student := model.NewClass("Student", "role")
	grad := model.NewClass("GradStudent", "role")
	root := model.NewPackage("root",
		person, student, grad,
		model.NewGeneralization([]string{student.ID()}, []string{person.ID()},
			model.WithDisjoint(true), model.WithCovering(true)),
		model.NewGeneralization([]string{grad.ID()}, []string{student.ID()},
			model.WithDisjoint(true), model.WithCovering(true)),
	)

	return hierarchy.Build(root), person, student, grad
}

func TestBuild_NilRoot(t *testing.T) {
	ix := hierarchy.Build(nil)
	assert.Empty(t, ix.Classifiers())
	assert.False(t, ix.IsSubtypeOf("a", "b"))
}

func TestIsSubtypeOf_Chain(t *testing.T) {
	ix, person, student, grad := chain(t)

	assert.True(t, ix.IsSubtypeOf(student.ID(), person.ID()))
	assert.True(t, ix.IsSubtypeOf(grad.ID(), person.ID()), "transitive")
	assert.False(t, ix.IsSubtypeOf(person.ID(), student.ID()), "not symmetric")
	assert.False(t, ix.IsSubtypeOf(person.ID(), person.ID()), "strict: no self-edge")
}

func TestIsSubtypeOf_CycleTerminates(t *testing.T) {
	a := model.NewClass("A", "kind")
	b := model.NewClass("B", "subkind")
	root := model.NewPackage("root", a, b,
		model.NewGeneralization([]string{a.ID()}, []string{b.ID()}),
		model.NewGeneralization([]string{b.ID()}, []string{a.ID()}),
	)
	ix := hierarchy.Build(root)

	// Must terminate; on the cyclic graph both directions are reachable.
	assert.True(t, ix.IsSubtypeOf(a.ID(), b.ID()))
	assert.True(t, ix.IsSubtypeOf(b.ID(), a.ID()))
	assert.True(t, ix.IsSubtypeOf(a.ID(), a.ID()), "self reachable through the cycle")
}

func TestLeastUpperBound(t *testing.T) {
	ix, person, student, grad := chain(t)

	id, ok := ix.LeastUpperBound(student.ID(), grad.ID())
	require.True(t, ok)
	assert.Equal(t, student.ID(), id, "student bounds its own subtype")

	id, ok = ix.LeastUpperBound(grad.ID(), person.ID())
	require.True(t, ok)
	assert.Equal(t, person.ID(), id)

	stranger := model.NewClass("Building", "kind")
	ix2 := hierarchy.Build(model.NewPackage("root", stranger))
	_, ok = ix2.LeastUpperBound(stranger.ID(), "nonexistent")
	assert.False(t, ok)
}

func TestGreatestLowerBound(t *testing.T) {
	ix, person, student, grad := chain(t)

	id, ok := ix.GreatestLowerBound(person.ID(), student.ID())
	require.True(t, ok)
	assert.Equal(t, student.ID(), id)

	id, ok = ix.GreatestLowerBound(person.ID(), grad.ID())
	require.True(t, ok)
	assert.Equal(t, grad.ID(), id)
}

func TestDisjointUpward(t *testing.T) {
	person := model.NewClass("Person", "kind")
	man := model.NewClass("Man", "subkind")
	woman := model.NewClass("Woman", "subkind")
	root := model.NewPackage("root", person, man, woman,
		model.NewGeneralization(
			[]string{man.ID(), woman.ID()}, []string{person.ID()},
			model.WithDisjoint(true), model.WithCovering(true)),
	)
	ix := hierarchy.Build(root)

	assert.True(t, ix.DisjointUpward(man.ID(), woman.ID()),
		"disjoint set separates the branches")
	assert.False(t, ix.DisjointUpward(man.ID(), person.ID()),
		"a branch is not disjoint with its own root")
	assert.False(t, ix.DisjointUpward(man.ID(), man.ID()))
}

func TestDisjointUpward_NoCommonBound(t *testing.T) {
	a := model.NewClass("Person", "kind")
	b := model.NewClass("Building", "kind")
	ix := hierarchy.Build(model.NewPackage("root", a, b))

	assert.True(t, ix.DisjointUpward(a.ID(), b.ID()))
}

func TestDisjointUpward_OverlappingSet(t *testing.T) {
	person := model.NewClass("Person", "kind")
	musician := model.NewClass("Musician", "role")
	teacher := model.NewClass("Teacher", "role")
	root := model.NewPackage("root", person, musician, teacher,
		model.NewGeneralization(
			[]string{musician.ID(), teacher.ID()}, []string{person.ID()},
			model.WithDisjoint(false), model.WithCovering(false)),
	)
	ix := hierarchy.Build(root)

	assert.False(t, ix.DisjointUpward(musician.ID(), teacher.ID()),
		"an overlapping set proves nothing")
}

func TestDisjointDownward(t *testing.T) {
	insurable := model.NewClass("Insurable", "mixin", model.WithAbstract())
	valuable := model.NewClass("Valuable", "mixin", model.WithAbstract())
	car := model.NewClass("Car", "kind")
	root := model.NewPackage("root", insurable, valuable, car,
		model.NewGeneralization([]string{car.ID()}, []string{insurable.ID()}),
		model.NewGeneralization([]string{car.ID()}, []string{valuable.ID()}),
	)
	ix := hierarchy.Build(root)

	assert.False(t, ix.DisjointDownward(insurable.ID(), valuable.ID()),
		"Car specializes both")

	lonely := model.NewClass("Lonely", "mixin", model.WithAbstract())
	ix2 := hierarchy.Build(model.NewPackage("root", insurable, lonely))
	assert.True(t, ix2.DisjointDownward(insurable.ID(), lonely.ID()))
}

func TestAncestorSatisfies(t *testing.T) {
	ix, _, _, grad := chain(t)

	assert.True(t, ix.AncestorSatisfies(grad.ID(), func(st ontology.Class) bool {
		return st == ontology.Kind
	}))
	assert.False(t, ix.AncestorSatisfies(grad.ID(), func(st ontology.Class) bool {
		return st == ontology.Relator
	}))
}

func TestHasIntrinsicProperties(t *testing.T) {
	person := model.NewClass("Person", "kind", model.WithProperties("age: int"))
	student := model.NewClass("Student", "role")
	bare := model.NewClass("Rock", "kind")
	weight := model.NewClass("Weight", "quality")
	stone := model.NewClass("Stone", "kind")
	root := model.NewPackage("root", person, student, bare, weight, stone,
		model.NewGeneralization([]string{student.ID()}, []string{person.ID()}),
		model.NewAssociation("characterization", stone.ID(), weight.ID(),
			model.WithMultiplicities("1..1", "1..1")),
	)
	ix := hierarchy.Build(root)

	assert.True(t, ix.HasIntrinsicProperties(person.ID()), "own attributes")
	assert.True(t, ix.HasIntrinsicProperties(student.ID()), "inherited attributes")
	assert.False(t, ix.HasIntrinsicProperties(bare.ID()))
	assert.True(t, ix.HasIntrinsicProperties(stone.ID()), "characterized by a quality")
	assert.True(t, ix.Characterized(weight.ID()))
}

func TestMediationLowerSum(t *testing.T) {
	marriage := model.NewClass("Marriage", "relator")
	person := model.NewClass("Person", "kind")
	spouse := model.NewClass("Spouse", "role")
	root := model.NewPackage("root", marriage, person, spouse,
		model.NewGeneralization([]string{spouse.ID()}, []string{person.ID()},
			model.WithDisjoint(true), model.WithCovering(true)),
		model.NewAssociation("mediation", marriage.ID(), spouse.ID(),
			model.WithMultiplicities("1..1", "2..*")),
	)
	ix := hierarchy.Build(root)

	assert.Equal(t, uint64(2), ix.MediationLowerSum(marriage.ID()),
		"the relator inherits the opposing lower bound 2")
	assert.Equal(t, uint64(1), ix.MediationLowerSum(spouse.ID()))
	assert.Equal(t, uint64(0), ix.MediationLowerSum(person.ID()),
		"mediation on the subtype does not flow up")
}

func TestMediationLowerSum_InheritedThroughGeneralization(t *testing.T) {
	enrollment := model.NewClass("Enrollment", "relator")
	student := model.NewClass("Student", "role")
	grad := model.NewClass("GradStudent", "role")
	root := model.NewPackage("root", enrollment, student, grad,
		model.NewGeneralization([]string{grad.ID()}, []string{student.ID()},
			model.WithDisjoint(true), model.WithCovering(true)),
		model.NewAssociation("mediation", enrollment.ID(), student.ID(),
			model.WithMultiplicities("1..*", "1..1")),
	)
	ix := hierarchy.Build(root)

	assert.Equal(t, uint64(1), ix.MediationLowerSum(grad.ID()),
		"grad inherits the opposing bound through its ancestry")
}
