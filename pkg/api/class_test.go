package api

import (
	"strings"
	"testing"
)

//
// Default resolution
//

func TestClass_SingleMarkedDefault(t *testing.T) {
	workday := NewVariant("Workday").Default().Build()
	weekend := NewVariant("Weekend").Build()

	c, err := NewClass("Person").Declare(workday, weekend).Register()
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if c.Default() != workday {
		t.Fatalf("expected Workday as default, got %v", c.Default())
	}
}

func TestClass_TwoMarkedDefaultsAmbiguous(t *testing.T) {
	a := NewVariant("A").Default().Build()
	b := NewVariant("B").Default().Build()

	_, err := NewClass("Person").Declare(a, b).Register()
	candidates, ok := IsAmbiguousDefault(err)
	if !ok {
		t.Fatalf("expected ambiguous-default, got %v", err)
	}
	if len(candidates) != 2 || candidates[0] != "A" || candidates[1] != "B" {
		t.Fatalf("expected both candidates named, got %v", candidates)
	}
}

func TestClass_ExplicitDefaultParameter(t *testing.T) {
	workday := NewVariant("Workday").Build()
	weekend := NewVariant("Weekend").Build()

	c, err := NewClass("Person").
		Declare(workday).
		Attach(weekend).
		WithDefault(weekend).
		Register()
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if c.Default() != weekend {
		t.Fatalf("expected the explicit default, got %v", c.Default())
	}
}

func TestClass_ExplicitDefaultPlusMarkedIsAmbiguous(t *testing.T) {
	workday := NewVariant("Workday").Default().Build()
	weekend := NewVariant("Weekend").Build()

	_, err := NewClass("Person").
		Declare(workday).
		Attach(weekend).
		WithDefault(weekend).
		Register()
	if _, ok := IsAmbiguousDefault(err); !ok {
		t.Fatalf("expected ambiguous-default, got %v", err)
	}
}

func TestClass_ExplicitDefaultMustBeVisible(t *testing.T) {
	workday := NewVariant("Workday").Build()
	stray := NewVariant("Stray").Build()

	_, err := NewClass("Person").Declare(workday).WithDefault(stray).Register()
	if err == nil || !strings.Contains(err.Error(), "not visible") {
		t.Fatalf("expected visibility error, got %v", err)
	}
}

func TestClass_NoDefaultResolvesToNil(t *testing.T) {
	workday := NewVariant("Workday").Build()

	c, err := NewClass("Person").Declare(workday).Register()
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if c.Default() != nil {
		t.Fatalf("expected no default, got %v", c.Default())
	}
}

func TestClass_AttachedDefaultMarkerNotScanned(t *testing.T) {
	// Only the class's own declarations are scanned for markers; an
	// attached external variant contributes a candidate only through
	// WithDefault.
	external := NewVariant("Weekend").Default().Build()
	workday := NewVariant("Workday").Build()

	c, err := NewClass("Person").Declare(workday).Attach(external).Register()
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if c.Default() != nil {
		t.Fatalf("expected no default, got %v", c.Default())
	}
}

//
// Ancestor search
//

func TestClass_AncestorDefaultInherited(t *testing.T) {
	workday := NewVariant("Workday").Default().Build()
	person := NewClass("Person").Declare(workday).MustRegister()

	worker, err := NewClass("Worker").Extends(person).Register()
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if worker.Default() != workday {
		t.Fatalf("expected the ancestor default, got %v", worker.Default())
	}
}

func TestClass_OverrideByNameSuppressesAncestorCandidate(t *testing.T) {
	baseWorkday := NewVariant("Workday").Default().Build()
	person := NewClass("Person").Declare(baseWorkday).MustRegister()

	// Worker redeclares Workday with its own marker. The base declaration
	// of the same name must not be counted a second time.
	ownWorkday := NewVariant("Workday").Default().Build()
	worker, err := NewClass("Worker").Extends(person).Declare(ownWorkday).Register()
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if worker.Default() != ownWorkday {
		t.Fatalf("expected the overriding declaration to win, got %v", worker.Default())
	}
}

func TestClass_UnmarkedOverrideShadowsAncestorDefault(t *testing.T) {
	// Student redeclares Workday without a marker. The name is seen, so
	// the ancestor's marked Workday is suppressed and Student ends up with
	// no default at all.
	baseWorkday := NewVariant("Workday").Default().Build()
	person := NewClass("Person").Declare(baseWorkday).MustRegister()

	ownWorkday := NewVariant("Workday").Build()
	student, err := NewClass("Student").Extends(person).Declare(ownWorkday).Register()
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if student.Default() != nil {
		t.Fatalf("expected no default, got %v", student.Default())
	}
}

func TestClass_SearchStopsAtFirstYieldingAncestor(t *testing.T) {
	grandDefault := NewVariant("Night").Default().Build()
	grand := NewClass("Grand").Declare(grandDefault).MustRegister()

	midDefault := NewVariant("Day").Default().Build()
	mid := NewClass("Mid").Extends(grand).Declare(midDefault).MustRegister()

	leaf, err := NewClass("Leaf").Extends(mid).Register()
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	// Nearest ancestor level wins; Grand is never reached.
	if leaf.Default() != midDefault {
		t.Fatalf("expected the nearest ancestor's default, got %v", leaf.Default())
	}
}

func TestClass_AncestorLevelAmbiguityStillFails(t *testing.T) {
	a := NewVariant("A").Default().Build()
	b := NewVariant("B").Default().Build()
	parent := &Class{name: "Parent", visible: map[string]*Variant{"A": a, "B": b}, names: []string{"A", "B"}, declared: []*Variant{a, b}}

	_, err := NewClass("Child").Extends(parent).Register()
	if _, ok := IsAmbiguousDefault(err); !ok {
		t.Fatalf("expected ambiguous-default from ancestor level, got %v", err)
	}
}

//
// Visibility
//

func TestClass_VariantAccessor(t *testing.T) {
	workday := NewVariant("Workday").Default().Build()
	weekend := NewVariant("Weekend").Build()
	person := NewClass("Person").Declare(workday).Attach(weekend).MustRegister()

	if v, ok := person.Variant("Weekend"); !ok || v != weekend {
		t.Fatalf("attached variant not exposed: %v %v", v, ok)
	}
	if v, ok := person.Variant("Workday"); !ok || v != workday {
		t.Fatalf("declared variant not exposed: %v %v", v, ok)
	}
	if _, ok := person.Variant("Missing"); ok {
		t.Fatalf("unexpected variant")
	}
}

func TestClass_SubclassSeesParentVariantsUnlessShadowed(t *testing.T) {
	baseWorkday := NewVariant("Workday").Default().Build()
	weekend := NewVariant("Weekend").Build()
	person := NewClass("Person").Declare(baseWorkday).Attach(weekend).MustRegister()

	ownWorkday := NewVariant("Workday").Default().Build()
	worker := NewClass("Worker").Extends(person).Declare(ownWorkday).MustRegister()

	if v, _ := worker.Variant("Workday"); v != ownWorkday {
		t.Fatalf("expected the shadowing declaration, got %v", v)
	}
	if v, _ := worker.Variant("Weekend"); v != weekend {
		t.Fatalf("expected the inherited attachment, got %v", v)
	}

	vs := worker.Variants()
	if len(vs) != 2 {
		t.Fatalf("expected 2 visible variants, got %d", len(vs))
	}
}

func TestClass_RegisterRejectsUnsealedVariant(t *testing.T) {
	var raw Variant
	_, err := NewClass("Person").Declare(&raw).Register()
	if _, ok := IsInstantiationRejected(err); !ok {
		t.Fatalf("expected instantiation rejection, got %v", err)
	}
}

func TestClass_BuilderReuseAfterRegisterPanics(t *testing.T) {
	b := NewClass("Person")
	b.MustRegister()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on builder reuse")
		}
	}()
	b.Register()
}
