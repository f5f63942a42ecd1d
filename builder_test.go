package statum

import (
	"testing"
)

func TestVariantBuilder_AllMemberKinds(t *testing.T) {
	v := NewVariant("Workday").
		Default().
		OnEnter(func(owner any) error { return nil }).
		OnExit(func(owner any) error { return nil }).
		Method("Day", func(owner any, args ...any) (any, error) { return "work", nil }).
		VariantFunc("Describe", func(v *Variant, args ...any) (any, error) { return v.Name(), nil }).
		Func("Ping", func(args ...any) (any, error) { return "pong", nil }).
		Property("Banner", func(owner any) (any, error) { return "***", nil }).
		Value("Limit", 7).
		Build()

	if v.Name() != "Workday" || !v.IsDefault() {
		t.Fatalf("unexpected variant: %s default=%v", v.Name(), v.IsDefault())
	}
	for _, name := range []string{"Day", "Describe", "Ping", "Banner", "Limit"} {
		if _, ok := v.Member(name); !ok {
			t.Fatalf("member %q not declared", name)
		}
	}
}

func TestClassBuilder_RegisterAndAccessors(t *testing.T) {
	workday := NewVariant("Workday").Default().Build()
	weekend := NewVariant("Weekend").Build()

	cls, err := NewClass("Sample").
		Declare(workday).
		Attach(weekend).
		Register()
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if cls.Name() != "Sample" {
		t.Fatalf("unexpected name: %s", cls.Name())
	}
	if cls.Default() != workday {
		t.Fatalf("unexpected default: %v", cls.Default())
	}
	if v, ok := cls.Variant("Weekend"); !ok || v != weekend {
		t.Fatalf("attached variant not exposed")
	}
	if got := len(cls.Variants()); got != 2 {
		t.Fatalf("expected 2 visible variants, got %d", got)
	}
}

func TestClassBuilder_DeclareNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on nil variant")
		}
	}()
	NewClass("Sample").Declare(nil)
}

func TestClassBuilder_DuplicateDeclarePanics(t *testing.T) {
	a := NewVariant("Workday").Build()
	b := NewVariant("Workday").Build()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate declaration")
		}
	}()
	NewClass("Sample").Declare(a, b)
}

func TestNewClass_EmptyNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty class name")
		}
	}()
	NewClass("")
}
