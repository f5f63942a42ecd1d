package statum

import "github.com/petrijr/statum/pkg/api"

// NewVariant starts the declaration of a state variant:
//
//	workday := statum.NewVariant("Workday").
//	    Default().
//	    OnEnter(func(owner any) error { return nil }).
//	    Method("Day", func(owner any, args ...any) (any, error) {
//	        return "work", nil
//	    }).
//	    Build()
//
// Members declared on the builder are retrievable two ways with consistent
// binding: unbound through Variant.Member, or bound to an owner instance
// through delegated resolution (Resolve / Call / Get). Build seals the
// variant; builder misuse (empty names, nil callables, reuse after Build)
// panics.
func NewVariant(name string) *VariantBuilder {
	return api.NewVariant(name)
}

// NewClass starts the registration of a host class:
//
//	var personClass = statum.NewClass("Person").
//	    Declare(workday).
//	    Attach(weekend).
//	    MustRegister()
//
// Register (or MustRegister, for package-level variables) resolves the
// class's default initial variant and seals the class. Host instances embed
// statum.Stateful and call personClass.Init(p) at the end of their
// constructor.
//
// Subclasses register their own class with Extends(parent); a variant
// declared under a name the parent already uses overrides it, both for
// default resolution and for the Variant accessor.
func NewClass(name string) *ClassBuilder {
	return api.NewClass(name)
}
