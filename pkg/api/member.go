package api

// Callable signatures a variant member can carry. The distinction matters
// for binding: a Method receives the owner instance, a VariantFunc receives
// the variant that declared it, and a Func receives neither.
type (
	// Method is an owner-taking callable declared on a variant.
	Method func(owner any, args ...any) (any, error)

	// VariantFunc is a variant-scoped callable. When resolved through an
	// instance it is bound to the variant that declared it, not the owner.
	VariantFunc func(v *Variant, args ...any) (any, error)

	// Func is a plain callable with no owner. It keeps its own binding
	// semantics and is passed through resolution unchanged.
	Func func(args ...any) (any, error)

	// Property computes an attribute value from the owner on every access.
	Property func(owner any) (any, error)

	// BoundMethod is a callable whose receiver has already been applied.
	// Delegated resolution returns Methods and VariantFuncs in this form.
	BoundMethod func(args ...any) (any, error)

	// Hook is an enter/exit lifecycle callback.
	Hook func(owner any) error
)

// MemberKind discriminates what a Member holds.
type MemberKind int

const (
	KindMethod MemberKind = iota
	KindVariantFunc
	KindFunc
	KindProperty
	KindValue
)

func (k MemberKind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindVariantFunc:
		return "variantfunc"
	case KindFunc:
		return "func"
	case KindProperty:
		return "property"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// Member is a single named behavior or value declared on a variant.
// Members are created through the VariantBuilder and are immutable.
type Member struct {
	name string
	kind MemberKind

	method    Method
	variantFn VariantFunc
	fn        Func
	prop      Property
	value     any
}

// Name returns the member's name.
func (m Member) Name() string { return m.name }

// Kind returns what the member holds.
func (m Member) Kind() MemberKind { return m.kind }

// Unbound returns the member's raw callable or value, with no owner applied.
// For a Method this is the original owner-taking function; for a Property it
// is the getter itself, not a computed value.
func (m Member) Unbound() any {
	switch m.kind {
	case KindMethod:
		return m.method
	case KindVariantFunc:
		return m.variantFn
	case KindFunc:
		return m.fn
	case KindProperty:
		return m.prop
	default:
		return m.value
	}
}

// bind resolves the member on behalf of owner. declaring is the variant the
// member was found on, used to bind VariantFuncs.
//
// Binding rules:
//   - Method      -> BoundMethod with owner pre-applied
//   - VariantFunc -> BoundMethod with the declaring variant pre-applied
//   - Func        -> BoundMethod wrapping the callable unchanged
//   - Property    -> the computed value (the getter runs here)
//   - Value       -> the value, unbound
func (m Member) bind(owner any, declaring *Variant) (any, error) {
	switch m.kind {
	case KindMethod:
		fn := m.method
		return BoundMethod(func(args ...any) (any, error) {
			return fn(owner, args...)
		}), nil
	case KindVariantFunc:
		fn := m.variantFn
		return BoundMethod(func(args ...any) (any, error) {
			return fn(declaring, args...)
		}), nil
	case KindFunc:
		fn := m.fn
		return BoundMethod(func(args ...any) (any, error) {
			return fn(args...)
		}), nil
	case KindProperty:
		return m.prop(owner)
	default:
		return m.value, nil
	}
}
