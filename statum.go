package statum

import "github.com/petrijr/statum/pkg/api"

// Re-export key types so users don't need to dig into pkg/api.

type (
	Variant              = api.Variant
	VariantBuilder       = api.VariantBuilder
	Class                = api.Class
	ClassBuilder         = api.ClassBuilder
	Stateful             = api.Stateful
	Owner                = api.Owner
	Member               = api.Member
	MemberKind           = api.MemberKind
	Method               = api.Method
	VariantFunc          = api.VariantFunc
	Func                 = api.Func
	Property             = api.Property
	BoundMethod          = api.BoundMethod
	Hook                 = api.Hook
	FallbackFunc         = api.FallbackFunc
	InitOption           = api.InitOption
	Observer             = api.Observer
	NoopObserver         = api.NoopObserver
	CompositeObserver    = api.CompositeObserver
	LoggingObserver      = api.LoggingObserver
	BasicMetrics         = api.BasicMetrics
	BasicMetricsSnapshot = api.BasicMetricsSnapshot

	InstantiationError    = api.InstantiationError
	AmbiguousDefaultError = api.AmbiguousDefaultError
	MissingDefaultError   = api.MissingDefaultError
	AttributeError        = api.AttributeError
	UnknownVariantError   = api.UnknownVariantError
)

// Re-export member kinds for convenience.

const (
	KindMethod      = api.KindMethod
	KindVariantFunc = api.KindVariantFunc
	KindFunc        = api.KindFunc
	KindProperty    = api.KindProperty
	KindValue       = api.KindValue
)

// Re-export common observer helpers.

var (
	NewLoggingObserver   = api.NewLoggingObserver
	NewCompositeObserver = api.NewCompositeObserver
)

// Re-export error constructors and predicates.

var (
	NewAttributeError       = api.NewAttributeError
	IsNoAttribute           = api.IsNoAttribute
	IsAmbiguousDefault      = api.IsAmbiguousDefault
	IsMissingDefault        = api.IsMissingDefault
	IsInstantiationRejected = api.IsInstantiationRejected
	IsUnknownVariant        = api.IsUnknownVariant
)

// Init options.

var WithInitial = api.WithInitial

// Convenience helpers that just forward to the embedded Stateful handle.

// Switch changes o's current variant to v. With force false, switching to
// the variant already current is a no-op; otherwise the old variant's exit
// hook and the new one's enter hook run around the assignment.
func Switch(o Owner, v *Variant, force bool) error {
	return api.Switch(o, v, force)
}

// Current returns o's current variant.
func Current(o Owner) *Variant {
	return api.Current(o)
}

// Resolve looks name up on behalf of o: ordinary lookup on the owner
// first, then the class fallback, then the current variant's chain.
func Resolve(o Owner, name string) (any, error) {
	return api.Resolve(o, name)
}

// Call resolves name on o and invokes it with args.
func Call(o Owner, name string, args ...any) (any, error) {
	return api.Call(o, name, args...)
}
