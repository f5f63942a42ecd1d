// Package api contains the core building blocks of the statum state-pattern
// engine: variants, classes, the per-instance state handle, and the
// observability primitives.
//
// Most users interact with the higher-level statum package, which re-exports
// selected types and helpers from this package. The api package is intended
// for advanced use cases, custom integrations, or contributors extending the
// engine itself.
//
// # Concepts
//
// The api package centers around a small set of concepts:
//
//   - Variants: type-level behavior tags
//   - Classes: per-host registration records
//   - The Stateful handle: current-state tracking and delegation
//   - Observability
//
// # Variants
//
// A Variant is a named, immutable tag describing one mode of behavior. It
// carries members (methods, variant-scoped and plain functions, computed
// properties, values) and two lifecycle hooks, enter and exit. Variants are
// declared once through VariantBuilder and sealed by Build; they are never
// constructed as values, and the engine rejects anything else with an
// InstantiationError. Variants may specialize other variants with Extends;
// member and hook lookup walks that chain most derived first.
//
// # Classes
//
// A Class records a host type's variants: those it declares as its own,
// those attached from outside, and those inherited from a parent class. A
// declaration under a name already visible from the parent shadows it.
// Registration resolves which variant, if any, is the default initial state
// for new instances; two simultaneously visible default-marked variants are
// an AmbiguousDefaultError.
//
// # The Stateful handle
//
// Host structs embed Stateful and call Class.Init at the end of their
// constructor. From then on the instance carries exactly one current
// variant, changed with Switch (exit hook, assignment, enter hook, in that
// order, with no rollback on hook failure). Attribute names not found by
// ordinary lookup on the owner are resolved against the current variant's
// chain, with callables bound to the owner on the way out; a full miss is
// an AttributeError whose message matches a native one exactly.
//
// # Observability
//
// The Observer interface reports instance lifecycle events: initialization,
// switches, and attribute resolutions. Ready-made implementations cover
// structured logging (log/slog) and basic in-memory counters, and
// NewCompositeObserver combines several observers into one.
//
// The engine is synchronous and unlocked throughout: all calls run to
// completion on the calling goroutine, and concurrent use of one instance
// is the caller's problem to serialize.
package api
