// Package statum implements the State design pattern as an embeddable Go
// library: an object's behavior set can change at runtime by switching the
// named state variant it is attached to, with each variant supplying its
// own member overrides and enter/exit lifecycle hooks.
//
// # Core Concepts
//
// The statum programming model is intentionally small:
//
//  1. Variant
//  2. Class
//  3. Stateful
//  4. Observer
//
// # Variant
//
// A Variant is a type-level tag declaring one mode of behavior: named
// members plus enter/exit hooks. Variants are built once with NewVariant
// and are never instantiated; they may specialize one another with Extends,
// and a member redeclared in a specialization overrides the base's.
//
//	weekend := statum.NewVariant("Weekend").
//	    Method("Day", func(owner any, args ...any) (any, error) {
//	        return "play harder", nil
//	    }).
//	    Build()
//
// # Class
//
// A Class registers a host type: the variants it declares as its own, the
// external variants attached to it, an optional parent class, and an
// optional explicit default. Registration resolves the default initial
// variant once, searching the class's own declarations first and then its
// ancestors nearest-first, with redeclared names shadowing base ones.
//
//	var personClass = statum.NewClass("Person").
//	    Declare(workday).
//	    Attach(weekend).
//	    MustRegister()
//
// # Stateful
//
// Host structs embed statum.Stateful and call Class.Init at the end of
// their constructor. Each instance then tracks exactly one current
// variant. Switch changes it, running the old variant's exit hook and the
// new one's enter hook; Resolve, Call, and Get look attribute names up on
// the instance first and fall back to the current variant's chain, binding
// callables to the instance on the way out.
//
//	p, _ := NewPerson("a")
//	p.Current()              // workday
//	p.Switch(weekend, true)  // exit workday, enter weekend
//	p.Call("Day")            // "play harder"
//
// # Observer
//
// Observers receive init, switch, and resolve events per class. Ready-made
// implementations cover structured logging via log/slog and basic counters;
// NewCompositeObserver combines them.
//
// The engine is single-threaded and synchronous: no scheduling, no I/O, no
// locking. Concurrent use of a single instance must be serialized by the
// caller.
//
// Runnable demonstrations live under the examples directory.
package statum
