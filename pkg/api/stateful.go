package api

import (
	"errors"
	"fmt"

	"github.com/petrijr/statum/internal/lookup"
)

// reservedState is the internal current-state attribute name. Resolve never
// forwards it to the variant chain: a miss on this name is always a hard
// no-such-attribute failure.
const reservedState = "__state"

// Owner is satisfied by any struct that embeds Stateful. The interface is
// sealed: its one method has an unexported name, so embedding is the only
// way to implement it.
type Owner interface {
	stateful() *Stateful
}

// Stateful is the per-instance state handle. Embed it in a host struct and
// call Class.Init at the end of the constructor:
//
//	type Person struct {
//	    statum.Stateful
//	    Name string
//	}
//
// After Init, the instance tracks exactly one current variant, switchable
// with Switch or SetState, and resolves unknown attribute names against the
// current variant with Resolve, Call, and Get.
//
// Stateful provides no locking: concurrent switches or resolutions against
// the same instance are a data race the caller must serialize.
type Stateful struct {
	id      string
	class   *Class
	owner   any
	current *Variant
}

func (s *Stateful) stateful() *Stateful { return s }

// ID returns the instance identifier assigned at Init, used in observer
// events and structured logs.
func (s *Stateful) ID() string { return s.id }

// Class returns the class that initialized the instance, or nil before
// Init.
func (s *Stateful) Class() *Class { return s.class }

// Current returns the instance's current variant. It is never nil once
// Init has succeeded.
func (s *Stateful) Current() *Variant { return s.current }

func (s *Stateful) initialized() error {
	if s.class == nil {
		return fmt.Errorf("statum: instance not initialized; call Class.Init from the constructor")
	}
	return nil
}

// Switch changes the current variant to v.
//
// With force false, switching to the variant that is already current (by
// identity) is a no-op: neither hook runs. Otherwise the current variant's
// exit hook runs, v becomes current, and v's enter hook runs, in that
// order. A hook error propagates with no rollback: an exit error leaves
// the previous variant current, an enter error leaves v current.
func (s *Stateful) Switch(v *Variant, force bool) error {
	if err := s.initialized(); err != nil {
		return err
	}
	if err := s.class.checkCurrent(v); err != nil {
		return err
	}
	if !force && v == s.current {
		return nil
	}

	from := s.current
	if err := from.Exit(s.owner); err != nil {
		return err
	}
	s.current = v
	s.class.observer.OnSwitch(s, from, v, force)
	return v.Enter(s.owner)
}

// SetState is sugar for a forced Switch.
func (s *Stateful) SetState(v *Variant) error {
	return s.Switch(v, true)
}

// Resolve looks name up on behalf of the instance:
//
//  1. Ordinary lookup first: the owner's own exported methods and fields,
//     found by reflection. Methods come back receiver-bound.
//  2. The class's fallback resolver, if any. A clean no-such-attribute
//     miss for exactly this class and name falls through; any other error
//     propagates unmodified.
//  3. The current variant's specialization chain, most derived first. The
//     first member found wins and is bound per its kind: Methods and
//     VariantFuncs as BoundMethod, Properties evaluated, plain values
//     returned as-is.
//
// If nothing matches, Resolve fails with an AttributeError carrying the
// same message ordinary lookup would have produced, so a delegated miss is
// indistinguishable from a native one. Nothing on the instance is mutated
// by a failed resolution.
func (s *Stateful) Resolve(name string) (any, error) {
	if err := s.initialized(); err != nil {
		return nil, err
	}
	val, err := s.resolve(name)
	s.class.observer.OnResolve(s, name, err)
	return val, err
}

func (s *Stateful) resolve(name string) (any, error) {
	if val, ok := lookup.Attr(s.owner, name); ok {
		if t, isThunk := val.(lookup.Thunk); isThunk {
			return BoundMethod(t), nil
		}
		return val, nil
	}

	if fb := s.class.fallback; fb != nil {
		val, err := fb(s.owner, name)
		if err == nil {
			return val, nil
		}
		var ae *AttributeError
		if !errors.As(err, &ae) || ae.Class != s.class.name || ae.Name != name {
			return nil, err
		}
		// Clean miss from the fallback: keep searching.
	}

	if name != reservedState {
		if m, declaring, ok := s.current.find(name); ok {
			return m.bind(s.owner, declaring)
		}
	}

	return nil, &AttributeError{Class: s.class.name, Name: name}
}

// Call resolves name and invokes it with args. The resolved attribute must
// be callable: a BoundMethod from the variant chain or an owner method
// found by ordinary lookup.
func (s *Stateful) Call(name string, args ...any) (any, error) {
	val, err := s.Resolve(name)
	if err != nil {
		return nil, err
	}
	switch fn := val.(type) {
	case BoundMethod:
		return fn(args...)
	case Func:
		return fn(args...)
	case func(...any) (any, error):
		return fn(args...)
	}
	return nil, fmt.Errorf("statum: attribute %q of '%s' is not callable", name, s.class.name)
}

// Get is Resolve under the name host languages use for attribute reads.
func (s *Stateful) Get(name string) (any, error) {
	return s.Resolve(name)
}

// Free-function forms, for callers that prefer the operation-style surface
// over methods on the embedded handle.

// Switch changes o's current variant to v. See Stateful.Switch.
func Switch(o Owner, v *Variant, force bool) error {
	return o.stateful().Switch(v, force)
}

// Current returns o's current variant.
func Current(o Owner) *Variant {
	return o.stateful().Current()
}

// Resolve looks name up on behalf of o. See Stateful.Resolve.
func Resolve(o Owner, name string) (any, error) {
	return o.stateful().Resolve(name)
}

// Call resolves name on o and invokes it with args.
func Call(o Owner, name string, args ...any) (any, error) {
	return o.stateful().Call(name, args...)
}
