package api

import "fmt"

// Variant is a type-level tag describing one mode of behavior for a host
// instance. Variants carry named members and enter/exit lifecycle hooks but
// are never values themselves: the only way to obtain a usable Variant is
// through NewVariant and Build, which seals it. The engine rejects any
// variant that did not go through that path with an InstantiationError.
//
// Variants are compared by pointer identity everywhere in the engine.
type Variant struct {
	name    string
	base    *Variant
	members map[string]Member
	enter   Hook
	exit    Hook
	def     bool
	sealed  bool
}

// Name returns the variant's declared name.
func (v *Variant) Name() string { return v.name }

func (v *Variant) String() string { return v.name }

// Base returns the variant this one specializes, or nil.
func (v *Variant) Base() *Variant { return v.base }

// IsDefault reports whether the variant carries its own default marker.
// The marker is not inherited from the base variant.
func (v *Variant) IsDefault() bool { return v.def }

// Member looks name up along the variant's specialization chain, most
// derived first, and returns the first member declared under it.
func (v *Variant) Member(name string) (Member, bool) {
	for s := v; s != nil; s = s.base {
		if m, ok := s.members[name]; ok {
			return m, true
		}
	}
	return Member{}, false
}

// find is like Member but also reports the variant the member was found on,
// which bind needs for variant-scoped callables.
func (v *Variant) find(name string) (Member, *Variant, bool) {
	for s := v; s != nil; s = s.base {
		if m, ok := s.members[name]; ok {
			return m, s, true
		}
	}
	return Member{}, nil, false
}

// Enter runs the nearest enter hook along the specialization chain. Only
// that one hook runs; an overriding hook that wants the base behavior must
// call v.Base().Enter(owner) itself.
func (v *Variant) Enter(owner any) error {
	for s := v; s != nil; s = s.base {
		if s.enter != nil {
			return s.enter(owner)
		}
	}
	return nil
}

// Exit runs the nearest exit hook along the specialization chain, with the
// same no-automatic-chaining rule as Enter.
func (v *Variant) Exit(owner any) error {
	for s := v; s != nil; s = s.base {
		if s.exit != nil {
			return s.exit(owner)
		}
	}
	return nil
}

// checkVariant rejects variants that were not produced by the builder.
func checkVariant(v *Variant) error {
	if v == nil {
		return fmt.Errorf("statum: nil variant")
	}
	if !v.sealed {
		return &InstantiationError{Variant: v.name}
	}
	return nil
}

// VariantBuilder declares a variant: its name, base, members, hooks, and
// default marker. Build seals the result; a builder must not be reused.
//
//	workday := api.NewVariant("Workday").
//	    Default().
//	    Method("Day", func(owner any, args ...any) (any, error) {
//	        return "work", nil
//	    }).
//	    Build()
//
// Builder methods panic on programmer errors (empty names, nil callables,
// duplicate members, reuse after Build).
type VariantBuilder struct {
	v     *Variant
	built bool
}

// NewVariant starts the declaration of a variant with the given name.
func NewVariant(name string) *VariantBuilder {
	if name == "" {
		panic("statum: variant name must not be empty")
	}
	return &VariantBuilder{
		v: &Variant{
			name:    name,
			members: make(map[string]Member),
		},
	}
}

func (b *VariantBuilder) mutable() *Variant {
	if b.built {
		panic(fmt.Sprintf("statum: variant %q already built", b.v.name))
	}
	return b.v
}

// Extends declares base as the variant this one specializes. Members and
// hooks not redeclared here are inherited from base.
func (b *VariantBuilder) Extends(base *Variant) *VariantBuilder {
	if err := checkVariant(base); err != nil {
		panic(fmt.Sprintf("statum: variant %q extends invalid base: %v", b.v.name, err))
	}
	b.mutable().base = base
	return b
}

// Default marks this variant as its host class's default initial state.
func (b *VariantBuilder) Default() *VariantBuilder {
	b.mutable().def = true
	return b
}

// OnEnter sets the hook called after the variant becomes current.
func (b *VariantBuilder) OnEnter(h Hook) *VariantBuilder {
	if h == nil {
		panic(fmt.Sprintf("statum: variant %q has nil enter hook", b.v.name))
	}
	b.mutable().enter = h
	return b
}

// OnExit sets the hook called immediately before the variant stops being
// current.
func (b *VariantBuilder) OnExit(h Hook) *VariantBuilder {
	if h == nil {
		panic(fmt.Sprintf("statum: variant %q has nil exit hook", b.v.name))
	}
	b.mutable().exit = h
	return b
}

func (b *VariantBuilder) add(m Member) *VariantBuilder {
	v := b.mutable()
	if m.name == "" {
		panic(fmt.Sprintf("statum: variant %q has member with empty name", v.name))
	}
	if _, dup := v.members[m.name]; dup {
		panic(fmt.Sprintf("statum: variant %q redeclares member %q", v.name, m.name))
	}
	v.members[m.name] = m
	return b
}

// Method declares an owner-taking callable member.
func (b *VariantBuilder) Method(name string, fn Method) *VariantBuilder {
	if fn == nil {
		panic(fmt.Sprintf("statum: variant %q method %q is nil", b.v.name, name))
	}
	return b.add(Member{name: name, kind: KindMethod, method: fn})
}

// VariantFunc declares a variant-scoped callable member.
func (b *VariantBuilder) VariantFunc(name string, fn VariantFunc) *VariantBuilder {
	if fn == nil {
		panic(fmt.Sprintf("statum: variant %q variantfunc %q is nil", b.v.name, name))
	}
	return b.add(Member{name: name, kind: KindVariantFunc, variantFn: fn})
}

// Func declares a no-owner callable member.
func (b *VariantBuilder) Func(name string, fn Func) *VariantBuilder {
	if fn == nil {
		panic(fmt.Sprintf("statum: variant %q func %q is nil", b.v.name, name))
	}
	return b.add(Member{name: name, kind: KindFunc, fn: fn})
}

// Property declares a computed member evaluated against the owner on every
// delegated access.
func (b *VariantBuilder) Property(name string, fn Property) *VariantBuilder {
	if fn == nil {
		panic(fmt.Sprintf("statum: variant %q property %q is nil", b.v.name, name))
	}
	return b.add(Member{name: name, kind: KindProperty, prop: fn})
}

// Value declares a plain value member, returned unbound on access.
func (b *VariantBuilder) Value(name string, value any) *VariantBuilder {
	return b.add(Member{name: name, kind: KindValue, value: value})
}

// Member declares a member taken from another variant, keeping its kind and
// callable. Useful to share one behavior between unrelated variants:
//
//	process, _ := a.Member("Process")
//	b := api.NewVariant("B").Member(process).Build()
func (b *VariantBuilder) Member(m Member) *VariantBuilder {
	return b.add(m)
}

// Build seals the declaration and returns the variant tag.
func (b *VariantBuilder) Build() *Variant {
	v := b.mutable()
	b.built = true
	v.sealed = true
	return v
}
