package api

import (
	"fmt"

	"github.com/google/uuid"
)

// FallbackFunc is a caller-supplied attribute resolver consulted before the
// variant chain. It plays the role a pre-existing dynamic resolver would
// have had on the host before registration.
//
// To signal "I don't have this name, keep searching", a fallback must
// return exactly NewAttributeError(className, name) for the class and name
// it was asked about. Any other error stops resolution and propagates to
// the caller unmodified.
type FallbackFunc func(owner any, name string) (any, error)

// Class is the registration record of a host type: its declared and
// attached variants, its resolved default, its parent, and per-class
// resolution configuration. A Class is immutable once registered.
type Class struct {
	name     string
	parent   *Class
	declared []*Variant
	attached []*Variant
	def      *Variant
	fallback FallbackFunc
	observer Observer

	// visible maps every variant name the class can see (own declarations
	// shadow inherited ones, attachments shadow both) to the winning
	// variant. names keeps a deterministic iteration order.
	visible map[string]*Variant
	names   []string
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

func (c *Class) String() string { return c.name }

// Parent returns the class this one extends, or nil.
func (c *Class) Parent() *Class { return c.parent }

// Default returns the variant resolved as the class's default initial
// state, or nil if the class has none.
func (c *Class) Default() *Variant { return c.def }

// Variant returns the variant visible to the class under name. Shadowed
// base declarations are not reachable this way.
func (c *Class) Variant(name string) (*Variant, bool) {
	v, ok := c.visible[name]
	return v, ok
}

// Variants returns every variant visible to the class, parents first, in
// declaration order.
func (c *Class) Variants() []*Variant {
	out := make([]*Variant, 0, len(c.names))
	for _, n := range c.names {
		out = append(out, c.visible[n])
	}
	return out
}

// checkCurrent enforces the visibility invariant: a variant may only become
// current on an instance if its class can see it.
func (c *Class) checkCurrent(v *Variant) error {
	if err := checkVariant(v); err != nil {
		return err
	}
	if c.visible[v.name] != v {
		return &UnknownVariantError{Class: c.name, Variant: v.name}
	}
	return nil
}

// InitOption configures Class.Init.
type InitOption func(*initConfig)

type initConfig struct {
	initial *Variant
}

// WithInitial overrides the class default for this one instance. The
// variant must still be visible to the class.
func WithInitial(v *Variant) InitOption {
	return func(cfg *initConfig) { cfg.initial = v }
}

// Init attaches the instance to the class and establishes its initial
// state. It is meant to be the last call in the owner's constructor, after
// all user-supplied construction logic has run:
//
//	func NewPerson(name string) (*Person, error) {
//	    p := &Person{Name: name}
//	    if err := personClass.Init(p); err != nil {
//	        return nil, err
//	    }
//	    return p, nil
//	}
//
// The initial variant is the WithInitial override if given, else the class
// default; with neither, Init fails with a MissingDefaultError. The initial
// variant's enter hook runs with no paired exit, since there is no prior
// state. An enter hook error propagates with the state already assigned.
func (c *Class) Init(owner Owner, opts ...InitOption) error {
	st := owner.stateful()
	if st.class != nil {
		return fmt.Errorf("statum: instance of '%s' already initialized", st.class.name)
	}

	var cfg initConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	initial := cfg.initial
	if initial == nil {
		initial = c.def
	}
	if initial == nil {
		return &MissingDefaultError{Class: c.name}
	}
	if err := c.checkCurrent(initial); err != nil {
		return err
	}

	st.id = uuid.NewString()
	st.class = c
	st.owner = owner
	st.current = initial
	c.observer.OnInit(st, initial)
	return initial.Enter(owner)
}

// MustInit is like Init but panics on error. Useful in constructors that
// cannot fail for other reasons.
func (c *Class) MustInit(owner Owner, opts ...InitOption) {
	if err := c.Init(owner, opts...); err != nil {
		panic(err)
	}
}

// ClassBuilder registers a host type with the engine:
//
//	personClass := api.NewClass("Person").
//	    Declare(workday).
//	    Attach(weekend).
//	    MustRegister()
//
// Declare adds a variant as the class's own nested declaration; Declare
// order is the order default resolution scans. Attach adds an externally
// declared, shareable variant. Extends links the parent class, making its
// visible variants (minus any shadowed by name here) visible to this class.
//
// Register resolves the class default:
//
//  1. Default-marked variants among this class's own declarations are
//     candidates.
//  2. An explicit WithDefault variant is a candidate.
//  3. With no candidates so far, ancestors are searched nearest first, one
//     level at a time, skipping any variant name already seen (an
//     overriding declaration suppresses the base one); the first level
//     yielding candidates ends the search.
//  4. More than one candidate is an AmbiguousDefaultError; exactly one is
//     the class default; none means instances must pass WithInitial.
type ClassBuilder struct {
	c          *Class
	explicit   *Variant
	registered bool
}

// NewClass starts the registration of a host class with the given name.
// The name appears in every error message concerning the class, so it
// should match the Go type it describes.
func NewClass(name string) *ClassBuilder {
	if name == "" {
		panic("statum: class name must not be empty")
	}
	return &ClassBuilder{
		c: &Class{
			name:    name,
			visible: make(map[string]*Variant),
		},
	}
}

func (b *ClassBuilder) mutable() *Class {
	if b.registered {
		panic(fmt.Sprintf("statum: class %q already registered", b.c.name))
	}
	return b.c
}

// Extends declares parent as the class this one specializes.
func (b *ClassBuilder) Extends(parent *Class) *ClassBuilder {
	if parent == nil {
		panic(fmt.Sprintf("statum: class %q extends nil class", b.c.name))
	}
	b.mutable().parent = parent
	return b
}

// Declare adds a variant as one of the class's own nested declarations.
func (b *ClassBuilder) Declare(v ...*Variant) *ClassBuilder {
	c := b.mutable()
	for _, d := range v {
		if d == nil {
			panic(fmt.Sprintf("statum: class %q declares nil variant", c.name))
		}
		for _, have := range c.declared {
			if have.name == d.name {
				panic(fmt.Sprintf("statum: class %q declares variant %q twice", c.name, d.name))
			}
		}
		c.declared = append(c.declared, d)
	}
	return b
}

// Attach adds externally declared variants, exposing them on the class
// under their own names.
func (b *ClassBuilder) Attach(v ...*Variant) *ClassBuilder {
	c := b.mutable()
	for _, a := range v {
		if a == nil {
			panic(fmt.Sprintf("statum: class %q attaches nil variant", c.name))
		}
		c.attached = append(c.attached, a)
	}
	return b
}

// WithDefault supplies an explicit default variant. It must be visible to
// the class once registered, or registration fails.
func (b *ClassBuilder) WithDefault(v *Variant) *ClassBuilder {
	if v == nil {
		panic(fmt.Sprintf("statum: class %q has nil explicit default", b.c.name))
	}
	b.mutable()
	b.explicit = v
	return b
}

// WithFallback installs a resolver consulted after ordinary lookup and
// before the variant chain. See FallbackFunc for the fall-through contract.
func (b *ClassBuilder) WithFallback(fb FallbackFunc) *ClassBuilder {
	if fb == nil {
		panic(fmt.Sprintf("statum: class %q has nil fallback", b.c.name))
	}
	b.mutable().fallback = fb
	return b
}

// WithObserver attaches an observer notified of init, switch, and resolve
// events on instances of the class.
func (b *ClassBuilder) WithObserver(o Observer) *ClassBuilder {
	b.mutable().observer = o
	return b
}

// Register seals the class, resolves its default, and returns it.
func (b *ClassBuilder) Register() (*Class, error) {
	c := b.mutable()

	for _, v := range c.declared {
		if err := checkVariant(v); err != nil {
			return nil, err
		}
	}
	for _, v := range c.attached {
		if err := checkVariant(v); err != nil {
			return nil, err
		}
	}
	if b.explicit != nil {
		if err := checkVariant(b.explicit); err != nil {
			return nil, err
		}
	}

	// Visibility: parent's view first, then own declarations, then
	// attachments. Later entries shadow earlier ones by name.
	if c.parent != nil {
		for _, n := range c.parent.names {
			c.visible[n] = c.parent.visible[n]
			c.names = append(c.names, n)
		}
	}
	overlay := func(v *Variant) {
		if _, shadowed := c.visible[v.name]; !shadowed {
			c.names = append(c.names, v.name)
		}
		c.visible[v.name] = v
	}
	for _, v := range c.declared {
		overlay(v)
	}
	for _, v := range c.attached {
		overlay(v)
	}

	if b.explicit != nil && c.visible[b.explicit.name] != b.explicit {
		return nil, fmt.Errorf("statum: default variant %q is not visible to class %q",
			b.explicit.name, c.name)
	}

	def, err := resolveDefault(c, b.explicit)
	if err != nil {
		return nil, err
	}
	c.def = def

	if c.observer == nil {
		c.observer = NoopObserver{}
	}

	b.registered = true
	return c, nil
}

// MustRegister is like Register but panics on error. Useful for
// package-level class variables, the declaration-time registration form.
func (b *ClassBuilder) MustRegister() *Class {
	c, err := b.Register()
	if err != nil {
		panic(err)
	}
	return c
}

// resolveDefault runs the default-resolution scan for c. The seen set is
// shared across the class's own declarations and the ancestor walk so an
// overridden name is never counted twice.
func resolveDefault(c *Class, explicit *Variant) (*Variant, error) {
	seen := make(map[string]bool)

	scan := func(declared []*Variant) []*Variant {
		var found []*Variant
		for _, v := range declared {
			if seen[v.name] {
				continue
			}
			seen[v.name] = true
			if v.def {
				found = append(found, v)
			}
		}
		return found
	}

	candidates := scan(c.declared)
	if explicit != nil {
		candidates = append(candidates, explicit)
	}

	if len(candidates) == 0 {
		for p := c.parent; p != nil; p = p.parent {
			candidates = scan(p.declared)
			if len(candidates) > 0 {
				break
			}
		}
	}

	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return candidates[0], nil
	default:
		names := make([]string, len(candidates))
		for i, v := range candidates {
			names[i] = v.name
		}
		return nil, &AmbiguousDefaultError{Class: c.name, Candidates: names}
	}
}
