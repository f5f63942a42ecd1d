package api

import (
	"errors"
	"fmt"
)

// InstantiationError reports an attempt to use a variant that was never
// built. Variants are type tags: the only valid way to produce one is
// NewVariant(...).Build(), and a zero value or hand-assembled Variant is
// rejected wherever the engine receives it.
type InstantiationError struct {
	Variant string
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("cannot instantiate '%s' object", e.Variant)
}

// IsInstantiationRejected returns (variantName, true) if err reports a
// rejected variant construction.
func IsInstantiationRejected(err error) (string, bool) {
	var ie *InstantiationError
	if errors.As(err, &ie) {
		return ie.Variant, true
	}
	return "", false
}

// AmbiguousDefaultError is returned by class registration when more than
// one visible variant is marked default.
type AmbiguousDefaultError struct {
	Class      string
	Candidates []string
}

func (e *AmbiguousDefaultError) Error() string {
	return fmt.Sprintf("%s has more than one default state: %v", e.Class, e.Candidates)
}

// IsAmbiguousDefault returns the candidate variant names and true if err
// reports an ambiguous default at registration.
func IsAmbiguousDefault(err error) ([]string, bool) {
	var ae *AmbiguousDefaultError
	if errors.As(err, &ae) {
		return ae.Candidates, true
	}
	return nil, false
}

// MissingDefaultError is returned by Class.Init when the instance supplies
// no initial variant and the class resolved no default.
type MissingDefaultError struct {
	Class string
}

func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf("%s's default state is not found; set an initial variant for every instance", e.Class)
}

// IsMissingDefault returns (className, true) if err reports a missing
// default state.
func IsMissingDefault(err error) (string, bool) {
	var me *MissingDefaultError
	if errors.As(err, &me) {
		return me.Class, true
	}
	return "", false
}

// AttributeError reports that a name could not be resolved on an instance,
// neither by ordinary lookup nor by delegation to the current variant.
//
// The message format is fixed so that a delegated miss is indistinguishable
// from a native one; composed fallback resolvers rely on this to decide
// whether to keep searching (see FallbackFunc).
type AttributeError struct {
	Class string
	Name  string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("'%s' object has no attribute '%s'", e.Class, e.Name)
}

// NewAttributeError builds the canonical no-such-attribute error for the
// given class and attribute name. Fallback resolvers should return exactly
// this to signal a clean miss.
func NewAttributeError(class, name string) error {
	return &AttributeError{Class: class, Name: name}
}

// IsNoAttribute returns (className, attrName, true) if err is a
// no-such-attribute condition.
func IsNoAttribute(err error) (string, string, bool) {
	var ae *AttributeError
	if errors.As(err, &ae) {
		return ae.Class, ae.Name, true
	}
	return "", "", false
}

// UnknownVariantError reports an attempt to make a variant current on an
// instance whose class cannot see it (not declared, inherited, or attached).
type UnknownVariantError struct {
	Class   string
	Variant string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("'%s' is not a state of '%s'", e.Variant, e.Class)
}

// IsUnknownVariant returns (className, variantName, true) if err reports a
// variant outside the class's visible set.
func IsUnknownVariant(err error) (string, string, bool) {
	var ue *UnknownVariantError
	if errors.As(err, &ue) {
		return ue.Class, ue.Variant, true
	}
	return "", "", false
}
