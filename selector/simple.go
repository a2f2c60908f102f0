package selector

import (
	"strings"

	"github.com/npillmayer/cssbuilder/maybe"
	"github.com/npillmayer/cssbuilder/persistent/vector"
)

// Simple is a simple selector, i.e. a sequence of fragments without combinators.
// The zero value is an empty simple selector, rendering as DefaultElement.
//
// Simple is immutable. All operations which add a fragment return a new selector.
type Simple struct {
	element       maybe.Maybe[string]
	id            maybe.Maybe[string]
	classes       vector.Vector[string]
	attributes    vector.Vector[string]
	pseudoClasses vector.Vector[string]
	pseudoElement maybe.Maybe[string]
}

func (s Simple) isSelector() {}

// Kind returns SimpleKind.
func (s Simple) Kind() Kind {
	return SimpleKind
}

// Element returns the element name, if set.
func (s Simple) Element() maybe.Maybe[string] {
	return s.element
}

// ID returns the id, if set.
func (s Simple) ID() maybe.Maybe[string] {
	return s.id
}

// Classes returns the classes in order of addition.
func (s Simple) Classes() []string {
	return s.classes.Slice()
}

// Attributes returns the raw attribute expressions in order of addition,
// without enclosing brackets.
func (s Simple) Attributes() []string {
	return s.attributes.Slice()
}

// PseudoClasses returns the pseudo-classes in order of addition.
func (s Simple) PseudoClasses() []string {
	return s.pseudoClasses.Slice()
}

// PseudoElement returns the pseudo-element, if set.
func (s Simple) PseudoElement() maybe.Maybe[string] {
	return s.pseudoElement
}

// Empty is true if no fragment has been added to s.
func (s Simple) Empty() bool {
	return s.frontier() == noCategory
}

// Has is true if s holds at least one fragment of category c.
func (s Simple) Has(c Category) bool {
	switch c {
	case CategoryElement:
		return s.element.IsJust()
	case CategoryID:
		return s.id.IsJust()
	case CategoryClass:
		return s.classes.Len() > 0
	case CategoryAttribute:
		return s.attributes.Len() > 0
	case CategoryPseudoClass:
		return s.pseudoClasses.Len() > 0
	case CategoryPseudoElement:
		return s.pseudoElement.IsJust()
	}
	return false
}

// frontier is the latest category present in s.
func (s Simple) frontier() Category {
	for c := CategoryPseudoElement; c >= CategoryElement; c-- {
		if s.Has(c) {
			return c
		}
	}
	return noCategory
}

// --- Adding fragments ------------------------------------------------------

// With returns a copy of s, extended by a fragment of category c.
//
// If c is a singleton category and s already holds a fragment of category c,
// a *DuplicateCategoryError is returned. If s holds a fragment of a category later
// than c, an *OrderViolationError is returned. In both cases s remains usable, but
// the zero value is returned as the selector.
func (s Simple) With(c Category, value string) (Simple, error) {
	if c.Singleton() && s.Has(c) {
		tracer().Debugf("rejecting second %s %q for selector %q", c, value, s.Stringify())
		return Simple{}, &DuplicateCategoryError{Category: c, Value: value}
	}
	if f := s.frontier(); f > c {
		tracer().Debugf("rejecting %s %q after %s for selector %q", c, value, f, s.Stringify())
		return Simple{}, &OrderViolationError{Category: c, After: f, Value: value}
	}
	switch c {
	case CategoryElement:
		s.element = maybe.Just(value)
	case CategoryID:
		s.id = maybe.Just(value)
	case CategoryClass:
		s.classes = s.classes.Push(value)
	case CategoryAttribute:
		s.attributes = s.attributes.Push(value)
	case CategoryPseudoClass:
		s.pseudoClasses = s.pseudoClasses.Push(value)
	case CategoryPseudoElement:
		s.pseudoElement = maybe.Just(value)
	default:
		panic("selector: unknown fragment category " + c.String())
	}
	return s, nil
}

// WithElement sets the element name, e.g. "div".
func (s Simple) WithElement(value string) (Simple, error) {
	return s.With(CategoryElement, value)
}

// WithID sets the id, given without '#'.
func (s Simple) WithID(value string) (Simple, error) {
	return s.With(CategoryID, value)
}

// WithClass appends a class, given without '.'.
func (s Simple) WithClass(value string) (Simple, error) {
	return s.With(CategoryClass, value)
}

// WithAttribute appends an attribute expression, given without brackets,
// e.g. `href$=".png"`.
func (s Simple) WithAttribute(value string) (Simple, error) {
	return s.With(CategoryAttribute, value)
}

// WithPseudoClass appends a pseudo-class, given without ':'.
func (s Simple) WithPseudoClass(value string) (Simple, error) {
	return s.With(CategoryPseudoClass, value)
}

// WithPseudoElement sets the pseudo-element, given without '::'.
func (s Simple) WithPseudoElement(value string) (Simple, error) {
	return s.With(CategoryPseudoElement, value)
}

// --- Rendering -------------------------------------------------------------

// Stringify renders s as CSS text. Fragments are concatenated in canonical order.
// An empty selector renders as DefaultElement.
func (s Simple) Stringify() string {
	var b strings.Builder
	if element, ok := s.element.Get(); ok {
		b.WriteString(element)
	}
	if id, ok := s.id.Get(); ok {
		b.WriteByte('#')
		b.WriteString(id)
	}
	if s.classes.Len() > 0 {
		b.WriteByte('.')
		b.WriteString(strings.Join(s.classes.Slice(), "."))
	}
	s.attributes.Each(func(_ int, attr string) {
		b.WriteByte('[')
		b.WriteString(attr)
		b.WriteByte(']')
	})
	if s.pseudoClasses.Len() > 0 {
		b.WriteByte(':')
		b.WriteString(strings.Join(s.pseudoClasses.Slice(), ":"))
	}
	if pe, ok := s.pseudoElement.Get(); ok {
		b.WriteString("::")
		b.WriteString(pe)
	}
	if b.Len() == 0 {
		return DefaultElement
	}
	return b.String()
}

func (s Simple) String() string {
	return s.Stringify()
}
