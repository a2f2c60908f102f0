package selector

import (
	"github.com/npillmayer/cssbuilder/result"
)

// Builder chains fragment additions to a simple selector. It carries either the
// selector built so far or the first error of the chain. Once a chain failed, further
// additions are no-ops and the error is reported by Selector, Err and Stringify.
//
// The zero value is a builder for an empty simple selector. Builders are values;
// deriving a new builder leaves the old one untouched.
type Builder struct {
	r result.Result[Simple]
}

// New returns a builder for an empty simple selector.
func New() Builder {
	return Builder{r: result.Ok(Simple{})}
}

// From returns a builder continuing the lineage of s.
func From(s Simple) Builder {
	return Builder{r: result.Ok(s)}
}

// Element starts a new selector with an element name.
func Element(value string) Builder {
	return New().Element(value)
}

// ID starts a new selector with an id.
func ID(value string) Builder {
	return New().ID(value)
}

// Class starts a new selector with a class.
func Class(value string) Builder {
	return New().Class(value)
}

// Attr starts a new selector with an attribute expression.
func Attr(value string) Builder {
	return New().Attr(value)
}

// PseudoClass starts a new selector with a pseudo-class.
func PseudoClass(value string) Builder {
	return New().PseudoClass(value)
}

// PseudoElement starts a new selector with a pseudo-element.
func PseudoElement(value string) Builder {
	return New().PseudoElement(value)
}

func (b Builder) add(c Category, value string) Builder {
	return Builder{r: result.AndThen(b.r, func(s Simple) result.Result[Simple] {
		next, err := s.With(c, value)
		return result.Of(next, err)
	})}
}

// Element adds an element name. See Simple.WithElement.
func (b Builder) Element(value string) Builder {
	return b.add(CategoryElement, value)
}

// ID adds an id. See Simple.WithID.
func (b Builder) ID(value string) Builder {
	return b.add(CategoryID, value)
}

// Class appends a class. See Simple.WithClass.
func (b Builder) Class(value string) Builder {
	return b.add(CategoryClass, value)
}

// Attr appends an attribute expression. See Simple.WithAttribute.
func (b Builder) Attr(value string) Builder {
	return b.add(CategoryAttribute, value)
}

// PseudoClass appends a pseudo-class. See Simple.WithPseudoClass.
func (b Builder) PseudoClass(value string) Builder {
	return b.add(CategoryPseudoClass, value)
}

// PseudoElement adds a pseudo-element. See Simple.WithPseudoElement.
func (b Builder) PseudoElement(value string) Builder {
	return b.add(CategoryPseudoElement, value)
}

// Selector returns the selector built, or the first error of the chain.
func (b Builder) Selector() (Simple, error) {
	return b.r.Get()
}

// Result returns the outcome of the chain as a Result.
func (b Builder) Result() result.Result[Simple] {
	return b.r
}

// Err returns the first error of the chain, or nil.
func (b Builder) Err() error {
	return b.r.Error()
}

// Stringify renders the selector built. See Simple.Stringify.
func (b Builder) Stringify() (string, error) {
	s, err := b.r.Get()
	if err != nil {
		return "", err
	}
	return s.Stringify(), nil
}

// Must returns the selector built by b. It panics if the chain failed.
// It is intended for selectors built from constants.
func Must(b Builder) Simple {
	s, err := b.r.Get()
	if err != nil {
		panic("selector: " + err.Error())
	}
	return s
}
