package selector

import (
	"errors"
	"fmt"
)

// ErrInvalidSelector is matched by every error returned for an illegal fragment addition:
//
//     if errors.Is(err, selector.ErrInvalidSelector) { … }
//
var ErrInvalidSelector = errors.New("invalid selector")

// DuplicateCategoryError is returned if an element, id or pseudo-element is added
// to a selector which already has one.
type DuplicateCategoryError struct {
	Category Category // category supplied twice
	Value    string   // rejected fragment value
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("element, id, and pseudo-element must each occur at most once in a selector: duplicate %s %q",
		e.Category, e.Value)
}

// Is makes errors.Is(err, ErrInvalidSelector) hold.
func (e *DuplicateCategoryError) Is(target error) bool {
	return target == ErrInvalidSelector
}

// OrderViolationError is returned if a fragment is added after a fragment of a later
// category.
type OrderViolationError struct {
	Category Category // category of the rejected fragment
	After    Category // latest category already present
	Value    string   // rejected fragment value
}

func (e *OrderViolationError) Error() string {
	return fmt.Sprintf("selector parts must appear in order: element, id, class, attribute, pseudo-class, pseudo-element: %s %q after %s",
		e.Category, e.Value, e.After)
}

// Is makes errors.Is(err, ErrInvalidSelector) hold.
func (e *OrderViolationError) Is(target error) bool {
	return target == ErrInvalidSelector
}
