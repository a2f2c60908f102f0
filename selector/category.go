package selector

import "fmt"

// Category is the kind of a selector fragment. Categories are ordered: fragments of
// a simple selector have to be added in ascending order of their categories.
type Category int8

// Fragment categories, in canonical order.
const (
	CategoryElement Category = iota
	CategoryID
	CategoryClass
	CategoryAttribute
	CategoryPseudoClass
	CategoryPseudoElement
)

// noCategory is the frontier of an empty simple selector.
const noCategory Category = -1

var categoryNames = [...]string{
	"element",
	"id",
	"class",
	"attribute",
	"pseudo-class",
	"pseudo-element",
}

func (c Category) String() string {
	if c < CategoryElement || c > CategoryPseudoElement {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Singleton is true for categories which may occur at most once in a simple selector,
// i.e. element, id and pseudo-element.
func (c Category) Singleton() bool {
	return c == CategoryElement || c == CategoryID || c == CategoryPseudoElement
}

// Categories returns all fragment categories in canonical order.
func Categories() []Category {
	return []Category{
		CategoryElement,
		CategoryID,
		CategoryClass,
		CategoryAttribute,
		CategoryPseudoClass,
		CategoryPseudoElement,
	}
}
