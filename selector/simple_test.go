package selector_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/cssbuilder/selector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var fragmentValues = map[selector.Category]string{
	selector.CategoryElement:       "a",
	selector.CategoryID:            "main",
	selector.CategoryClass:         "nav",
	selector.CategoryAttribute:     `href$=".png"`,
	selector.CategoryPseudoClass:   "focus",
	selector.CategoryPseudoElement: "after",
}

var fragmentRendering = map[selector.Category]string{
	selector.CategoryElement:       "a",
	selector.CategoryID:            "#main",
	selector.CategoryClass:         ".nav",
	selector.CategoryAttribute:     `[href$=".png"]`,
	selector.CategoryPseudoClass:   ":focus",
	selector.CategoryPseudoElement: "::after",
}

func TestEmptySelectorIsDiv(t *testing.T) {
	var s selector.Simple
	if s.Stringify() != "div" {
		t.Errorf("expected empty selector to render as div, is %q", s.Stringify())
	}
	if !s.Empty() {
		t.Error("expected zero value of Simple to be empty")
	}
	if str, err := selector.New().Stringify(); err != nil || str != "div" {
		t.Errorf("expected empty builder to render as div, is %q (%v)", str, err)
	}
}

// Every subset of categories, added in canonical order, renders as the concatenation
// of the renderings of its fragments.
func TestCanonicalOrderSubsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbuilder.selector")
	defer teardown()
	//
	cats := selector.Categories()
	for mask := 1; mask < 1<<len(cats); mask++ {
		var s selector.Simple
		var err error
		expected := ""
		for i, c := range cats {
			if mask&(1<<i) == 0 {
				continue
			}
			s, err = s.With(c, fragmentValues[c])
			if err != nil {
				t.Fatalf("subset %06b: unexpected error adding %s: %v", mask, c, err)
			}
			expected += fragmentRendering[c]
		}
		if s.Stringify() != expected {
			t.Errorf("subset %06b: expected %q, got %q", mask, expected, s.Stringify())
		}
	}
}

func TestMultiValuedCategories(t *testing.T) {
	s, err := selector.Simple{}.WithClass("a")
	if err == nil {
		s, err = s.WithClass("b")
	}
	if err == nil {
		s, err = s.WithAttribute("type=text")
	}
	if err == nil {
		s, err = s.WithAttribute("disabled")
	}
	if err == nil {
		s, err = s.WithPseudoClass("first-child")
	}
	if err == nil {
		s, err = s.WithPseudoClass("hover")
	}
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := ".a.b[type=text][disabled]:first-child:hover"
	if s.Stringify() != expected {
		t.Errorf("expected %q, got %q", expected, s.Stringify())
	}
	if fmt.Sprint(s.Classes()) != "[a b]" {
		t.Errorf("expected classes [a b], got %v", s.Classes())
	}
	if len(s.Attributes()) != 2 || s.Attributes()[1] != "disabled" {
		t.Errorf("expected attributes in order of addition, got %v", s.Attributes())
	}
}

func TestDuplicateSingletons(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbuilder.selector")
	defer teardown()
	//
	for _, c := range selector.Categories() {
		s, err := selector.Simple{}.With(c, fragmentValues[c])
		if err != nil {
			t.Fatalf("unexpected error adding %s: %v", c, err)
		}
		_, err = s.With(c, "other")
		if !c.Singleton() {
			if err != nil {
				t.Errorf("expected second %s to be accepted, got %v", c, err)
			}
			continue
		}
		var dup *selector.DuplicateCategoryError
		if !errors.As(err, &dup) {
			t.Errorf("expected second %s to fail with DuplicateCategoryError, got %v", c, err)
			continue
		}
		if dup.Category != c || dup.Value != "other" {
			t.Errorf("expected error to name %s %q, names %s %q", c, "other", dup.Category, dup.Value)
		}
		if !errors.Is(err, selector.ErrInvalidSelector) {
			t.Errorf("expected duplicate error to match ErrInvalidSelector")
		}
	}
}

// Adding any category after a later one fails, for all pairs of categories.
func TestOrderViolations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbuilder.selector")
	defer teardown()
	//
	cats := selector.Categories()
	for i, early := range cats {
		for _, late := range cats[i+1:] {
			s, err := selector.Simple{}.With(late, fragmentValues[late])
			if err != nil {
				t.Fatalf("unexpected error adding %s: %v", late, err)
			}
			_, err = s.With(early, fragmentValues[early])
			var ov *selector.OrderViolationError
			if !errors.As(err, &ov) {
				t.Errorf("expected %s after %s to fail with OrderViolationError, got %v", early, late, err)
				continue
			}
			if ov.Category != early || ov.After != late {
				t.Errorf("expected error for %s after %s, got %s after %s", early, late, ov.Category, ov.After)
			}
			if !errors.Is(err, selector.ErrInvalidSelector) {
				t.Errorf("expected order error to match ErrInvalidSelector")
			}
		}
	}
}

func TestSecondElementIsDuplicateNotOrder(t *testing.T) {
	s, _ := selector.Simple{}.WithElement("div")
	s, _ = s.WithID("x")
	_, err := s.WithID("y")
	var dup *selector.DuplicateCategoryError
	if !errors.As(err, &dup) {
		t.Errorf("expected second id to be a duplicate, got %v", err)
	}
	// element already present and id is later: duplicate check comes first
	_, err = s.WithElement("span")
	if !errors.As(err, &dup) {
		t.Errorf("expected second element to be reported as duplicate, got %v", err)
	}
}

func TestFailedAdditionLeavesSelectorIntact(t *testing.T) {
	s, _ := selector.Simple{}.WithClass("a")
	bad, err := s.WithElement("div")
	if err == nil {
		t.Fatal("expected element after class to fail")
	}
	if !bad.Empty() {
		t.Errorf("expected no partial selector on failure, got %q", bad.Stringify())
	}
	if s.Stringify() != ".a" {
		t.Errorf("expected original selector to remain .a, is %q", s.Stringify())
	}
	s2, err := s.WithClass("b")
	if err != nil || s2.Stringify() != ".a.b" {
		t.Errorf("expected original lineage to stay usable, got %q (%v)", s2.Stringify(), err)
	}
}

func TestNoAliasing(t *testing.T) {
	base, _ := selector.Simple{}.WithClass("base")
	left, _ := base.WithClass("left")
	right, _ := base.WithClass("right")
	leftAttr, _ := left.WithAttribute("x")
	if base.Stringify() != ".base" {
		t.Errorf("expected base to remain .base, is %q", base.Stringify())
	}
	if left.Stringify() != ".base.left" {
		t.Errorf("expected left to be .base.left, is %q", left.Stringify())
	}
	if right.Stringify() != ".base.right" {
		t.Errorf("expected right to be .base.right, is %q", right.Stringify())
	}
	if leftAttr.Stringify() != ".base.left[x]" {
		t.Errorf("expected .base.left[x], is %q", leftAttr.Stringify())
	}
	classes := base.Classes()
	classes[0] = "mutated"
	if base.Stringify() != ".base" {
		t.Errorf("expected Classes to return a copy, base is now %q", base.Stringify())
	}
}

func TestCategoryNames(t *testing.T) {
	if selector.CategoryPseudoElement.String() != "pseudo-element" {
		t.Errorf("unexpected name %q", selector.CategoryPseudoElement.String())
	}
	if selector.Category(42).String() != "Category(42)" {
		t.Errorf("unexpected name %q", selector.Category(42).String())
	}
	if selector.CategoryClass.Singleton() {
		t.Error("expected class not to be a singleton category")
	}
}
