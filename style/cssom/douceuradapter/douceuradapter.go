/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

Rules are created from selectors of package selector and carry property declarations.
Stylesheets are rendered to CSS text and parsed from it by
https://github.com/aymerick/douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cssbuilder/selector"
	"github.com/npillmayer/cssbuilder/style/cssom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbuilder.style'.
func tracer() tracing.Trace {
	return tracing.Select("cssbuilder.style")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// NewSheet creates an empty stylesheet.
func NewSheet() *CSSStyles {
	return Wrap(css.NewStylesheet())
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse reads a stylesheet from CSS text.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		tracer().Errorf("cannot parse stylesheet: %v", err)
		return nil, fmt.Errorf("douceuradapter: cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// Add appends rules to the stylesheet. It returns the stylesheet to allow for chaining.
func (sheet *CSSStyles) Add(rules ...Rule) *CSSStyles {
	for _, r := range rules {
		r := css.Rule(r)
		sheet.css.Rules = append(sheet.css.Rules, &r)
	}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() { // foreign implementation: copy rule by rule
		nr := NewRuleFromText(r.SelectorGroup()...)
		for _, key := range r.Properties() {
			nr = nr.declare(key, r.Value(key), r.IsImportant(key))
		}
		sheet.Add(nr)
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		rules[i] = Rule(*r)
	}
	return rules
}

// String renders the stylesheet as CSS text.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

var _ cssom.StyleSheet = &CSSStyles{}

// --- Rules -----------------------------------------------------------------

// Rule is an adapter for interface cssom.Rule.
//
// Rules are values: Declare returns a new rule and leaves the receiver unchanged.
type Rule css.Rule

// NewRule creates a rule without declarations for a group of selectors.
// The selectors are rendered with their Stringify method.
func NewRule(sels ...selector.Selector) Rule {
	texts := make([]string, 0, len(sels))
	for _, s := range sels {
		if s == nil {
			continue
		}
		texts = append(texts, s.Stringify())
	}
	return NewRuleFromText(texts...)
}

// NewRuleFromText creates a rule for a group of selectors given as text.
func NewRuleFromText(sels ...string) Rule {
	r := css.NewRule(css.QualifiedRule)
	r.Selectors = append([]string{}, sels...)
	r.Prelude = strings.Join(sels, ", ")
	return Rule(*r)
}

// Declare returns a copy of r with an additional declaration, e.g.
//
//     rule.Declare("margin-top", "15px")
//
func (r Rule) Declare(key string, value cssom.Property) Rule {
	return r.declare(key, value, false)
}

// DeclareImportant is like Declare, with the declaration marked as "!important".
func (r Rule) DeclareImportant(key string, value cssom.Property) Rule {
	return r.declare(key, value, true)
}

func (r Rule) declare(key string, value cssom.Property, important bool) Rule {
	decl := css.NewDeclaration()
	decl.Property = key
	decl.Value = string(value)
	decl.Important = important
	decls := make([]*css.Declaration, len(r.Declarations), len(r.Declarations)+1)
	copy(decls, r.Declarations)
	r.Declarations = append(decls, decl)
	return r
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// SelectorGroup returns the individual selectors of the rule.
func (r Rule) SelectorGroup() []string {
	return append([]string{}, r.Selectors...)
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) cssom.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return cssom.Property(d.Value)
		}
	}
	return cssom.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

// Rule returns the underlying douceur rule.
func (r Rule) Rule() *css.Rule {
	cr := css.Rule(r)
	return &cr
}

// String renders the rule as CSS text.
func (r Rule) String() string {
	return r.Rule().String()
}

var _ cssom.Rule = &Rule{}
