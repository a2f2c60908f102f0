package cssom

import "strings"

// Property is a raw value for a style property, e.g. "15px".
type Property string

// NullStyle is the empty property value.
const NullStyle Property = ""

// String returns the property value as text.
func (p Property) String() string {
	return string(p)
}

// IsEmpty is true for NullStyle and for values consisting of whitespace only.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
	String() string         // CSS text of the stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string         // the prelude / selectors of the rule
	SelectorGroup() []string  // the individual selectors of the prelude
	Properties() []string     // property keys, e.g. "margin-top"
	Value(string) Property    // property value for key, e.g. "15px"
	IsImportant(string) bool  // is property key marked as important?
}

// Lookup searches the rules of a stylesheet for a rule with a given selector
// and returns the value of a property from the last such rule declaring it.
// This is not cascading: selectors are compared textually and specificity is
// not taken into account.
func Lookup(sheet StyleSheet, sel string, key string) (Property, bool) {
	if sheet == nil {
		return NullStyle, false
	}
	value, found := NullStyle, false
	for _, r := range sheet.Rules() {
		if !hasSelector(r, sel) {
			continue
		}
		for _, p := range r.Properties() {
			if p == key {
				value, found = r.Value(key), true
				break
			}
		}
	}
	tracer().Debugf("lookup %s { %s } = %q, found=%v", sel, key, value, found)
	return value, found
}

func hasSelector(r Rule, sel string) bool {
	for _, s := range r.SelectorGroup() {
		if s == sel {
			return true
		}
	}
	return false
}
