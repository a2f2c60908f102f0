package selector

import "strings"

// Conventional combinator tokens. Combine accepts any token.
const (
	Descendant = " "
	Child      = ">"
	Adjacent   = "+"
	Sibling    = "~"
)

// Combined is a pair of selectors joined by a combinator.
type Combined struct {
	left       Selector
	combinator string
	right      Selector
}

// Combine joins two selectors with a combinator token. Operands may themselves be
// combined selectors. A nil operand is taken to be an empty simple selector.
// Combine never fails; neither the token nor the operands are checked.
func Combine(left Selector, combinator string, right Selector) Combined {
	if left == nil {
		left = Simple{}
	}
	if right == nil {
		right = Simple{}
	}
	return Combined{left: left, combinator: combinator, right: right}
}

func (c Combined) isSelector() {}

// Kind returns CombinedKind.
func (c Combined) Kind() Kind {
	return CombinedKind
}

// Left returns the left operand.
func (c Combined) Left() Selector {
	return c.left
}

// Combinator returns the combinator token.
func (c Combined) Combinator() string {
	return c.combinator
}

// Right returns the right operand.
func (c Combined) Right() Selector {
	return c.right
}

// Stringify renders c as "left combinator right", with exactly one space on either
// side of the combinator token.
func (c Combined) Stringify() string {
	var b strings.Builder
	c.render(&b)
	return b.String()
}

func (c Combined) render(b *strings.Builder) {
	if l, ok := c.left.(Combined); ok {
		l.render(b)
	} else {
		b.WriteString(c.left.Stringify())
	}
	b.WriteByte(' ')
	b.WriteString(c.combinator)
	b.WriteByte(' ')
	if r, ok := c.right.(Combined); ok {
		r.render(b)
	} else {
		b.WriteString(c.right.Stringify())
	}
}

func (c Combined) String() string {
	return c.Stringify()
}
