package selector_test

import (
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cssbuilder/selector"
)

// Rendered selectors have to be accepted by a real CSS selector parser.
func TestRenderedSelectorsParse(t *testing.T) {
	sels := []selector.Selector{
		selector.Must(selector.ID("main").Class("container").Class("editable")),
		selector.Must(selector.Element("a").Attr(`href$=".png"`)),
		selector.Must(selector.Element("input").Attr(`type="checkbox"`).Attr("checked")),
		selector.Must(selector.Element("li").PseudoClass("first-child")),
		selector.Combine(
			selector.Must(selector.Element("div").ID("main")),
			selector.Adjacent,
			selector.Must(selector.Element("table").ID("data")),
		),
		selector.Combine(
			selector.Combine(
				selector.Must(selector.Element("ul")),
				selector.Child,
				selector.Must(selector.Element("li").Class("item")),
			),
			selector.Sibling,
			selector.Must(selector.Element("li")),
		),
		selector.Combine(
			selector.Must(selector.Element("article")),
			selector.Descendant,
			selector.Must(selector.Element("p")),
		),
		selector.Simple{},
	}
	for _, sel := range sels {
		css := sel.Stringify()
		if _, err := cascadia.Compile(css); err != nil {
			t.Errorf("rendered selector %q does not parse: %v", css, err)
		}
	}
}
