/*
Package seldbg implements helpers to debug selectors.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seldbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cssbuilder/selector"
	tp "github.com/xlab/treeprint"
)

// Tree renders a selector as a tree. Combinations become branches labeled with their
// combinator, simple selectors become leafs listing their fragments by category:
//
//     .
//     └── combinator "+"
//         ├── div#main  [element=div id=main]
//         └── table#data  [element=table id=data]
//
func Tree(sel selector.Selector) string {
	printer := tp.New()
	addSelector(printer, sel)
	return printer.String()
}

func addSelector(printer tp.Tree, sel selector.Selector) {
	switch s := sel.(type) {
	case selector.Combined:
		branch := printer.AddBranch(fmt.Sprintf("combinator %q", s.Combinator()))
		addSelector(branch, s.Left())
		addSelector(branch, s.Right())
	case selector.Simple:
		printer.AddNode(s.Stringify() + "  " + Fragments(s))
	case nil:
		printer.AddNode("<nil>")
	}
}

// Fragments lists the fragments of a simple selector, e.g.
//
//     [element=a class=nav class=active]
//
func Fragments(s selector.Simple) string {
	parts := make([]string, 0, 8)
	add := func(c selector.Category, v string) {
		parts = append(parts, c.String()+"="+v)
	}
	if v, ok := s.Element().Get(); ok {
		add(selector.CategoryElement, v)
	}
	if v, ok := s.ID().Get(); ok {
		add(selector.CategoryID, v)
	}
	for _, v := range s.Classes() {
		add(selector.CategoryClass, v)
	}
	for _, v := range s.Attributes() {
		add(selector.CategoryAttribute, v)
	}
	for _, v := range s.PseudoClasses() {
		add(selector.CategoryPseudoClass, v)
	}
	if v, ok := s.PseudoElement().Get(); ok {
		add(selector.CategoryPseudoElement, v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
