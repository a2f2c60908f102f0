package vector

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestProps(t *testing.T) {
	var p props
	p = p.init()
	if p.degree != 8 || p.mask != 7 {
		t.Errorf("expected default degree 8 with mask 7, is %d/%d", p.degree, p.mask)
	}
	v := Immutable[int](DegreeExponent(9))
	if v.Degree() != 32 {
		t.Errorf("expected degree exponent to be capped at 5, degree is %d", v.Degree())
	}
	v = Immutable[int](DegreeExponent(0))
	if v.Degree() != 2 {
		t.Errorf("expected degree exponent to be at least 1, degree is %d", v.Degree())
	}
}

func TestTailOffset(t *testing.T) {
	v := Immutable[int](DegreeExponent(2))
	for i := 0; i < 4; i++ {
		v = v.Push(i)
	}
	if v.tailOffset() != 0 || v.root != nil {
		t.Errorf("expected full tail to stay tail, tail offset = %d", v.tailOffset())
	}
	v = v.Push(4)
	if v.tailOffset() != 4 || v.root == nil {
		t.Errorf("expected tail to move into tree, tail offset = %d", v.tailOffset())
	}
	if len(v.tail) != 1 {
		t.Errorf("expected new tail to hold 1 element, holds %d", len(v.tail))
	}
}

func TestTreeGrowsAndShrinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbuilder.vector")
	defer teardown()
	//
	v := Immutable[int](DegreeExponent(1))
	shifts := make([]uint32, 0, 40)
	for i := 0; i < 40; i++ {
		v = v.Push(i)
		shifts = append(shifts, v.shift)
	}
	t.Log(printVec(v))
	if v.shift != 5 {
		t.Errorf("expected 40 items with degree 2 to have root shift 5, is %d", v.shift)
	}
	for i := 39; i > 0; i-- {
		v = v.Pop()
		if v.Len() != i {
			t.Fatalf("expected length %d after pop, is %d", i, v.Len())
		}
		if v.root != nil && v.shift != shifts[i-1] {
			t.Errorf("expected shift %d at length %d, is %d", shifts[i-1], i, v.shift)
		}
	}
	if v.root != nil {
		t.Errorf("expected single element vector to have no tree, has %v", v.root)
	}
}

// --- Print tree ------------------------------------------------------------

func printVec[T any](v Vector[T]) string {
	v.props = v.props.init()
	header := fmt.Sprintf("\nVector(len=%d, shift=%d, k=%d) tail=%v\n", v.length, v.shift, v.degree, v.tail)
	printer := tp.New()
	printNode(printer, v.root)
	return header + printer.String() + "\n"
}

func printNode[T any](printer tp.Tree, node *vnode[T]) {
	if node == nil {
		return
	}
	if node.leaf() {
		printer.AddNode(node.String())
		return
	}
	branch := printer.AddBranch(node.String())
	for _, ch := range node.children {
		printNode(branch, ch)
	}
}
