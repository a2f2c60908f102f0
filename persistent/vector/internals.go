package vector

import (
	"fmt"
	"strings"
)

const defaultBits uint32 = 3

type props struct {
	bits   uint32 // degree = 2^bits
	degree uint32
	mask   uint32
}

func withBits(bits uint32) props {
	p := props{bits: bits}
	p.degree = 1 << p.bits
	p.mask = p.degree - 1
	return p
}

// init makes the zero value of props usable.
func (p props) init() props {
	if p.bits == 0 {
		return withBits(defaultBits)
	}
	return p
}

// vnode represents a node in the tree a vector is made of. Inner nodes have children,
// leaf nodes carry a full bucket of leafs.
type vnode[T any] struct {
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](degree uint32) *vnode[T] {
	return &vnode[T]{children: make([]*vnode[T], degree)}
}

func newLeaf[T any](tail []T) *vnode[T] {
	return &vnode[T]{leafs: cloneTail(tail, len(tail))}
}

func (node *vnode[T]) leaf() bool {
	return node.children == nil
}

func (node *vnode[T]) clone() *vnode[T] {
	assertThat(node != nil, "inconsistency: attempt to clone a nil node")
	if node.leaf() {
		return newLeaf(node.leafs)
	}
	n := &vnode[T]{children: make([]*vnode[T], len(node.children))}
	copy(n.children, node.children)
	return n
}

func (node *vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leaf() {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// cloneTail copies tail into a new slice of length n. n may exceed len(tail).
func cloneTail[T any](tail []T, n int) []T {
	t := make([]T, n)
	copy(t, tail)
	return t
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
