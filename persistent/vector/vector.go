package vector

import (
	"fmt"

	"github.com/npillmayer/cssbuilder/maybe"
)

// Vector is an immutable vector of elements of type T.
type Vector[T any] struct {
	props
	length uint32
	shift  uint32 // level of the root node; multiple of props.bits
	root   *vnode[T]
	tail   []T
}

// Immutable creates an empty vector. Without options the vector will use a default
// configuration, which is the same as for the zero value of Vector.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// From creates a vector holding a copy of the elements of a slice.
func From[T any](items []T, opts ...Option) Vector[T] {
	v := Immutable[T](opts...)
	for _, item := range items {
		v = v.Push(item)
	}
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// DegreeExponent is an option to indirectly set the degree of the underlying tree for a vector.
// The degree of the tree will be 2^exp. Accepted exponents are [1…5]; default is 3, i.e.
// a degree of 8.
//
// Use it like this:
//
//     vec := vector.Immutable[int](DegreeExponent(5))
//
func DegreeExponent(n int) Option {
	conf := func(p props) props {
		if n < 1 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		return withBits(uint32(n))
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in v.
func (v Vector[T]) Len() int {
	return int(v.length)
}

// Degree returns the degree of the underlying tree.
func (v Vector[T]) Degree() int {
	return int(v.props.init().degree)
}

// Last returns the last element of v, if any.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if len(v.tail) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// Get returns the element at position i. It panics if i is out of range.
func (v Vector[T]) Get(i int) T {
	assertThat(i >= 0 && uint32(i) < v.length, "index out of bounds: %d with length %d", i, v.length)
	v.props = v.props.init()
	return v.leafsFor(uint32(i))[uint32(i)&v.mask]
}

// Set returns a copy of v with the element at position i replaced by value.
// It panics if i is out of range.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	assertThat(i >= 0 && uint32(i) < v.length, "index out of bounds: %d with length %d", i, v.length)
	v.props = v.props.init()
	if uint32(i) >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[uint32(i)&v.mask] = value
		return Vector[T]{props: v.props, length: v.length, shift: v.shift, root: v.root, tail: newTail}
	}
	newRoot := v.assoc(v.shift, v.root, uint32(i), value)
	return Vector[T]{props: v.props, length: v.length, shift: v.shift, root: newRoot, tail: v.tail}
}

func (v Vector[T]) assoc(level uint32, node *vnode[T], i uint32, value T) *vnode[T] {
	n := node.clone()
	if level == 0 {
		n.leafs[i&v.mask] = value
		return n
	}
	subidx := (i >> level) & v.mask
	n.children[subidx] = v.assoc(level-v.bits, node.children[subidx], i, value)
	return n
}

// Push returns a copy of v with value appended.
func (v Vector[T]) Push(value T) Vector[T] {
	v.props = v.props.init()
	if v.length-v.tailOffset() < v.degree { // just append value to tail
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		return Vector[T]{props: v.props, length: v.length + 1, shift: v.shift, root: v.root, tail: newTail}
	}
	// tail is full ⇒ have to move tail into tree
	tracer().Debugf("vector tail full at length %d, moving it into tree", v.length)
	tailNode := newLeaf(v.tail)
	shift := v.shift
	if v.root == nil {
		shift = v.bits
	}
	var newRoot *vnode[T]
	if (v.length >> v.bits) > (1 << shift) { // root is full ⇒ grow tree by one level
		newRoot = emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		newRoot.children[1] = v.newPath(shift, tailNode)
		shift += v.bits
	} else {
		newRoot = v.pushTail(shift, v.root, tailNode)
	}
	return Vector[T]{props: v.props, length: v.length + 1, shift: shift, root: newRoot, tail: []T{value}}
}

func (v Vector[T]) pushTail(level uint32, parent *vnode[T], tailNode *vnode[T]) *vnode[T] {
	subidx := ((v.length - 1) >> level) & v.mask
	var n *vnode[T]
	if parent == nil {
		n = emptyNode[T](v.degree)
	} else {
		n = parent.clone()
	}
	var insert *vnode[T]
	if level == v.bits {
		insert = tailNode
	} else if child := n.children[subidx]; child != nil {
		insert = v.pushTail(level-v.bits, child, tailNode)
	} else {
		insert = v.newPath(level-v.bits, tailNode)
	}
	n.children[subidx] = insert
	return n
}

func (v Vector[T]) newPath(level uint32, node *vnode[T]) *vnode[T] {
	if level == 0 {
		return node
	}
	n := emptyNode[T](v.degree)
	n.children[0] = v.newPath(level-v.bits, node)
	return n
}

// Pop returns a copy of v with the last element removed.
// It panics if v is empty.
func (v Vector[T]) Pop() Vector[T] {
	assertThat(v.length > 0, "attempt to remove item from empty vector")
	v.props = v.props.init()
	if v.length == 1 {
		return Vector[T]{props: v.props}
	}
	if v.length-v.tailOffset() > 1 {
		newTail := cloneTail(v.tail, len(v.tail)-1)
		return Vector[T]{props: v.props, length: v.length - 1, shift: v.shift, root: v.root, tail: newTail}
	}
	// tail vanishes ⇒ last leaf of tree becomes new tail
	newTail := v.leafsFor(v.length - 2)
	newRoot := v.popTail(v.shift, v.root)
	shift := v.shift
	if newRoot == nil {
		return Vector[T]{props: v.props, length: v.length - 1, tail: newTail}
	}
	if shift > v.bits && newRoot.children[1] == nil { // can lower the height
		newRoot = newRoot.children[0]
		shift -= v.bits
	}
	return Vector[T]{props: v.props, length: v.length - 1, shift: shift, root: newRoot, tail: newTail}
}

func (v Vector[T]) popTail(level uint32, node *vnode[T]) *vnode[T] {
	subidx := ((v.length - 2) >> level) & v.mask
	if level > v.bits {
		newChild := v.popTail(level-v.bits, node.children[subidx])
		if newChild == nil && subidx == 0 {
			return nil
		}
		n := node.clone()
		n.children[subidx] = newChild
		return n
	}
	if subidx == 0 {
		return nil
	}
	n := node.clone()
	n.children[subidx] = nil
	return n
}

// Slice returns the elements of v as a newly allocated slice.
func (v Vector[T]) Slice() []T {
	if v.length == 0 {
		return nil
	}
	v.props = v.props.init()
	s := make([]T, 0, v.length)
	for i := uint32(0); i < v.length; i += v.degree {
		s = append(s, v.leafsFor(i)...)
	}
	return s
}

// Each calls f for every element of v, in order.
func (v Vector[T]) Each(f func(int, T)) {
	for i, x := range v.Slice() {
		f(i, x)
	}
}

func (v Vector[T]) String() string {
	return fmt.Sprintf("%v", v.Slice())
}

// leafsFor returns the bucket of leafs containing index i.
func (v Vector[T]) leafsFor(i uint32) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(i>>level)&v.mask]
	}
	return node.leafs
}

func (v Vector[T]) tailOffset() uint32 {
	if v.length < v.degree {
		return 0
	}
	return ((v.length - 1) >> v.bits) << v.bits
}
