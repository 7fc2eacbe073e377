package huffman

import (
	"fmt"
)

// Node is a node of a Huffman code tree.  It is either a *Leaf or an
// *Internal; no other implementations exist.
type Node interface {
	// Freq returns the total frequency of all symbols under this node.
	Freq() uint64

	isNode()
}

// Leaf is a tree node holding a single symbol.
type Leaf struct {
	Symbol    Symbol
	Frequency uint64
}

// Internal is a tree node with exactly two children.  Its Frequency is the
// sum of its children's frequencies.
type Internal struct {
	Frequency uint64
	Left      Node
	Right     Node
}

// Freq returns the symbol's frequency.
func (leaf *Leaf) Freq() uint64 { return leaf.Frequency }

// Freq returns the combined frequency of both children.
func (in *Internal) Freq() uint64 { return in.Frequency }

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

// String returns a short description of the leaf.
func (leaf *Leaf) String() string {
	return fmt.Sprintf("Leaf(%q, %d)", rune(leaf.Symbol), leaf.Frequency)
}

// String returns a short description of the internal node.
func (in *Internal) String() string {
	return fmt.Sprintf("Internal(%d)", in.Frequency)
}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// WalkFunc is called by Walk for each node.  The path holds the branches
// taken from the root to reach node, so it is empty for the root itself.
type WalkFunc func(node Node, path Code)

// Walk visits every node of the tree rooted at root in depth-first pre-order,
// left child before right child.  A nil root visits nothing.
func Walk(root Node, fn WalkFunc) {
	if root == nil {
		return
	}
	walk(root, "", fn)
}

func walk(node Node, path Code, fn WalkFunc) {
	fn(node, path)
	if in, ok := node.(*Internal); ok {
		walk(in.Left, path.Append(0), fn)
		walk(in.Right, path.Append(1), fn)
	}
}

// Lookup follows code from root, taking the left child for each 0 bit and the
// right child for each 1 bit, and returns the symbol of the leaf it lands on.
// A tree consisting of a single leaf matches only the code "0".
//
// The second result is false if the walk ends on an internal node, runs off
// the bottom of the tree, or the tree is empty.
func Lookup(root Node, code Code) (Symbol, bool) {
	if leaf, ok := root.(*Leaf); ok {
		if code == "0" {
			return leaf.Symbol, true
		}
		return InvalidSymbol, false
	}

	node := root
	for i := 0; i < code.Size(); i++ {
		in, ok := node.(*Internal)
		if !ok {
			return InvalidSymbol, false
		}
		if code.Bit(i) == 0 {
			node = in.Left
		} else {
			node = in.Right
		}
	}
	if leaf, ok := node.(*Leaf); ok {
		return leaf.Symbol, true
	}
	return InvalidSymbol, false
}

// Leaves returns the tree's leaves from left to right.
func Leaves(root Node) []*Leaf {
	var out []*Leaf
	Walk(root, func(node Node, _ Code) {
		if leaf, ok := node.(*Leaf); ok {
			out = append(out, leaf)
		}
	})
	return out
}

// InternalCount returns the number of internal nodes in the tree.
func InternalCount(root Node) int {
	var n int
	Walk(root, func(node Node, _ Code) {
		if _, ok := node.(*Internal); ok {
			n++
		}
	})
	return n
}

// Depth returns the number of edges on the longest root-to-leaf path.  Both
// an empty tree and a single leaf have depth 0.
func Depth(root Node) int {
	var deepest int
	Walk(root, func(node Node, path Code) {
		if path.Size() > deepest {
			deepest = path.Size()
		}
	})
	return deepest
}

// WeightedPathLength returns the sum over all leaves of frequency times code
// length, i.e. the number of bits needed to code the input the tree was built
// from.  A single-leaf tree counts one bit per symbol, matching its "0" code.
func WeightedPathLength(root Node) uint64 {
	if leaf, ok := root.(*Leaf); ok {
		return leaf.Frequency
	}
	var sum uint64
	Walk(root, func(node Node, path Code) {
		if leaf, ok := node.(*Leaf); ok {
			sum += leaf.Frequency * uint64(path.Size())
		}
	})
	return sum
}
