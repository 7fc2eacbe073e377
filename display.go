package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// DumpTree writes an indented text rendering of the tree rooted at root.
// Each level is indented by two more spaces than its parent, and children
// are prefixed with the bit that selects them:
//
//	Node (Freq: 3)
//	  0: Leaf: b (Freq: 1)
//	  1: Leaf: a (Freq: 2)
//
// A nil root writes nothing.
func DumpTree(w io.Writer, root Node) (int64, error) {
	var buf bytes.Buffer
	if root != nil {
		dumpNode(&buf, root, "", "")
	}
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, node Node, indent string, prefix string) {
	buf.WriteString(indent)
	buf.WriteString(prefix)
	switch x := node.(type) {
	case *Leaf:
		fmt.Fprintf(buf, "Leaf: %s (Freq: %d)\n", x.Symbol.Label(), x.Frequency)
	case *Internal:
		fmt.Fprintf(buf, "Node (Freq: %d)\n", x.Frequency)
		dumpNode(buf, x.Left, indent+"  ", "0: ")
		dumpNode(buf, x.Right, indent+"  ", "1: ")
	}
}

// DisplayNode is a tree node shaped for drawing libraries: a label, the
// symbol for leaves, the frequency, and any children.  It encodes to JSON as
// {"name", "char", "freq", "children"}.
type DisplayNode struct {
	Name     string         `json:"name"`
	Char     *string        `json:"char"`
	Freq     uint64         `json:"freq"`
	Children []*DisplayNode `json:"children,omitempty"`
}

// DisplayTree converts the tree rooted at root into DisplayNodes.  Leaves are
// named "<symbol> (<freq>)" and internal nodes "(<freq>)".  A nil root
// yields nil.
func DisplayTree(root Node) *DisplayNode {
	switch x := root.(type) {
	case *Leaf:
		char := x.Symbol.String()
		return &DisplayNode{
			Name: x.Symbol.Label() + " (" + strconv.FormatUint(x.Frequency, 10) + ")",
			Char: &char,
			Freq: x.Frequency,
		}
	case *Internal:
		return &DisplayNode{
			Name:     "(" + strconv.FormatUint(x.Frequency, 10) + ")",
			Freq:     x.Frequency,
			Children: []*DisplayNode{DisplayTree(x.Left), DisplayTree(x.Right)},
		}
	default:
		return nil
	}
}
