package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Build constructs the Huffman tree for the given frequencies and derives its
// code table.  An empty table yields a nil tree and an empty CodeTable.
//
// Each round removes the two lowest-frequency nodes from the pool and puts
// back an Internal node with the first as its left child and the second as
// its right child.  Ties are broken as if the pool were stably sorted by
// frequency before every round, with leaves entering in first-occurrence
// order and each new Internal node appended at the end.  The output is
// therefore fully determined by the input text.
//
func Build(freq *FrequencyTable) (Node, CodeTable) {
	var codes CodeTable
	if freq.Len() == 0 {
		return nil, codes
	}

	root := buildTree(freq)
	assignCodes(&codes, root)
	return root, codes
}

// buildTree runs the extraction loop over a min-heap keyed by
// (frequency, sequence).  Leaves take sequence numbers 0..N-1 in table order
// and each new Internal node takes the next one.  Within a stably sorted pool
// the nodes always appear in exactly that order, so the heap reproduces the
// re-sort-every-round behavior in O(n log n).
func buildTree(freq *FrequencyTable) Node {
	entries := freq.list()
	h := poolHeap{list: make([]poolItem, 0, len(entries))}
	for _, entry := range entries {
		assert.Assertf(entry.Count != 0, "symbol %q has frequency 0", rune(entry.Symbol))
		h.list = append(h.list, poolItem{
			node: &Leaf{Symbol: entry.Symbol, Frequency: entry.Count},
			seq:  uint64(len(h.list)),
		})
	}
	h.Init()

	nextSeq := uint64(len(entries))
	for h.Len() > 1 {
		a := heap.Pop(&h).(poolItem)
		b := heap.Pop(&h).(poolItem)

		sum := a.node.Freq() + b.node.Freq()
		assert.Assertf(sum >= a.node.Freq(), "frequency overflow: %d + %d", a.node.Freq(), b.node.Freq())

		heap.Push(&h, poolItem{
			node: &Internal{Frequency: sum, Left: a.node, Right: b.node},
			seq:  nextSeq,
		})
		nextSeq++
	}

	return heap.Pop(&h).(poolItem).node
}

// assignCodes walks the tree left to right, recording each leaf's path.  A
// root that is itself a leaf gets the code "0", since an empty code cannot
// be transmitted.
func assignCodes(codes *CodeTable, root Node) {
	if leaf, ok := root.(*Leaf); ok {
		codes.set(leaf.Symbol, "0")
		return
	}
	Walk(root, func(node Node, path Code) {
		if leaf, ok := node.(*Leaf); ok {
			codes.set(leaf.Symbol, path)
		}
	})
}

// type poolItem + type poolHeap {{{

type poolItem struct {
	node Node
	seq  uint64
}

type poolHeap struct {
	list []poolItem
}

func (h *poolHeap) Init() {
	heap.Init(h)
}

func (h *poolHeap) Len() int {
	return len(h.list)
}

func (h *poolHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *poolHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if af, bf := a.node.Freq(), b.node.Freq(); af != bf {
		return af < bf
	}
	return a.seq < b.seq
}

func (h *poolHeap) Push(x interface{}) {
	h.list = append(h.list, x.(poolItem))
}

func (h *poolHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = poolItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*poolHeap)(nil)

// }}}
