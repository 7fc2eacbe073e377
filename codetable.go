package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// CodeTable maps each symbol of a Huffman tree to its Code.
type CodeTable struct {
	codes   map[Symbol]Code
	order   []Symbol
	minSize int
	maxSize int
}

func (ct *CodeTable) set(sym Symbol, hc Code) {
	if ct.codes == nil {
		ct.codes = make(map[Symbol]Code)
	}
	if len(ct.order) == 0 {
		ct.minSize, ct.maxSize = hc.Size(), hc.Size()
	} else if ct.minSize > hc.Size() {
		ct.minSize = hc.Size()
	} else if ct.maxSize < hc.Size() {
		ct.maxSize = hc.Size()
	}
	ct.codes[sym] = hc
	ct.order = append(ct.order, sym)
}

// Lookup returns the Code assigned to sym.  The second result is false if sym
// has no code.
func (ct CodeTable) Lookup(sym Symbol) (Code, bool) {
	hc, found := ct.codes[sym]
	return hc, found
}

// Len returns the number of symbols with a code.
func (ct CodeTable) Len() int {
	return len(ct.order)
}

// MinSize is the bit length of the shortest code, or 0 if the table is empty.
func (ct CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code, or 0 if the table is empty.
func (ct CodeTable) MaxSize() int {
	return ct.maxSize
}

// Symbols lists the coded symbols in tree order, leftmost leaf first.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(ct.order))
	copy(out, ct.order)
	return out
}

// SymbolCode pairs a Symbol with its Code.
type SymbolCode struct {
	Symbol Symbol
	Code   Code
}

// Sorted lists the table's entries ordered by code length, then by symbol.
func (ct CodeTable) Sorted() []SymbolCode {
	out := make([]SymbolCode, 0, len(ct.order))
	for _, sym := range ct.order {
		out = append(out, SymbolCode{sym, ct.codes[sym]})
	}
	sort.Sort(bySize(out))
	return out
}

// Sum64 returns a 64-bit fingerprint of the table's contents.  Two tables
// have the same fingerprint when they assign the same codes to the same
// symbols, regardless of the tree order they were built in.
func (ct CodeTable) Sum64() uint64 {
	d := xxhash.New()
	var buf [4]byte
	for _, item := range ct.Sorted() {
		sym := uint32(item.Symbol)
		buf[0], buf[1], buf[2], buf[3] = byte(sym>>24), byte(sym>>16), byte(sym>>8), byte(sym)
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(string(item.Code))
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, item := range ct.Sorted() {
		fmt.Fprintf(&buf, "\tLookup(%q) = %s\n", rune(item.Symbol), item.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON renders the table as a JSON object from symbol to code string,
// with keys in Sorted order.
func (ct CodeTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range ct.Sorted() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(item.Symbol.String())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteByte('"')
		buf.WriteString(string(item.Code))
		buf.WriteByte('"')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var _ json.Marshaler = CodeTable{}

// type bySize {{{

type bySize []SymbolCode

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Code.Size() != b.Code.Size() {
		return a.Code.Size() < b.Code.Size()
	}
	return a.Symbol < b.Symbol
}

var _ sort.Interface = bySize(nil)

// }}}
