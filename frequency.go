package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// FrequencyTable maps each distinct Symbol of an input to the number of
// times it occurs.  Symbols are kept in order of first occurrence, which is
// the order Build uses to break ties between equal frequencies.
type FrequencyTable struct {
	index   map[Symbol]int
	entries []SymbolCount
	total   uint64
}

// SymbolCount pairs a Symbol with its number of occurrences.
type SymbolCount struct {
	Symbol Symbol
	Count  uint64
}

// Analyze counts the occurrences of each Symbol in input.
func Analyze(input []Symbol) *FrequencyTable {
	ft := &FrequencyTable{index: make(map[Symbol]int)}
	for _, sym := range input {
		ft.add(sym)
	}
	return ft
}

// AnalyzeString counts the occurrences of each rune in text.
func AnalyzeString(text string) *FrequencyTable {
	ft := &FrequencyTable{index: make(map[Symbol]int)}
	for _, r := range text {
		ft.add(Symbol(r))
	}
	return ft
}

func (ft *FrequencyTable) add(sym Symbol) {
	i, found := ft.index[sym]
	if !found {
		i = len(ft.entries)
		ft.index[sym] = i
		ft.entries = append(ft.entries, SymbolCount{Symbol: sym})
	}
	ft.entries[i].Count++
	ft.total++
}

// Len returns the number of distinct symbols.
func (ft *FrequencyTable) Len() int {
	if ft == nil {
		return 0
	}
	return len(ft.entries)
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft *FrequencyTable) Total() uint64 {
	if ft == nil {
		return 0
	}
	return ft.total
}

// Count returns the number of occurrences of sym, or 0 if sym never occurs.
func (ft *FrequencyTable) Count(sym Symbol) uint64 {
	if ft == nil {
		return 0
	}
	if i, found := ft.index[sym]; found {
		return ft.entries[i].Count
	}
	return 0
}

// Symbols lists the distinct symbols in order of first occurrence.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, ft.Len())
	for i := range out {
		out[i] = ft.entries[i].Symbol
	}
	return out
}

// Entries returns a copy of the (Symbol, count) pairs in order of first
// occurrence.
func (ft *FrequencyTable) Entries() []SymbolCount {
	out := make([]SymbolCount, ft.Len())
	copy(out, ft.list())
	return out
}

func (ft *FrequencyTable) list() []SymbolCount {
	if ft == nil {
		return nil
	}
	return ft.entries
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.Total())
	for _, entry := range ft.list() {
		fmt.Fprintf(&buf, "\tCount(%q) = %d\n", rune(entry.Symbol), entry.Count)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON renders the table as a list of {"symbol", "count"} objects in
// order of first occurrence.  Symbols are rendered as strings.
func (ft *FrequencyTable) MarshalJSON() ([]byte, error) {
	type jsonEntry struct {
		Symbol string `json:"symbol"`
		Count  uint64 `json:"count"`
	}
	list := make([]jsonEntry, 0, ft.Len())
	for _, entry := range ft.list() {
		list = append(list, jsonEntry{entry.Symbol.String(), entry.Count})
	}
	return json.Marshal(list)
}

var _ json.Marshaler = (*FrequencyTable)(nil)
