package huffman

import (
	"strconv"
)

// Symbol represents one character of input text.
type Symbol rune

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the character itself.
func (sym Symbol) String() string {
	return string(rune(sym))
}

// Label returns a display form of the symbol: the space character is shown
// as "' '", control characters are quoted, everything else is shown as-is.
func (sym Symbol) Label() string {
	switch {
	case sym == ' ':
		return "' '"
	case sym < ' ' || sym == 0x7f:
		return strconv.QuoteRune(rune(sym))
	default:
		return string(rune(sym))
	}
}

// Symbols splits text into one Symbol per rune.
func Symbols(text string) []Symbol {
	out := make([]Symbol, 0, len(text))
	for _, r := range text {
		out = append(out, Symbol(r))
	}
	return out
}
