package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits, first bit first, stored as the ASCII
// digits '0' and '1'.
type Code string

// MakeCode is a convenience function that constructs a Code from the low
// size bits of bits.  The most significant of those bits is the first bit.
func MakeCode(size int, bits uint64) Code {
	assert.Assertf(size >= 0 && size <= 64, "size %d out of range [0, 64]", size)
	if size == 0 {
		return ""
	}
	s := strconv.FormatUint(bits, 2)
	if len(s) < size {
		s = strings.Repeat("0", size-len(s)) + s
	}
	return Code(s[len(s)-size:])
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Bit returns the i'th bit of this Code, either 0 or 1.
func (hc Code) Bit(i int) byte {
	return hc[i] - '0'
}

// Append returns a new Code with bit appended to the end.
func (hc Code) Append(bit byte) Code {
	assert.Assertf(bit <= 1, "bit %d is not 0 or 1", bit)
	return hc + Code('0'+bit)
}

// HasPrefix reports whether prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
