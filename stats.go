package huffman

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// BitsPerSymbol is the size assumed for each uncoded input symbol.
const BitsPerSymbol = 8

// DefaultRatioPrecision is the number of decimal places used by
// Stats.RatioString.
const DefaultRatioPrecision = 2

// Stats summarizes how well a CodeTable compresses a particular input.
type Stats struct {
	// OriginalLength is the number of symbols in the input.
	OriginalLength uint64 `json:"originalLength"`

	// OriginalBits is OriginalLength times BitsPerSymbol.
	OriginalBits uint64 `json:"originalBits"`

	// EncodedBits is the total length of the input's codes.
	EncodedBits uint64 `json:"encodedBits"`

	// Ratio is the percentage of bits saved, 1 - EncodedBits/OriginalBits
	// scaled to 0..100.  It is 0 when OriginalBits is 0.
	Ratio float64 `json:"ratio"`
}

// ComputeStats measures input against codes.  Every symbol of input must have
// a code; a missing code means codes was not built from input, which is a
// programming error.
func ComputeStats(input []Symbol, codes CodeTable) Stats {
	var s Stats
	for _, sym := range input {
		s.add(sym, codes)
	}
	s.finish()
	return s
}

// ComputeStatsString is ComputeStats over the runes of text.
func ComputeStatsString(text string, codes CodeTable) Stats {
	var s Stats
	for _, r := range text {
		s.add(Symbol(r), codes)
	}
	s.finish()
	return s
}

func (s *Stats) add(sym Symbol, codes CodeTable) {
	hc, found := codes.Lookup(sym)
	assert.Assertf(found, "symbol %q has no code", rune(sym))
	s.OriginalLength++
	s.EncodedBits += uint64(hc.Size())
}

func (s *Stats) finish() {
	s.OriginalBits = s.OriginalLength * BitsPerSymbol
	if s.OriginalBits > 0 {
		s.Ratio = (1 - float64(s.EncodedBits)/float64(s.OriginalBits)) * 100
	}
}

// FormatRatio formats Ratio with prec digits after the decimal point.
func (s Stats) FormatRatio(prec int) string {
	return strconv.FormatFloat(s.Ratio, 'f', prec, 64)
}

// RatioString formats Ratio with DefaultRatioPrecision decimal places.
func (s Stats) RatioString() string {
	return s.FormatRatio(DefaultRatioPrecision)
}

// RoundedRatio returns Ratio rounded to prec decimal places.
func (s Stats) RoundedRatio(prec int) float64 {
	scale := math.Pow(10, float64(prec))
	return math.Round(s.Ratio*scale) / scale
}

// BitsPerInputSymbol returns the average code length, or 0 for empty input.
func (s Stats) BitsPerInputSymbol() float64 {
	if s.OriginalLength == 0 {
		return 0
	}
	return float64(s.EncodedBits) / float64(s.OriginalLength)
}

// String returns a one-line summary of the stats.
func (s Stats) String() string {
	return fmt.Sprintf("%d symbols, %d -> %d bits (%s%% reduction)",
		s.OriginalLength, s.OriginalBits, s.EncodedBits, s.RatioString())
}

var _ fmt.Stringer = Stats{}
