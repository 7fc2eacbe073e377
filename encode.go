package huffman

// Result bundles everything Encode computes for one input.
type Result struct {
	Frequencies *FrequencyTable
	Codes       CodeTable
	Tree        Node
	Stats       Stats
}

// Encode runs the whole pipeline over the runes of text: frequency analysis,
// tree construction, code derivation, and statistics.  Empty text yields an
// empty code table, a nil tree, and all-zero stats.
//
// Encode has no shared state, so concurrent calls are safe.
func Encode(text string) Result {
	freq := AnalyzeString(text)
	tree, codes := Build(freq)
	return Result{
		Frequencies: freq,
		Codes:       codes,
		Tree:        tree,
		Stats:       ComputeStatsString(text, codes),
	}
}

// EncodeSymbols is Encode over an explicit Symbol sequence.
func EncodeSymbols(input []Symbol) Result {
	freq := Analyze(input)
	tree, codes := Build(freq)
	return Result{
		Frequencies: freq,
		Codes:       codes,
		Tree:        tree,
		Stats:       ComputeStats(input, codes),
	}
}
