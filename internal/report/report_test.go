package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	huffman "github.com/chronos-tachyon/huffstat"
	"github.com/chronos-tachyon/huffstat/internal/baseline"
)

func render(t *testing.T, format Format, fn func(w Writer) error) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, fn(Writer{W: &buf, Format: format, Precision: 2}))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)
	assert.Equal(t, "json", f.String())

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, Text, f)

	_, err = ParseFormat("yaml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteCodes(t *testing.T) {
	res := huffman.Encode("ab a")

	expect := strings.Join([]string{
		"Character  Huffman Code  Frequency\n",
		"a          0             2\n",
		"' '        11            1\n",
		"b          10            1\n",
	}, "")
	actual := render(t, Text, func(w Writer) error { return w.WriteCodes(res) })
	assert.Equal(t, expect, actual)

	actual = render(t, JSON, func(w Writer) error { return w.WriteCodes(res) })
	assert.JSONEq(t, `[
		{"symbol": "a", "code": "0", "frequency": 2},
		{"symbol": " ", "code": "11", "frequency": 1},
		{"symbol": "b", "code": "10", "frequency": 1}
	]`, actual)
}

func TestWriteStats(t *testing.T) {
	res := huffman.Encode("aaaa")

	expect := strings.Join([]string{
		"Original Length: 4 characters\n",
		"Original Size: 32 bits (assuming 8 bits/char)\n",
		"Encoded Size: 4 bits\n",
		"Compression Ratio: 87.50% reduction\n",
	}, "")
	actual := render(t, Text, func(w Writer) error { return w.WriteStats(res) })
	assert.Equal(t, expect, actual)

	actual = render(t, JSON, func(w Writer) error { return w.WriteStats(res) })
	assert.JSONEq(t, `{"originalLength": 4, "originalBits": 32, "encodedBits": 4, "ratio": 87.5}`, actual)
}

func TestWriteTree(t *testing.T) {
	res := huffman.Encode("ab")

	expect := strings.Join([]string{
		"Node (Freq: 2)\n",
		"  0: Leaf: a (Freq: 1)\n",
		"  1: Leaf: b (Freq: 1)\n",
	}, "")
	actual := render(t, Text, func(w Writer) error { return w.WriteTree(res) })
	assert.Equal(t, expect, actual)

	actual = render(t, JSON, func(w Writer) error { return w.WriteTree(res) })
	assert.JSONEq(t, `{"name": "(2)", "char": null, "freq": 2, "children": [
		{"name": "a (1)", "char": "a", "freq": 1},
		{"name": "b (1)", "char": "b", "freq": 1}
	]}`, actual)
}

func TestWrite_Empty(t *testing.T) {
	res := huffman.Encode("")

	assert.Equal(t, "No codes (input is empty).\n",
		render(t, Text, func(w Writer) error { return w.WriteCodes(res) }))
	assert.Equal(t, "No tree (input is empty).\n",
		render(t, Text, func(w Writer) error { return w.WriteTree(res) }))
	assert.Equal(t, "No stats (input is empty).\n",
		render(t, Text, func(w Writer) error { return w.WriteStats(res) }))

	assert.JSONEq(t, `[]`, render(t, JSON, func(w Writer) error { return w.WriteCodes(res) }))
	assert.JSONEq(t, `null`, render(t, JSON, func(w Writer) error { return w.WriteTree(res) }))
}

func TestWriteReport(t *testing.T) {
	res := huffman.Encode("ab")
	ms := []baseline.Measurement{{Codec: "lz4", OriginalBits: 16, EncodedBits: 24, Ratio: -50}}

	actual := render(t, Text, func(w Writer) error { return w.WriteReport(res, ms) })
	expect := strings.Join([]string{
		"Character Codes:\n",
		"Character  Huffman Code  Frequency\n",
		"a          0             1\n",
		"b          1             1\n",
		"\n",
		"Compression Stats:\n",
		"Original Length: 2 characters\n",
		"Original Size: 16 bits (assuming 8 bits/char)\n",
		"Encoded Size: 2 bits\n",
		"Compression Ratio: 87.50% reduction\n",
		"\n",
		"Tree:\n",
		"Node (Freq: 2)\n",
		"  0: Leaf: a (Freq: 1)\n",
		"  1: Leaf: b (Freq: 1)\n",
		"\n",
		"Baseline Codecs:\n",
		"Codec  Encoded Size  Ratio\n",
		"lz4    24 bits       -50.00%\n",
	}, "")
	assert.Equal(t, expect, actual)

	actual = render(t, JSON, func(w Writer) error { return w.WriteReport(res, nil) })
	assert.Contains(t, actual, `"fingerprint"`)
	assert.NotContains(t, actual, `"baseline"`)
	assert.Contains(t, actual, `"encodedBits": 2`)
}
