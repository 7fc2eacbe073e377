package huffman

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	ft := AnalyzeString("hello, wörld")

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tLen() = 10\n",
		"\tTotal() = 12\n",
		"\tCount('h') = 1\n",
		"\tCount('e') = 1\n",
		"\tCount('l') = 3\n",
		"\tCount('o') = 1\n",
		"\tCount(',') = 1\n",
		"\tCount(' ') = 1\n",
		"\tCount('w') = 1\n",
		"\tCount('ö') = 1\n",
		"\tCount('r') = 1\n",
		"\tCount('d') = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ft.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestAnalyze_Counts(t *testing.T) {
	input := Symbols("mississippi")
	ft := Analyze(input)

	assert.Equal(t, 4, ft.Len())
	assert.Equal(t, uint64(len(input)), ft.Total())
	assert.Equal(t, []Symbol{'m', 'i', 's', 'p'}, ft.Symbols())
	assert.Equal(t, uint64(1), ft.Count('m'))
	assert.Equal(t, uint64(4), ft.Count('i'))
	assert.Equal(t, uint64(4), ft.Count('s'))
	assert.Equal(t, uint64(2), ft.Count('p'))
	assert.Equal(t, uint64(0), ft.Count('x'))

	var sum uint64
	for _, entry := range ft.Entries() {
		sum += entry.Count
	}
	assert.Equal(t, ft.Total(), sum)
}

func TestAnalyze_Empty(t *testing.T) {
	ft := Analyze(nil)
	assert.Equal(t, 0, ft.Len())
	assert.Equal(t, uint64(0), ft.Total())
	assert.Empty(t, ft.Symbols())

	var nilTable *FrequencyTable
	assert.Equal(t, 0, nilTable.Len())
	assert.Equal(t, uint64(0), nilTable.Count('a'))
}

func TestFrequencyTable_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(AnalyzeString("aba"))
	if err != nil {
		t.Errorf("json.Marshal failed: %v", err)
	}
	expectJSON := `[{"symbol":"a","count":2},{"symbol":"b","count":1}]`
	actualJSON := string(raw)
	if expectJSON != actualJSON {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectJSON, actualJSON)
	}
}
