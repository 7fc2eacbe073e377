// Package report renders huffman results for people (text) and programs
// (JSON).
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	huffman "github.com/chronos-tachyon/huffstat"
	"github.com/chronos-tachyon/huffstat/internal/baseline"
)

// ErrUnknownFormat is returned by ParseFormat for unrecognized names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how results are rendered.
type Format int

const (
	Text Format = iota
	JSON
)

// ParseFormat maps "text" and "json" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// String returns the format's name.
func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// Writer renders results to W.
type Writer struct {
	W         io.Writer
	Format    Format
	Precision int
}

// CodeRow is one line of the code table: a symbol with its code and
// frequency.
type CodeRow struct {
	Symbol    string `json:"symbol"`
	Code      string `json:"code"`
	Frequency uint64 `json:"frequency"`

	label string
}

// CodeRows lists the code table of res ordered by code length, then symbol.
func CodeRows(res huffman.Result) []CodeRow {
	sorted := res.Codes.Sorted()
	rows := make([]CodeRow, 0, len(sorted))
	for _, item := range sorted {
		rows = append(rows, CodeRow{
			Symbol:    item.Symbol.String(),
			Code:      string(item.Code),
			Frequency: res.Frequencies.Count(item.Symbol),
			label:     item.Symbol.Label(),
		})
	}
	return rows
}

type jsonStats struct {
	OriginalLength uint64  `json:"originalLength"`
	OriginalBits   uint64  `json:"originalBits"`
	EncodedBits    uint64  `json:"encodedBits"`
	Ratio          float64 `json:"ratio"`
}

func (w Writer) stats(s huffman.Stats) jsonStats {
	return jsonStats{
		OriginalLength: s.OriginalLength,
		OriginalBits:   s.OriginalBits,
		EncodedBits:    s.EncodedBits,
		Ratio:          s.RoundedRatio(w.Precision),
	}
}

func (w Writer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(w.W)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteCodes renders the code table.
func (w Writer) WriteCodes(res huffman.Result) error {
	rows := CodeRows(res)
	if w.Format == JSON {
		return w.writeJSON(rows)
	}
	if len(rows) == 0 {
		_, err := io.WriteString(w.W, "No codes (input is empty).\n")
		return err
	}
	tw := tabwriter.NewWriter(w.W, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Character\tHuffman Code\tFrequency")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", row.label, row.Code, row.Frequency)
	}
	return tw.Flush()
}

// WriteTree renders the code tree.
func (w Writer) WriteTree(res huffman.Result) error {
	if w.Format == JSON {
		return w.writeJSON(huffman.DisplayTree(res.Tree))
	}
	if res.Tree == nil {
		_, err := io.WriteString(w.W, "No tree (input is empty).\n")
		return err
	}
	_, err := huffman.DumpTree(w.W, res.Tree)
	return err
}

// WriteStats renders the compression statistics.
func (w Writer) WriteStats(res huffman.Result) error {
	s := res.Stats
	if w.Format == JSON {
		return w.writeJSON(w.stats(s))
	}
	if s.OriginalBits == 0 {
		_, err := io.WriteString(w.W, "No stats (input is empty).\n")
		return err
	}
	_, err := fmt.Fprintf(w.W,
		"Original Length: %d characters\n"+
			"Original Size: %d bits (assuming %d bits/char)\n"+
			"Encoded Size: %d bits\n"+
			"Compression Ratio: %s%% reduction\n",
		s.OriginalLength, s.OriginalBits, huffman.BitsPerSymbol, s.EncodedBits, s.FormatRatio(w.Precision))
	return err
}

// WriteBaseline renders general-purpose codec measurements.
func (w Writer) WriteBaseline(ms []baseline.Measurement) error {
	if w.Format == JSON {
		return w.writeJSON(ms)
	}
	tw := tabwriter.NewWriter(w.W, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Codec\tEncoded Size\tRatio")
	for _, m := range ms {
		fmt.Fprintf(tw, "%s\t%d bits\t%.*f%%\n", m.Codec, m.EncodedBits, w.Precision, m.Ratio)
	}
	return tw.Flush()
}

// WriteReport renders codes, stats, tree, and any baseline measurements.
func (w Writer) WriteReport(res huffman.Result, ms []baseline.Measurement) error {
	if w.Format == JSON {
		return w.writeJSON(struct {
			Codes       []CodeRow              `json:"codes"`
			Stats       jsonStats              `json:"stats"`
			Tree        *huffman.DisplayNode   `json:"tree"`
			Fingerprint string                 `json:"fingerprint"`
			Baseline    []baseline.Measurement `json:"baseline,omitempty"`
		}{
			Codes:       CodeRows(res),
			Stats:       w.stats(res.Stats),
			Tree:        huffman.DisplayTree(res.Tree),
			Fingerprint: fmt.Sprintf("%016x", res.Codes.Sum64()),
			Baseline:    ms,
		})
	}

	sections := []section{
		{"Character Codes", func() error { return w.WriteCodes(res) }},
		{"Compression Stats", func() error { return w.WriteStats(res) }},
		{"Tree", func() error { return w.WriteTree(res) }},
	}
	if len(ms) > 0 {
		sections = append(sections, section{"Baseline Codecs", func() error { return w.WriteBaseline(ms) }})
	}
	for i, sec := range sections {
		if i > 0 {
			if _, err := io.WriteString(w.W, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w.W, "%s:\n", sec.title); err != nil {
			return err
		}
		if err := sec.write(); err != nil {
			return err
		}
	}
	return nil
}

type section struct {
	title string
	write func() error
}
