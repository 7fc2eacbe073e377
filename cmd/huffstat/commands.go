package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffstat"
	"github.com/chronos-tachyon/huffstat/internal/baseline"
	"github.com/chronos-tachyon/huffstat/internal/config"
	"github.com/chronos-tachyon/huffstat/internal/report"
	"github.com/chronos-tachyon/huffstat/internal/textio"
)

type options struct {
	configPath string
	inputPath  string
	text       string
	format     string
	charset    string
	precision  int
	compare    []string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "huffstat",
		Short:         "Huffman code statistics for text",
		Long:          "Build the Huffman code for a piece of text and show its code table, tree, and compression statistics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&opts.inputPath, "input", "i", "", "input file (default: stdin)")
	flags.StringVarP(&opts.text, "text", "t", "", "input text, instead of --input or stdin")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: text or json")
	flags.StringVar(&opts.charset, "charset", "", "input charset (utf-8, windows-1251, windows-1252, koi8-r)")
	flags.IntVar(&opts.precision, "precision", 0, "decimal places for ratios")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	reportCmd := newCommand(opts, "report", "Show codes, stats, tree, and codec comparison", func(w report.Writer, res huffman.Result, ms []baseline.Measurement) error {
		return w.WriteReport(res, ms)
	})
	reportCmd.Flags().StringSliceVar(&opts.compare, "compare", nil, "codecs to compare against (zstd, s2, lz4)")

	root.AddCommand(
		newCommand(opts, "codes", "Show the code table", func(w report.Writer, res huffman.Result, _ []baseline.Measurement) error {
			return w.WriteCodes(res)
		}),
		newCommand(opts, "tree", "Show the code tree", func(w report.Writer, res huffman.Result, _ []baseline.Measurement) error {
			return w.WriteTree(res)
		}),
		newCommand(opts, "stats", "Show compression statistics", func(w report.Writer, res huffman.Result, _ []baseline.Measurement) error {
			return w.WriteStats(res)
		}),
		reportCmd,
	)
	return root
}

type renderFunc func(w report.Writer, res huffman.Result, ms []baseline.Measurement) error

func newCommand(opts *options, use string, short string, render renderFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cmd, opts, cfg, render)
		},
	}
}

// resolve loads the config file and lets explicitly set flags override it.
func (opts *options) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("charset") {
		cfg.Charset = opts.charset
	}
	if flags.Changed("precision") {
		cfg.Precision = opts.precision
	}
	if flags.Changed("compare") {
		cfg.Compare = opts.compare
	}
	return cfg, cfg.Validate()
}

func (opts *options) readText(cmd *cobra.Command, cfg config.Config) (string, error) {
	if cmd.Flags().Changed("text") {
		return opts.text, nil
	}

	var input io.Reader = cmd.InOrStdin()
	if opts.inputPath != "" && opts.inputPath != "-" {
		f, err := os.Open(opts.inputPath)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		input = f
	}
	return textio.ReadText(input, cfg.Charset, cfg.MaxInputBytes)
}

func run(cmd *cobra.Command, opts *options, cfg config.Config, render renderFunc) error {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	text, err := opts.readText(cmd, cfg)
	if err != nil {
		return err
	}

	res := huffman.Encode(text)
	if opts.verbose {
		log.Printf("%d symbols, %d distinct, tree depth %d, fingerprint %016x",
			res.Stats.OriginalLength, res.Codes.Len(), huffman.Depth(res.Tree), res.Codes.Sum64())
	}

	var ms []baseline.Measurement
	if cmd.Name() == "report" && len(cfg.Compare) > 0 {
		codecs, err := baseline.LookupAll(cfg.Compare)
		if err != nil {
			return err
		}
		ms, err = baseline.Measure([]byte(text), res.Stats.OriginalBits, codecs...)
		if err != nil {
			return fmt.Errorf("measure baseline: %w", err)
		}
	}

	w := report.Writer{W: cmd.OutOrStdout(), Format: format, Precision: cfg.Precision}
	return render(w, res, ms)
}
