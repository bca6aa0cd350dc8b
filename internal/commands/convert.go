package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/camt-tools/camtcsv/internal/camt"
	"github.com/camt-tools/camtcsv/internal/config"
	"github.com/camt-tools/camtcsv/internal/export"
	"github.com/camt-tools/camtcsv/internal/model"
	"github.com/camt-tools/camtcsv/internal/summary"
)

// configFileName is looked up in the working directory when --config is not given.
const configFileName = "camtcsv.yaml"

func newConvertCommand() *cobra.Command {
	var output string
	var configPath string
	var noHeader bool

	cmd := &cobra.Command{
		Use:   "convert [flags] <file-or-glob>...",
		Short: "Flatten CAMT.053 statement files into one CSV file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(output, configPath, noHeader, args)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV file (default output.csv)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a camtcsv.yaml config file")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "omit the CSV header row")

	return cmd
}

// runConvert expands the input patterns, extracts every statement and writes
// the combined CSV. Nothing is written until every input extracted cleanly.
func runConvert(output, configPath string, noHeader bool, patterns []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if output == "" {
		output = cfg.Output
	}

	opts := export.Options{Delimiter: cfg.DelimiterRune(), Header: *cfg.Header}
	if noHeader {
		opts.Header = false
	}

	var rows []model.FlatEntry
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		// A pattern matching nothing contributes no records.
		for _, path := range matches {
			fileRows, info, err := convertFile(path)
			if err != nil {
				return err
			}
			pterm.Info.Printf("processed %s: declared seq %d, %d row(s)\n", path, info.EntriesCount, len(fileRows))
			rows = append(rows, fileRows...)
		}
	}

	sum, err := summary.Compute(rows)
	if err != nil {
		return err
	}

	if err := writeOutput(output, rows, opts); err != nil {
		return err
	}

	pterm.Success.Printf("wrote %d row(s) to %s (debit %s, credit %s)\n",
		sum.Rows, output, sum.TotalDebit.String(), sum.TotalCredit.String())
	return nil
}

// convertFile parses one CAMT.053 document and extracts its rows.
func convertFile(path string) ([]model.FlatEntry, model.StatementInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.StatementInfo{}, fmt.Errorf("reading %s: %w", path, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, model.StatementInfo{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, model.StatementInfo{}, fmt.Errorf("parsing %s: document has no root element", path)
	}

	rows, info, err := camt.ExtractStatement(root)
	if err != nil {
		return nil, info, fmt.Errorf("%s: %w", path, err)
	}
	return rows, info, nil
}

func writeOutput(path string, rows []model.FlatEntry, opts export.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := export.Write(f, rows, opts); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// loadConfig resolves the effective config: an explicit --config path must
// exist; otherwise camtcsv.yaml in the working directory is used when
// present, and the built-in defaults when not.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	if _, err := os.Stat(configFileName); err == nil {
		return config.Load(configFileName)
	}
	return config.Default(), nil
}
