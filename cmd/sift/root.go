package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/siftgo/dataset"
	"github.com/YuminosukeSato/siftgo/filter"
	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/internal/config"
	"github.com/YuminosukeSato/siftgo/pkg/log"
)

var (
	cfgFile      string
	flagLogLevel string
	flagSheet    string

	// Loaded configuration, set by initConfig before any RunE fires.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "Explore, filter, and clean tabular data files",
	Long: `sift loads CSV and Excel files into typed frames and runs the
filtering, cleaning, statistics, and charting pipeline over them
from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.sift/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, or error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "sheet", "", "Excel sheet name (default is the first sheet)")
}

func initConfig() {
	c, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		c = &config.Config{
			Delimiter:      ",",
			CategoricalCap: filter.MaxCategoricalOptions,
			LogLevel:       "info",
			PlotWidth:      8,
			PlotHeight:     6,
		}
	}
	cfg = c

	if rootCmd.PersistentFlags().Changed("log-level") {
		switch flagLogLevel {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = flagLogLevel
		default:
			fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, keeping %q\n", flagLogLevel, cfg.LogLevel)
		}
	}

	log.SetupLogger(cfg.LogLevel)
	frame.AddDateLayouts(cfg.DateLayouts...)
}

// loadFrame reads a CSV or Excel file into a frame using the configured
// delimiter and null literals.
func loadFrame(path string) (*frame.Frame, error) {
	var opts []dataset.Option
	if d, err := cfg.DelimiterRune(); err == nil && d != ',' {
		opts = append(opts, dataset.WithDelimiter(d))
	}
	if len(cfg.NullLiterals) > 0 {
		opts = append(opts, dataset.WithNullLiterals(cfg.NullLiterals...))
	}

	var f *frame.Frame
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err = dataset.LoadCSV(path, opts...)
	case ".xlsx", ".xlsm":
		if flagSheet != "" {
			opts = append(opts, dataset.WithSheet(flagSheet))
		}
		f, err = dataset.LoadExcel(path, opts...)
	default:
		return nil, fmt.Errorf("unsupported input %q: use a .csv or .xlsx file", path)
	}
	if err != nil {
		return nil, err
	}

	rows, cols := f.Shape()
	log.GetLoggerWithName("cli").Info("dataset loaded",
		log.DatasetKey, filepath.Base(path),
		log.RowsKey, rows,
		log.ColumnsKey, cols,
	)
	return f, nil
}

// exportFrame writes a frame to a CSV or Excel file, chosen by extension.
func exportFrame(path string, f *frame.Frame) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return dataset.ExportCSV(path, f)
	case ".xlsx":
		return dataset.ExportExcel(path, f)
	default:
		return fmt.Errorf("unsupported output %q: use a .csv or .xlsx file", path)
	}
}

// renderTable prints rows under a header in the standard grid layout.
func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}

// previewFrame prints the first n rows of a frame as a table.
func previewFrame(w io.Writer, f *frame.Frame, n int) {
	head := f.Head(n)
	rows := make([][]string, head.NumRows())
	for i := range rows {
		row := make([]string, head.NumCols())
		for j := 0; j < head.NumCols(); j++ {
			row[j] = head.ColumnAt(j).CellString(i)
		}
		rows[i] = row
	}
	renderTable(w, f.Columns(), rows)
	if f.NumRows() > n {
		fmt.Fprintf(w, "... %d more rows\n", f.NumRows()-n)
	}
}
