package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/siftgo/filter"
	"github.com/YuminosukeSato/siftgo/frame"
)

var (
	flagFilterSQL     string
	flagFilterSearch  string
	flagFilterCols    []string
	flagFilterDates   []string
	flagFilterNums    []string
	flagFilterCats    []string
	flagFilterBools   []string
	flagFilterOut     string
	flagFilterPreview int
)

var filterCmd = &cobra.Command{
	Use:   "filter <file>",
	Short: "Filter rows by SQL, text search, ranges, and category membership",
	Long: `Filter applies the given conditions in a fixed order (SQL, search, dates,
numerics, categories, booleans) with AND semantics. A condition that cannot
be applied is skipped with a warning instead of aborting the pass.

Range flags use 'col=lo..hi'. Date sides may be left open ('col=2024-01-01..');
numeric ranges need both bounds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		p, err := buildParams()
		if err != nil {
			return err
		}
		if err := p.Validate(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		res := filter.FromParams(p).Run(f)
		for _, w := range res.Warnings {
			fmt.Fprintln(out, "Warning:", w)
		}
		fmt.Fprintln(out, res.Summary().String())
		previewFrame(out, res.Frame, flagFilterPreview)

		if flagFilterOut != "" {
			if err := exportFrame(flagFilterOut, res.Frame); err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved %d rows to %s\n", res.Frame.NumRows(), flagFilterOut)
		}
		return nil
	},
}

// buildParams turns the flag values into a validated parameter set.
func buildParams() (*filter.Params, error) {
	p := filter.NewParams()
	p.SQL = flagFilterSQL
	p.Search.Query = flagFilterSearch
	p.Search.Columns = flagFilterCols

	for _, s := range flagFilterDates {
		col, r, err := parseDateFlag(s)
		if err != nil {
			return nil, err
		}
		p.Dates[col] = r
	}
	for _, s := range flagFilterNums {
		col, r, err := parseNumFlag(s)
		if err != nil {
			return nil, err
		}
		p.Numerics[col] = r
	}
	for _, s := range flagFilterCats {
		col, vals, err := splitColFlag(s, "--cat")
		if err != nil {
			return nil, err
		}
		p.Categories[col] = strings.Split(vals, ",")
	}
	for _, s := range flagFilterBools {
		col, val, err := splitColFlag(s, "--bool")
		if err != nil {
			return nil, err
		}
		b, ok := frame.ParseBool(val)
		if !ok {
			return nil, fmt.Errorf("invalid --bool value %q: want true or false", val)
		}
		if b {
			p.Booleans[col] = filter.BoolTrue
		} else {
			p.Booleans[col] = filter.BoolFalse
		}
	}
	return p, nil
}

// splitColFlag splits a 'col=value' flag argument.
func splitColFlag(s, flag string) (col, value string, err error) {
	col, value, ok := strings.Cut(s, "=")
	if !ok || col == "" {
		return "", "", fmt.Errorf("invalid %s argument %q: want 'column=value'", flag, s)
	}
	return col, value, nil
}

func parseDateFlag(s string) (string, filter.DateRange, error) {
	col, expr, err := splitColFlag(s, "--date")
	if err != nil {
		return "", filter.DateRange{}, err
	}
	lo, hi, ok := strings.Cut(expr, "..")
	if !ok {
		return "", filter.DateRange{}, fmt.Errorf("invalid --date range %q: want 'start..end'", expr)
	}
	var r filter.DateRange
	if lo != "" {
		t, ok := frame.ParseTime(lo)
		if !ok {
			return "", filter.DateRange{}, fmt.Errorf("invalid --date start %q", lo)
		}
		r.Start = t
	}
	if hi != "" {
		t, ok := frame.ParseTime(hi)
		if !ok {
			return "", filter.DateRange{}, fmt.Errorf("invalid --date end %q", hi)
		}
		r.End = t
	}
	return col, r, nil
}

func parseNumFlag(s string) (string, filter.NumericRange, error) {
	col, expr, err := splitColFlag(s, "--num")
	if err != nil {
		return "", filter.NumericRange{}, err
	}
	lo, hi, ok := strings.Cut(expr, "..")
	if !ok || lo == "" || hi == "" {
		return "", filter.NumericRange{}, fmt.Errorf("invalid --num range %q: want 'min..max'", expr)
	}
	min, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return "", filter.NumericRange{}, fmt.Errorf("invalid --num min %q", lo)
	}
	max, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return "", filter.NumericRange{}, fmt.Errorf("invalid --num max %q", hi)
	}
	return col, filter.NumericRange{Min: min, Max: max}, nil
}

func init() {
	filterCmd.Flags().StringVar(&flagFilterSQL, "sql", "", "SELECT statement over the data as table 'df'")
	filterCmd.Flags().StringVar(&flagFilterSearch, "search", "", "substring to search for")
	filterCmd.Flags().StringSliceVar(&flagFilterCols, "search-cols", nil, "restrict the search to these columns")
	filterCmd.Flags().StringArrayVar(&flagFilterDates, "date", nil, "date window, 'column=start..end' (sides may be open)")
	filterCmd.Flags().StringArrayVar(&flagFilterNums, "num", nil, "numeric range, 'column=min..max'")
	filterCmd.Flags().StringArrayVar(&flagFilterCats, "cat", nil, "category membership, 'column=v1,v2'")
	filterCmd.Flags().StringArrayVar(&flagFilterBools, "bool", nil, "boolean selection, 'column=true' or 'column=false'")
	filterCmd.Flags().StringVar(&flagFilterOut, "out", "", "write the surviving rows to this .csv or .xlsx file")
	filterCmd.Flags().IntVar(&flagFilterPreview, "preview", 10, "number of rows to preview")
	rootCmd.AddCommand(filterCmd)
}
