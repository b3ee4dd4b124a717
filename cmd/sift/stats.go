package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/siftgo/explore"
)

var flagStatsCols []string

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Show numeric profiles, categorical summaries, and correlations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		nums := explore.Describe(f)
		if len(nums) > 0 {
			color.New(color.FgYellow).Fprintln(out, "Numeric summary")
			var body [][]string
			for _, s := range nums {
				body = append(body, []string{
					s.Column,
					strconv.Itoa(s.Count),
					fmtStat(s.Mean), fmtStat(s.Std),
					fmtStat(s.Min), fmtStat(s.Q25), fmtStat(s.Median), fmtStat(s.Q75), fmtStat(s.Max),
					fmtStat(s.Skew), fmtStat(s.Kurtosis),
				})
			}
			renderTable(out, []string{"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max", "skew", "kurt"}, body)
		}

		cats := explore.CategoricalSummary(f)
		if len(cats) > 0 {
			color.New(color.FgYellow).Fprintln(out, "\nCategorical summary")
			var body [][]string
			for _, s := range cats {
				body = append(body, []string{s.Column, strconv.Itoa(s.Unique), s.Top, strconv.Itoa(s.Freq)})
			}
			renderTable(out, []string{"column", "unique", "top", "freq"}, body)
		}

		if len(nums) >= 2 || len(flagStatsCols) > 0 {
			cm, err := explore.Correlation(f, flagStatsCols...)
			if err != nil {
				return err
			}
			color.New(color.FgYellow).Fprintln(out, "\nCorrelation")
			header := append([]string{""}, cm.Columns...)
			var body [][]string
			for i, name := range cm.Columns {
				row := []string{name}
				for j := range cm.Columns {
					row = append(row, fmtCorr(cm.Matrix.At(i, j)))
				}
				body = append(body, row)
			}
			renderTable(out, header, body)
		}
		return nil
	},
}

// fmtStat renders a summary statistic with six significant digits.
func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func fmtCorr(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.3f", v)
}

func init() {
	statsCmd.Flags().StringSliceVar(&flagStatsCols, "cols", nil, "correlate only these numeric columns")
	rootCmd.AddCommand(statsCmd)
}
