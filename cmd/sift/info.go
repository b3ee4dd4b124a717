package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/siftgo/cleaning"
	"github.com/YuminosukeSato/siftgo/filter"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show shape, column categories, and missing values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		rows, cols := f.Shape()
		fmt.Fprintf(out, "%s: %d rows x %d columns\n", filepath.Base(args[0]), rows, cols)
		ct := filter.Detect(f)
		fmt.Fprintf(out, "%d numeric, %d categorical, %d datetime, %d boolean\n\n",
			len(ct.Numeric), len(ct.Categorical), len(ct.Datetime), len(ct.Boolean))

		color.New(color.FgYellow).Fprintln(out, "Columns")
		var body [][]string
		for i := 0; i < f.NumCols(); i++ {
			c := f.ColumnAt(i)
			body = append(body, []string{
				c.Name(),
				c.DType().String(),
				strconv.Itoa(c.NullCount()),
				strconv.Itoa(c.NUnique()),
			})
		}
		renderTable(out, []string{"column", "dtype", "nulls", "unique"}, body)

		var missing [][]string
		for _, m := range cleaning.MissingSummary(f) {
			if m.Count == 0 {
				continue
			}
			missing = append(missing, []string{m.Column, strconv.Itoa(m.Count), fmt.Sprintf("%.1f%%", m.Pct)})
		}
		if len(missing) > 0 {
			color.New(color.FgYellow).Fprintln(out, "\nMissing values")
			renderTable(out, []string{"column", "missing", "pct"}, missing)
		}

		if len(ct.Categorical) > 0 {
			color.New(color.FgYellow).Fprintln(out, "\nCategorical values")
			for _, name := range ct.Categorical {
				c, err := f.Column(name)
				if err != nil {
					continue
				}
				if c.NUnique() > cfg.CategoricalCap {
					fmt.Fprintf(out, "%s: %d distinct values (over cap %d)\n", name, c.NUnique(), cfg.CategoricalCap)
					continue
				}
				values, err := filter.CategoricalOptions(f, name)
				if err != nil {
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", name, strings.Join(values, ", "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
