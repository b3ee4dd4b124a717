package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/siftgo/filter"
)

var (
	flagQuerySQL     string
	flagQueryOut     string
	flagQueryPreview int
)

var queryCmd = &cobra.Command{
	Use:   "query <file>",
	Short: "Run a SELECT statement over the data as table 'df'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagQuerySQL == "" {
			return fmt.Errorf("query needs --sql")
		}
		f, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		res, err := (&filter.SQLFilter{Query: flagQuerySQL}).Apply(f)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		rows, cols := res.Shape()
		fmt.Fprintf(out, "%d rows x %d columns\n", rows, cols)
		previewFrame(out, res, flagQueryPreview)
		if flagQueryOut != "" {
			if err := exportFrame(flagQueryOut, res); err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved to %s\n", flagQueryOut)
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVar(&flagQuerySQL, "sql", "", "SELECT statement; the data is table 'df'")
	queryCmd.Flags().StringVar(&flagQueryOut, "out", "", "write the result to this .csv or .xlsx file")
	queryCmd.Flags().IntVar(&flagQueryPreview, "preview", 10, "number of rows to preview")
	rootCmd.AddCommand(queryCmd)
}
