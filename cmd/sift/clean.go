package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/siftgo/cleaning"
)

var (
	flagCleanFill        string
	flagCleanFillCols    []string
	flagCleanFillValue   string
	flagCleanDropMissing bool
	flagCleanDropDups    bool
	flagCleanOutliers    bool
	flagCleanOutlierCols []string
	flagCleanOut         string
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Fill missing values, drop incomplete or duplicate rows, remove outliers",
	Long: `Clean applies the requested steps in a fixed order: fill missing values,
drop rows with remaining nulls, drop duplicate rows, then remove IQR
outliers. Each step reports the row count it left behind.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		rows, cols := f.Shape()
		fmt.Fprintf(out, "Loaded %d rows x %d columns\n", rows, cols)

		if flagCleanFill != "" {
			strategy, err := cleaning.ParseFillStrategy(flagCleanFill)
			if err != nil {
				return err
			}
			var opts []cleaning.FillOption
			if len(flagCleanFillCols) > 0 {
				opts = append(opts, cleaning.WithColumns(flagCleanFillCols...))
			}
			if strategy == cleaning.FillConstant {
				opts = append(opts, cleaning.WithConstant(flagCleanFillValue))
			}
			f, err = cleaning.FillMissing(f, strategy, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Filled missing values (%s)\n", strategy)
		}
		if flagCleanDropMissing {
			f = cleaning.DropMissing(f)
			fmt.Fprintf(out, "Dropped incomplete rows: %d remain\n", f.NumRows())
		}
		if flagCleanDropDups {
			f = cleaning.DropDuplicates(f)
			fmt.Fprintf(out, "Dropped duplicate rows: %d remain\n", f.NumRows())
		}
		if flagCleanOutliers {
			f, err = cleaning.RemoveOutliersIQR(f, flagCleanOutlierCols...)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed IQR outliers: %d remain\n", f.NumRows())
		}

		rows, cols = f.Shape()
		fmt.Fprintf(out, "Result: %d rows x %d columns\n", rows, cols)
		if flagCleanOut != "" {
			if err := exportFrame(flagCleanOut, f); err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved to %s\n", flagCleanOut)
		}
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVar(&flagCleanFill, "fill", "", "fill strategy: mean, median, mode, or constant")
	cleanCmd.Flags().StringSliceVar(&flagCleanFillCols, "fill-cols", nil, "limit filling to these columns")
	cleanCmd.Flags().StringVar(&flagCleanFillValue, "fill-value", "", "replacement value for --fill constant")
	cleanCmd.Flags().BoolVar(&flagCleanDropMissing, "drop-missing", false, "drop rows that still contain nulls")
	cleanCmd.Flags().BoolVar(&flagCleanDropDups, "drop-dups", false, "drop duplicate rows, keeping the first")
	cleanCmd.Flags().BoolVar(&flagCleanOutliers, "drop-outliers", false, "drop rows with IQR outliers in numeric columns")
	cleanCmd.Flags().StringSliceVar(&flagCleanOutlierCols, "outlier-cols", nil, "limit outlier removal to these columns")
	cleanCmd.Flags().StringVar(&flagCleanOut, "out", "", "write the cleaned data to this .csv or .xlsx file")
	rootCmd.AddCommand(cleanCmd)
}
