package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Convert a data file between .csv and .xlsx",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagExportOut == "" {
			return fmt.Errorf("export needs --out")
		}
		f, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		if err := exportFrame(flagExportOut, f); err != nil {
			return err
		}
		rows, cols := f.Shape()
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d rows x %d columns to %s\n", rows, cols, flagExportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "target .csv or .xlsx file")
	rootCmd.AddCommand(exportCmd)
}
