package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/siftgo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set sift configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "delimiter: %s\n", cfg.Delimiter)
		fmt.Fprintf(out, "null_literals: %s\n", strings.Join(cfg.NullLiterals, ","))
		fmt.Fprintf(out, "date_layouts: %s\n", strings.Join(cfg.DateLayouts, ","))
		fmt.Fprintf(out, "categorical_cap: %d\n", cfg.CategoricalCap)
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "plot_width: %g\n", cfg.PlotWidth)
		fmt.Fprintf(out, "plot_height: %g\n", cfg.PlotHeight)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save it to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		next := *cfg
		switch key {
		case "delimiter":
			next.Delimiter = val
		case "null_literals":
			next.NullLiterals = splitList(val)
		case "date_layouts":
			next.DateLayouts = splitList(val)
		case "categorical_cap":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for categorical_cap: %w", err)
			}
			next.CategoricalCap = i
		case "log_level":
			next.LogLevel = val
		case "plot_width":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for plot_width: %w", err)
			}
			next.PlotWidth = f
		case "plot_height":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for plot_height: %w", err)
			}
			next.PlotHeight = f
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := next.Validate(); err != nil {
			return err
		}
		if err := config.Save(&next, cfgFile); err != nil {
			return err
		}
		*cfg = next
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

// splitList parses a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
