package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/siftgo/viz"
)

var (
	flagPlotKind    string
	flagPlotX       string
	flagPlotY       string
	flagPlotOut     string
	flagPlotColorBy string
	flagPlotGroupBy string
	flagPlotBins    int
	flagPlotTitle   string
)

var plotCmd = &cobra.Command{
	Use:   "plot <file>",
	Short: "Render a chart to a .png, .svg, or .pdf file",
	Long: `Plot renders one chart from the data. The kinds and their axes:

  hist     -x numeric column
  bar      -x categorical or boolean column
  scatter  -x and -y numeric columns, optional --color-by
  line     -x datetime or numeric column, -y numeric column
  box      -x numeric column, optional --group-by
  heatmap  correlation matrix over all numeric columns`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFrame(args[0])
		if err != nil {
			return err
		}
		opts := []viz.Option{viz.WithSize(cfg.PlotWidth, cfg.PlotHeight)}
		if flagPlotTitle != "" {
			opts = append(opts, viz.WithTitle(flagPlotTitle))
		}
		if flagPlotBins > 0 {
			opts = append(opts, viz.WithBins(flagPlotBins))
		}

		var saved string
		switch flagPlotKind {
		case "hist":
			if err := needAxes(); err != nil {
				return err
			}
			saved, err = viz.Histogram(f, flagPlotX, flagPlotOut, opts...)
		case "bar":
			if err := needAxes(); err != nil {
				return err
			}
			saved, err = viz.Bar(f, flagPlotX, flagPlotOut, opts...)
		case "scatter":
			if err := needAxes(); err != nil {
				return err
			}
			if flagPlotColorBy != "" {
				opts = append(opts, viz.WithColorBy(flagPlotColorBy))
			}
			saved, err = viz.Scatter(f, flagPlotX, flagPlotY, flagPlotOut, opts...)
		case "line":
			if err := needAxes(); err != nil {
				return err
			}
			saved, err = viz.Line(f, flagPlotX, flagPlotY, flagPlotOut, opts...)
		case "box":
			if err := needAxes(); err != nil {
				return err
			}
			if flagPlotGroupBy != "" {
				opts = append(opts, viz.WithGroupBy(flagPlotGroupBy))
			}
			saved, err = viz.Box(f, flagPlotX, flagPlotOut, opts...)
		case "heatmap":
			saved, err = viz.CorrelationHeatmap(f, flagPlotOut, opts...)
		default:
			return fmt.Errorf("unknown --kind %q: want hist, bar, scatter, line, box, or heatmap", flagPlotKind)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved chart to %s\n", saved)
		return nil
	},
}

// needAxes checks the axis flags the chart kind requires.
func needAxes() error {
	if flagPlotX == "" {
		return fmt.Errorf("--kind %s needs -x", flagPlotKind)
	}
	if (flagPlotKind == "scatter" || flagPlotKind == "line") && flagPlotY == "" {
		return fmt.Errorf("--kind %s needs -y", flagPlotKind)
	}
	return nil
}

func init() {
	plotCmd.Flags().StringVar(&flagPlotKind, "kind", "hist", "chart kind: hist, bar, scatter, line, box, or heatmap")
	plotCmd.Flags().StringVarP(&flagPlotX, "x", "x", "", "x-axis column")
	plotCmd.Flags().StringVarP(&flagPlotY, "y", "y", "", "y-axis column")
	plotCmd.Flags().StringVarP(&flagPlotOut, "output", "o", "chart.png", "output image path (.png, .svg, or .pdf)")
	plotCmd.Flags().StringVar(&flagPlotColorBy, "color-by", "", "color scatter points by this categorical column")
	plotCmd.Flags().StringVar(&flagPlotGroupBy, "group-by", "", "group boxplots by this categorical column")
	plotCmd.Flags().IntVar(&flagPlotBins, "bins", 0, "histogram bin count (0 uses the default)")
	plotCmd.Flags().StringVar(&flagPlotTitle, "title", "", "chart title")
	rootCmd.AddCommand(plotCmd)
}
