// Package siftgo provides a toolkit for exploring, filtering, and cleaning
// tabular data files in Go, designed for data pipelines and command-line
// workflows.
//
// siftgo loads CSV and Excel files into typed frames, detects column types
// automatically, and offers a pandas-like surface for the everyday work of
// inspecting a dataset: missing-value summaries, descriptive statistics,
// composable row filters, duplicate and outlier removal, scalers and
// encoders, and chart rendering.
//
// # Features
//
// - Typed frames: numeric, categorical, datetime, and boolean columns with null masks
// - Automatic dtype inference when loading CSV, Excel, or SQL sources
// - Composable filters: free-text search, ranges, category sets, and SQL over DuckDB
// - Cleaning: fill strategies, duplicate removal, IQR outlier removal
// - Preprocessing: standard and min-max scaling, log1p, one-hot and label encoding
// - Charts: histogram, bar, scatter, line, box, and correlation heatmap via gonum/plot
// - CPU-parallel statistics over large frames
//
// # Installation
//
// Install siftgo using go get:
//
//	go get github.com/YuminosukeSato/siftgo
//
// # Quick Start
//
// Load a CSV file and filter it:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/siftgo/dataset"
//	    "github.com/YuminosukeSato/siftgo/filter"
//	)
//
//	func main() {
//	    f, err := dataset.LoadCSV("sales.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    p := filter.NewParams()
//	    p.Search.Query = "Tokyo"
//	    p.Numerics["amount"] = filter.NumericRange{Min: 1000, Max: 50000}
//
//	    res := filter.FromParams(p).Run(f)
//	    fmt.Println(res.Summary())
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - frame: typed columns, null masks, and dtype inference
//   - dataset: CSV, Excel, and SQL loading and export
//   - cleaning: missing values, duplicates, outliers, renames, casts
//   - explore: descriptive statistics, categorical summaries, correlation
//   - filter: composable row filters with typed parameters and SQL support
//   - preprocessing: scalers, log transform, and categorical encoders
//   - viz: chart rendering to PNG, SVG, and PDF files
//   - session: the raw, cleaned, and filtered frame store behind the CLI
//   - cmd/sift: the command-line interface
//
// # Performance
//
// Statistics and transforms parallelize automatically on large frames:
//
//   - Column profiling and correlation fan out across CPU cores past 10,000 rows
//   - One-hot encoding splits row ranges across workers
//   - Small frames stay on one goroutine to avoid scheduling overhead
//
// # License
//
// siftgo is released under the MIT License.
package siftgo
