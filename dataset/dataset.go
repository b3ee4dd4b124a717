// Package dataset loads tabular files into frames and exports frames back
// out. Every reader runs cell text through the frame type detector, so a
// CSV file, an Excel sheet, and a SQL result set all arrive with the same
// column dtypes and null handling.
package dataset

import "github.com/YuminosukeSato/siftgo/pkg/log"

var logger = log.GetLoggerWithName("dataset")

// Options configure the readers and writers.
type Options struct {
	// Delimiter separates CSV fields. Defaults to ','.
	Delimiter rune

	// NullLiterals lists extra cell values (compared trimmed and
	// case-insensitively) treated as null on top of the built-in set.
	NullLiterals []string

	// Sheet selects an Excel sheet by name. Empty falls back to SheetIndex.
	Sheet string

	// SheetIndex selects an Excel sheet by position when Sheet is empty.
	SheetIndex int
}

// Option mutates Options.
type Option func(*Options)

func newOptions(opts ...Option) *Options {
	o := &Options{Delimiter: ','}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithDelimiter sets the CSV field delimiter.
func WithDelimiter(d rune) Option {
	return func(o *Options) { o.Delimiter = d }
}

// WithNullLiterals adds cell values to treat as null.
func WithNullLiterals(literals ...string) Option {
	return func(o *Options) { o.NullLiterals = append(o.NullLiterals, literals...) }
}

// WithSheet selects an Excel sheet by name.
func WithSheet(name string) Option {
	return func(o *Options) { o.Sheet = name }
}

// WithSheetIndex selects an Excel sheet by position.
func WithSheetIndex(i int) Option {
	return func(o *Options) { o.SheetIndex = i }
}
