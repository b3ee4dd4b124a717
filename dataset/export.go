package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// WriteCSV writes f to w with a header row. Cells render in their text
// form and nulls become empty fields, so a written frame reads back with
// the same dtypes and nulls.
func WriteCSV(w io.Writer, f *frame.Frame, opts ...Option) error {
	o := newOptions(opts...)

	writer := csv.NewWriter(w)
	writer.Comma = o.Delimiter

	if err := writer.Write(f.Columns()); err != nil {
		return errors.Wrap(err, "dataset.WriteCSV: header")
	}
	record := make([]string, f.NumCols())
	for i := 0; i < f.NumRows(); i++ {
		for j := 0; j < f.NumCols(); j++ {
			record[j] = f.ColumnAt(j).CellString(i)
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "dataset.WriteCSV: row %d", i)
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "dataset.WriteCSV: flush")
}

// ExportCSV writes f to the file at path.
func ExportCSV(path string, f *frame.Frame, opts ...Option) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dataset.ExportCSV: create %s", path)
	}
	if err := WriteCSV(file, f, opts...); err != nil {
		_ = file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "dataset.ExportCSV: close %s", path)
}
