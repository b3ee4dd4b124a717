package dataset

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// ReadExcel parses a workbook from r. The sheet is picked by WithSheet or
// WithSheetIndex (default: the first sheet); its first row is the header and
// the remaining rows go through the same inference as CSV input.
func ReadExcel(r io.Reader, opts ...Option) (*frame.Frame, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "dataset.ReadExcel: open workbook")
	}
	defer func() { _ = x.Close() }()
	return sheetToFrame(x, newOptions(opts...))
}

// LoadExcel reads the workbook at path into a frame.
func LoadExcel(path string, opts ...Option) (*frame.Frame, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset.LoadExcel: open %s", path)
	}
	defer func() { _ = x.Close() }()

	f, err := sheetToFrame(x, newOptions(opts...))
	if err != nil {
		return nil, err
	}
	logger.Info("excel loaded", "path", path, "rows", f.NumRows(), "cols", f.NumCols())
	return f, nil
}

func sheetToFrame(x *excelize.File, o *Options) (*frame.Frame, error) {
	sheet := o.Sheet
	if sheet == "" {
		sheet = x.GetSheetName(o.SheetIndex)
	}
	if sheet == "" {
		return nil, errors.NewValueError("dataset.ReadExcel", "no such sheet")
	}

	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset.ReadExcel: sheet %s", sheet)
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyFrame, "dataset.ReadExcel: missing header row")
	}

	body := rows[1:]
	blankNullLiterals(body, o.NullLiterals)
	return frame.InferFrame(rows[0], body)
}

// ExportExcel writes f to path as a workbook with a single sheet (named by
// WithSheet, default "Sheet1"). Numeric and boolean cells are written typed;
// datetime and categorical cells as text; null cells stay empty, so the
// workbook reads back with the same dtypes and nulls.
func ExportExcel(path string, f *frame.Frame, opts ...Option) error {
	o := newOptions(opts...)
	sheet := o.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}

	x := excelize.NewFile()
	defer func() { _ = x.Close() }()
	if sheet != "Sheet1" {
		if err := x.SetSheetName("Sheet1", sheet); err != nil {
			return errors.Wrapf(err, "dataset.ExportExcel: sheet %s", sheet)
		}
	}

	for j, name := range f.Columns() {
		if err := setCell(x, sheet, j+1, 1, name); err != nil {
			return err
		}
	}
	for i := 0; i < f.NumRows(); i++ {
		for j := 0; j < f.NumCols(); j++ {
			c := f.ColumnAt(j)
			if !c.IsValid(i) {
				continue
			}
			var v interface{}
			switch c.DType() {
			case frame.DTypeNumeric:
				v = c.Float(i)
			case frame.DTypeBoolean:
				v = c.Bool(i)
			default:
				v = c.CellString(i)
			}
			if err := setCell(x, sheet, j+1, i+2, v); err != nil {
				return err
			}
		}
	}
	return errors.Wrapf(x.SaveAs(path), "dataset.ExportExcel: save %s", path)
}

func setCell(x *excelize.File, sheet string, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.Wrapf(err, "dataset.ExportExcel: cell (%d,%d)", col, row)
	}
	if err := x.SetCellValue(sheet, cell, v); err != nil {
		return errors.Wrapf(err, "dataset.ExportExcel: cell %s", cell)
	}
	return nil
}
