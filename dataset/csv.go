package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// ReadCSV parses CSV from r into a frame. The first record is the header;
// every later record becomes a row, with short records padded with nulls.
// Column types are inferred from the cell text.
func ReadCSV(r io.Reader, opts ...Option) (*frame.Frame, error) {
	o := newOptions(opts...)

	reader := csv.NewReader(r)
	reader.Comma = o.Delimiter
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "dataset.ReadCSV: malformed input")
	}
	if len(records) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyFrame, "dataset.ReadCSV: missing header row")
	}

	rows := records[1:]
	blankNullLiterals(rows, o.NullLiterals)
	return frame.InferFrame(records[0], rows)
}

// LoadCSV reads the file at path into a frame.
func LoadCSV(path string, opts ...Option) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset.LoadCSV: open %s", path)
	}
	defer func() { _ = file.Close() }()

	f, err := ReadCSV(file, opts...)
	if err != nil {
		return nil, err
	}
	logger.Info("csv loaded", "path", path, "rows", f.NumRows(), "cols", f.NumCols())
	return f, nil
}

// blankNullLiterals rewrites cells matching one of the extra null literals
// to the empty string so inference reads them as missing.
func blankNullLiterals(rows [][]string, literals []string) {
	if len(literals) == 0 {
		return
	}
	for _, row := range rows {
		for j, cell := range row {
			for _, lit := range literals {
				if strings.EqualFold(strings.TrimSpace(cell), lit) {
					row[j] = ""
					break
				}
			}
		}
	}
}
