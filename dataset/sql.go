package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// QuerySQL opens a DuckDB database at dsn (empty for in-memory), runs a
// single query, and returns the result as a frame. DuckDB can read CSV and
// Parquet files directly, so queries like
//
//	SELECT * FROM 'data.parquet' WHERE amount > 100
//
// work without a separate load step.
func QuerySQL(ctx context.Context, dsn, query string) (*frame.Frame, error) {
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "dataset.QuerySQL: open database")
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "dataset.QuerySQL: query")
	}
	defer func() { _ = rows.Close() }()
	return ScanRows(rows)
}

// ScanRows converts a result set into a frame. Values are rendered to text
// and run through the type detector, so a BIGINT column comes back numeric
// and a TIMESTAMP column comes back datetime. SQL NULLs become null cells.
func ScanRows(rows *sql.Rows) (*frame.Frame, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "dataset.ScanRows: columns")
	}

	var records [][]string
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "dataset.ScanRows: scan")
		}
		record := make([]string, len(cols))
		for i, v := range values {
			record[i] = sqlText(v)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "dataset.ScanRows: iterate")
	}
	return frame.InferFrame(cols, records)
}

func sqlText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
