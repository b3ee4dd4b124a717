package filter

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver

	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// SQLFilter runs a SELECT statement against the frame, exposed as table
// "df" in an in-memory DuckDB database. Only SELECT statements are
// accepted. The result set round-trips through text, so result column
// dtypes are re-inferred; a query like
//
//	SELECT * FROM df WHERE age > 30
//
// behaves like the equivalent range filter. An empty query keeps everything.
type SQLFilter struct {
	Query string
}

// Name implements Filter.
func (s *SQLFilter) Name() string { return "sql" }

// Apply implements Filter.
func (s *SQLFilter) Apply(f *frame.Frame) (*frame.Frame, error) {
	query := strings.TrimSpace(s.Query)
	if query == "" {
		return f, nil
	}
	if !strings.HasPrefix(strings.ToLower(query), "select") {
		return nil, errors.NewValueError("SQLFilter.Apply", "only SELECT statements are permitted")
	}
	if f.NumCols() == 0 {
		return f, nil
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(err, "open in-memory database")
	}
	defer func() { _ = db.Close() }()

	if err := loadFrameTable(db, f); err != nil {
		return nil, err
	}
	return queryToFrame(db, query)
}

func sqlType(t frame.DType) string {
	switch t {
	case frame.DTypeNumeric:
		return "DOUBLE"
	case frame.DTypeDatetime:
		return "TIMESTAMP"
	case frame.DTypeBoolean:
		return "BOOLEAN"
	default:
		return "VARCHAR"
	}
}

// loadFrameTable creates table "df" and inserts the frame's rows, nulls
// included.
func loadFrameTable(db *sql.DB, f *frame.Frame) error {
	defs := make([]string, f.NumCols())
	for i := 0; i < f.NumCols(); i++ {
		c := f.ColumnAt(i)
		defs[i] = quoteIdentifier(c.Name()) + " " + sqlType(c.DType())
	}
	if _, err := db.Exec("CREATE TABLE df (" + strings.Join(defs, ", ") + ")"); err != nil {
		return errors.Wrap(err, "create table df")
	}

	placeholders := make([]string, f.NumCols())
	for i := range placeholders {
		placeholders[i] = "?"
	}
	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin load transaction")
	}
	stmt, err := tx.Prepare("INSERT INTO df VALUES (" + strings.Join(placeholders, ", ") + ")")
	if err != nil {
		_ = tx.Rollback()
		return errors.Wrap(err, "prepare insert")
	}
	defer func() { _ = stmt.Close() }()

	args := make([]any, f.NumCols())
	for row := 0; row < f.NumRows(); row++ {
		for j := 0; j < f.NumCols(); j++ {
			c := f.ColumnAt(j)
			if !c.IsValid(row) {
				args[j] = nil
				continue
			}
			switch c.DType() {
			case frame.DTypeNumeric:
				args[j] = c.Float(row)
			case frame.DTypeDatetime:
				args[j] = c.Time(row)
			case frame.DTypeBoolean:
				args[j] = c.Bool(row)
			default:
				args[j] = c.Str(row)
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "insert row %d", row)
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit load transaction")
	}
	return nil
}

// queryToFrame runs the SELECT and rebuilds a frame from the result set.
func queryToFrame(db *sql.DB, query string) (*frame.Frame, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, errors.Wrap(err, "run query")
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "read result columns")
	}

	var records [][]string
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "scan result row")
		}
		rec := make([]string, len(cols))
		for i, v := range vals {
			rec[i] = sqlValueString(v)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate result rows")
	}
	return frame.InferFrame(cols, records)
}

func sqlValueString(v any) string {
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
	case int:
		return strconv.Itoa(x)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

// quoteIdentifier quotes a column name for DuckDB when it is not a plain
// identifier. DuckDB uses double quotes.
func quoteIdentifier(name string) string {
	if needsQuoting(name) {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return name
}

func needsQuoting(name string) bool {
	if len(name) == 0 {
		return true
	}
	c := name[0]
	if !isLetter(c) && c != '_' {
		return true
	}
	for i := 1; i < len(name); i++ {
		c = name[i]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			return true
		}
	}
	switch strings.ToUpper(name) {
	case "SELECT", "FROM", "WHERE", "AND", "OR", "NOT", "NULL", "TRUE", "FALSE",
		"TABLE", "JOIN", "ON", "AS", "IN", "IS", "LIKE", "BETWEEN", "CASE",
		"WHEN", "THEN", "ELSE", "END", "ORDER", "BY", "GROUP", "HAVING",
		"LIMIT", "OFFSET", "UNION", "ALL", "DISTINCT", "VALUES", "CAST",
		"DATE", "TIME", "TIMESTAMP":
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
