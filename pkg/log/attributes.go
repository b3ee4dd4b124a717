// Package log defines standard attribute keys for data pipeline operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in SiftGo. Using these standard keys enables better
// log analysis, monitoring, and debugging of load/clean/filter workflows.
//
// The attributes are organized into categories:
//   - Dataset and Operation Context
//   - Frame Shape and Characteristics
//   - Filter Results
//   - Performance Metrics
//   - Error Context
//
// These keys follow a hierarchical naming convention (e.g., "dataset.name",
// "data.rows") to enable structured log analysis and filtering.

package log

// Dataset and Operation Context
// These attributes identify the dataset, session, and operation being performed.
const (
	// DatasetKey identifies the dataset being processed.
	// Examples: "sales_2024.csv", "orders.xlsx", "warehouse.duckdb"
	DatasetKey = "dataset.name"

	// SourceKey specifies the origin kind of the dataset.
	// Standard values: "csv", "excel", "sql"
	SourceKey = "dataset.source"

	// SessionIDKey provides a unique identifier for a session store instance.
	// This is useful for tracking multiple concurrent analysis sessions.
	SessionIDKey = "session.id"

	// OperationKey specifies the data operation being performed.
	// Standard values: "load", "detect", "filter", "clean", "describe",
	// "transform", "render", "export", "query"
	OperationKey = "op.name"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "filter", "dataset", "cleaning", "explore", "preprocessing", "viz"
	ComponentKey = "op.component"
)

// Frame Shape and Characteristics
// These attributes describe the structure and properties of frames being processed.
const (
	// RowsKey indicates the number of rows in the frame.
	// This is crucial for understanding the scale of data being processed.
	RowsKey = "data.rows"

	// ColumnsKey indicates the number of columns in the frame.
	// Important for dimensionality tracking and debugging shape mismatches.
	ColumnsKey = "data.columns"

	// ColumnKey names a single column an operation is acting on.
	// Examples: "age", "signup_date", "region"
	ColumnKey = "data.column"

	// DTypeKey specifies the column type involved in the operation.
	// Standard values: "numeric", "categorical", "datetime", "boolean"
	DTypeKey = "data.dtype"

	// NullsKey indicates the number of null cells involved in the operation.
	// Useful for diagnosing unexpected row loss in filters and cleaning.
	NullsKey = "data.nulls"
)

// Filter Results
// These attributes capture the inputs and outcomes of filter passes.
const (
	// FilterKey identifies the filter being applied.
	// Standard values: "search", "date", "numeric", "categorical", "boolean", "sql"
	FilterKey = "filter.name"

	// FilterColumnKey names the column a single-column filter targets.
	FilterColumnKey = "filter.column"

	// QueryKey records the query text of a search or SQL filter.
	QueryKey = "filter.query"

	// RowsInKey indicates the row count entering a filter step.
	RowsInKey = "filter.rows_in"

	// RowsOutKey indicates the row count surviving a filter step.
	RowsOutKey = "filter.rows_out"

	// RetainedPctKey records the percentage of rows retained by the whole pass.
	RetainedPctKey = "filter.retained_pct"

	// WarningsKey indicates the number of fail-open warnings raised in a pass.
	WarningsKey = "filter.warnings"
)

// Performance Metrics
// These attributes capture timing and resource usage information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	// This is essential for performance monitoring and optimization.
	DurationMsKey = "perf.duration_ms"

	// CellsKey records the number of cells scanned by an operation.
	// Useful for throughput monitoring of search and statistics passes.
	CellsKey = "perf.cells"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "COLUMN_NOT_FOUND", "TYPE_MISMATCH", "SQL_REJECTED"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ValidationError", "FilterError", "ColumnNotFoundError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Check column name spelling", "Use a SELECT statement"
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard data operations
	OperationLoad      = "load"
	OperationDetect    = "detect"
	OperationFilter    = "filter"
	OperationClean     = "clean"
	OperationDescribe  = "describe"
	OperationTransform = "transform"
	OperationRender    = "render"
	OperationExport    = "export"
	OperationQuery     = "query"

	// Standard components
	ComponentFrame         = "frame"
	ComponentFilter        = "filter"
	ComponentDataset       = "dataset"
	ComponentCleaning      = "cleaning"
	ComponentExplore       = "explore"
	ComponentPreprocessing = "preprocessing"
	ComponentViz           = "viz"
	ComponentSession       = "session"

	// Standard error codes
	ErrorColumnNotFound    = "COLUMN_NOT_FOUND"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyFrame        = "EMPTY_FRAME"
	ErrorTypeMismatch      = "TYPE_MISMATCH"
	ErrorNotFitted         = "NOT_FITTED"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorSQLRejected       = "SQL_REJECTED"
)
