// Package sqlerr classifies database driver errors.
//
// It turns PostgreSQL SQLSTATE codes into a small set of categories and
// describes them in terms a client can read, so a failed query can be
// reported inside the API's internal error envelope.
package sqlerr

import "github.com/jackc/pgx/v5/pgconn"

// Code is the category of a database error.
type Code string

const (
	Other                Code = "other"
	NotNullViolation     Code = "not_null_violation"
	ForeignKeyViolation  Code = "foreign_key_violation"
	UniqueViolation      Code = "unique_violation"
	CheckViolation       Code = "check_violation"
	ExclusionViolation   Code = "exclusion_violation"
	InvalidTextValue     Code = "invalid_text_representation"
	NumericOutOfRange    Code = "numeric_value_out_of_range"
	StringTooLong        Code = "string_data_right_truncation"
	UndefinedTable       Code = "undefined_table"
	UndefinedColumn      Code = "undefined_column"
	SyntaxError          Code = "syntax_error"
	ConnectionFailure    Code = "connection_failure"
	InsufficientResource Code = "insufficient_resources"
	QueryCanceled        Code = "query_canceled"
)

// pgCodes maps SQLSTATE values onto categories. Anything missing is Other.
var pgCodes = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"23P01": ExclusionViolation,
	"22P02": InvalidTextValue,
	"22003": NumericOutOfRange,
	"22001": StringTooLong,
	"42P01": UndefinedTable,
	"42703": UndefinedColumn,
	"42601": SyntaxError,
	"57014": QueryCanceled,
}

// classPrefixes maps two-character SQLSTATE classes whose members share a category.
var classPrefixes = map[string]Code{
	"08": ConnectionFailure,
	"53": InsufficientResource,
}

// MapCode returns the category for a SQLSTATE code.
func MapCode(sqlState string) Code {
	if code, ok := pgCodes[sqlState]; ok {
		return code
	}
	if len(sqlState) == 5 {
		if code, ok := classPrefixes[sqlState[:2]]; ok {
			return code
		}
	}
	return Other
}

// Severity mirrors the PostgreSQL message severities.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// MapSeverity normalises the driver's severity string, defaulting to ERROR.
func MapSeverity(severity string) Severity {
	switch s := Severity(severity); s {
	case SeverityFatal, SeverityPanic, SeverityWarning, SeverityNotice,
		SeverityDebug, SeverityInfo, SeverityLog:
		return s
	default:
		return SeverityError
	}
}

// Error is a classified database error. It is JSON-encodable and is what
// clients see as the "error" member of an internal error response.
type Error struct {
	Code           Code     `json:"code"`
	Severity       Severity `json:"severity"`
	DatabaseCode   string   `json:"database_code"`
	Message        string   `json:"message"`
	Hint           string   `json:"hint,omitempty"`
	SchemaName     string   `json:"schema,omitempty"`
	TableName      string   `json:"table,omitempty"`
	ColumnName     string   `json:"column,omitempty"`
	DataTypeName   string   `json:"data_type,omitempty"`
	ConstraintName string   `json:"constraint,omitempty"`

	driverErr *pgconn.PgError
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error.
func (e *Error) Unwrap() error {
	if e.driverErr == nil {
		return nil
	}
	return e.driverErr
}
