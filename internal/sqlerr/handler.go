package sqlerr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/txtstore/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// Classify is ErrCode extended to the failures that never reach the
// server: missing rows and deadlines.
func Classify(err error) Code {
	if code := ErrCode(err); code != Other {
		return code
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		return NoRows
	case errors.Is(err, context.DeadlineExceeded):
		return Timeout
	case pgconn.Timeout(err):
		return Timeout
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return ConnectionException
	}

	return Other
}

// ConvertPgError converts a pgconn.PgError into our Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// Summary is a short, human readable description of a failure for logs.
//
// Example:
//
//	unique violation on Test.Txt
func Summary(err error) string {
	code := Classify(err)

	var sqlErr *Error
	if !errors.As(err, &sqlErr) {
		return humanizeText(string(code))
	}

	target := humanizeText(sqlErr.TableName)
	if sqlErr.ColumnName != "" {
		target += "." + humanizeText(sqlErr.ColumnName)
	}
	if target == "" {
		return humanizeText(string(code))
	}

	return fmt.Sprintf("%s on %s", strings.ToLower(humanizeText(string(code))), target)
}

// humanizeText converts snake_case identifiers into Title Case.
//
//	"first_name" -> "First Name"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// StoreFailure is implemented by the errors the record store returns.
type StoreFailure interface {
	error
	StoreOperation() string
}

// IsStoreFailure reports whether err wraps a record store failure.
func IsStoreFailure(err error) bool {
	var sf StoreFailure
	return errors.As(err, &sf)
}

// HandleError maps a failure onto the HTTPError returned to the client.
//
// Errors that already are *errs.HTTPError are returned unchanged. A store
// failure, whatever its cause (no matching row, constraint violation, lost
// connection), becomes a 500 whose plain-text body is err.Error(). Anything
// else is a generic internal error that does not leak its message.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if !IsStoreFailure(err) {
		return errs.NewInternalServerError().WithCause(err)
	}

	message := err.Error()
	if message == "" {
		message = errs.NewInternalServerError().Message
	}

	return errs.NewStoreError(message).WithCause(err)
}
