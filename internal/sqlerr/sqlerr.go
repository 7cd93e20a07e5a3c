// Package sqlerr specifically handles database driver errors.
//
// It turns cryptic driver errors (SQLSTATE codes, severities) into a
// structured Error for logging, and owns the policy that maps every store
// failure onto the response the client sees.
package sqlerr

import "fmt"

// Code is a coarse classification of a database failure.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExclusionViolation  Code = "exclusion_violation"
	UndefinedTable      Code = "undefined_table"
	InvalidText         Code = "invalid_text_representation"
	ConnectionException Code = "connection_exception"
	InsufficientRes     Code = "insufficient_resources"
	QueryCanceled       Code = "query_canceled"
	AdminShutdown       Code = "admin_shutdown"
	NoRows              Code = "no_rows"
	Timeout             Code = "timeout"
)

// Severity mirrors the Postgres message severity.
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

// Error is a driver error normalised for switching and logging.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (SQLSTATE %s)", e.Message, e.DatabaseCode)
}

// Unwrap exposes the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE onto a Code. Connection class codes (08xxx) and
// resource class codes (53xxx) are grouped.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	case "42P01":
		return UndefinedTable
	case "22P02":
		return InvalidText
	case "57014":
		return QueryCanceled
	case "57P01":
		return AdminShutdown
	}

	if len(sqlState) == 5 {
		switch sqlState[:2] {
		case "08":
			return ConnectionException
		case "53":
			return InsufficientRes
		}
	}

	return Other
}

// MapSeverity maps the (non-localized) severity string onto a Severity.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}
