package repository

import (
	"errors"
	"fmt"

	"github.com/deppfellow/txtstore/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ sqlerr.StoreFailure = (*StoreError)(nil)

// StoreError is any failure surfaced by the record store.
type StoreError struct {
	// Op names the store operation: "create", "list" or "delete".
	Op string
	// ID is the record id for operations that target one row.
	ID  *int32
	Err error
}

func (e *StoreError) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s record %d: %v", e.Op, *e.ID, e.Err)
	}
	if e.Op == "list" {
		return fmt.Sprintf("list records: %v", e.Err)
	}
	return fmt.Sprintf("%s record: %v", e.Op, e.Err)
}

// StoreOperation names the failed operation. It marks the error as a store
// failure for the HTTP error mapping.
func (e *StoreError) StoreOperation() string {
	return e.Op
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is the store failing to match any row.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// storeError wraps a driver error. Server-side errors are converted so their
// SQLSTATE classification travels with them.
func storeError(op string, id *int32, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		err = sqlerr.ConvertPgError(pgErr)
	}
	return &StoreError{Op: op, ID: id, Err: err}
}
