package repository

import (
	"context"

	"github.com/deppfellow/txtstore/internal/model"
	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool the record store needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	insertRecordSQL = `INSERT INTO test (txt) VALUES ($1) RETURNING id, txt`
	deleteRecordSQL = `DELETE FROM test WHERE id = $1 RETURNING id, txt`
	listRecordsSQL  = `SELECT id, txt FROM test`
)

// RecordRepository persists records in the test table. It is safe for
// concurrent use; row-level conflicts are serialised by the database.
type RecordRepository struct {
	db Querier
}

// NewRecordRepository creates a RecordRepository on top of db.
func NewRecordRepository(db Querier) *RecordRepository {
	return &RecordRepository{db: db}
}

func scanRecord(row pgx.CollectableRow) (model.Record, error) {
	var r model.Record
	err := row.Scan(&r.ID, &r.Text)
	return r, err
}

// Create inserts txt and returns the stored record with its generated id.
func (r *RecordRepository) Create(ctx context.Context, txt string) (model.Record, error) {
	var record model.Record
	if err := r.db.QueryRow(ctx, insertRecordSQL, txt).Scan(&record.ID, &record.Text); err != nil {
		return model.Record{}, storeError("create", nil, err)
	}
	return record, nil
}

// Delete removes the record with the given id and returns its prior
// contents. Exactly one row must match; no match is a StoreError wrapping
// pgx.ErrNoRows.
func (r *RecordRepository) Delete(ctx context.Context, id int32) (model.Record, error) {
	var record model.Record
	if err := r.db.QueryRow(ctx, deleteRecordSQL, id).Scan(&record.ID, &record.Text); err != nil {
		return model.Record{}, storeError("delete", &id, err)
	}
	return record, nil
}

// List returns every record in no particular order.
func (r *RecordRepository) List(ctx context.Context) ([]model.Record, error) {
	rows, err := r.db.Query(ctx, listRecordsSQL)
	if err != nil {
		return nil, storeError("list", nil, err)
	}

	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, storeError("list", nil, err)
	}

	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}
