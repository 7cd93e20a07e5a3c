package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/deppfellow/txtstore/internal/model"
	"github.com/deppfellow/txtstore/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*RecordRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewRecordRepository(mock), mock
}

func recordRows(records ...model.Record) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "txt"})
	for _, r := range records {
		rows.AddRow(r.ID, r.Text)
	}
	return rows
}

func TestRecordRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertRecordSQL)).
		WithArgs("hello").
		WillReturnRows(recordRows(model.Record{ID: 1, Text: "hello"}))

	got, err := repo.Create(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, model.Record{ID: 1, Text: "hello"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_CreateConstraintViolation(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertRecordSQL)).
		WithArgs("hello").
		WillReturnError(&pgconn.PgError{
			Severity:   "ERROR",
			Code:       "23502",
			Message:    "null value in column \"txt\" violates not-null constraint",
			TableName:  "test",
			ColumnName: "txt",
		})

	_, err := repo.Create(context.Background(), "hello")
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "create", storeErr.Op)
	assert.Equal(t, sqlerr.NotNullViolation, sqlerr.ErrCode(err))
	assert.False(t, IsNotFound(err))
}

func TestRecordRepository_Delete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(deleteRecordSQL)).
		WithArgs(int32(1)).
		WillReturnRows(recordRows(model.Record{ID: 1, Text: "hello"}))

	got, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.Record{ID: 1, Text: "hello"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_DeleteNoMatch(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(deleteRecordSQL)).
		WithArgs(int32(42)).
		WillReturnRows(recordRows())

	_, err := repo.Delete(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "delete record 42: no rows in result set", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_List(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(listRecordsSQL)).
		WillReturnRows(recordRows(
			model.Record{ID: 1, Text: "hello"},
			model.Record{ID: 2, Text: "world"},
		))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.Record{{ID: 1, Text: "hello"}, {ID: 2, Text: "world"}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_ListEmpty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(listRecordsSQL)).WillReturnRows(recordRows())

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecordRepository_ConnectionFailure(t *testing.T) {
	connErr := errors.New("failed to connect: connection refused")

	tests := []struct {
		name   string
		want   string
		expect func(mock pgxmock.PgxPoolIface)
		call   func(repo *RecordRepository) error
	}{
		{
			name: "create",
			want: "create record: failed to connect: connection refused",
			expect: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(insertRecordSQL)).WithArgs("x").WillReturnError(connErr)
			},
			call: func(repo *RecordRepository) error {
				_, err := repo.Create(context.Background(), "x")
				return err
			},
		},
		{
			name: "list",
			want: "list records: failed to connect: connection refused",
			expect: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(listRecordsSQL)).WillReturnError(connErr)
			},
			call: func(repo *RecordRepository) error {
				_, err := repo.List(context.Background())
				return err
			},
		},
		{
			name: "delete",
			want: "delete record 3: failed to connect: connection refused",
			expect: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(deleteRecordSQL)).WithArgs(int32(3)).WillReturnError(connErr)
			},
			call: func(repo *RecordRepository) error {
				_, err := repo.Delete(context.Background(), 3)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.expect(mock)

			err := tt.call(repo)
			require.Error(t, err)

			var storeErr *StoreError
			require.ErrorAs(t, err, &storeErr)
			assert.Equal(t, tt.name, storeErr.Op)
			assert.Equal(t, tt.want, err.Error())
			assert.ErrorIs(t, err, connErr)
			assert.False(t, IsNotFound(err))
		})
	}
}
