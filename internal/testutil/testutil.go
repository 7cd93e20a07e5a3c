// Package testutil holds shared fixtures for package tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/deppfellow/txtstore/internal/config"
	"github.com/deppfellow/txtstore/internal/database"
	"github.com/deppfellow/txtstore/internal/model"
	"github.com/deppfellow/txtstore/internal/repository"
	"github.com/deppfellow/txtstore/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// Config returns a complete configuration for tests.
func Config() *config.Config {
	obs := config.DefaultObservabilityConfig()
	obs.ServiceName = config.ServiceName
	obs.Environment = "test"

	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "test",
			Password:        "test",
			Name:            "test",
			SSLMode:         "disable",
			MaxOpenConns:    4,
			MaxIdleConns:    1,
			ConnMaxLifetime: 60,
			ConnMaxIdleTime: 60,
			QueryTimeout:    5,
		},
		Observability: obs,
	}
}

// NewServer builds a Server on a pgxmock pool. The mock is closed when the
// test ends.
func NewServer(t *testing.T) (*server.Server, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	logger := zerolog.Nop()
	db := database.NewWithPool(mock, &logger)
	t.Cleanup(mock.Close)

	return server.NewWithDatabase(Config(), &logger, nil, db), mock
}

// MemoryStore is an in-memory record store with the same failure shapes as
// the PostgreSQL repository.
type MemoryStore struct {
	mu      sync.Mutex
	nextID  int32
	records map[int32]model.Record

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, records: make(map[int32]model.Record)}
}

func (s *MemoryStore) Create(ctx context.Context, txt string) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail(ctx, "create", nil); err != nil {
		return model.Record{}, err
	}

	r := model.Record{ID: s.nextID, Text: txt}
	s.records[r.ID] = r
	s.nextID++
	return r, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int32) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail(ctx, "delete", &id); err != nil {
		return model.Record{}, err
	}

	r, ok := s.records[id]
	if !ok {
		return model.Record{}, &repository.StoreError{Op: "delete", ID: &id, Err: pgx.ErrNoRows}
	}
	delete(s.records, id)
	return r, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail(ctx, "list", nil); err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, len(s.records))
	for _, r := range s.records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (s *MemoryStore) fail(ctx context.Context, op string, id *int32) error {
	if err := ctx.Err(); err != nil {
		return &repository.StoreError{Op: op, ID: id, Err: err}
	}
	if s.Err != nil {
		return &repository.StoreError{Op: op, ID: id, Err: s.Err}
	}
	return nil
}
