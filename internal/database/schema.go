package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

//go:embed schema.sql
var schemaSQL string

// Execer runs a statement without returning rows.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EnsureSchema creates the records table if it does not exist yet. It is
// safe to run on every start and leaves existing rows untouched.
func EnsureSchema(ctx context.Context, db Execer, logger *zerolog.Logger) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensuring database schema: %w", err)
	}

	logger.Info().Msg("database schema ready")
	return nil
}
