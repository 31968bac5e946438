package pg

import (
	"context"
)

// value хранится как NUMERIC: F(92) не помещается в BIGINT.
const createCalculationsTable = `
CREATE TABLE IF NOT EXISTS calculations (
	id          SERIAL PRIMARY KEY,
	position    INTEGER NOT NULL,
	strategy    VARCHAR(16) NOT NULL,
	value       NUMERIC(20, 0) NOT NULL,
	duration_ns BIGINT NOT NULL,
	cache_hit   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate создаёт таблицу calculations, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createCalculationsTable)
	return err
}
