// Package sqlite adaptador embebido (sqlx + modernc.org/sqlite, sin cgo).
// Útil para desarrollo local y para el CLI sin servidor de base de datos.
package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS products(
  id                TEXT PRIMARY KEY,
  title             TEXT NOT NULL DEFAULT '',
  description       TEXT NOT NULL DEFAULT '',
  price             TEXT NOT NULL DEFAULT '0',
  category          TEXT NOT NULL,
  is_active         INTEGER NOT NULL DEFAULT 1,
  unique_properties TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);

CREATE TABLE IF NOT EXISTS catalogs(
  id       TEXT PRIMARY KEY,
  title    TEXT NOT NULL DEFAULT '',
  products TEXT NOT NULL DEFAULT '[]'
);
`

// Open abre la base, la verifica y crea el esquema si hace falta.
// Con ":memory:" se limita el pool a una conexión: cada conexión sería una base distinta.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite schema: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
