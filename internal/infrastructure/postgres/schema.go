package postgres

import (
	"context"
	"fmt"
)

// schemaStatements tablas del catálogo. Los catálogos guardan solo IDs de producto
// (sin FK): las referencias colgantes se toleran y se filtran al leer.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id                TEXT PRIMARY KEY,
		title             TEXT NOT NULL DEFAULT '',
		description       TEXT NOT NULL DEFAULT '',
		price             NUMERIC(18,4) NOT NULL DEFAULT 0,
		category          TEXT NOT NULL,
		is_active         BOOLEAN NOT NULL DEFAULT TRUE,
		unique_properties JSONB NOT NULL DEFAULT '[]'::jsonb,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category)`,
	`CREATE INDEX IF NOT EXISTS idx_products_price ON products (price)`,
	`CREATE TABLE IF NOT EXISTS catalogs (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL DEFAULT '',
		product_ids TEXT[] NOT NULL DEFAULT '{}',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_catalogs_product_ids ON catalogs USING GIN (product_ids)`,
}

// EnsureSchema crea las tablas si no existen. Idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
