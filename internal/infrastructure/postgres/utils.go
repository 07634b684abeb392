package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// productWhere traduce el filtro a una cláusula WHERE con placeholders posicionales.
func productWhere(f repository.ProductFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Category != nil {
		args = append(args, string(*f.Category))
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if f.IDs != nil {
		args = append(args, f.IDs)
		conds = append(conds, fmt.Sprintf("id = ANY($%d)", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// catalogWhere traduce el filtro de catálogos.
func catalogWhere(f repository.CatalogFilter) (string, []any) {
	if f.ProductID == "" {
		return "", nil
	}
	return " WHERE $1 = ANY(product_ids)", []any{f.ProductID}
}
