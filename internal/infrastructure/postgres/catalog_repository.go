package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Acepta pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func (r *CatalogRepo) Create(ctx context.Context, c *entity.Catalog) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO catalogs (id, title, product_ids) VALUES ($1, $2, $3)`,
		c.ID, c.Title, productIDs(c.Products),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert catalog: %w", err)
	}
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (*entity.Catalog, error) {
	var c entity.Catalog
	err := r.q.QueryRow(ctx, `SELECT id, title, product_ids FROM catalogs WHERE id = $1`, id).
		Scan(&c.ID, &c.Title, &c.Products)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return &c, nil
}

func (r *CatalogRepo) GetAll(ctx context.Context) ([]*entity.Catalog, error) {
	return r.GetByFilter(ctx, repository.CatalogFilter{})
}

// GetByFilter filtra en SQL con el operador ANY sobre el arreglo de referencias.
func (r *CatalogRepo) GetByFilter(ctx context.Context, filter repository.CatalogFilter) ([]*entity.Catalog, error) {
	where, args := catalogWhere(filter)
	rows, err := r.q.Query(ctx, `SELECT id, title, product_ids FROM catalogs`+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Catalog, 0)
	for rows.Next() {
		var c entity.Catalog
		if err := rows.Scan(&c.ID, &c.Title, &c.Products); err != nil {
			return nil, fmt.Errorf("scan catalog: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	return list, nil
}

func (r *CatalogRepo) Update(ctx context.Context, c *entity.Catalog) error {
	_, err := r.q.Exec(ctx,
		`UPDATE catalogs SET title = $2, product_ids = $3 WHERE id = $1`,
		c.ID, c.Title, productIDs(c.Products),
	)
	if err != nil {
		return fmt.Errorf("update catalog: %w", err)
	}
	return nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM catalogs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}
	return nil
}

// productIDs evita enviar NULL a una columna NOT NULL.
func productIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
