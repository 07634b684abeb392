package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

type catalogRow struct {
	ID       string `db:"id"`
	Title    string `db:"title"`
	Products string `db:"products"`
}

func (r catalogRow) entity() (*entity.Catalog, error) {
	c := &entity.Catalog{ID: r.ID, Title: r.Title}
	if err := json.Unmarshal([]byte(r.Products), &c.Products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return c, nil
}

// CatalogRepo implementación de repository.CatalogRepository sobre SQLite.
// Las referencias se guardan como arreglo JSON y se consultan con json_each.
type CatalogRepo struct {
	db *sqlx.DB
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func encodeRefs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encode products: %w", err)
	}
	return string(raw), nil
}

func (r *CatalogRepo) Create(ctx context.Context, c *entity.Catalog) error {
	refs, err := encodeRefs(c.Products)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO catalogs (id, title, products) VALUES (?, ?, ?)`, c.ID, c.Title, refs)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert catalog: %w", err)
	}
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (*entity.Catalog, error) {
	var row catalogRow
	if err := r.db.GetContext(ctx, &row, `SELECT id, title, products FROM catalogs WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return row.entity()
}

func (r *CatalogRepo) GetAll(ctx context.Context) ([]*entity.Catalog, error) {
	return r.GetByFilter(ctx, repository.CatalogFilter{})
}

func (r *CatalogRepo) GetByFilter(ctx context.Context, filter repository.CatalogFilter) ([]*entity.Catalog, error) {
	query := `SELECT id, title, products FROM catalogs`
	var args []any
	if filter.ProductID != "" {
		query += ` WHERE EXISTS (SELECT 1 FROM json_each(catalogs.products) WHERE json_each.value = ?)`
		args = append(args, filter.ProductID)
	}
	query += ` ORDER BY rowid`

	var rows []catalogRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	list := make([]*entity.Catalog, 0, len(rows))
	for _, row := range rows {
		c, err := row.entity()
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

func (r *CatalogRepo) Update(ctx context.Context, c *entity.Catalog) error {
	refs, err := encodeRefs(c.Products)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE catalogs SET title = ?, products = ? WHERE id = ?`, c.Title, refs, c.ID); err != nil {
		return fmt.Errorf("update catalog: %w", err)
	}
	return nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM catalogs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}
	return nil
}
