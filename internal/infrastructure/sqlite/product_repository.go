package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

type productRow struct {
	ID               string `db:"id"`
	Title            string `db:"title"`
	Description      string `db:"description"`
	Price            string `db:"price"`
	Category         string `db:"category"`
	IsActive         bool   `db:"is_active"`
	UniqueProperties string `db:"unique_properties"`
}

func (r productRow) entity() (*entity.Product, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return nil, fmt.Errorf("decode price %q: %w", r.Price, err)
	}
	p := &entity.Product{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       price,
		Category:    entity.Category(r.Category),
		IsActive:    r.IsActive,
	}
	if err := json.Unmarshal([]byte(r.UniqueProperties), &p.UniqueProperties); err != nil {
		return nil, fmt.Errorf("decode unique_properties: %w", err)
	}
	if len(p.UniqueProperties) == 0 {
		p.UniqueProperties = nil
	}
	return p, nil
}

func newProductRow(p *entity.Product) (productRow, error) {
	props := p.UniqueProperties
	if props == nil {
		props = entity.UniqueProperties{}
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return productRow{}, fmt.Errorf("encode unique_properties: %w", err)
	}
	return productRow{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		Price:            p.Price.String(),
		Category:         string(p.Category),
		IsActive:         p.IsActive,
		UniqueProperties: string(raw),
	}, nil
}

// ProductRepo implementación de repository.ProductRepository sobre SQLite.
// El precio se guarda como texto decimal exacto; el límite de precio se evalúa tras leer.
type ProductRepo struct {
	db *sqlx.DB
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const selectProducts = `SELECT id, title, description, price, category, is_active, unique_properties FROM products`

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	row, err := newProductRow(p)
	if err != nil {
		return err
	}
	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO products (id, title, description, price, category, is_active, unique_properties)
		VALUES (:id, :title, :description, :price, :category, :is_active, :unique_properties)`, row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var row productRow
	if err := r.db.GetContext(ctx, &row, selectProducts+` WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.entity()
}

func (r *ProductRepo) GetAll(ctx context.Context) ([]*entity.Product, error) {
	return r.GetByFilter(ctx, repository.ProductFilter{})
}

// GetByFilter empuja categoría e IDs a SQL; el precio se compara en decimal.
func (r *ProductRepo) GetByFilter(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	if filter.IDs != nil && len(filter.IDs) == 0 {
		return []*entity.Product{}, nil
	}
	query, args, err := productQuery(filter)
	if err != nil {
		return nil, err
	}
	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.entity()
		if err != nil {
			return nil, err
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	row, err := newProductRow(p)
	if err != nil {
		return err
	}
	_, err = r.db.NamedExecContext(ctx, `
		UPDATE products SET title = :title, description = :description, price = :price,
			category = :category, is_active = :is_active, unique_properties = :unique_properties
		WHERE id = :id`, row)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func productQuery(f repository.ProductFilter) (string, []any, error) {
	query := selectProducts + ` WHERE 1 = 1`
	var args []any
	if f.Category != nil {
		query += ` AND category = ?`
		args = append(args, string(*f.Category))
	}
	if len(f.IDs) > 0 {
		query += ` AND id IN (?)`
		args = append(args, f.IDs)
	}
	query += ` ORDER BY rowid`
	if len(f.IDs) == 0 {
		return query, args, nil
	}
	q, a, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, fmt.Errorf("build product query: %w", err)
	}
	return q, a, nil
}
