package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, title, description, price, category, is_active, unique_properties`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	props, err := marshalProperties(product.UniqueProperties)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)`
	_, err = r.q.Exec(ctx, query,
		product.ID, product.Title, product.Description, product.Price,
		string(product.Category), product.IsActive, props,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetAll lista todos los productos en orden de creación.
func (r *ProductRepo) GetAll(ctx context.Context) ([]*entity.Product, error) {
	return r.GetByFilter(ctx, repository.ProductFilter{})
}

// GetByFilter lista los productos que cumplen el filtro; el filtro se evalúa en SQL.
func (r *ProductRepo) GetByFilter(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	if filter.IDs != nil && len(filter.IDs) == 0 {
		return []*entity.Product{}, nil
	}
	where, args := productWhere(filter)
	query := `SELECT ` + productColumns + ` FROM products` + where + ` ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Update reemplaza el producto completo por ID. Sin filas afectadas no es error.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	props, err := marshalProperties(product.UniqueProperties)
	if err != nil {
		return err
	}
	query := `
		UPDATE products SET title = $2, description = $3, price = $4, category = $5, is_active = $6, unique_properties = $7::jsonb
		WHERE id = $1`
	_, err = r.q.Exec(ctx, query,
		product.ID, product.Title, product.Description, product.Price,
		string(product.Category), product.IsActive, props,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto. Los catálogos que lo referencian no se modifican.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p        entity.Product
		category string
		props    []byte
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &category, &p.IsActive, &props); err != nil {
		return nil, err
	}
	p.Category = entity.Category(category)
	if len(props) > 0 {
		if err := json.Unmarshal(props, &p.UniqueProperties); err != nil {
			return nil, fmt.Errorf("decode unique_properties: %w", err)
		}
	}
	return &p, nil
}

func marshalProperties(props entity.UniqueProperties) (string, error) {
	if props == nil {
		props = entity.UniqueProperties{}
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return "", fmt.Errorf("encode unique_properties: %w", err)
	}
	return string(raw), nil
}
