package mongo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

type productDocument struct {
	ID               string                  `bson:"_id"`
	Title            string                  `bson:"title"`
	Description      string                  `bson:"description"`
	Price            primitive.Decimal128    `bson:"price"`
	Category         string                  `bson:"category"`
	IsActive         bool                    `bson:"is_active"`
	UniqueProperties []entity.UniqueProperty `bson:"unique_properties"`
	CreatedAt        time.Time               `bson:"created_at"`
}

type catalogDocument struct {
	ID        string    `bson:"_id"`
	Title     string    `bson:"title"`
	Products  []string  `bson:"products"`
	CreatedAt time.Time `bson:"created_at"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("price %s: %w", d.String(), err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(v.String())
}

func newProductDocument(p *entity.Product, createdAt time.Time) (productDocument, error) {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return productDocument{}, err
	}
	props := p.UniqueProperties
	if props == nil {
		props = entity.UniqueProperties{}
	}
	return productDocument{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		Price:            price,
		Category:         string(p.Category),
		IsActive:         p.IsActive,
		UniqueProperties: props,
		CreatedAt:        createdAt,
	}, nil
}

func (d productDocument) entity() (*entity.Product, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return nil, fmt.Errorf("decode price: %w", err)
	}
	var props entity.UniqueProperties
	if len(d.UniqueProperties) > 0 {
		props = append(props, d.UniqueProperties...)
	}
	return &entity.Product{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		Price:            price,
		Category:         entity.Category(d.Category),
		IsActive:         d.IsActive,
		UniqueProperties: props,
	}, nil
}

func newCatalogDocument(c *entity.Catalog, createdAt time.Time) catalogDocument {
	products := c.Products
	if products == nil {
		products = []string{}
	}
	return catalogDocument{ID: c.ID, Title: c.Title, Products: products, CreatedAt: createdAt}
}

func (d catalogDocument) entity() *entity.Catalog {
	return &entity.Catalog{ID: d.ID, Title: d.Title, Products: d.Products}
}

// productQuery traduce el filtro a BSON. El límite de precio compara Decimal128 en el servidor.
func productQuery(f repository.ProductFilter) (bson.M, error) {
	q := bson.M{}
	if f.Category != nil {
		q["category"] = string(*f.Category)
	}
	if f.MaxPrice != nil {
		limit, err := toDecimal128(*f.MaxPrice)
		if err != nil {
			return nil, err
		}
		q["price"] = bson.M{"$lte": limit}
	}
	if f.IDs != nil {
		q["_id"] = bson.M{"$in": f.IDs}
	}
	return q, nil
}

// catalogQuery: igualdad contra un arreglo en Mongo significa "contiene".
func catalogQuery(f repository.CatalogFilter) bson.M {
	q := bson.M{}
	if f.ProductID != "" {
		q["products"] = f.ProductID
	}
	return q
}
