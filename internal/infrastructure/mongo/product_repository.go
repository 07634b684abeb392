package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la colección Product.
type ProductRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewProductRepository construye el adaptador sobre la base indicada.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection(ProductCollection), now: time.Now}
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	doc, err := newProductDocument(p, r.now())
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var doc productDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return doc.entity()
}

func (r *ProductRepo) GetAll(ctx context.Context) ([]*entity.Product, error) {
	return r.GetByFilter(ctx, repository.ProductFilter{})
}

func (r *ProductRepo) GetByFilter(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	q, err := productQuery(filter)
	if err != nil {
		return nil, err
	}
	cur, err := r.coll.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		p, err := d.entity()
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

// Update reemplaza el documento completo conservando su fecha de creación.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	doc, err := newProductDocument(p, time.Time{})
	if err != nil {
		return err
	}
	set := bson.M{
		"title":             doc.Title,
		"description":       doc.Description,
		"price":             doc.Price,
		"category":          doc.Category,
		"is_active":         doc.IsActive,
		"unique_properties": doc.UniqueProperties,
	}
	if _, err := r.coll.UpdateByID(ctx, p.ID, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
