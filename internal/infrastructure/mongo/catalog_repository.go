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

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository sobre la colección Catalog.
type CatalogRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(db *mongo.Database) *CatalogRepo {
	return &CatalogRepo{coll: db.Collection(CatalogCollection), now: time.Now}
}

func (r *CatalogRepo) Create(ctx context.Context, c *entity.Catalog) error {
	if _, err := r.coll.InsertOne(ctx, newCatalogDocument(c, r.now())); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert catalog: %w", err)
	}
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (*entity.Catalog, error) {
	var doc catalogDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return doc.entity(), nil
}

func (r *CatalogRepo) GetAll(ctx context.Context) ([]*entity.Catalog, error) {
	return r.GetByFilter(ctx, repository.CatalogFilter{})
}

func (r *CatalogRepo) GetByFilter(ctx context.Context, filter repository.CatalogFilter) ([]*entity.Catalog, error) {
	cur, err := r.coll.Find(ctx, catalogQuery(filter), options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	var docs []catalogDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	list := make([]*entity.Catalog, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.entity())
	}
	return list, nil
}

func (r *CatalogRepo) Update(ctx context.Context, c *entity.Catalog) error {
	doc := newCatalogDocument(c, time.Time{})
	set := bson.M{"title": doc.Title, "products": doc.Products}
	if _, err := r.coll.UpdateByID(ctx, c.ID, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("update catalog: %w", err)
	}
	return nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}
	return nil
}
