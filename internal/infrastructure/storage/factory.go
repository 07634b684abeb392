// Package storage elige el adaptador de persistencia según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/mongo"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/catalogo-api/pkg/config"
)

// Stores repositorios listos para inyectar en los casos de uso.
// Close libera las conexiones del backend; siempre es seguro llamarlo.
type Stores struct {
	Products repository.ProductRepository
	Catalogs repository.CatalogRepository
	Close    func() error
}

// Open construye los repositorios para cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory, "":
		return &Stores{
			Products: memory.NewProductRepository(),
			Catalogs: memory.NewCatalogRepository(),
			Close:    func() error { return nil },
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return &Stores{
			Products: postgres.NewProductRepository(pool),
			Catalogs: postgres.NewCatalogRepository(pool),
			Close:    func() error { pool.Close(); return nil },
		}, nil

	case config.StorageMongo:
		client, db, err := mongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Products: mongo.NewProductRepository(db),
			Catalogs: mongo.NewCatalogRepository(db),
			Close:    func() error { return client.Disconnect(context.Background()) },
		}, nil

	case config.StorageSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.DSN)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Products: sqlite.NewProductRepository(db),
			Catalogs: sqlite.NewCatalogRepository(db),
			Close:    db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("storage driver desconocido: %s", cfg.Storage.Driver)
	}
}
