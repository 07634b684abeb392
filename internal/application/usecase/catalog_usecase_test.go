package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

func newCatalogUseCase() (*usecase.CatalogUseCase, *countingProducts, *spyCatalogs) {
	products, catalogs := newStores()
	return usecase.NewCatalogUseCase(catalogs, products, usecase.WithClock(clock)), products, catalogs
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregación
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogByID_ResolvesOnlyReferencedProducts(t *testing.T) {
	ctx := context.Background()
	uc, products, catalogs := newCatalogUseCase()
	seed(ctx, products, "P1", entity.CategoryGeneric)
	seed(ctx, products, "P2", entity.CategoryElectric, "Voltage", "220v", "SocketType", "EU")
	seed(ctx, products, "P3", entity.CategoryGeneric)
	require.NoError(t, catalogs.Create(ctx, &entity.Catalog{ID: "C", Title: "Hogar", Products: []string{"P2", "P1"}}))

	got, err := uc.GetCatalogByID(ctx, "C")
	require.NoError(t, err)
	assert.Equal(t, "Hogar", got.Title)
	assert.ElementsMatch(t, []string{"P1", "P2"}, viewIDs(got.Products))
	assert.Equal(t, int32(1), products.getAll.Load(), "un único barrido de productos")

	again, err := uc.GetCatalogByID(ctx, "C")
	require.NoError(t, err)
	assert.Equal(t, got, again, "lecturas sin escrituras intermedias son idénticas")
}

func TestCatalogByID_NotFound(t *testing.T) {
	uc, _, _ := newCatalogUseCase()
	_, err := uc.GetCatalogByID(context.Background(), "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetCatalogs_SingleProductScanAndDanglingRefs(t *testing.T) {
	ctx := context.Background()
	uc, products, catalogs := newCatalogUseCase()
	seed(ctx, products, "P1", entity.CategoryGeneric)
	seed(ctx, products, "P2", entity.CategoryGeneric)
	for i, refs := range [][]string{{"P1"}, {"P1", "P2"}, {"GONE"}} {
		id := string(rune('A' + i))
		require.NoError(t, catalogs.Create(ctx, &entity.Catalog{ID: id, Products: refs}))
	}

	list, err := uc.GetCatalogs(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"P1"}, viewIDs(list[0].Products))
	assert.ElementsMatch(t, []string{"P1", "P2"}, viewIDs(list[1].Products))
	assert.Empty(t, list[2].Products, "referencias colgantes se descartan")
	assert.Equal(t, int32(1), products.getAll.Load())
}

func TestGetCatalogs_StorageFailure(t *testing.T) {
	uc, products, _ := newCatalogUseCase()
	products.failAll = true
	_, err := uc.GetCatalogs(context.Background())
	assert.ErrorIs(t, err, errStore)
}

func TestCatalogByProductID(t *testing.T) {
	ctx := context.Background()
	uc, products, catalogs := newCatalogUseCase()
	seed(ctx, products, "P1", entity.CategoryGeneric)
	require.NoError(t, catalogs.Create(ctx, &entity.Catalog{ID: "C1", Products: []string{"P1"}}))
	require.NoError(t, catalogs.Create(ctx, &entity.Catalog{ID: "C2", Products: []string{"P1"}}))

	got, err := uc.GetCatalogByProductID(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "C1", got.ID)

	all, err := uc.GetCatalogsByProductID(ctx, "P1")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.GetCatalogByProductID(ctx, "P9")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	none, err := uc.GetCatalogsByProductID(ctx, "P9")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCatalogByProductID_ResolvesFirstMatchOnly(t *testing.T) {
	ctx := context.Background()
	uc, products, catalogs := newCatalogUseCase()
	seed(ctx, products, "P1", entity.CategoryGeneric)
	seed(ctx, products, "P2", entity.CategoryGeneric)
	require.NoError(t, catalogs.Create(ctx, &entity.Catalog{ID: "C1", Products: []string{"P1"}}))
	require.NoError(t, catalogs.Create(ctx, &entity.Catalog{ID: "C2", Products: []string{"P2", "P1"}}))

	got, err := uc.GetCatalogByProductID(ctx, " P1 ")
	require.NoError(t, err)
	assert.Equal(t, "C1", got.ID)
	assert.Equal(t, []string{"P1"}, viewIDs(got.Products))
	assert.Equal(t, int32(1), products.getAll.Load())
}

func TestCatalogByProductID_BlankIDMatchesNothing(t *testing.T) {
	ctx := context.Background()
	uc, products, catalogs := newCatalogUseCase()
	seed(ctx, products, "P1", entity.CategoryGeneric)
	require.NoError(t, catalogs.Create(ctx, &entity.Catalog{ID: "C1", Products: []string{"P1"}}))

	for _, blank := range []string{"", "   "} {
		got, err := uc.GetCatalogByProductID(ctx, blank)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domain.ErrNotFound), "%q", blank)

		all, err := uc.GetCatalogsByProductID(ctx, blank)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	}
	assert.Equal(t, int32(0), products.getAll.Load(), "sin coincidencias no se barren productos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escrituras
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogCreate(t *testing.T) {
	ctx := context.Background()
	uc, products, catalogs := newCatalogUseCase()
	seed(ctx, products, "P1", entity.CategoryGeneric)
	seed(ctx, products, "F1", entity.CategoryFresh, "ExpiryDate", "2026-11-30")

	res, err := uc.Create(ctx, dto.CatalogRequest{Title: "Mercado", Products: []string{"P1", "F1", "GONE"}})
	require.NoError(t, err)
	require.True(t, res.OK())

	stored, _ := catalogs.GetByID(ctx, res.Value)
	require.NotNil(t, stored)
	assert.Equal(t, []string{"P1", "F1", "GONE"}, stored.Products)
}

func TestCatalogCreate_Violations(t *testing.T) {
	ctx := context.Background()
	uc, products, catalogs := newCatalogUseCase()
	seed(ctx, products, "P1", entity.CategoryGeneric)
	seed(ctx, products, "F1", entity.CategoryFresh, "ExpiryDate", "2026-10-20")

	cases := []struct {
		name string
		refs []string
		want []string
	}{
		{"duplicados", []string{"P1", "P1"}, []string{catalog.MsgDuplicateProducts}},
		{"fresco vence pronto", []string{"F1"}, []string{catalog.MsgFreshExpiryTooSoon}},
		{"ambas", []string{"F1", "F1", " "}, []string{catalog.MsgEmptyProductReference, catalog.MsgDuplicateProducts, catalog.MsgFreshExpiryTooSoon}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := uc.Create(ctx, dto.CatalogRequest{Title: "X", Products: tc.refs})
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Violations)
		})
	}
	all, _ := catalogs.GetAll(ctx)
	assert.Empty(t, all)
}

func TestCatalogCreate_LogsDanglingReferences(t *testing.T) {
	ctx := context.Background()
	products, catalogs := newStores()
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Out: &buf})
	uc := usecase.NewCatalogUseCase(catalogs, products, usecase.WithClock(clock), usecase.WithLogger(log))
	seed(ctx, products, "P1", entity.CategoryGeneric)

	res, err := uc.Create(ctx, dto.CatalogRequest{Title: "Mixto", Products: []string{"P1", "GONE"}})
	require.NoError(t, err)
	assert.True(t, res.OK(), "las referencias colgantes se aceptan")
	assert.Contains(t, buf.String(), `"dangling":["GONE"]`)
}

func TestCatalogUpdate(t *testing.T) {
	ctx := context.Background()
	uc, products, catalogs := newCatalogUseCase()
	seed(ctx, products, "P1", entity.CategoryGeneric)
	require.NoError(t, catalogs.Create(ctx, &entity.Catalog{ID: "C1", Title: "Viejo"}))

	res, err := uc.Update(ctx, dto.CatalogRequest{ID: "nope", Products: []string{"P1", "P1"}})
	require.NoError(t, err)
	assert.Equal(t, []string{catalog.MsgDuplicateProducts, usecase.MsgCatalogNotFound}, res.Violations)
	assert.Zero(t, catalogs.mutations.Load())

	res, err = uc.Update(ctx, dto.CatalogRequest{ID: "C1", Title: "Nuevo", Products: []string{"P1"}})
	require.NoError(t, err)
	require.True(t, res.OK())
	stored, _ := catalogs.GetByID(ctx, "C1")
	assert.Equal(t, "Nuevo", stored.Title)
	assert.Equal(t, []string{"P1"}, stored.Products)
}

func TestCatalogDelete(t *testing.T) {
	ctx := context.Background()
	uc, _, catalogs := newCatalogUseCase()
	require.NoError(t, catalogs.Create(ctx, &entity.Catalog{ID: "C1"}))

	res, err := uc.Delete(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, []string{usecase.MsgCatalogNotFound}, res.Violations)
	assert.Zero(t, catalogs.mutations.Load(), "no se invoca el borrado")

	res, err = uc.Delete(ctx, "C1")
	require.NoError(t, err)
	assert.True(t, res.OK())
	got, _ := catalogs.GetByID(ctx, "C1")
	assert.Nil(t, got)
}
