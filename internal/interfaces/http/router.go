package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	CatalogUC *usecase.CatalogUseCase
	JWTSecret string
	Logger    *logger.Logger

	// AllowedOrigins orígenes CORS; vacío = sin cabeceras CORS.
	AllowedOrigins []string
}

// Router registra las rutas de la API. Todo /api exige Bearer Token salvo el
// preflight CORS; las escrituras además exigen rol admin o editor.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	if len(deps.AllowedOrigins) > 0 {
		app.Use(CORS(deps.AllowedOrigins))
	}

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	canWrite := RequireRole(jwt.RoleAdmin, jwt.RoleEditor)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log.Component("http.products"))
	products.Get("/", productHandler.List)
	products.Get("/category/:category", productHandler.GetByCategory)
	products.Get("/price/:priceLimit", productHandler.GetByPriceLimit)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", canWrite, productHandler.Create)
	products.Put("/:id", canWrite, productHandler.Update)
	products.Delete("/:id", canWrite, productHandler.Delete)

	// Catalogs
	catalogs := api.Group("/catalogs")
	catalogHandler := NewCatalogHandler(deps.CatalogUC, log.Component("http.catalogs"))
	catalogs.Get("/", catalogHandler.List)
	catalogs.Get("/product/:productId/all", catalogHandler.ListByProductID)
	catalogs.Get("/product/:productId", catalogHandler.GetByProductID)
	catalogs.Get("/:id", catalogHandler.GetByID)
	catalogs.Post("/", canWrite, catalogHandler.Create)
	catalogs.Put("/:id", canWrite, catalogHandler.Update)
	catalogs.Delete("/:id", canWrite, catalogHandler.Delete)
}
