package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/catalogo-api/pkg/jwt"
)

const frontOrigin = "http://localhost:5173"

func newCORSApp(origins []string) *fiber.App {
	products := memory.NewProductRepository()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:      usecase.NewProductUseCase(products, nil),
		CatalogUC:      usecase.NewCatalogUseCase(memory.NewCatalogRepository(), products),
		JWTSecret:      testJWTSecret,
		AllowedOrigins: origins,
	})
	return app
}

func preflight(t *testing.T, app *fiber.App, origin string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCORS_PreflightSinToken(t *testing.T) {
	app := newCORSApp([]string{frontOrigin, "https://catalogo.example.com"})

	resp := preflight(t, app, frontOrigin)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, frontOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORS_OrigenNoPermitido(t *testing.T) {
	app := newCORSApp([]string{frontOrigin})

	resp := preflight(t, app, "http://evil.example.com")
	defer resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_PeticionSimpleConservaAuth(t *testing.T) {
	app := newCORSApp([]string{frontOrigin})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", frontOrigin)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "CORS no reemplaza el token")

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", frontOrigin)
	req.Header.Set("Authorization", tokenForRole(t, pkgjwt.RoleViewer))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, frontOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_SinOrigenesConfigurados(t *testing.T) {
	resp := preflight(t, newCORSApp(nil), frontOrigin)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
