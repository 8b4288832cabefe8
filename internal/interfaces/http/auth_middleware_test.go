package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-tiendas/internal/application/auth"
	"github.com/jhoicas/Inventario-tiendas/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Inventario-tiendas/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Inventario-tiendas/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testStoreID   = int64(7)
	testStoreName = "Tienda Centro"
	testIssuer    = "inventario-tiendas-test"
	testExpMin    = 60
)

// buildMeApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler que devuelve la identidad cargada en locals.
func buildMeApp() *fiber.App {
	authUC := auth.NewAuthUseCase(memory.New().Stores(), auth.NewPasswordHasher(bcrypt.MinCost), auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(authUC), func(c *fiber.Ctx) error {
		ident := apphttp.GetIdentity(c)
		return c.JSON(fiber.Map{"store_id": ident.StoreID, "store_name": ident.StoreName})
	})
	return app
}

func doMe(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bearer(t *testing.T, secret string, expMin int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testStoreID, testStoreName, testIssuer, expMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeIdentidad(t *testing.T) {
	resp := doMe(t, buildMeApp(), bearer(t, testJWTSecret, testExpMin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		StoreID   int64  `json:"store_id"`
		StoreName string `json:"store_name"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testStoreID, body.StoreID)
	assert.Equal(t, testStoreName, body.StoreName)
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	resp := doMe(t, buildMeApp(), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	cases := map[string]string{
		"malformado":        "Bearer token.invalido.aqui",
		"sin esquema":       "token",
		"esquema distinto":  "Basic dXNlcjpwYXNz",
		"secret incorrecto": bearer(t, "otro-secret-completamente-distinto", testExpMin),
		"expirado":          bearer(t, testJWTSecret, -1),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			resp := doMe(t, buildMeApp(), header)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), "INVALID_TOKEN")
		})
	}
}

func TestAuthMiddleware_BearerSinToken_Retorna401(t *testing.T) {
	resp := doMe(t, buildMeApp(), "Bearer   ")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
