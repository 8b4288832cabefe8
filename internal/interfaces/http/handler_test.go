package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-tiendas/internal/application/auth"
	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-tiendas/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Inventario-tiendas/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Servidor de test sobre almacenamiento en memoria
// ──────────────────────────────────────────────────────────────────────────────

type testServer struct {
	t   *testing.T
	app *fiber.App
}

func newTestServer(t *testing.T, loginRateLimit int) *testServer {
	t.Helper()
	metrics := apphttp.NewMetrics(prometheus.NewRegistry(), "inventario")
	app := apphttp.NewApp(apphttp.AppConfig{Name: "inventario-test", Metrics: metrics})
	apphttp.Router(app, apphttp.NewRouterDeps(memory.New(), apphttp.ServiceConfig{
		JWT:            auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
		BcryptCost:     bcrypt.MinCost,
		Reports:        pdf.NewStockReportGenerator(),
		Metrics:        metrics,
		LoginRateLimit: loginRateLimit,
	}))
	return &testServer{t: t, app: app}
}

// do envía la petición; body se serializa a JSON si no es nil.
func (s *testServer) do(method, path, token string, body any) *http.Response {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func expectError(t *testing.T, resp *http.Response, status int, code string) {
	t.Helper()
	assert.Equal(t, status, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, code, body.Code)
}

// storeSession registra una tienda y devuelve su id y token.
func (s *testServer) storeSession(name string) (int64, string) {
	s.t.Helper()
	email := name + "@mail.com"
	resp := s.do(http.MethodPost, "/api/auth/register", "", fiber.Map{"name": name, "email": email, "password": "secret"})
	require.Equal(s.t, http.StatusCreated, resp.StatusCode)
	store := decode[dto.StoreResponse](s.t, resp)

	resp = s.do(http.MethodPost, "/api/auth/login", "", fiber.Map{"email": email, "password": "secret"})
	require.Equal(s.t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](s.t, resp)
	require.NotEmpty(s.t, login.Token)
	return store.ID, login.Token
}

func (s *testServer) createProduct(token string, storeID int64, name string) int64 {
	s.t.Helper()
	resp := s.do(http.MethodPost, "/api/products", token, fiber.Map{"name": name, "unit_price": "12.50", "store_id": storeID})
	require.Equal(s.t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ProductResponse](s.t, resp).ID
}

func (s *testServer) createEntrance(token string, productID, qty int64) int64 {
	s.t.Helper()
	resp := s.do(http.MethodPost, "/api/entrances", token, fiber.Map{
		"supplier_name": "Textiles SA", "quantity": qty, "total_price": "100.00", "product_id": productID,
	})
	require.Equal(s.t, http.StatusCreated, resp.StatusCode)
	return decode[dto.EntranceResponse](s.t, resp).ID
}

func (s *testServer) stock(productID int64) int64 {
	s.t.Helper()
	resp := s.do(http.MethodGet, fmt.Sprintf("/api/products/%d", productID), "", nil)
	require.Equal(s.t, http.StatusOK, resp.StatusCode)
	return decode[dto.ProductDetailResponse](s.t, resp).StockQuantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_RegistroYLogin(t *testing.T) {
	s := newTestServer(t, 0)
	id, token := s.storeSession("centro")
	assert.Positive(t, id)
	assert.NotEmpty(t, token)

	resp := s.do(http.MethodPost, "/api/auth/register", "", fiber.Map{"name": "centro", "email": "otra@mail.com", "password": "secret"})
	expectError(t, resp, http.StatusConflict, "STORE_NAME_EXISTS")

	resp = s.do(http.MethodPost, "/api/auth/login", "", fiber.Map{"email": "nadie@mail.com", "password": "secret"})
	expectError(t, resp, http.StatusNotFound, "INVALID_EMAIL")

	resp = s.do(http.MethodPost, "/api/auth/login", "", fiber.Map{"email": "centro@mail.com", "password": "incorrecta"})
	expectError(t, resp, http.StatusUnauthorized, "INVALID_PASSWORD")
}

func TestAuth_RegistroInvalido_Retorna400(t *testing.T) {
	s := newTestServer(t, 0)

	resp := s.do(http.MethodPost, "/api/auth/register", "", fiber.Map{"name": "x", "email": "x@mail.com", "password": "secret"})
	expectError(t, resp, http.StatusBadRequest, "VALIDATION")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	raw, err := s.app.Test(req, -1)
	require.NoError(t, err)
	expectError(t, raw, http.StatusBadRequest, "INVALID_BODY")
}

func TestAuth_LoginLimitadoPorIP(t *testing.T) {
	s := newTestServer(t, 2)
	body := fiber.Map{"email": "nadie@mail.com", "password": "secret"}

	for i := 0; i < 2; i++ {
		resp := s.do(http.MethodPost, "/api/auth/login", "", body)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}
	resp := s.do(http.MethodPost, "/api/auth/login", "", body)
	expectError(t, resp, http.StatusTooManyRequests, "RATE_LIMITED")
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventario_EscenarioCamisa(t *testing.T) {
	s := newTestServer(t, 0)
	storeID, token := s.storeSession("centro")
	shirt := s.createProduct(token, storeID, "Shirt")
	s.createEntrance(token, shirt, 100)

	resp := s.do(http.MethodPost, "/api/exits", token, fiber.Map{
		"description": "venta mostrador", "quantity": 150, "total_price": "10.00", "product_id": shirt,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Equal(t, "insufficient stock", body.Message)
	assert.Equal(t, int64(100), s.stock(shirt))

	resp = s.do(http.MethodPost, "/api/exits", token, fiber.Map{
		"description": "venta mostrador", "quantity": 50, "total_price": "10.00", "product_id": shirt,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, int64(50), s.stock(shirt))
}

func TestInventario_OtraTiendaNoPuedeEscribir(t *testing.T) {
	s := newTestServer(t, 0)
	storeA, tokenA := s.storeSession("tienda-a")
	_, tokenB := s.storeSession("tienda-b")
	product := s.createProduct(tokenA, storeA, "Pantalon")
	entrance := s.createEntrance(tokenA, product, 10)

	resp := s.do(http.MethodPost, "/api/entrances", tokenB, fiber.Map{
		"supplier_name": "Intruso", "quantity": 5, "total_price": "1.00", "product_id": product,
	})
	expectError(t, resp, http.StatusUnauthorized, "NOT_AUTHORIZED")

	resp = s.do(http.MethodPut, fmt.Sprintf("/api/products/%d", product), tokenB, fiber.Map{"name": "Robado", "unit_price": "1.00"})
	expectError(t, resp, http.StatusUnauthorized, "NOT_AUTHORIZED")

	resp = s.do(http.MethodDelete, fmt.Sprintf("/api/entrances/%d", entrance), tokenB, nil)
	expectError(t, resp, http.StatusUnauthorized, "NOT_AUTHORIZED")

	resp = s.do(http.MethodPut, fmt.Sprintf("/api/stores/%d", storeA), tokenB, fiber.Map{"name": "tienda-z"})
	expectError(t, resp, http.StatusUnauthorized, "NOT_AUTHORIZED")

	resp = s.do(http.MethodGet, fmt.Sprintf("/api/stores/%d/stock-report", storeA), tokenB, nil)
	expectError(t, resp, http.StatusUnauthorized, "NOT_AUTHORIZED")

	assert.Equal(t, int64(10), s.stock(product))
	resp = s.do(http.MethodGet, "/api/entrances", "", nil)
	list := decode[dto.EntranceListResponse](t, resp)
	assert.Len(t, list.Items, 1)
}

func TestInventario_EscrituraSinToken_Retorna401(t *testing.T) {
	s := newTestServer(t, 0)
	for _, path := range []string{"/api/products", "/api/entrances", "/api/exits", "/api/devolutions", "/api/defective-products"} {
		resp := s.do(http.MethodPost, path, "", fiber.Map{})
		expectError(t, resp, http.StatusUnauthorized, "MISSING_TOKEN")
	}
}

func TestInventario_LecturasPublicas(t *testing.T) {
	s := newTestServer(t, 0)
	storeA, tokenA := s.storeSession("tienda-a")
	storeB, tokenB := s.storeSession("tienda-b")
	s.createProduct(tokenA, storeA, "Camisa")
	s.createProduct(tokenB, storeB, "Zapato")

	resp := s.do(http.MethodGet, fmt.Sprintf("/api/products?store_id=%d", storeB), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ProductListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Zapato", list.Items[0].Name)
	assert.Equal(t, int64(0), list.Items[0].StockQuantity)

	resp = s.do(http.MethodGet, "/api/products?limit=1&offset=1", "", nil)
	list = decode[dto.ProductListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Zapato", list.Items[0].Name)

	resp = s.do(http.MethodGet, "/api/products?limit=1&offset=1", "", nil)
	raw := decode[map[string]any](t, resp)
	assert.Equal(t, map[string]any{"limit": float64(1), "offset": float64(1)}, raw["page"])

	resp = s.do(http.MethodGet, "/api/products?limit=1000", "", nil)
	expectError(t, resp, http.StatusBadRequest, "VALIDATION")

	resp = s.do(http.MethodGet, fmt.Sprintf("/api/stores/%d", storeA), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decode[dto.StoreDetailResponse](t, resp)
	assert.Equal(t, "tienda-a", detail.Name)
	require.Len(t, detail.Products, 1)
	assert.Equal(t, "Camisa", detail.Products[0].Name)
}

func TestInventario_IDsInvalidosYNoEncontrados(t *testing.T) {
	s := newTestServer(t, 0)

	resp := s.do(http.MethodGet, "/api/products/abc", "", nil)
	expectError(t, resp, http.StatusBadRequest, "VALIDATION")

	resp = s.do(http.MethodGet, "/api/products/999", "", nil)
	expectError(t, resp, http.StatusNotFound, "PRODUCT_NOT_FOUND")

	resp = s.do(http.MethodGet, "/api/exits/999", "", nil)
	expectError(t, resp, http.StatusNotFound, "EXIT_NOT_FOUND")

	resp = s.do(http.MethodGet, "/api/stores/999", "", nil)
	expectError(t, resp, http.StatusNotFound, "STORE_NOT_FOUND")
}

func TestInventario_DevolucionesYDefectuosos(t *testing.T) {
	s := newTestServer(t, 0)
	storeID, token := s.storeSession("centro")
	product := s.createProduct(token, storeID, "Camisa")
	entrance := s.createEntrance(token, product, 20)

	resp := s.do(http.MethodPost, "/api/devolutions", token, fiber.Map{"description": "talla equivocada", "quantity": 2, "entrance_id": entrance})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	devolution := decode[dto.DevolutionResponse](t, resp)

	resp = s.do(http.MethodPost, "/api/defective-products", token, fiber.Map{"description": "costura rota", "quantity": 1, "entrance_id": entrance})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(http.MethodPut, fmt.Sprintf("/api/devolutions/%d", devolution.ID), token, fiber.Map{"description": "talla equivocada XL", "quantity": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.DevolutionResponse](t, resp)
	assert.Equal(t, int64(3), updated.Quantity)
	assert.Equal(t, entrance, updated.EntranceID)

	resp = s.do(http.MethodGet, fmt.Sprintf("/api/entrances/%d", entrance), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decode[dto.EntranceDetailResponse](t, resp)
	assert.Len(t, detail.Devolutions, 1)
	assert.Len(t, detail.DefectiveProducts, 1)

	resp = s.do(http.MethodDelete, fmt.Sprintf("/api/devolutions/%d", devolution.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestInventario_ReporteDeStockPDF(t *testing.T) {
	s := newTestServer(t, 0)
	storeID, token := s.storeSession("centro")
	product := s.createProduct(token, storeID, "Camisa")
	s.createEntrance(token, product, 5)

	resp := s.do(http.MethodGet, fmt.Sprintf("/api/stores/%d/stock-report", storeID), token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestApp_HealthYCabeceras(t *testing.T) {
	s := newTestServer(t, 0)

	resp := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestApp_RutaInexistente_Retorna404JSON(t *testing.T) {
	s := newTestServer(t, 0)
	resp := s.do(http.MethodGet, "/api/no-existe", "", nil)
	expectError(t, resp, http.StatusNotFound, "HTTP_404")
}

func TestApp_Metricas(t *testing.T) {
	s := newTestServer(t, 0)
	storeID, token := s.storeSession("centro")
	product := s.createProduct(token, storeID, "Camisa")
	resp := s.do(http.MethodPost, "/api/exits", token, fiber.Map{
		"description": "venta mostrador", "quantity": 1, "total_price": "10.00", "product_id": product,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = s.do(http.MethodGet, "/metrics", "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "inventario_http_requests_total")
	assert.Contains(t, text, `path="/api/products`)
	assert.Contains(t, text, "inventario_exit_stock_rejections_total 1")
}
