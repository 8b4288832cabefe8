package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-tiendas/internal/application/auth"
	"github.com/jhoicas/Inventario-tiendas/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC             *auth.AuthUseCase
	StoreUC            *usecase.StoreUseCase
	ProductUC          *usecase.ProductUseCase
	EntranceUC         *usecase.EntranceUseCase
	ExitUC             *usecase.ExitUseCase
	DevolutionUC       *usecase.DevolutionUseCase
	DefectiveProductUC *usecase.DefectiveProductUseCase
	ReportUC           *usecase.ReportUseCase
	Metrics            *Metrics
	LoginRateLimit     int // por minuto y por IP; 0 desactiva
}

// crudHandler operaciones comunes de los recursos de inventario.
type crudHandler interface {
	Create(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	List(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// Router registra las rutas de la API. Las lecturas son públicas; las escrituras requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.AuthUC)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", LoginRateLimit(deps.LoginRateLimit), authHandler.Login)

	// Stores
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC, deps.ReportUC)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", requireAuth, storeHandler.Update)
	stores.Delete("/:id", requireAuth, storeHandler.Delete)
	stores.Get("/:id/stock-report", requireAuth, storeHandler.StockReport)

	mountCRUD(api.Group("/products"), requireAuth, NewProductHandler(deps.ProductUC))
	mountCRUD(api.Group("/entrances"), requireAuth, NewEntranceHandler(deps.EntranceUC))
	mountCRUD(api.Group("/exits"), requireAuth, NewExitHandler(deps.ExitUC, deps.Metrics))
	mountCRUD(api.Group("/devolutions"), requireAuth, NewDevolutionHandler(deps.DevolutionUC))
	mountCRUD(api.Group("/defective-products"), requireAuth, NewDefectiveProductHandler(deps.DefectiveProductUC))
}

func mountCRUD(group fiber.Router, requireAuth fiber.Handler, h crudHandler) {
	group.Get("/", h.List)
	group.Get("/:id", h.GetByID)
	group.Post("/", requireAuth, h.Create)
	group.Put("/:id", requireAuth, h.Update)
	group.Delete("/:id", requireAuth, h.Delete)
}

// ServiceConfig parámetros para construir los casos de uso.
type ServiceConfig struct {
	JWT            auth.JWTConfig
	BcryptCost     int
	Reports        usecase.StockReportGenerator
	Metrics        *Metrics
	LoginRateLimit int
}

// NewRouterDeps construye los casos de uso sobre el backend de persistencia elegido.
func NewRouterDeps(s usecase.Storage, cfg ServiceConfig) RouterDeps {
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	return RouterDeps{
		AuthUC:             auth.NewAuthUseCase(s.Stores(), hasher, cfg.JWT),
		StoreUC:            usecase.NewStoreUseCase(s.Stores(), s.Products(), hasher),
		ProductUC:          usecase.NewProductUseCase(s.Stores(), s.Products(), s.Entrances(), s.Exits()),
		EntranceUC:         usecase.NewEntranceUseCase(s.Products(), s.Entrances(), s.Devolutions(), s.DefectiveProducts()),
		ExitUC:             usecase.NewExitUseCase(s, s.Products(), s.Exits()),
		DevolutionUC:       usecase.NewDevolutionUseCase(s.Products(), s.Entrances(), s.Devolutions()),
		DefectiveProductUC: usecase.NewDefectiveProductUseCase(s.Products(), s.Entrances(), s.DefectiveProducts()),
		ReportUC:           usecase.NewReportUseCase(s.Stores(), s.Products(), cfg.Reports),
		Metrics:            cfg.Metrics,
		LoginRateLimit:     cfg.LoginRateLimit,
	}
}
