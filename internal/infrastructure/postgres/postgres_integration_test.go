//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-tiendas/internal/application/auth"
	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/application/usecase"
	"github.com/jhoicas/Inventario-tiendas/internal/domain"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
	"github.com/jhoicas/Inventario-tiendas/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-tiendas/pkg/config"
)

// setupStorage levanta PostgreSQL en un contenedor, aplica migraciones y devuelve el Storage.
func setupStorage(t *testing.T) *postgres.Storage {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("inventario"),
		tcpostgres.WithUsername("inventario"),
		tcpostgres.WithPassword("inventario"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 10})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applied, err := postgres.Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init"}, applied)

	var status string
	require.NoError(t, pool.QueryRow(ctx, `SELECT status FROM schema_migrations WHERE version = $1`, "0001").Scan(&status))
	assert.Equal(t, "applied", status)

	again, err := postgres.Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Empty(t, again, "las migraciones aplicadas no se repiten")

	return postgres.NewStorage(pool)
}

func TestPostgres_Repositorios(t *testing.T) {
	ctx := context.Background()
	db := setupStorage(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	store := &entity.Store{Name: "store-a", Email: "a@mail.com", PasswordHash: "x", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Stores().Create(ctx, store))
	assert.Positive(t, store.ID)

	err := db.Stores().Create(ctx, &entity.Store{Name: "store-b", Email: "a@mail.com", PasswordHash: "x", CreatedAt: now, UpdatedAt: now})
	assert.True(t, errors.Is(err, domain.ErrEmailExists))
	err = db.Stores().Create(ctx, &entity.Store{Name: "store-a", Email: "b@mail.com", PasswordHash: "x", CreatedAt: now, UpdatedAt: now})
	assert.True(t, errors.Is(err, domain.ErrStoreNameExists))

	product := &entity.Product{StoreID: store.ID, Name: "Shirt", UnitPrice: decimal.RequireFromString("19.90"), CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Products().Create(ctx, product))

	got, err := db.Products().GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, product.UnitPrice.Equal(got.UnitPrice))

	missing, err := db.Products().GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	e := &entity.Entrance{ProductID: product.ID, SupplierName: "Acme", Quantity: 10, TotalPrice: decimal.NewFromInt(50), Date: now}
	require.NoError(t, db.Entrances().Create(ctx, e))
	require.NoError(t, db.Exits().Create(ctx, &entity.Exit{ProductID: product.ID, Description: "venta", Quantity: 3, TotalPrice: decimal.NewFromInt(30), Date: now}))

	totals, err := db.Products().StockTotals(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), totals[product.ID].Entrances)
	assert.Equal(t, int64(3), totals[product.ID].Exits)

	list, err := db.Products().List(ctx, repository.ProductFilter{StoreID: store.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	d := &entity.Devolution{EntranceID: e.ID, Description: "caja rota", Quantity: 1, Date: now}
	require.NoError(t, db.Devolutions().Create(ctx, d))

	// ON DELETE CASCADE: borrar la tienda elimina todo lo que cuelga de ella.
	require.NoError(t, db.Stores().Delete(ctx, store.ID))
	gotD, err := db.Devolutions().GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Nil(t, gotD)
}

func TestPostgres_SalidasConcurrentesNoSobrevenden(t *testing.T) {
	ctx := context.Background()
	db := setupStorage(t)

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	authUC := auth.NewAuthUseCase(db.Stores(), hasher, auth.JWTConfig{Secret: "s", ExpMinutes: 5, Issuer: "t"})
	products := usecase.NewProductUseCase(db.Stores(), db.Products(), db.Entrances(), db.Exits())
	entrances := usecase.NewEntranceUseCase(db.Products(), db.Entrances(), db.Devolutions(), db.DefectiveProducts())
	exits := usecase.NewExitUseCase(db, db.Products(), db.Exits())

	s, err := authUC.Register(ctx, dto.RegisterStoreRequest{Name: "store-a", Email: "a@mail.com", Password: "secret"})
	require.NoError(t, err)
	ident := auth.Identity{StoreID: s.ID, StoreName: s.Name}
	p, err := products.Create(ctx, ident, dto.CreateProductRequest{Name: "Shirt", UnitPrice: decimal.NewFromInt(10), StoreID: s.ID})
	require.NoError(t, err)
	_, err = entrances.Create(ctx, ident, dto.EntranceRequest{SupplierName: "Acme", Quantity: 100, TotalPrice: decimal.NewFromInt(100), ProductID: p.ID})
	require.NoError(t, err)

	var ok atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := exits.Create(ctx, ident, dto.ExitRequest{Description: "venta web", Quantity: 30, TotalPrice: decimal.NewFromInt(30), ProductID: p.ID})
			if err == nil {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(3), ok.Load())
	detail, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), detail.StockQuantity)
}
