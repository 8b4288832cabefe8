package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-tiendas/internal/domain"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/inventory"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
	"github.com/jhoicas/Inventario-tiendas/internal/infrastructure/memory"
)

func TestProducts_NombreUnicoYSinStockPersistido(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	products := db.Products()

	p := &entity.Product{StoreID: 1, Name: "Shirt", StockQuantity: 99}
	require.NoError(t, products.Create(ctx, p))
	assert.Equal(t, int64(1), p.ID)

	err := products.Create(ctx, &entity.Product{StoreID: 2, Name: "Shirt"})
	assert.True(t, errors.Is(err, domain.ErrProductNameExists))

	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.StockQuantity)

	missing, err := products.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProducts_ListFiltroYPaginacion(t *testing.T) {
	ctx := context.Background()
	products := memory.New().Products()
	for i, name := range []string{"a1", "b1", "a2", "a3"} {
		store := int64(1)
		if name[0] == 'b' {
			store = 2
		}
		require.NoError(t, products.Create(ctx, &entity.Product{StoreID: store, Name: name}), i)
	}

	list, err := products.List(ctx, repository.ProductFilter{StoreID: 1, Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a2", list[0].Name)
	assert.Equal(t, "a3", list[1].Name)

	all, err := products.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestProducts_StockTotals(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	p := &entity.Product{StoreID: 1, Name: "Shirt"}
	require.NoError(t, db.Products().Create(ctx, p))
	require.NoError(t, db.Entrances().Create(ctx, &entity.Entrance{ProductID: p.ID, Quantity: 10}))
	require.NoError(t, db.Entrances().Create(ctx, &entity.Entrance{ProductID: p.ID, Quantity: 5}))
	require.NoError(t, db.Exits().Create(ctx, &entity.Exit{ProductID: p.ID, Quantity: 4}))

	totals, err := db.Products().StockTotals(ctx, p.ID, 999)
	require.NoError(t, err)
	assert.Equal(t, inventory.Totals{Entrances: 15, Exits: 4}, totals[p.ID])
	_, ok := totals[999]
	assert.False(t, ok)
}

func TestRunMovement_RestauraSiFalla(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	p := &entity.Product{StoreID: 1, Name: "Shirt"}
	require.NoError(t, db.Products().Create(ctx, p))

	boom := errors.New("boom")
	err := db.RunMovement(ctx, func(products repository.ProductRepository, exits repository.ExitRepository) error {
		require.NoError(t, exits.Create(ctx, &entity.Exit{ProductID: p.ID, Quantity: 1}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := db.Exits().List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = db.RunMovement(ctx, func(products repository.ProductRepository, exits repository.ExitRepository) error {
		return exits.Create(ctx, &entity.Exit{ProductID: p.ID, Quantity: 1})
	})
	require.NoError(t, err)
	list, err = db.Exits().ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStores_Unicidad(t *testing.T) {
	ctx := context.Background()
	stores := memory.New().Stores()
	a := &entity.Store{Name: "a", Email: "a@x.com"}
	require.NoError(t, stores.Create(ctx, a))
	b := &entity.Store{Name: "b", Email: "b@x.com"}
	require.NoError(t, stores.Create(ctx, b))

	b.Email = "a@x.com"
	assert.True(t, errors.Is(stores.Update(ctx, b), domain.ErrEmailExists))

	got, err := stores.GetByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}
