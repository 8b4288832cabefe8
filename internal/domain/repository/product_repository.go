package repository

import (
	"context"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/inventory"
)

// ProductFilter filtros opcionales para listar productos.
type ProductFilter struct {
	StoreID int64 // 0 = todas las tiendas
	Limit   int
	Offset  int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID/GetByName devuelven (nil, nil) cuando no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de una tx.
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	// StockTotals devuelve la suma de entradas y salidas por producto.
	// Los productos sin movimientos aparecen con Totals vacío.
	StockTotals(ctx context.Context, productIDs ...int64) (map[int64]inventory.Totals, error)
}
