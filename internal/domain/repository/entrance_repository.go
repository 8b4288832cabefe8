package repository

import (
	"context"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
)

// EntranceRepository define el puerto de persistencia para entradas de stock.
type EntranceRepository interface {
	Create(ctx context.Context, entrance *entity.Entrance) error
	GetByID(ctx context.Context, id int64) (*entity.Entrance, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Entrance, error)
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Entrance, error)
	Update(ctx context.Context, entrance *entity.Entrance) error
	Delete(ctx context.Context, id int64) error
}
