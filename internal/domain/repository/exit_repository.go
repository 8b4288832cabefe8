package repository

import (
	"context"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
)

// ExitRepository define el puerto de persistencia para salidas de stock.
type ExitRepository interface {
	Create(ctx context.Context, exit *entity.Exit) error
	GetByID(ctx context.Context, id int64) (*entity.Exit, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Exit, error)
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Exit, error)
	Update(ctx context.Context, exit *entity.Exit) error
	Delete(ctx context.Context, id int64) error
}
