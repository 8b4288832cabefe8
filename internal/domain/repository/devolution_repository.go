package repository

import (
	"context"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
)

// DevolutionRepository define el puerto de persistencia para devoluciones.
type DevolutionRepository interface {
	Create(ctx context.Context, devolution *entity.Devolution) error
	GetByID(ctx context.Context, id int64) (*entity.Devolution, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Devolution, error)
	ListByEntrance(ctx context.Context, entranceID int64) ([]*entity.Devolution, error)
	Update(ctx context.Context, devolution *entity.Devolution) error
	Delete(ctx context.Context, id int64) error
}
