package repository

import (
	"context"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
)

// DefectiveProductRepository define el puerto de persistencia para reportes de productos defectuosos.
type DefectiveProductRepository interface {
	Create(ctx context.Context, report *entity.DefectiveProduct) error
	GetByID(ctx context.Context, id int64) (*entity.DefectiveProduct, error)
	List(ctx context.Context, limit, offset int) ([]*entity.DefectiveProduct, error)
	ListByEntrance(ctx context.Context, entranceID int64) ([]*entity.DefectiveProduct, error)
	Update(ctx context.Context, report *entity.DefectiveProduct) error
	Delete(ctx context.Context, id int64) error
}
