package repository

import (
	"context"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
// La implementación vive en infrastructure.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id int64) (*entity.Store, error)
	GetByName(ctx context.Context, name string) (*entity.Store, error)
	GetByEmail(ctx context.Context, email string) (*entity.Store, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id int64) error
}
