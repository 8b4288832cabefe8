package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

// Storage agrupa los repositorios sobre un mismo pool.
type Storage struct {
	*TxRunner
	pool *pgxpool.Pool
}

// NewStorage construye los adaptadores PostgreSQL sobre el pool.
func NewStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{TxRunner: NewTxRunner(pool), pool: pool}
}

func (s *Storage) Stores() repository.StoreRepository     { return NewStoreRepository(s.pool) }
func (s *Storage) Products() repository.ProductRepository { return NewProductRepository(s.pool) }
func (s *Storage) Entrances() repository.EntranceRepository {
	return NewEntranceRepository(s.pool)
}
func (s *Storage) Exits() repository.ExitRepository { return NewExitRepository(s.pool) }
func (s *Storage) Devolutions() repository.DevolutionRepository {
	return NewDevolutionRepository(s.pool)
}
func (s *Storage) DefectiveProducts() repository.DefectiveProductRepository {
	return NewDefectiveProductRepository(s.pool)
}
