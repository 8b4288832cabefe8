// Package memory implementa los puertos de repositorio en memoria.
// Se usa en tests y con STORAGE_DRIVER=memory. No aplica claves foráneas:
// borrar una entrada deja sus devoluciones huérfanas.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

type state struct {
	stores      *table[entity.Store]
	products    *table[entity.Product]
	entrances   *table[entity.Entrance]
	exits       *table[entity.Exit]
	devolutions *table[entity.Devolution]
	defectives  *table[entity.DefectiveProduct]
}

// Storage agrupa todas las tablas bajo un único mutex.
type Storage struct {
	mu sync.Mutex
	db *state
}

// New crea un almacenamiento vacío.
func New() *Storage {
	return &Storage{db: &state{
		stores:      newTable[entity.Store](),
		products:    newTable[entity.Product](),
		entrances:   newTable[entity.Entrance](),
		exits:       newTable[entity.Exit](),
		devolutions: newTable[entity.Devolution](),
		defectives:  newTable[entity.DefectiveProduct](),
	}}
}

// noLock se usa dentro de RunMovement, donde el mutex ya está tomado.
type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

func (s *Storage) Stores() repository.StoreRepository {
	return &storeRepo{mu: &s.mu, db: s.db}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepo{mu: &s.mu, db: s.db}
}

func (s *Storage) Entrances() repository.EntranceRepository {
	return &entranceRepo{mu: &s.mu, db: s.db}
}

func (s *Storage) Exits() repository.ExitRepository {
	return &exitRepo{mu: &s.mu, db: s.db}
}

func (s *Storage) Devolutions() repository.DevolutionRepository {
	return &devolutionRepo{mu: &s.mu, db: s.db}
}

func (s *Storage) DefectiveProducts() repository.DefectiveProductRepository {
	return &defectiveRepo{mu: &s.mu, db: s.db}
}

// RunMovement ejecuta fn con el mutex tomado durante todo el callback, lo que
// serializa las salidas igual que SELECT ... FOR UPDATE en PostgreSQL.
// Si fn falla se restauran productos y salidas.
func (s *Storage) RunMovement(ctx context.Context, fn func(products repository.ProductRepository, exits repository.ExitRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	products, exits := s.db.products.clone(), s.db.exits.clone()
	err := fn(&productRepo{mu: noLock{}, db: s.db}, &exitRepo{mu: noLock{}, db: s.db})
	if err != nil {
		s.db.products, s.db.exits = products, exits
		return err
	}
	return nil
}
