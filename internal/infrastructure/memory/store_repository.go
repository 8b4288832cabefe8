package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-tiendas/internal/domain"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
)

type storeRepo struct {
	mu sync.Locker
	db *state
}

func (r *storeRepo) Create(_ context.Context, store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkUnique(store); err != nil {
		return err
	}
	store.ID = r.db.stores.nextID()
	r.db.stores.put(store.ID, *store)
	return nil
}

func (r *storeRepo) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.stores.get(id), nil
}

func (r *storeRepo) GetByName(_ context.Context, name string) (*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.stores.find(func(s *entity.Store) bool { return s.Name == name }), nil
}

func (r *storeRepo) GetByEmail(_ context.Context, email string) (*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.stores.find(func(s *entity.Store) bool { return s.Email == email }), nil
}

func (r *storeRepo) List(_ context.Context, limit, offset int) ([]*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.stores.filter(nil, limit, offset), nil
}

func (r *storeRepo) Update(_ context.Context, store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.db.stores.has(store.ID) {
		return nil
	}
	if err := r.checkUnique(store); err != nil {
		return err
	}
	r.db.stores.put(store.ID, *store)
	return nil
}

func (r *storeRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.db.stores.remove(id)
	return nil
}

// checkUnique replica las restricciones UNIQUE de name y email.
func (r *storeRepo) checkUnique(store *entity.Store) error {
	if other := r.db.stores.find(func(s *entity.Store) bool { return s.Name == store.Name }); other != nil && other.ID != store.ID {
		return domain.ErrStoreNameExists
	}
	if other := r.db.stores.find(func(s *entity.Store) bool { return s.Email == store.Email }); other != nil && other.ID != store.ID {
		return domain.ErrEmailExists
	}
	return nil
}
