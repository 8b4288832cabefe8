package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
)

type entranceRepo struct {
	mu sync.Locker
	db *state
}

func (r *entranceRepo) Create(_ context.Context, e *entity.Entrance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.db.entrances.nextID()
	r.db.entrances.put(e.ID, *e)
	return nil
}

func (r *entranceRepo) GetByID(_ context.Context, id int64) (*entity.Entrance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.entrances.get(id), nil
}

func (r *entranceRepo) List(_ context.Context, limit, offset int) ([]*entity.Entrance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.entrances.filter(nil, limit, offset), nil
}

func (r *entranceRepo) ListByProduct(_ context.Context, productID int64) ([]*entity.Entrance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.entrances.filter(func(e *entity.Entrance) bool { return e.ProductID == productID }, 0, 0), nil
}

func (r *entranceRepo) Update(_ context.Context, e *entity.Entrance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db.entrances.has(e.ID) {
		r.db.entrances.put(e.ID, *e)
	}
	return nil
}

func (r *entranceRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.db.entrances.remove(id)
	return nil
}

type exitRepo struct {
	mu sync.Locker
	db *state
}

func (r *exitRepo) Create(_ context.Context, x *entity.Exit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	x.ID = r.db.exits.nextID()
	r.db.exits.put(x.ID, *x)
	return nil
}

func (r *exitRepo) GetByID(_ context.Context, id int64) (*entity.Exit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.exits.get(id), nil
}

func (r *exitRepo) List(_ context.Context, limit, offset int) ([]*entity.Exit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.exits.filter(nil, limit, offset), nil
}

func (r *exitRepo) ListByProduct(_ context.Context, productID int64) ([]*entity.Exit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.exits.filter(func(x *entity.Exit) bool { return x.ProductID == productID }, 0, 0), nil
}

func (r *exitRepo) Update(_ context.Context, x *entity.Exit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db.exits.has(x.ID) {
		r.db.exits.put(x.ID, *x)
	}
	return nil
}

func (r *exitRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.db.exits.remove(id)
	return nil
}

type devolutionRepo struct {
	mu sync.Locker
	db *state
}

func (r *devolutionRepo) Create(_ context.Context, d *entity.Devolution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = r.db.devolutions.nextID()
	r.db.devolutions.put(d.ID, *d)
	return nil
}

func (r *devolutionRepo) GetByID(_ context.Context, id int64) (*entity.Devolution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.devolutions.get(id), nil
}

func (r *devolutionRepo) List(_ context.Context, limit, offset int) ([]*entity.Devolution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.devolutions.filter(nil, limit, offset), nil
}

func (r *devolutionRepo) ListByEntrance(_ context.Context, entranceID int64) ([]*entity.Devolution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.devolutions.filter(func(d *entity.Devolution) bool { return d.EntranceID == entranceID }, 0, 0), nil
}

func (r *devolutionRepo) Update(_ context.Context, d *entity.Devolution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db.devolutions.has(d.ID) {
		r.db.devolutions.put(d.ID, *d)
	}
	return nil
}

func (r *devolutionRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.db.devolutions.remove(id)
	return nil
}

type defectiveRepo struct {
	mu sync.Locker
	db *state
}

func (r *defectiveRepo) Create(_ context.Context, d *entity.DefectiveProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = r.db.defectives.nextID()
	r.db.defectives.put(d.ID, *d)
	return nil
}

func (r *defectiveRepo) GetByID(_ context.Context, id int64) (*entity.DefectiveProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.defectives.get(id), nil
}

func (r *defectiveRepo) List(_ context.Context, limit, offset int) ([]*entity.DefectiveProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.defectives.filter(nil, limit, offset), nil
}

func (r *defectiveRepo) ListByEntrance(_ context.Context, entranceID int64) ([]*entity.DefectiveProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.defectives.filter(func(d *entity.DefectiveProduct) bool { return d.EntranceID == entranceID }, 0, 0), nil
}

func (r *defectiveRepo) Update(_ context.Context, d *entity.DefectiveProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db.defectives.has(d.ID) {
		r.db.defectives.put(d.ID, *d)
	}
	return nil
}

func (r *defectiveRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.db.defectives.remove(id)
	return nil
}
