package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-tiendas/internal/domain"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/inventory"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

type productRepo struct {
	mu sync.Locker
	db *state
}

func (r *productRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkUnique(product); err != nil {
		return err
	}
	product.ID = r.db.products.nextID()
	r.db.products.put(product.ID, r.stripStock(product))
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.products.get(id), nil
}

func (r *productRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *productRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.products.find(func(p *entity.Product) bool { return p.Name == name }), nil
}

func (r *productRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var keep func(*entity.Product) bool
	if f.StoreID > 0 {
		keep = func(p *entity.Product) bool { return p.StoreID == f.StoreID }
	}
	return r.db.products.filter(keep, f.Limit, f.Offset), nil
}

func (r *productRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.db.products.has(product.ID) {
		return nil
	}
	if err := r.checkUnique(product); err != nil {
		return err
	}
	r.db.products.put(product.ID, r.stripStock(product))
	return nil
}

func (r *productRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.db.products.remove(id)
	return nil
}

func (r *productRepo) StockTotals(_ context.Context, productIDs ...int64) (map[int64]inventory.Totals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[int64]inventory.Totals, len(productIDs))
	for _, id := range productIDs {
		if !r.db.products.has(id) {
			continue
		}
		var in, outQty []int64
		for _, e := range r.db.entrances.filter(func(e *entity.Entrance) bool { return e.ProductID == id }, 0, 0) {
			in = append(in, e.Quantity)
		}
		for _, x := range r.db.exits.filter(func(x *entity.Exit) bool { return x.ProductID == id }, 0, 0) {
			outQty = append(outQty, x.Quantity)
		}
		out[id] = inventory.Totals{
			Entrances: inventory.SumQuantities(in...),
			Exits:     inventory.SumQuantities(outQty...),
		}
	}
	return out, nil
}

func (r *productRepo) checkUnique(product *entity.Product) error {
	other := r.db.products.find(func(p *entity.Product) bool { return p.Name == product.Name })
	if other != nil && other.ID != product.ID {
		return domain.ErrProductNameExists
	}
	return nil
}

// stripStock evita persistir el stock: siempre se calcula en lectura.
func (r *productRepo) stripStock(product *entity.Product) entity.Product {
	row := *product
	row.StockQuantity = 0
	return row
}
