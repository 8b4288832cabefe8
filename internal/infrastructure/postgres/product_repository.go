package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-tiendas/internal/domain"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/inventory"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, store_id, name, unit_price, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// La tabla no tiene columna de stock: StockTotals lo agrega desde entrances y exits.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna su ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO products (store_id, name, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		p.StoreID, p.Name, p.UnitPrice, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return domain.ErrProductNameExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByIDForUpdate bloquea la fila hasta el fin de la transacción. Solo tiene efecto dentro de una tx.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

// GetByName obtiene un producto por nombre (único global).
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1`, name)
}

// List lista productos por id ascendente; StoreID 0 no filtra.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE ($1::BIGINT = 0 OR store_id = $1::BIGINT)
		ORDER BY id LIMIT $2 OFFSET $3`,
		f.StoreID, limitArg(f.Limit), f.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update actualiza nombre y precio. El stock no se persiste.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		UPDATE products SET name = $2, unit_price = $3, updated_at = $4
		WHERE id = $1`,
		p.ID, p.Name, p.UnitPrice, p.UpdatedAt,
	)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return domain.ErrProductNameExists
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// StockTotals suma entradas y salidas de cada producto en una sola consulta.
func (r *ProductRepo) StockTotals(ctx context.Context, productIDs ...int64) (map[int64]inventory.Totals, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id,
		       COALESCE((SELECT SUM(e.quantity) FROM entrances e WHERE e.product_id = p.id), 0)::BIGINT,
		       COALESCE((SELECT SUM(x.quantity) FROM exits x WHERE x.product_id = p.id), 0)::BIGINT
		FROM products p
		WHERE p.id = ANY($1)`,
		productIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("stock totals: %w", err)
	}
	defer rows.Close()
	out := make(map[int64]inventory.Totals, len(productIDs))
	for rows.Next() {
		var id int64
		var t inventory.Totals
		if err := rows.Scan(&id, &t.Entrances, &t.Exits); err != nil {
			return nil, fmt.Errorf("scan stock totals: %w", err)
		}
		out[id] = t
	}
	return out, rows.Err()
}

func (r *ProductRepo) getOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.StoreID, &p.Name, &p.UnitPrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
