package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

var _ repository.EntranceRepository = (*EntranceRepo)(nil)

const entranceColumns = `id, product_id, supplier_name, quantity, total_price, date`

// EntranceRepo persistencia de entradas de stock.
type EntranceRepo struct {
	q Querier
}

func NewEntranceRepository(q Querier) *EntranceRepo {
	return &EntranceRepo{q: q}
}

func (r *EntranceRepo) Create(ctx context.Context, e *entity.Entrance) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO entrances (product_id, supplier_name, quantity, total_price, date)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		e.ProductID, e.SupplierName, e.Quantity, e.TotalPrice, e.Date,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert entrance: %w", err)
	}
	return nil
}

func (r *EntranceRepo) GetByID(ctx context.Context, id int64) (*entity.Entrance, error) {
	e, err := scanEntrance(r.q.QueryRow(ctx, `SELECT `+entranceColumns+` FROM entrances WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entrance: %w", err)
	}
	return e, nil
}

func (r *EntranceRepo) List(ctx context.Context, limit, offset int) ([]*entity.Entrance, error) {
	return r.list(ctx, `SELECT `+entranceColumns+` FROM entrances ORDER BY id LIMIT $1 OFFSET $2`, limitArg(limit), offset)
}

func (r *EntranceRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.Entrance, error) {
	return r.list(ctx, `SELECT `+entranceColumns+` FROM entrances WHERE product_id = $1 ORDER BY id`, productID)
}

func (r *EntranceRepo) Update(ctx context.Context, e *entity.Entrance) error {
	_, err := r.q.Exec(ctx, `
		UPDATE entrances SET product_id = $2, supplier_name = $3, quantity = $4, total_price = $5
		WHERE id = $1`,
		e.ID, e.ProductID, e.SupplierName, e.Quantity, e.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("update entrance: %w", err)
	}
	return nil
}

func (r *EntranceRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM entrances WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete entrance: %w", err)
	}
	return nil
}

func (r *EntranceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Entrance, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entrances: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Entrance, 0)
	for rows.Next() {
		e, err := scanEntrance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entrance: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEntrance(row pgx.Row) (*entity.Entrance, error) {
	var e entity.Entrance
	if err := row.Scan(&e.ID, &e.ProductID, &e.SupplierName, &e.Quantity, &e.TotalPrice, &e.Date); err != nil {
		return nil, err
	}
	return &e, nil
}
