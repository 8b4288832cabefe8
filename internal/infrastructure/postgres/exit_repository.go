package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

var _ repository.ExitRepository = (*ExitRepo)(nil)

const exitColumns = `id, product_id, description, quantity, total_price, date`

// ExitRepo persistencia de salidas de stock.
type ExitRepo struct {
	q Querier
}

func NewExitRepository(q Querier) *ExitRepo {
	return &ExitRepo{q: q}
}

func (r *ExitRepo) Create(ctx context.Context, x *entity.Exit) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO exits (product_id, description, quantity, total_price, date)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		x.ProductID, x.Description, x.Quantity, x.TotalPrice, x.Date,
	).Scan(&x.ID)
	if err != nil {
		return fmt.Errorf("insert exit: %w", err)
	}
	return nil
}

func (r *ExitRepo) GetByID(ctx context.Context, id int64) (*entity.Exit, error) {
	x, err := scanExit(r.q.QueryRow(ctx, `SELECT `+exitColumns+` FROM exits WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exit: %w", err)
	}
	return x, nil
}

func (r *ExitRepo) List(ctx context.Context, limit, offset int) ([]*entity.Exit, error) {
	return r.list(ctx, `SELECT `+exitColumns+` FROM exits ORDER BY id LIMIT $1 OFFSET $2`, limitArg(limit), offset)
}

func (r *ExitRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.Exit, error) {
	return r.list(ctx, `SELECT `+exitColumns+` FROM exits WHERE product_id = $1 ORDER BY id`, productID)
}

func (r *ExitRepo) Update(ctx context.Context, x *entity.Exit) error {
	_, err := r.q.Exec(ctx, `
		UPDATE exits SET product_id = $2, description = $3, quantity = $4, total_price = $5
		WHERE id = $1`,
		x.ID, x.ProductID, x.Description, x.Quantity, x.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("update exit: %w", err)
	}
	return nil
}

func (r *ExitRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM exits WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete exit: %w", err)
	}
	return nil
}

func (r *ExitRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Exit, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exits: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Exit, 0)
	for rows.Next() {
		x, err := scanExit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exit: %w", err)
		}
		out = append(out, x)
	}
	return out, rows.Err()
}

func scanExit(row pgx.Row) (*entity.Exit, error) {
	var x entity.Exit
	if err := row.Scan(&x.ID, &x.ProductID, &x.Description, &x.Quantity, &x.TotalPrice, &x.Date); err != nil {
		return nil, err
	}
	return &x, nil
}
