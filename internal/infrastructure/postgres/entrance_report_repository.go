package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

var (
	_ repository.DevolutionRepository       = (*DevolutionRepo)(nil)
	_ repository.DefectiveProductRepository = (*DefectiveProductRepo)(nil)
)

// DevolutionRepo persistencia de devoluciones.
type DevolutionRepo struct {
	q Querier
}

func NewDevolutionRepository(q Querier) *DevolutionRepo {
	return &DevolutionRepo{q: q}
}

func (r *DevolutionRepo) Create(ctx context.Context, d *entity.Devolution) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO devolutions (entrance_id, description, quantity, date)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		d.EntranceID, d.Description, d.Quantity, d.Date,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert devolution: %w", err)
	}
	return nil
}

func (r *DevolutionRepo) GetByID(ctx context.Context, id int64) (*entity.Devolution, error) {
	var d entity.Devolution
	err := r.q.QueryRow(ctx, `SELECT id, entrance_id, description, quantity, date FROM devolutions WHERE id = $1`, id).
		Scan(&d.ID, &d.EntranceID, &d.Description, &d.Quantity, &d.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get devolution: %w", err)
	}
	return &d, nil
}

func (r *DevolutionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Devolution, error) {
	return r.list(ctx, `SELECT id, entrance_id, description, quantity, date FROM devolutions ORDER BY id LIMIT $1 OFFSET $2`, limitArg(limit), offset)
}

func (r *DevolutionRepo) ListByEntrance(ctx context.Context, entranceID int64) ([]*entity.Devolution, error) {
	return r.list(ctx, `SELECT id, entrance_id, description, quantity, date FROM devolutions WHERE entrance_id = $1 ORDER BY id`, entranceID)
}

func (r *DevolutionRepo) Update(ctx context.Context, d *entity.Devolution) error {
	_, err := r.q.Exec(ctx, `UPDATE devolutions SET entrance_id = $2, description = $3, quantity = $4 WHERE id = $1`,
		d.ID, d.EntranceID, d.Description, d.Quantity)
	if err != nil {
		return fmt.Errorf("update devolution: %w", err)
	}
	return nil
}

func (r *DevolutionRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM devolutions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete devolution: %w", err)
	}
	return nil
}

func (r *DevolutionRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Devolution, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list devolutions: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Devolution, 0)
	for rows.Next() {
		var d entity.Devolution
		if err := rows.Scan(&d.ID, &d.EntranceID, &d.Description, &d.Quantity, &d.Date); err != nil {
			return nil, fmt.Errorf("scan devolution: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// DefectiveProductRepo persistencia de reportes de productos defectuosos.
type DefectiveProductRepo struct {
	q Querier
}

func NewDefectiveProductRepository(q Querier) *DefectiveProductRepo {
	return &DefectiveProductRepo{q: q}
}

func (r *DefectiveProductRepo) Create(ctx context.Context, d *entity.DefectiveProduct) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO defective_products (entrance_id, description, quantity, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		d.EntranceID, d.Description, d.Quantity, d.CreatedAt,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert defective product: %w", err)
	}
	return nil
}

func (r *DefectiveProductRepo) GetByID(ctx context.Context, id int64) (*entity.DefectiveProduct, error) {
	var d entity.DefectiveProduct
	err := r.q.QueryRow(ctx, `SELECT id, entrance_id, description, quantity, created_at FROM defective_products WHERE id = $1`, id).
		Scan(&d.ID, &d.EntranceID, &d.Description, &d.Quantity, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get defective product: %w", err)
	}
	return &d, nil
}

func (r *DefectiveProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.DefectiveProduct, error) {
	return r.list(ctx, `SELECT id, entrance_id, description, quantity, created_at FROM defective_products ORDER BY id LIMIT $1 OFFSET $2`, limitArg(limit), offset)
}

func (r *DefectiveProductRepo) ListByEntrance(ctx context.Context, entranceID int64) ([]*entity.DefectiveProduct, error) {
	return r.list(ctx, `SELECT id, entrance_id, description, quantity, created_at FROM defective_products WHERE entrance_id = $1 ORDER BY id`, entranceID)
}

func (r *DefectiveProductRepo) Update(ctx context.Context, d *entity.DefectiveProduct) error {
	_, err := r.q.Exec(ctx, `UPDATE defective_products SET entrance_id = $2, description = $3, quantity = $4 WHERE id = $1`,
		d.ID, d.EntranceID, d.Description, d.Quantity)
	if err != nil {
		return fmt.Errorf("update defective product: %w", err)
	}
	return nil
}

func (r *DefectiveProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM defective_products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete defective product: %w", err)
	}
	return nil
}

func (r *DefectiveProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.DefectiveProduct, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list defective products: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.DefectiveProduct, 0)
	for rows.Next() {
		var d entity.DefectiveProduct
		if err := rows.Scan(&d.ID, &d.EntranceID, &d.Description, &d.Quantity, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan defective product: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
