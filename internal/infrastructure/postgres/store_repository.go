package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-tiendas/internal/domain"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

const storeColumns = `id, name, email, password_hash, created_at, updated_at`

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO stores (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		s.Name, s.Email, s.PasswordHash, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return storeWriteError("insert store", err)
	}
	return nil
}

func (r *StoreRepo) GetByID(ctx context.Context, id int64) (*entity.Store, error) {
	return r.getOne(ctx, `SELECT `+storeColumns+` FROM stores WHERE id = $1`, id)
}

func (r *StoreRepo) GetByName(ctx context.Context, name string) (*entity.Store, error) {
	return r.getOne(ctx, `SELECT `+storeColumns+` FROM stores WHERE name = $1`, name)
}

func (r *StoreRepo) GetByEmail(ctx context.Context, email string) (*entity.Store, error) {
	return r.getOne(ctx, `SELECT `+storeColumns+` FROM stores WHERE email = $1`, email)
}

func (r *StoreRepo) List(ctx context.Context, limit, offset int) ([]*entity.Store, error) {
	rows, err := r.q.Query(ctx, `SELECT `+storeColumns+` FROM stores ORDER BY id LIMIT $1 OFFSET $2`, limitArg(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Store, 0)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *StoreRepo) Update(ctx context.Context, s *entity.Store) error {
	_, err := r.q.Exec(ctx, `
		UPDATE stores SET name = $2, email = $3, password_hash = $4, updated_at = $5
		WHERE id = $1`,
		s.ID, s.Name, s.Email, s.PasswordHash, s.UpdatedAt,
	)
	if err != nil {
		return storeWriteError("update store", err)
	}
	return nil
}

// Delete borra la tienda; productos y movimientos caen por ON DELETE CASCADE.
func (r *StoreRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

func (r *StoreRepo) getOne(ctx context.Context, query string, arg any) (*entity.Store, error) {
	s, err := scanStore(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return s, nil
}

func scanStore(row pgx.Row) (*entity.Store, error) {
	var s entity.Store
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func storeWriteError(op string, err error) error {
	if constraint, ok := isUniqueViolation(err); ok {
		if constraint == "stores_email_key" {
			return domain.ErrEmailExists
		}
		return domain.ErrStoreNameExists
	}
	return fmt.Errorf("%s: %w", op, err)
}
