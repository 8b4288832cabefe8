package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marshallshelly/pebble-orm/pkg/migration"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migrationLockID clave del advisory lock que evita migraciones concurrentes.
const migrationLockID int64 = 7_302_114

// Migrations devuelve las migraciones embebidas ordenadas por versión.
// Cada una se arma con el par <version>_<nombre>.up.sql / .down.sql.
func Migrations() ([]migration.Migration, error) {
	ups, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(ups)

	out := make([]migration.Migration, 0, len(ups))
	for _, up := range ups {
		base := strings.TrimSuffix(strings.TrimPrefix(up, "migrations/"), ".up.sql")
		version, name, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: expected <version>_<name>.up.sql", up)
		}
		upSQL, err := migrationFiles.ReadFile(up)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", base, err)
		}
		downSQL, err := migrationFiles.ReadFile("migrations/" + base + ".down.sql")
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", base, err)
		}
		out = append(out, migration.Migration{Version: version, Name: name, UpSQL: string(upSQL), DownSQL: string(downSQL)})
	}
	return out, nil
}

// Migrate aplica con el executor de pebble las migraciones embebidas que aún
// no figuran como aplicadas en schema_migrations. Devuelve los nombres
// (<version>_<nombre>) de las que aplicó en esta llamada.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	migrations, err := Migrations()
	if err != nil {
		return nil, err
	}

	// El advisory lock es de sesión: con una sola conexión, Lock, ApplyAll y
	// Unlock corren sobre el mismo backend.
	cfg := pool.Config().Copy()
	cfg.MaxConns = 1
	cfg.MinConns = 0
	single, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open migration pool: %w", err)
	}
	defer single.Close()

	ex := migration.NewExecutor(single, "migrations").WithLockID(migrationLockID)
	if err := ex.Lock(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = ex.Unlock(context.Background()) }()

	if err := ex.Initialize(ctx); err != nil {
		return nil, err
	}
	done, err := ex.GetAppliedMigrations(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(done))
	for _, r := range done {
		seen[r.Version] = true
	}
	var pending []migration.Migration
	var names []string
	for _, m := range migrations {
		if !seen[m.Version] {
			pending = append(pending, m)
			names = append(names, m.Version+"_"+m.Name)
		}
	}
	if len(pending) == 0 {
		return nil, nil
	}
	if err := ex.ApplyAll(ctx, pending, false); err != nil {
		return nil, err
	}
	return names, nil
}
