package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-tiendas/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-tiendas/pkg/config"
	"github.com/jhoicas/Inventario-tiendas/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes en PostgreSQL",
	Long: `Aplica en orden las migraciones SQL embebidas que aún no están registradas
en schema_migrations. Es idempotente y seguro ante ejecuciones concurrentes.

Solo aplica a PostgreSQL: con --storage memory (o STORAGE_DRIVER=memory) el
comando falla, porque el backend en memoria no tiene esquema. No requiere
JWT_SECRET.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadMigrateConfig()
		if err != nil {
			return err
		}
		log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name})

		ctx := cmd.Context()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		if len(applied) == 0 {
			log.Info().Msg("no hay migraciones pendientes")
			return nil
		}
		for _, name := range applied {
			log.Info().Str("migration", name).Msg("migración aplicada")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

// loadMigrateConfig como loadConfig, pero con la validación de migrate.
func loadMigrateConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if storageDriver != "" {
		cfg.Storage.Driver = storageDriver
	}
	if err := cfg.ValidateMigrate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
