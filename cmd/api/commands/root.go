package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-tiendas/pkg/config"
)

var (
	// Flags globales
	storageDriver string
)

var rootCmd = &cobra.Command{
	Use:   "inventario",
	Short: "Inventario Tiendas - API de inventario multi-tienda",
	Long: `Inventario Tiendas expone una API REST para que cada tienda gestione sus
productos y movimientos de mercancía. El stock se calcula a partir de los movimientos.

La configuración se lee de variables de entorno (o .env). Ver "serve --help".`,
	SilenceUsage: true,
}

// Execute ejecuta el comando raíz.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storageDriver, "storage", "", "Backend de persistencia: postgres | memory (sobrescribe STORAGE_DRIVER)")
}

// loadConfig lee la configuración, aplica los flags y la valida.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if storageDriver != "" {
		cfg.Storage.Driver = storageDriver
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
