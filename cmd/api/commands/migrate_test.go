package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_RechazaStorageMemory(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Cleanup(func() { storageDriver = "" })

	rootCmd.SetArgs([]string{"migrate", "--storage", "memory"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `migrate requires STORAGE_DRIVER "postgres"`)
}

func TestLoadMigrateConfig_SinJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORAGE_DRIVER", "postgres")
	storageDriver = ""

	cfg, err := loadMigrateConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
}
