package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-tiendas/internal/domain/inventory"
)

func TestComputeStock(t *testing.T) {
	cases := []struct {
		name   string
		totals inventory.Totals
		want   int64
	}{
		{"sin movimientos", inventory.Totals{}, 0},
		{"solo entradas", inventory.Totals{Entrances: 100}, 100},
		{"entradas y salidas", inventory.Totals{Entrances: 100, Exits: 50}, 50},
		{"agotado", inventory.Totals{Entrances: 30, Exits: 30}, 0},
		{"salidas sin entradas se ignoran", inventory.Totals{Exits: 7}, 0},
		{"negativo con entradas no se recorta", inventory.Totals{Entrances: 5, Exits: 8}, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.ComputeStock(tc.totals))
		})
	}
}

func TestSumQuantities(t *testing.T) {
	assert.Equal(t, int64(0), inventory.SumQuantities())
	assert.Equal(t, int64(60), inventory.SumQuantities(10, 20, 30))
}

func TestCanWithdraw(t *testing.T) {
	assert.True(t, inventory.CanWithdraw(100, 50))
	assert.True(t, inventory.CanWithdraw(50, 50), "dejar el stock en 0 es válido")
	assert.False(t, inventory.CanWithdraw(100, 150))
	assert.False(t, inventory.CanWithdraw(0, 1))
}
