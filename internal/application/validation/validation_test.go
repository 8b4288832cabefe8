package validation_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/application/validation"
	"github.com/jhoicas/Inventario-tiendas/internal/domain"
)

func assertInvalid(t *testing.T, err error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, msg, err.Error())
}

func TestStruct_ProductoValido(t *testing.T) {
	err := validation.Struct(dto.CreateProductRequest{
		Name:      "Shirt",
		UnitPrice: decimal.RequireFromString("0.05"),
		StoreID:   1,
	})
	assert.NoError(t, err)
}

func TestStruct_PrimerCampoGana(t *testing.T) {
	// name y unit_price son inválidos; se reporta name (primer campo).
	err := validation.Struct(dto.CreateProductRequest{Name: "S", StoreID: 1})
	assertInvalid(t, err, "name must be at least 2 characters")
}

func TestStruct_PrecioMinimo(t *testing.T) {
	err := validation.Struct(dto.CreateProductRequest{
		Name:      "Shirt",
		UnitPrice: decimal.RequireFromString("0.04"),
		StoreID:   1,
	})
	assertInvalid(t, err, "unit_price must be greater than or equal to 0.05")
}

func TestStruct_Cantidades(t *testing.T) {
	cases := []struct {
		name string
		in   any
		msg  string
	}{
		{"exit sin cantidad", dto.ExitRequest{Description: "venta", TotalPrice: decimal.NewFromInt(1), ProductID: 1}, "quantity must be greater than or equal to 1"},
		{"exit descripcion corta", dto.ExitRequest{Description: "v", Quantity: 1, TotalPrice: decimal.NewFromInt(1), ProductID: 1}, "description must be at least 5 characters"},
		{"devolucion sin entrada", dto.CreateDevolutionRequest{Description: "broken", Quantity: 1}, "entrance_id must be greater than or equal to 1"},
		{"defectuoso descripcion", dto.CreateDefectiveProductRequest{Description: "x", Quantity: 1, EntranceID: 1}, "description must be at least 2 characters"},
		{"entrada sin proveedor", dto.EntranceRequest{Quantity: 1, TotalPrice: decimal.NewFromInt(1), ProductID: 1}, "supplier_name is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertInvalid(t, validation.Struct(tc.in), tc.msg)
		})
	}
}

func TestStruct_Tienda(t *testing.T) {
	err := validation.Struct(dto.RegisterStoreRequest{Name: "Loja", Email: "no-es-email", Password: "12345"})
	assertInvalid(t, err, "email must be a valid email")

	err = validation.Struct(dto.RegisterStoreRequest{Name: "Loja", Email: "a@b.com", Password: "1234"})
	assertInvalid(t, err, "password must be at least 5 characters")
}

func TestStruct_PunteroOpcional(t *testing.T) {
	assert.NoError(t, validation.Struct(dto.UpdateDevolutionRequest{Description: "broken", Quantity: 1}))

	zero := int64(0)
	err := validation.Struct(dto.UpdateDevolutionRequest{Description: "broken", Quantity: 1, EntranceID: &zero})
	assertInvalid(t, err, "entrance_id must be greater than or equal to 1")
}
