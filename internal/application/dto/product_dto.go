package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name      string          `json:"name" validate:"required,min=2,max=200"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" validate:"min=0.05"`
	StoreID   int64           `json:"store_id" validate:"min=1"`
}

// UpdateProductRequest entrada para actualizar un producto. El stock no es editable.
type UpdateProductRequest struct {
	Name      string          `json:"name" validate:"required,min=2,max=200"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" validate:"min=0.05"`
}

// ProductFilterRequest filtros de listado de productos.
type ProductFilterRequest struct {
	PageRequest
	StoreID int64 `query:"store_id" json:"store_id" validate:"min=0"`
}

// ProductResponse salida de un producto con stock calculado.
type ProductResponse struct {
	ID            int64           `json:"id"`
	StoreID       int64           `json:"store_id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price" swaggertype:"string"`
	StockQuantity int64           `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductDetailResponse producto con su historial de entradas y salidas.
type ProductDetailResponse struct {
	ProductResponse
	Entrances []EntranceResponse `json:"entrances"`
	Exits     []ExitResponse     `json:"exits"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
