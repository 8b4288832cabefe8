package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExitRequest entrada para crear o actualizar una salida de stock.
type ExitRequest struct {
	Description string          `json:"description" validate:"required,min=5,max=500"`
	Quantity    int64           `json:"quantity" validate:"min=1,max=1000000"`
	TotalPrice  decimal.Decimal `json:"total_price" swaggertype:"string" validate:"min=0.05"`
	ProductID   int64           `json:"product_id" validate:"min=1"`
}

// ExitResponse salida de una salida de stock.
type ExitResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price" swaggertype:"string"`
	Date        time.Time       `json:"date"`
}

// ExitListResponse lista paginada de salidas.
type ExitListResponse struct {
	Items []ExitResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
