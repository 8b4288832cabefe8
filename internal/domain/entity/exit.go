package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Exit es una salida de stock (venta) de un producto.
type Exit struct {
	ID          int64
	ProductID   int64
	Description string
	Quantity    int64
	TotalPrice  decimal.Decimal
	Date        time.Time
}
