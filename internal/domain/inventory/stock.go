package inventory

// MaxMovementQuantity unidades máximas por movimiento. Coincide con el tag
// max de los DTO de movimientos y con el CHECK de las tablas.
const MaxMovementQuantity int64 = 1_000_000

// Totals agrupa las cantidades acumuladas de un producto.
type Totals struct {
	Entrances int64 // suma de entradas
	Exits     int64 // suma de salidas
}

// ComputeStock calcula el stock disponible (servicio de dominio).
// Stock = Entradas - Salidas; si no hay entradas el stock es 0.
// Con entradas no se aplica piso: un resultado negativo se devuelve tal cual.
func ComputeStock(t Totals) int64 {
	if t.Entrances == 0 {
		return 0
	}
	return t.Entrances - t.Exits
}

// SumQuantities suma las cantidades de una lista de movimientos.
func SumQuantities(quantities ...int64) int64 {
	var total int64
	for _, q := range quantities {
		total += q
	}
	return total
}

// CanWithdraw indica si una salida de quantity unidades deja stock no negativo.
func CanWithdraw(stock, quantity int64) bool {
	return stock-quantity >= 0
}
