package usecase

import (
	"context"

	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a ella.
// RunMovement serializa las salidas de un mismo producto: el chequeo de stock y la
// escritura de la salida ocurren de forma atómica.
type TxRunner interface {
	RunMovement(ctx context.Context, fn func(
		products repository.ProductRepository,
		exits repository.ExitRepository,
	) error) error
}

// StockReportGenerator genera el PDF del reporte de stock de una tienda.
type StockReportGenerator interface {
	StockReport(report dto.StockReport) ([]byte, error)
}

// Storage es el backend completo de persistencia (PostgreSQL o memoria).
type Storage interface {
	TxRunner
	Stores() repository.StoreRepository
	Products() repository.ProductRepository
	Entrances() repository.EntranceRepository
	Exits() repository.ExitRepository
	Devolutions() repository.DevolutionRepository
	DefectiveProducts() repository.DefectiveProductRepository
}
