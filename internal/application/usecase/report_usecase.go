package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-tiendas/internal/application/auth"
	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF de stock de la tienda autenticada.
type ReportUseCase struct {
	stores    repository.StoreRepository
	products  repository.ProductRepository
	generator StockReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(stores repository.StoreRepository, products repository.ProductRepository, generator StockReportGenerator) *ReportUseCase {
	return &ReportUseCase{stores: stores, products: products, generator: generator}
}

// StockReportPDF devuelve el PDF con los productos de la tienda y su stock actual.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context, ident auth.Identity, storeID int64) ([]byte, error) {
	store, err := ownStore(ctx, uc.stores, ident, storeID)
	if err != nil {
		return nil, err
	}
	list, err := uc.products.List(ctx, repository.ProductFilter{StoreID: store.ID})
	if err != nil {
		return nil, err
	}
	products, err := withStock(ctx, uc.products, list)
	if err != nil {
		return nil, err
	}
	return uc.generator.StockReport(dto.StockReport{
		Store:       toStoreResponse(store),
		Products:    products,
		GeneratedAt: time.Now().UTC(),
	})
}
