package usecase

import (
	"context"

	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/application/validation"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/inventory"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

// normalizePage aplica valores por defecto y valida los límites.
func normalizePage(p dto.PageRequest) (dto.PageRequest, error) {
	p.DefaultPage()
	if err := validation.Struct(p); err != nil {
		return p, err
	}
	return p, nil
}

// withStock calcula el stock de cada producto (sin escribirlo en la BD).
func withStock(ctx context.Context, products repository.ProductRepository, list []*entity.Product) ([]dto.ProductResponse, error) {
	ids := make([]int64, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	totals := map[int64]inventory.Totals{}
	if len(ids) > 0 {
		var err error
		totals, err = products.StockTotals(ctx, ids...)
		if err != nil {
			return nil, err
		}
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		p.StockQuantity = inventory.ComputeStock(totals[p.ID])
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toStoreResponse(s *entity.Store) dto.StoreResponse {
	return dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		StoreID:       p.StoreID,
		Name:          p.Name,
		UnitPrice:     p.UnitPrice,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toEntranceResponse(e *entity.Entrance) dto.EntranceResponse {
	return dto.EntranceResponse{
		ID:           e.ID,
		ProductID:    e.ProductID,
		SupplierName: e.SupplierName,
		Quantity:     e.Quantity,
		TotalPrice:   e.TotalPrice,
		Date:         e.Date,
	}
}

func toExitResponse(x *entity.Exit) dto.ExitResponse {
	return dto.ExitResponse{
		ID:          x.ID,
		ProductID:   x.ProductID,
		Description: x.Description,
		Quantity:    x.Quantity,
		TotalPrice:  x.TotalPrice,
		Date:        x.Date,
	}
}

func toDevolutionResponse(d *entity.Devolution) dto.DevolutionResponse {
	return dto.DevolutionResponse{
		ID:          d.ID,
		EntranceID:  d.EntranceID,
		Description: d.Description,
		Quantity:    d.Quantity,
		Date:        d.Date,
	}
}

func toDefectiveProductResponse(d *entity.DefectiveProduct) dto.DefectiveProductResponse {
	return dto.DefectiveProductResponse{
		ID:          d.ID,
		EntranceID:  d.EntranceID,
		Description: d.Description,
		Quantity:    d.Quantity,
		CreatedAt:   d.CreatedAt,
	}
}

// mapAll aplica fn a cada elemento; nunca devuelve nil para serializar [] en JSON.
func mapAll[E any, R any](list []*E, fn func(*E) R) []R {
	out := make([]R, 0, len(list))
	for _, e := range list {
		out = append(out, fn(e))
	}
	return out
}
