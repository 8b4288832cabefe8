package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-tiendas/internal/application/auth"
	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/application/validation"
	"github.com/jhoicas/Inventario-tiendas/internal/domain"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

// DefectiveProductUseCase reportes de unidades defectuosas de una entrada.
type DefectiveProductUseCase struct {
	products   repository.ProductRepository
	entrances  repository.EntranceRepository
	defectives repository.DefectiveProductRepository
}

// NewDefectiveProductUseCase construye el caso de uso.
func NewDefectiveProductUseCase(products repository.ProductRepository, entrances repository.EntranceRepository, defectives repository.DefectiveProductRepository) *DefectiveProductUseCase {
	return &DefectiveProductUseCase{products: products, entrances: entrances, defectives: defectives}
}

func (uc *DefectiveProductUseCase) Create(ctx context.Context, ident auth.Identity, in dto.CreateDefectiveProductRequest) (*dto.DefectiveProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if _, err := ownedEntrance(ctx, uc.entrances, uc.products, in.EntranceID, ident.StoreID); err != nil {
		return nil, err
	}
	report := &entity.DefectiveProduct{
		EntranceID:  in.EntranceID,
		Description: in.Description,
		Quantity:    in.Quantity,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.defectives.Create(ctx, report); err != nil {
		return nil, err
	}
	out := toDefectiveProductResponse(report)
	return &out, nil
}

func (uc *DefectiveProductUseCase) GetByID(ctx context.Context, id int64) (*dto.DefectiveProductResponse, error) {
	report, err := uc.defectives.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrDefectiveProductNotFound
	}
	out := toDefectiveProductResponse(report)
	return &out, nil
}

func (uc *DefectiveProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.DefectiveProductListResponse, error) {
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}
	list, err := uc.defectives.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.DefectiveProductListResponse{
		Items: mapAll(list, toDefectiveProductResponse),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *DefectiveProductUseCase) Update(ctx context.Context, ident auth.Identity, id int64, in dto.UpdateDefectiveProductRequest) (*dto.DefectiveProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	report, err := uc.defectives.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrDefectiveProductNotFound
	}
	entranceID, err := moveToEntrance(ctx, uc.entrances, uc.products, report.EntranceID, in.EntranceID, ident.StoreID)
	if err != nil {
		return nil, err
	}
	report.EntranceID = entranceID
	report.Description = in.Description
	report.Quantity = in.Quantity
	if err := uc.defectives.Update(ctx, report); err != nil {
		return nil, err
	}
	out := toDefectiveProductResponse(report)
	return &out, nil
}

func (uc *DefectiveProductUseCase) Delete(ctx context.Context, ident auth.Identity, id int64) error {
	report, err := uc.defectives.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if report == nil {
		return domain.ErrDefectiveProductNotFound
	}
	if err := checkLinkedEntrance(ctx, uc.entrances, uc.products, report.EntranceID, ident.StoreID); err != nil {
		return err
	}
	return uc.defectives.Delete(ctx, id)
}
