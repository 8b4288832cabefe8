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

// EntranceUseCase registra entradas de stock sobre productos propios.
type EntranceUseCase struct {
	products    repository.ProductRepository
	entrances   repository.EntranceRepository
	devolutions repository.DevolutionRepository
	defectives  repository.DefectiveProductRepository
}

// NewEntranceUseCase construye el caso de uso.
func NewEntranceUseCase(products repository.ProductRepository, entrances repository.EntranceRepository, devolutions repository.DevolutionRepository, defectives repository.DefectiveProductRepository) *EntranceUseCase {
	return &EntranceUseCase{products: products, entrances: entrances, devolutions: devolutions, defectives: defectives}
}

// Create registra una entrada para un producto de la tienda autenticada.
func (uc *EntranceUseCase) Create(ctx context.Context, ident auth.Identity, in dto.EntranceRequest) (*dto.EntranceResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if _, err := ownedProduct(ctx, uc.products, in.ProductID, ident.StoreID); err != nil {
		return nil, err
	}
	entrance := &entity.Entrance{
		ProductID:    in.ProductID,
		SupplierName: in.SupplierName,
		Quantity:     in.Quantity,
		TotalPrice:   in.TotalPrice,
		Date:         time.Now().UTC(),
	}
	if err := uc.entrances.Create(ctx, entrance); err != nil {
		return nil, err
	}
	out := toEntranceResponse(entrance)
	return &out, nil
}

// GetByID devuelve la entrada con sus devoluciones y reportes de defectuosos.
func (uc *EntranceUseCase) GetByID(ctx context.Context, id int64) (*dto.EntranceDetailResponse, error) {
	entrance, err := uc.entrances.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entrance == nil {
		return nil, domain.ErrEntranceNotFound
	}
	devolutions, err := uc.devolutions.ListByEntrance(ctx, id)
	if err != nil {
		return nil, err
	}
	defectives, err := uc.defectives.ListByEntrance(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.EntranceDetailResponse{
		EntranceResponse:  toEntranceResponse(entrance),
		Devolutions:       mapAll(devolutions, toDevolutionResponse),
		DefectiveProducts: mapAll(defectives, toDefectiveProductResponse),
	}, nil
}

// List lista entradas por id ascendente.
func (uc *EntranceUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.EntranceListResponse, error) {
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}
	list, err := uc.entrances.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.EntranceListResponse{
		Items: mapAll(list, toEntranceResponse),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update modifica una entrada. Si cambia de producto, la tienda debe ser dueña de ambos.
func (uc *EntranceUseCase) Update(ctx context.Context, ident auth.Identity, id int64, in dto.EntranceRequest) (*dto.EntranceResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	entrance, err := uc.entrances.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entrance == nil {
		return nil, domain.ErrEntranceNotFound
	}
	if _, err := ownedProduct(ctx, uc.products, in.ProductID, ident.StoreID); err != nil {
		return nil, err
	}
	if entrance.ProductID != in.ProductID {
		if err := checkLinkedProduct(ctx, uc.products, entrance.ProductID, ident.StoreID); err != nil {
			return nil, err
		}
	}
	entrance.ProductID = in.ProductID
	entrance.SupplierName = in.SupplierName
	entrance.Quantity = in.Quantity
	entrance.TotalPrice = in.TotalPrice
	if err := uc.entrances.Update(ctx, entrance); err != nil {
		return nil, err
	}
	out := toEntranceResponse(entrance)
	return &out, nil
}

// Delete elimina una entrada de un producto propio.
func (uc *EntranceUseCase) Delete(ctx context.Context, ident auth.Identity, id int64) error {
	entrance, err := uc.entrances.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entrance == nil {
		return domain.ErrEntranceNotFound
	}
	if err := checkLinkedProduct(ctx, uc.products, entrance.ProductID, ident.StoreID); err != nil {
		return err
	}
	return uc.entrances.Delete(ctx, id)
}
