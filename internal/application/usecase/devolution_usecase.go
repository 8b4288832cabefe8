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

// DevolutionUseCase registra devoluciones sobre entradas propias.
type DevolutionUseCase struct {
	products    repository.ProductRepository
	entrances   repository.EntranceRepository
	devolutions repository.DevolutionRepository
}

// NewDevolutionUseCase construye el caso de uso.
func NewDevolutionUseCase(products repository.ProductRepository, entrances repository.EntranceRepository, devolutions repository.DevolutionRepository) *DevolutionUseCase {
	return &DevolutionUseCase{products: products, entrances: entrances, devolutions: devolutions}
}

// Create registra una devolución de una entrada de la tienda autenticada.
func (uc *DevolutionUseCase) Create(ctx context.Context, ident auth.Identity, in dto.CreateDevolutionRequest) (*dto.DevolutionResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if _, err := ownedEntrance(ctx, uc.entrances, uc.products, in.EntranceID, ident.StoreID); err != nil {
		return nil, err
	}
	devolution := &entity.Devolution{
		EntranceID:  in.EntranceID,
		Description: in.Description,
		Quantity:    in.Quantity,
		Date:        time.Now().UTC(),
	}
	if err := uc.devolutions.Create(ctx, devolution); err != nil {
		return nil, err
	}
	out := toDevolutionResponse(devolution)
	return &out, nil
}

// GetByID obtiene una devolución.
func (uc *DevolutionUseCase) GetByID(ctx context.Context, id int64) (*dto.DevolutionResponse, error) {
	devolution, err := uc.devolutions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if devolution == nil {
		return nil, domain.ErrDevolutionNotFound
	}
	out := toDevolutionResponse(devolution)
	return &out, nil
}

// List lista devoluciones por id ascendente.
func (uc *DevolutionUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.DevolutionListResponse, error) {
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}
	list, err := uc.devolutions.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.DevolutionListResponse{
		Items: mapAll(list, toDevolutionResponse),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update modifica una devolución. Sin entrance_id se conserva la entrada vinculada.
func (uc *DevolutionUseCase) Update(ctx context.Context, ident auth.Identity, id int64, in dto.UpdateDevolutionRequest) (*dto.DevolutionResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	devolution, err := uc.devolutions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if devolution == nil {
		return nil, domain.ErrDevolutionNotFound
	}
	entranceID, err := moveToEntrance(ctx, uc.entrances, uc.products, devolution.EntranceID, in.EntranceID, ident.StoreID)
	if err != nil {
		return nil, err
	}
	devolution.EntranceID = entranceID
	devolution.Description = in.Description
	devolution.Quantity = in.Quantity
	if err := uc.devolutions.Update(ctx, devolution); err != nil {
		return nil, err
	}
	out := toDevolutionResponse(devolution)
	return &out, nil
}

// Delete elimina una devolución. Una cadena huérfana se rechaza con ErrNotAuthorized.
func (uc *DevolutionUseCase) Delete(ctx context.Context, ident auth.Identity, id int64) error {
	devolution, err := uc.devolutions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if devolution == nil {
		return domain.ErrDevolutionNotFound
	}
	if err := checkLinkedEntrance(ctx, uc.entrances, uc.products, devolution.EntranceID, ident.StoreID); err != nil {
		return err
	}
	return uc.devolutions.Delete(ctx, id)
}

// moveToEntrance resuelve la entrada destino de un reporte y verifica la propiedad
// de la entrada pedida y, si cambia, también de la actual.
func moveToEntrance(ctx context.Context, entrances repository.EntranceRepository, products repository.ProductRepository, current int64, requested *int64, storeID int64) (int64, error) {
	target := current
	if requested != nil {
		target = *requested
	}
	if _, err := ownedEntrance(ctx, entrances, products, target, storeID); err != nil {
		return 0, err
	}
	if target != current {
		if err := checkLinkedEntrance(ctx, entrances, products, current, storeID); err != nil {
			return 0, err
		}
	}
	return target, nil
}
