package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-tiendas/internal/application/auth"
	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/application/validation"
	"github.com/jhoicas/Inventario-tiendas/internal/domain"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/inventory"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock se calcula desde entradas y salidas.
type ProductUseCase struct {
	stores    repository.StoreRepository
	products  repository.ProductRepository
	entrances repository.EntranceRepository
	exits     repository.ExitRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(stores repository.StoreRepository, products repository.ProductRepository, entrances repository.EntranceRepository, exits repository.ExitRepository) *ProductUseCase {
	return &ProductUseCase{stores: stores, products: products, entrances: entrances, exits: exits}
}

// Create crea un producto para la tienda autenticada. El nombre es único entre todas las tiendas.
func (uc *ProductUseCase) Create(ctx context.Context, ident auth.Identity, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if _, err := ownStore(ctx, uc.stores, ident, in.StoreID); err != nil {
		return nil, err
	}
	existing, err := uc.products.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProductNameExists
	}
	now := time.Now().UTC()
	product := &entity.Product{
		StoreID:   in.StoreID,
		Name:      in.Name,
		UnitPrice: in.UnitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto con su stock calculado y su historial de movimientos.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductDetailResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	items, err := withStock(ctx, uc.products, []*entity.Product{product})
	if err != nil {
		return nil, err
	}
	entrances, err := uc.entrances.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	exits, err := uc.exits.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ProductDetailResponse{
		ProductResponse: items[0],
		Entrances:       mapAll(entrances, toEntranceResponse),
		Exits:           mapAll(exits, toExitResponse),
	}, nil
}

// List lista productos (opcionalmente de una tienda) con su stock calculado.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	page, err := normalizePage(in.PageRequest)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	list, err := uc.products.List(ctx, repository.ProductFilter{StoreID: in.StoreID, Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, err
	}
	items, err := withStock(ctx, uc.products, list)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update cambia nombre y precio. Renombrar al propio nombre está permitido.
func (uc *ProductUseCase) Update(ctx context.Context, ident auth.Identity, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	product, err := ownedProduct(ctx, uc.products, id, ident.StoreID)
	if err != nil {
		return nil, err
	}
	other, err := uc.products.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != product.ID {
		return nil, domain.ErrProductNameExists
	}
	product.Name = in.Name
	product.UnitPrice = in.UnitPrice
	product.UpdatedAt = time.Now().UTC()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	totals, err := uc.products.StockTotals(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	product.StockQuantity = inventory.ComputeStock(totals[product.ID])
	out := toProductResponse(product)
	return &out, nil
}

// Delete elimina un producto de la tienda autenticada.
func (uc *ProductUseCase) Delete(ctx context.Context, ident auth.Identity, id int64) error {
	if _, err := ownedProduct(ctx, uc.products, id, ident.StoreID); err != nil {
		return err
	}
	return uc.products.Delete(ctx, id)
}
