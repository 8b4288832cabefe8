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

// StoreUseCase consulta y mantenimiento de tiendas. Registro y login viven en auth.
type StoreUseCase struct {
	stores   repository.StoreRepository
	products repository.ProductRepository
	hasher   *auth.PasswordHasher
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(stores repository.StoreRepository, products repository.ProductRepository, hasher *auth.PasswordHasher) *StoreUseCase {
	return &StoreUseCase{stores: stores, products: products, hasher: hasher}
}

// GetByID devuelve la tienda con sus productos y el stock calculado de cada uno.
func (uc *StoreUseCase) GetByID(ctx context.Context, id int64) (*dto.StoreDetailResponse, error) {
	store, err := uc.stores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	list, err := uc.products.List(ctx, repository.ProductFilter{StoreID: store.ID})
	if err != nil {
		return nil, err
	}
	products, err := withStock(ctx, uc.products, list)
	if err != nil {
		return nil, err
	}
	return &dto.StoreDetailResponse{StoreResponse: toStoreResponse(store), Products: products}, nil
}

// List lista tiendas por id ascendente.
func (uc *StoreUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.StoreListResponse, error) {
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}
	list, err := uc.stores.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.StoreListResponse{
		Items: mapAll(list, toStoreResponse),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update cambia el nombre (y opcionalmente la contraseña) de la tienda autenticada.
func (uc *StoreUseCase) Update(ctx context.Context, ident auth.Identity, id int64, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	store, err := ownStore(ctx, uc.stores, ident, id)
	if err != nil {
		return nil, err
	}
	other, err := uc.stores.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != store.ID {
		return nil, domain.ErrStoreNameExists
	}

	store.Name = in.Name
	if in.Password != nil {
		hash, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		store.PasswordHash = hash
	}
	store.UpdatedAt = time.Now().UTC()
	if err := uc.stores.Update(ctx, store); err != nil {
		return nil, err
	}
	out := toStoreResponse(store)
	return &out, nil
}

// Delete elimina la tienda autenticada. En PostgreSQL borra en cascada sus productos y movimientos.
func (uc *StoreUseCase) Delete(ctx context.Context, ident auth.Identity, id int64) error {
	if _, err := ownStore(ctx, uc.stores, ident, id); err != nil {
		return err
	}
	return uc.stores.Delete(ctx, id)
}

// ownStore exige que la tienda pedida sea la autenticada y exista.
func ownStore(ctx context.Context, stores repository.StoreRepository, ident auth.Identity, id int64) (*entity.Store, error) {
	if id != ident.StoreID {
		return nil, domain.ErrNotAuthorized
	}
	store, err := stores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return store, nil
}
