package usecase

import (
	"context"

	"github.com/jhoicas/Inventario-tiendas/internal/domain"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/entity"
	"github.com/jhoicas/Inventario-tiendas/internal/domain/repository"
)

// Cadena de propiedad: Store -> Product -> Entrance -> {Devolution, DefectiveProduct}.
//
// ownedProduct/ownedEntrance resuelven una referencia pedida por el cliente:
// si no existe es NotFound. checkLinked* revisan una referencia ya guardada:
// si falta algo en la cadena se falla cerrado con ErrNotAuthorized.

func ownedProduct(ctx context.Context, products repository.ProductRepository, productID, storeID int64) (*entity.Product, error) {
	product, err := products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if !product.OwnedBy(storeID) {
		return nil, domain.ErrNotAuthorized
	}
	return product, nil
}

func checkLinkedProduct(ctx context.Context, products repository.ProductRepository, productID, storeID int64) error {
	product, err := products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.OwnedBy(storeID) {
		return domain.ErrNotAuthorized
	}
	return nil
}

func ownedEntrance(ctx context.Context, entrances repository.EntranceRepository, products repository.ProductRepository, entranceID, storeID int64) (*entity.Entrance, error) {
	entrance, err := entrances.GetByID(ctx, entranceID)
	if err != nil {
		return nil, err
	}
	if entrance == nil {
		return nil, domain.ErrEntranceNotFound
	}
	if err := checkLinkedProduct(ctx, products, entrance.ProductID, storeID); err != nil {
		return nil, err
	}
	return entrance, nil
}

func checkLinkedEntrance(ctx context.Context, entrances repository.EntranceRepository, products repository.ProductRepository, entranceID, storeID int64) error {
	entrance, err := entrances.GetByID(ctx, entranceID)
	if err != nil {
		return err
	}
	if entrance == nil {
		return domain.ErrNotAuthorized
	}
	return checkLinkedProduct(ctx, products, entrance.ProductID, storeID)
}
