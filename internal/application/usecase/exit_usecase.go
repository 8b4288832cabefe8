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

// ExitUseCase registra salidas de stock. Crear y actualizar corren dentro de
// TxRunner.RunMovement con la fila del producto bloqueada.
type ExitUseCase struct {
	tx       TxRunner
	products repository.ProductRepository
	exits    repository.ExitRepository
}

// NewExitUseCase construye el caso de uso.
func NewExitUseCase(tx TxRunner, products repository.ProductRepository, exits repository.ExitRepository) *ExitUseCase {
	return &ExitUseCase{tx: tx, products: products, exits: exits}
}

// Create registra una salida si el stock actual del producto la cubre.
func (uc *ExitUseCase) Create(ctx context.Context, ident auth.Identity, in dto.ExitRequest) (*dto.ExitResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	exit := &entity.Exit{
		ProductID:   in.ProductID,
		Description: in.Description,
		Quantity:    in.Quantity,
		TotalPrice:  in.TotalPrice,
		Date:        time.Now().UTC(),
	}
	err := uc.tx.RunMovement(ctx, func(products repository.ProductRepository, exits repository.ExitRepository) error {
		if err := reserveStock(ctx, products, in.ProductID, ident.StoreID, in.Quantity); err != nil {
			return err
		}
		return exits.Create(ctx, exit)
	})
	if err != nil {
		return nil, err
	}
	out := toExitResponse(exit)
	return &out, nil
}

// GetByID obtiene una salida.
func (uc *ExitUseCase) GetByID(ctx context.Context, id int64) (*dto.ExitResponse, error) {
	exit, err := uc.exits.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exit == nil {
		return nil, domain.ErrExitNotFound
	}
	out := toExitResponse(exit)
	return &out, nil
}

// List lista salidas por id ascendente.
func (uc *ExitUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ExitListResponse, error) {
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}
	list, err := uc.exits.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.ExitListResponse{
		Items: mapAll(list, toExitResponse),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update modifica una salida. La cantidad pedida se compara con el stock
// actual del producto destino sin descontar la cantidad previa de esta salida.
func (uc *ExitUseCase) Update(ctx context.Context, ident auth.Identity, id int64, in dto.ExitRequest) (*dto.ExitResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var updated *entity.Exit
	err := uc.tx.RunMovement(ctx, func(products repository.ProductRepository, exits repository.ExitRepository) error {
		exit, err := exits.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if exit == nil {
			return domain.ErrExitNotFound
		}
		if exit.ProductID != in.ProductID {
			if _, err := ownedProduct(ctx, products, in.ProductID, ident.StoreID); err != nil {
				return err
			}
			if err := checkLinkedProduct(ctx, products, exit.ProductID, ident.StoreID); err != nil {
				return err
			}
		}
		if err := reserveStock(ctx, products, in.ProductID, ident.StoreID, in.Quantity); err != nil {
			return err
		}
		exit.ProductID = in.ProductID
		exit.Description = in.Description
		exit.Quantity = in.Quantity
		exit.TotalPrice = in.TotalPrice
		updated = exit
		return exits.Update(ctx, exit)
	})
	if err != nil {
		return nil, err
	}
	out := toExitResponse(updated)
	return &out, nil
}

// Delete elimina una salida de un producto propio.
func (uc *ExitUseCase) Delete(ctx context.Context, ident auth.Identity, id int64) error {
	exit, err := uc.exits.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if exit == nil {
		return domain.ErrExitNotFound
	}
	if err := checkLinkedProduct(ctx, uc.products, exit.ProductID, ident.StoreID); err != nil {
		return err
	}
	return uc.exits.Delete(ctx, id)
}

// reserveStock bloquea el producto, verifica propiedad y que el stock cubra quantity.
func reserveStock(ctx context.Context, products repository.ProductRepository, productID, storeID, quantity int64) error {
	product, err := products.GetByIDForUpdate(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	if !product.OwnedBy(storeID) {
		return domain.ErrNotAuthorized
	}
	totals, err := products.StockTotals(ctx, productID)
	if err != nil {
		return err
	}
	if !inventory.CanWithdraw(inventory.ComputeStock(totals[productID]), quantity) {
		return domain.ErrNoStock
	}
	return nil
}
