package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/application/usecase"
)

// DefectiveProductHandler registra los reportes de productos defectuosos.
type DefectiveProductHandler struct {
	uc *usecase.DefectiveProductUseCase
}

// NewDefectiveProductHandler construye el handler.
func NewDefectiveProductHandler(uc *usecase.DefectiveProductUseCase) *DefectiveProductHandler {
	return &DefectiveProductHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar producto defectuoso
// @Tags         defective-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDefectiveProductRequest  true  "description, quantity, entrance_id"
// @Success      201   {object}  dto.DefectiveProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/defective-products [post]
func (h *DefectiveProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDefectiveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto defectuoso
// @Tags         defective-products
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.DefectiveProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/defective-products/{id} [get]
func (h *DefectiveProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar defective-products
// @Tags         defective-products
// @Produce      json
// @Param        limit   query  int  false  "Límite (máx 100)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  dto.DefectiveProductListResponse
// @Router       /api/defective-products [get]
func (h *DefectiveProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto defectuoso
// @Tags         defective-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID"
// @Param        body  body  dto.UpdateDefectiveProductRequest  true  "entrance_id es opcional"
// @Success      200   {object}  dto.DefectiveProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/defective-products/{id} [put]
func (h *DefectiveProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateDefectiveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetIdentity(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto defectuoso
// @Tags         defective-products
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/defective-products/{id} [delete]
func (h *DefectiveProductHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetIdentity(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
