package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/application/usecase"
)

// DevolutionHandler maneja las devoluciones a proveedor.
type DevolutionHandler struct {
	uc *usecase.DevolutionUseCase
}

// NewDevolutionHandler construye el handler.
func NewDevolutionHandler(uc *usecase.DevolutionUseCase) *DevolutionHandler {
	return &DevolutionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar devolución
// @Tags         devolutions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDevolutionRequest  true  "description, quantity, entrance_id"
// @Success      201   {object}  dto.DevolutionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/devolutions [post]
func (h *DevolutionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDevolutionRequest
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
// @Summary      Obtener devolución
// @Tags         devolutions
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.DevolutionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/devolutions/{id} [get]
func (h *DevolutionHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar devolutions
// @Tags         devolutions
// @Produce      json
// @Param        limit   query  int  false  "Límite (máx 100)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  dto.DevolutionListResponse
// @Router       /api/devolutions [get]
func (h *DevolutionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar devolución
// @Tags         devolutions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID"
// @Param        body  body  dto.UpdateDevolutionRequest  true  "entrance_id es opcional"
// @Success      200   {object}  dto.DevolutionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/devolutions/{id} [put]
func (h *DevolutionHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateDevolutionRequest
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
// @Summary      Eliminar devolución
// @Tags         devolutions
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/devolutions/{id} [delete]
func (h *DevolutionHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetIdentity(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
