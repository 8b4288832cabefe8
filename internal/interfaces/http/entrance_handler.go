package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/application/usecase"
)

// EntranceHandler maneja las entradas de mercancía.
type EntranceHandler struct {
	uc *usecase.EntranceUseCase
}

// NewEntranceHandler construye el handler.
func NewEntranceHandler(uc *usecase.EntranceUseCase) *EntranceHandler {
	return &EntranceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada
// @Tags         entrances
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntranceRequest  true  "Datos de la entrada"
// @Success      201   {object}  dto.EntranceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entrances [post]
func (h *EntranceHandler) Create(c *fiber.Ctx) error {
	var in dto.EntranceRequest
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
// @Summary      Obtener entrada con devoluciones y defectuosos
// @Tags         entrances
// @Produce      json
// @Param        id   path  int  true  "ID de la entrada"
// @Success      200  {object}  dto.EntranceDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entrances/{id} [get]
func (h *EntranceHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar entradas
// @Tags         entrances
// @Produce      json
// @Param        limit   query  int  false  "Límite (máx 100)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  dto.EntranceListResponse
// @Router       /api/entrances [get]
func (h *EntranceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar entrada
// @Tags         entrances
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID de la entrada"
// @Param        body  body  dto.EntranceRequest  true  "Datos de la entrada"
// @Success      200   {object}  dto.EntranceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entrances/{id} [put]
func (h *EntranceHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.EntranceRequest
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
// @Summary      Eliminar entrada
// @Tags         entrances
// @Security     Bearer
// @Param        id   path  int  true  "ID de la entrada"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entrances/{id} [delete]
func (h *EntranceHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetIdentity(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
