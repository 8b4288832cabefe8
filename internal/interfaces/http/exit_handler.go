package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-tiendas/internal/application/dto"
	"github.com/jhoicas/Inventario-tiendas/internal/application/usecase"
	"github.com/jhoicas/Inventario-tiendas/internal/domain"
)

// ExitHandler maneja las salidas (ventas) de mercancía.
type ExitHandler struct {
	uc      *usecase.ExitUseCase
	metrics *Metrics
}

// NewExitHandler construye el handler. metrics puede ser nil.
func NewExitHandler(uc *usecase.ExitUseCase, metrics *Metrics) *ExitHandler {
	return &ExitHandler{uc: uc, metrics: metrics}
}

func (h *ExitHandler) fail(c *fiber.Ctx, err error) error {
	if h.metrics != nil && errors.Is(err, domain.ErrNoStock) {
		h.metrics.stockRejection.Inc()
	}
	return writeError(c, err)
}

// Create godoc
// @Summary      Registrar salida
// @Description  Rechaza la salida con 409 si la cantidad supera el stock calculado.
// @Tags         exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExitRequest  true  "Datos de la salida"
// @Success      201   {object}  dto.ExitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/exits [post]
func (h *ExitHandler) Create(c *fiber.Ctx) error {
	var in dto.ExitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener salida
// @Tags         exits
// @Produce      json
// @Param        id   path  int  true  "ID de la salida"
// @Success      200  {object}  dto.ExitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [get]
func (h *ExitHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar salidas
// @Tags         exits
// @Produce      json
// @Param        limit   query  int  false  "Límite (máx 100)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  dto.ExitListResponse
// @Router       /api/exits [get]
func (h *ExitHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar salida
// @Tags         exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID de la salida"
// @Param        body  body  dto.ExitRequest  true  "Datos de la salida"
// @Success      200   {object}  dto.ExitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [put]
func (h *ExitHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ExitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetIdentity(c), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar salida
// @Tags         exits
// @Security     Bearer
// @Param        id   path  int  true  "ID de la salida"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [delete]
func (h *ExitHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetIdentity(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
