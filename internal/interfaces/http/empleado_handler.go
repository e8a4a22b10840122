package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// EmpleadoHandler maneja las peticiones HTTP de empleados.
type EmpleadoHandler struct {
	uc *usecase.EmpleadoUseCase
}

// NewEmpleadoHandler construye el handler.
func NewEmpleadoHandler(uc *usecase.EmpleadoUseCase) *EmpleadoHandler {
	return &EmpleadoHandler{uc: uc}
}

func (h *EmpleadoHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(page)
	if err != nil {
		return errorJSON(c, err, "empleado no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *EmpleadoHandler) ListActivos(c *fiber.Ctx) error {
	out, err := h.uc.ListActivos()
	if err != nil {
		return errorJSON(c, err, "empleado no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *EmpleadoHandler) GetByCodigo(c *fiber.Ctx) error {
	out, err := h.uc.GetByCodigo(c.Params("codigo"))
	if err != nil {
		return errorJSON(c, err, "empleado no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *EmpleadoHandler) Create(c *fiber.Ctx) error {
	var in dto.EmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorJSON(c, err, "empleado no encontrado")
	}
	return dataJSON(c, fiber.StatusCreated, out)
}

func (h *EmpleadoHandler) Update(c *fiber.Ctx) error {
	var in dto.EmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("codigo"), in)
	if err != nil {
		return errorJSON(c, err, "empleado no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *EmpleadoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("codigo")); err != nil {
		return errorJSON(c, err, "empleado no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search busca por nombre. El parámetro histórico de este recurso es "nombre".
func (h *EmpleadoHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("nombre"))
	if err != nil {
		return errorJSON(c, err, "empleado no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}
