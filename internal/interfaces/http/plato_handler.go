package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// PlatoHandler maneja las peticiones HTTP de la carta.
type PlatoHandler struct {
	uc *usecase.PlatoUseCase
}

// NewPlatoHandler construye el handler.
func NewPlatoHandler(uc *usecase.PlatoUseCase) *PlatoHandler {
	return &PlatoHandler{uc: uc}
}

func (h *PlatoHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(page)
	if err != nil {
		return errorJSON(c, err, "plato no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *PlatoHandler) ListActivos(c *fiber.Ctx) error {
	out, err := h.uc.ListActivos()
	if err != nil {
		return errorJSON(c, err, "plato no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *PlatoHandler) GetByCodigo(c *fiber.Ctx) error {
	out, err := h.uc.GetByCodigo(c.Params("codigo"))
	if err != nil {
		return errorJSON(c, err, "plato no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *PlatoHandler) Create(c *fiber.Ctx) error {
	var in dto.PlatoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorJSON(c, err, "plato no encontrado")
	}
	return dataJSON(c, fiber.StatusCreated, out)
}

func (h *PlatoHandler) Update(c *fiber.Ctx) error {
	var in dto.PlatoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("codigo"), in)
	if err != nil {
		return errorJSON(c, err, "plato no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *PlatoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("codigo")); err != nil {
		return errorJSON(c, err, "plato no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search busca por nombre o descripción. El parámetro es "query".
func (h *PlatoHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("query"))
	if err != nil {
		return errorJSON(c, err, "plato no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}
