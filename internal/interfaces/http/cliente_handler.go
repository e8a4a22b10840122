package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// ClienteHandler maneja las peticiones HTTP de clientes. No expone /active:
// el historial de clientes se filtra del lado del consumidor.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

func (h *ClienteHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(page)
	if err != nil {
		return errorJSON(c, err, "cliente no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *ClienteHandler) GetByCodigo(c *fiber.Ctx) error {
	out, err := h.uc.GetByCodigo(c.Params("codigo"))
	if err != nil {
		return errorJSON(c, err, "cliente no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorJSON(c, err, "cliente no encontrado")
	}
	return dataJSON(c, fiber.StatusCreated, out)
}

func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("codigo"), in)
	if err != nil {
		return errorJSON(c, err, "cliente no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("codigo")); err != nil {
		return errorJSON(c, err, "cliente no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search busca por nombre o número de documento. El parámetro es "query".
func (h *ClienteHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("query"))
	if err != nil {
		return errorJSON(c, err, "cliente no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}
