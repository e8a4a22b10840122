package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/reportes"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// PedidoHandler maneja las peticiones HTTP de pedidos, incluida la boleta
// PDF y la exportación a Excel.
type PedidoHandler struct {
	uc     *usecase.PedidoUseCase
	boleta *reportes.BoletaUseCase
	export *reportes.ExportUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase, boleta *reportes.BoletaUseCase, export *reportes.ExportUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc, boleta: boleta, export: export}
}

func (h *PedidoHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(page)
	if err != nil {
		return errorJSON(c, err, "pedido no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *PedidoHandler) ListActivos(c *fiber.Ctx) error {
	out, err := h.uc.ListActivos()
	if err != nil {
		return errorJSON(c, err, "pedido no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *PedidoHandler) GetByCodigo(c *fiber.Ctx) error {
	out, err := h.uc.GetByCodigo(c.Params("codigo"))
	if err != nil {
		return errorJSON(c, err, "pedido no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.PedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorJSON(c, err, "pedido no encontrado")
	}
	return dataJSON(c, fiber.StatusCreated, out)
}

func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	var in dto.PedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("codigo"), in)
	if err != nil {
		return errorJSON(c, err, "pedido no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("codigo")); err != nil {
		return errorJSON(c, err, "pedido no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search busca por etiqueta o cliente. El parámetro es "query".
func (h *PedidoHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("query"))
	if err != nil {
		return errorJSON(c, err, "pedido no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

// Boleta godoc
// @Summary      Descargar boleta del pedido en PDF
// @Produce      application/pdf
// @Param        codigo  path  string  true  "Código del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
func (h *PedidoHandler) Boleta(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	pdf, err := h.boleta.Generar(codigo)
	if err != nil {
		return errorJSON(c, err, "pedido no encontrado")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="boleta-`+codigo+`.pdf"`)
	return c.Send(pdf)
}

// Export godoc
// @Summary      Exportar todos los pedidos a Excel
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
func (h *PedidoHandler) Export(c *fiber.Ctx) error {
	xlsx, err := h.export.Exportar()
	if err != nil {
		return errorJSON(c, err, "pedido no encontrado")
	}
	nombre := "pedidos-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(xlsx)
}
