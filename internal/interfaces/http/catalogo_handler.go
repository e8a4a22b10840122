package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// CatalogoHandler maneja las peticiones HTTP de un catálogo (distritos,
// tipos de documento, roles, tipos de plato). Una instancia por catálogo.
type CatalogoHandler struct {
	uc      *usecase.CatalogoUseCase
	recurso string
}

// NewCatalogoHandler construye el handler. recurso es el nombre en singular
// para los mensajes de error ("distrito", "rol", ...).
func NewCatalogoHandler(uc *usecase.CatalogoUseCase, recurso string) *CatalogoHandler {
	return &CatalogoHandler{uc: uc, recurso: recurso}
}

// List godoc
// @Summary      Listar ítems del catálogo
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  dto.DataResponse[[]dto.ItemCatalogoResponse]
func (h *CatalogoHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(page)
	if err != nil {
		return errorJSON(c, err, h.recurso+" no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

// ListActivos godoc
// @Summary      Listar ítems activos
// @Produce      json
// @Success      200  {object}  dto.DataResponse[[]dto.ItemCatalogoResponse]
func (h *CatalogoHandler) ListActivos(c *fiber.Ctx) error {
	out, err := h.uc.ListActivos()
	if err != nil {
		return errorJSON(c, err, h.recurso+" no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

// GetByCodigo godoc
// @Summary      Obtener ítem por código
// @Produce      json
// @Param        codigo  path  string  true  "Código"
// @Success      200  {object}  dto.DataResponse[dto.ItemCatalogoResponse]
// @Failure      404  {object}  dto.ErrorResponse
func (h *CatalogoHandler) GetByCodigo(c *fiber.Ctx) error {
	out, err := h.uc.GetByCodigo(c.Params("codigo"))
	if err != nil {
		return errorJSON(c, err, h.recurso+" no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear ítem
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.DataResponse[dto.ItemCatalogoResponse]
// @Failure      400  {object}  dto.ErrorResponse
func (h *CatalogoHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemCatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorJSON(c, err, h.recurso+" no encontrado")
	}
	return dataJSON(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Actualizar ítem
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "Código"
// @Success      200  {object}  dto.DataResponse[dto.ItemCatalogoResponse]
// @Failure      404  {object}  dto.ErrorResponse
func (h *CatalogoHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemCatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("codigo"), in)
	if err != nil {
		return errorJSON(c, err, h.recurso+" no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar ítem
// @Security     Bearer
// @Param        codigo  path  string  true  "Código"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
func (h *CatalogoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("codigo")); err != nil {
		return errorJSON(c, err, h.recurso+" no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search godoc
// @Summary      Buscar ítems por nombre
// @Produce      json
// @Param        q  query  string  false  "Término de búsqueda"
// @Success      200  {object}  dto.DataResponse[[]dto.ItemCatalogoResponse]
func (h *CatalogoHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return errorJSON(c, err, h.recurso+" no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}
