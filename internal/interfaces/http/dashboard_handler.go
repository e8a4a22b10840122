package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// DashboardHandler expone el resumen del tablero.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumen godoc
// @Summary      Resumen del tablero
// @Produce      json
// @Success      200  {object}  dto.DataResponse[dto.DashboardResponse]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen()
	if err != nil {
		return errorJSON(c, err, "resumen no disponible")
	}
	return dataJSON(c, fiber.StatusOK, out)
}
