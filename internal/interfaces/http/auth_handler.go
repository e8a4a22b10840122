package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
)

// AuthHandler maneja registro y login de credenciales del back-office.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.DataResponse[dto.UsuarioResponse]
// @Failure      409  {object}  dto.ErrorResponse
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.Email) == "" || len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y contraseña (mínimo 8 caracteres) son requeridos"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return errorJSON(c, err, "usuario no encontrado")
	}
	return dataJSON(c, fiber.StatusCreated, out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.DataResponse[dto.LoginResponse]
// @Failure      401  {object}  dto.ErrorResponse
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return errorJSON(c, err, "usuario no encontrado")
	}
	return dataJSON(c, fiber.StatusOK, out)
}
