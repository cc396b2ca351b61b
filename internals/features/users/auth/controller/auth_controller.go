// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"empuvilla_backend/internals/configs"
	"empuvilla_backend/internals/features/users/auth/dto"
	"empuvilla_backend/internals/features/users/auth/service"
	helper "empuvilla_backend/internals/helpers"
)

var validate = validator.New()

// TTL corto: la sesión no persiste más allá del turno de trabajo.
const tokenTTL = 8 * time.Hour

type AuthController struct {
	Authenticator service.Authenticator
}

func NewAuthController(authenticator service.Authenticator) *AuthController {
	return &AuthController{Authenticator: authenticator}
}

/* POST /api/auth/login — credenciales → token con rol */
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Usuario y contraseña son obligatorios")
	}

	role, err := h.Authenticator.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales incorrectas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := service.IssueToken(configs.JWTSecret, req.Username, role, tokenTTL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.LoginResponse{Token: token, Role: role})
}
