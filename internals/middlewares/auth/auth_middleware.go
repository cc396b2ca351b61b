package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AuthJWTOpts struct {
	Secret string
}

// AuthJWT valida el token Bearer y guarda el rol en Locals("userRole").
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret es obligatorio")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token desde Authorization: Bearer xxx
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No autorizado: falta el token de acceso",
			})
		}

		// 2) Parse + verificación del algoritmo
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Método de firma inválido")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token inválido o expirado",
			})
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Claims de token inválidos",
			})
		}

		c.Locals("jwt_claims", claims)

		// role → Locals("userRole")
		if role, ok := claims["role"].(string); ok && role != "" {
			c.Locals("userRole", role)
		}
		if user, ok := claims["username"].(string); ok && user != "" {
			c.Locals("username", user)
		}

		return c.Next()
	}
}
