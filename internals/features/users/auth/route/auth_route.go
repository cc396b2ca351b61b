// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"empuvilla_backend/internals/features/users/auth/controller"
	"empuvilla_backend/internals/features/users/auth/service"
	"empuvilla_backend/internals/middlewares"
)

// AuthRoutes monta el acceso de funcionarios.
func AuthRoutes(app *fiber.App) {
	ctrl := controller.NewAuthController(service.NewStaticAuthenticatorFromEnv())

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
