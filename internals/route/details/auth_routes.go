package details

import (
	authRoute "empuvilla_backend/internals/features/users/auth/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, _ *gorm.DB) {
	authRoute.AuthRoutes(app)
}
