package details

import (
	pqrRoute "empuvilla_backend/internals/features/pqrs/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PqrRoutes(app *fiber.App, db *gorm.DB) {
	pqrRoute.PqrRoutes(app, db)
}
