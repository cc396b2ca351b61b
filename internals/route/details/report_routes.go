package details

import (
	reportRoute "empuvilla_backend/internals/features/reports/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ReportRoutes(app *fiber.App, db *gorm.DB) {
	reportRoute.ReportRoutes(app, db)
}
