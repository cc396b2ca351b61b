package details

import (
	subscriberRoute "empuvilla_backend/internals/features/subscribers/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SubscriberRoutes(app *fiber.App, db *gorm.DB) {
	subscriberRoute.SubscriberRoutes(app, db)
}
