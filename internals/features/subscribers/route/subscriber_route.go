// file: internals/features/subscribers/route/subscriber_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"empuvilla_backend/internals/features/subscribers/controller"
)

// SubscriberRoutes monta la consulta pública del directorio de suscriptores.
func SubscriberRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewSubscriberController(db)

	public := app.Group("/api/subscribers")
	public.Get("/:code", ctrl.GetByCode)
}
