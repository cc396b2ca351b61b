// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "empuvilla_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== DIRECTORIO =====================
	log.Println("[INFO] Setting up SubscriberRoutes...")
	routeDetails.SubscriberRoutes(app, db)

	// ===================== PQR =====================
	log.Println("[INFO] Setting up PqrRoutes...")
	routeDetails.PqrRoutes(app, db)

	// ===================== REPORTES =====================
	log.Println("[INFO] Setting up ReportRoutes...")
	routeDetails.ReportRoutes(app, db)
}
