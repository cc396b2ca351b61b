// file: internals/features/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"empuvilla_backend/internals/configs"
	"empuvilla_backend/internals/constants"
	"empuvilla_backend/internals/features/reports/controller"
	authMw "empuvilla_backend/internals/middlewares/auth"
)

// ReportRoutes monta la vista de reportes (gerencia y admin).
func ReportRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	reports := app.Group("/api/reports",
		authMw.AuthJWT(authMw.AuthJWTOpts{Secret: configs.JWTSecret}),
		authMw.OnlyRoles(constants.RoleErrorManager("los reportes de gestión"), constants.ManagerAndAbove...),
	)
	reports.Get("/summary", ctrl.Summary)
	reports.Get("/export", ctrl.Export)
}
