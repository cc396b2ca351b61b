// file: internals/features/pqrs/route/pqr_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"empuvilla_backend/internals/configs"
	"empuvilla_backend/internals/constants"
	"empuvilla_backend/internals/features/pqrs/controller"
	pqrService "empuvilla_backend/internals/features/pqrs/service"
	subscriberService "empuvilla_backend/internals/features/subscribers/service"
	"empuvilla_backend/internals/middlewares"
	authMw "empuvilla_backend/internals/middlewares/auth"
)

// PqrRoutes monta la superficie REST de las PQR.
func PqrRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewPqrController(
		db,
		subscriberService.NewGormDirectory(db),
		pqrService.NewTextImproverFromEnv(configs.OpenAIKey),
	)

	pqrs := app.Group("/api/pqrs")

	// ===================== PÚBLICO (guest) =====================
	pqrs.Get("/", ctrl.List)
	pqrs.Post("/", middlewares.CreatePqrRateLimiter(), ctrl.Create)
	pqrs.Post("/improve", ctrl.Improve)

	// ===================== PROTEGIDO =====================
	// El gate va por ruta (no por grupo) para que el rol exigido
	// dependa del método y no del prefijo.
	requireAuth := authMw.AuthJWT(authMw.AuthJWTOpts{Secret: configs.JWTSecret})

	pqrs.Put("/:id",
		requireAuth,
		authMw.OnlyRoles(constants.RoleErrorOperator("la gestión de PQR"), constants.OperatorOnly...),
		ctrl.Update,
	)
	pqrs.Delete("/:id",
		requireAuth,
		authMw.OnlyRoles(constants.RoleErrorAdmin("la eliminación de PQR"), constants.AdminOnly...),
		ctrl.Delete,
	)
}
