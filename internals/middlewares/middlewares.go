package middlewares

import (
	"github.com/gofiber/fiber/v2"

	logger "empuvilla_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra los middlewares base de la aplicación.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
