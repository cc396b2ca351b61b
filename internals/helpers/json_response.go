// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Respuestas JSON estándar
   (formato de la API pública: el frontend espera
   {"error": "..."} en fallos y el recurso crudo en éxito)
=================================*/

// JsonError: error genérico con el formato {"error": mensaje}
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// JsonOK: respuesta 200 con el recurso tal cual
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated: respuesta 201 con el recurso creado
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonDeleted: respuesta 204 sin cuerpo
func JsonDeleted(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
