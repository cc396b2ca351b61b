// file: internals/features/subscribers/controller/subscriber_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"empuvilla_backend/internals/features/subscribers/service"
	helper "empuvilla_backend/internals/helpers"
)

type SubscriberController struct {
	Directory service.Directory
}

func NewSubscriberController(db *gorm.DB) *SubscriberController {
	return &SubscriberController{Directory: service.NewGormDirectory(db)}
}

/* GET /api/subscribers/:code — validación del código de la factura */
func (h *SubscriberController) GetByCode(c *fiber.Ctx) error {
	sub, err := h.Directory.FindByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		if errors.Is(err, service.ErrSubscriberNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Código no encontrado. Verifique su factura.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, sub)
}
