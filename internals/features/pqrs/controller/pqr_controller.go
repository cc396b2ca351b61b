// file: internals/features/pqrs/controller/pqr_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"empuvilla_backend/internals/features/pqrs/dto"
	"empuvilla_backend/internals/features/pqrs/model"
	"empuvilla_backend/internals/features/pqrs/service"
	subscriberService "empuvilla_backend/internals/features/subscribers/service"
	helper "empuvilla_backend/internals/helpers"
)

var validate = validator.New()

type PqrController struct {
	Service  *service.LifecycleService
	Improver service.TextImprover // nil = capacidad ausente
}

func NewPqrController(db *gorm.DB, directory subscriberService.Directory, improver service.TextImprover) *PqrController {
	return &PqrController{
		Service:  service.NewLifecycleService(db, directory),
		Improver: improver,
	}
}

/* GET /api/pqrs — listado completo, fecha descendente (formato original: array crudo) */
func (h *PqrController) List(c *fiber.Ctx) error {
	pqrs, err := h.Service.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if pqrs == nil {
		pqrs = []model.PqrModel{}
	}
	return helper.JsonOK(c, pqrs)
}

/* POST /api/pqrs — radicación (ciudadano, sin autenticación) */
func (h *PqrController) Create(c *fiber.Ctx) error {
	var req dto.CreatePqrRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Faltan campos obligatorios de la radicación")
	}

	pqr, err := h.Service.Create(c.UserContext(), req)
	if err != nil {
		return mapLifecycleError(c, err)
	}
	return helper.JsonCreated(c, pqr)
}

/* PUT /api/pqrs/:id — gestión del operario (busca por campo id, no por clave interna) */
func (h *PqrController) Update(c *fiber.Ctx) error {
	var req dto.UpdatePqrRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	pqr, err := h.Service.ApplyOperatorUpdate(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return mapLifecycleError(c, err)
	}
	return helper.JsonOK(c, pqr)
}

/* DELETE /api/pqrs/:id — eliminación definitiva (solo admin, gate en la ruta) */
func (h *PqrController) Delete(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return mapLifecycleError(c, err)
	}
	return helper.JsonDeleted(c)
}

/* POST /api/pqrs/improve — mejora de redacción, best-effort */
func (h *PqrController) Improve(c *fiber.Ctx) error {
	var req dto.ImproveTextRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "El texto es obligatorio")
	}

	// sin capacidad configurada, o ante cualquier fallo, se devuelve el
	// texto original: la radicación nunca se bloquea por este servicio
	if h.Improver == nil {
		return helper.JsonOK(c, dto.ImproveTextResponse{Text: req.Text})
	}
	improved, err := h.Improver.Improve(c.UserContext(), req.Text)
	if err != nil {
		log.Printf("⚠️ Mejora de redacción no disponible: %v", err)
		return helper.JsonOK(c, dto.ImproveTextResponse{Text: req.Text})
	}
	return helper.JsonOK(c, dto.ImproveTextResponse{Text: improved})
}

// mapLifecycleError traduce los errores clasificados del motor al formato HTTP.
func mapLifecycleError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return helper.JsonError(c, fiber.StatusBadRequest, vErr.Msg)
	case errors.Is(err, service.ErrPqrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "PQR no encontrada")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
