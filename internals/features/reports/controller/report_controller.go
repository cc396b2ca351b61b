// file: internals/features/reports/controller/report_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pqrService "empuvilla_backend/internals/features/pqrs/service"
	"empuvilla_backend/internals/features/reports/service"
	subscriberService "empuvilla_backend/internals/features/subscribers/service"
	helper "empuvilla_backend/internals/helpers"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	Lifecycle *pqrService.LifecycleService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		Lifecycle: pqrService.NewLifecycleService(db, subscriberService.NewGormDirectory(db)),
	}
}

/* GET /api/reports/summary — agregados del panel gerencial */
func (h *ReportController) Summary(c *fiber.Ctx) error {
	pqrs, err := h.Lifecycle.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, service.BuildSummary(pqrs))
}

/* GET /api/reports/export — reporte .xlsx descargable */
func (h *ReportController) Export(c *fiber.Ctx) error {
	pqrs, err := h.Lifecycle.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	f, err := service.BuildExcel(service.BuildRows(pqrs), now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	filename := fmt.Sprintf("Reporte_Empuvilla_%s.xlsx", now.Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
