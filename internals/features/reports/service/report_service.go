// file: internals/features/reports/service/report_service.go
package service

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"empuvilla_backend/internals/features/pqrs/model"
)

const (
	sheetName      = "Reporte PQR"
	dateLayout     = "02/01/2006"
	noResponsible  = "Sin asignar"
	reportTitle    = "REPORTE DE GESTIÓN DE PQR - EMPUVILLA S.A. E.S.P."
	headerRowIndex = 4 // 1: título, 2: fecha, 3: en blanco, 4: encabezados
)

var reportHeaders = []string{"ID PQR", "Fecha Radicación", "Servicio", "Suscriptor", "Responsable", "Estado"}

/* ===================== RESUMEN ===================== */

// Summary son los agregados del panel gerencial. Se recalculan bajo demanda
// sobre el conjunto actual de registros; no hay caché ni mantenimiento
// incremental.
type Summary struct {
	Total         int `json:"total"`
	Pending       int `json:"pending"`
	Resolved      int `json:"resolved"`
	Effectiveness int `json:"effectiveness"`
}

func BuildSummary(pqrs []model.PqrModel) Summary {
	s := Summary{Total: len(pqrs)}
	for _, p := range pqrs {
		switch p.PqrStatus {
		case model.StatusRadicada, model.StatusEnProceso:
			s.Pending++
		case model.StatusResuelta:
			s.Resolved++
		}
	}
	if s.Total > 0 {
		s.Effectiveness = int(math.Round(float64(s.Resolved) / float64(s.Total) * 100))
	}
	return s
}

/* ===================== EXPORTACIÓN TABULAR ===================== */

// ReportRow es una fila del reporte exportado. Todo en texto: el round-trip
// exportar → reimportar debe reproducir estos campos exactamente.
type ReportRow struct {
	ID          string
	Date        string
	Service     string
	Name        string
	Responsible string
	Status      string
}

// BuildRows proyecta los registros en filas del reporte, en el mismo orden
// del listado (fecha descendente).
func BuildRows(pqrs []model.PqrModel) []ReportRow {
	rows := make([]ReportRow, 0, len(pqrs))
	for _, p := range pqrs {
		responsible := p.PqrLastResponsible
		if responsible == "" {
			responsible = noResponsible
		}
		rows = append(rows, ReportRow{
			ID:          p.PqrID,
			Date:        p.PqrDate.Format(dateLayout),
			Service:     p.PqrService,
			Name:        p.PqrName,
			Responsible: responsible,
			Status:      p.PqrStatus,
		})
	}
	return rows
}

// BuildExcel arma el .xlsx con el layout del reporte original: fila de
// título, fila de fecha de generación, fila en blanco, encabezados y datos.
func BuildExcel(rows []ReportRow, generatedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "1E3A8A"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FACC15"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1E3A8A"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	if err := f.MergeCell(sheetName, "A1", "F1"); err != nil {
		return nil, err
	}
	f.SetCellValue(sheetName, "A1", reportTitle)
	f.SetCellStyle(sheetName, "A1", "F1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", "F2"); err != nil {
		return nil, err
	}
	f.SetCellValue(sheetName, "A2", "Fecha de Generación: "+generatedAt.Format(dateLayout))

	if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", headerRowIndex), &reportHeaders); err != nil {
		return nil, err
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", headerRowIndex), fmt.Sprintf("F%d", headerRowIndex), headerStyle)

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", headerRowIndex+1+i)
		values := []string{row.ID, row.Date, row.Service, row.Name, row.Responsible, row.Status}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ParseExcel lee de vuelta las filas de datos de un reporte exportado.
// Localiza la fila de encabezados y toma todo lo que sigue.
func ParseExcel(r io.Reader) ([]ReportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("el archivo no tiene hojas")
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("no se pudieron leer las filas: %w", err)
	}

	headerAt := -1
	for i, row := range raw {
		if len(row) > 0 && row[0] == reportHeaders[0] {
			headerAt = i
			break
		}
	}
	if headerAt == -1 {
		return nil, errors.New("no se encontró la fila de encabezados")
	}

	var rows []ReportRow
	for _, row := range raw[headerAt+1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		row = padRow(row, len(reportHeaders))
		rows = append(rows, ReportRow{
			ID:          row[0],
			Date:        row[1],
			Service:     row[2],
			Name:        row[3],
			Responsible: row[4],
			Status:      row[5],
		})
	}
	return rows, nil
}

func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
