// file: internals/features/pqrs/controller/pqr_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"empuvilla_backend/internals/configs"
	"empuvilla_backend/internals/constants"
	"empuvilla_backend/internals/features/pqrs/model"
	pqrRoute "empuvilla_backend/internals/features/pqrs/route"
	subscriberModel "empuvilla_backend/internals/features/subscribers/model"
	authService "empuvilla_backend/internals/features/users/auth/service"
)

const testSecret = "secreto-de-pruebas"

/* ===================== SETUP ===================== */

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("no se pudo abrir sqlite en memoria: %v", err)
	}
	if err := db.AutoMigrate(&subscriberModel.SubscriberModel{}, &model.PqrModel{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	sub := subscriberModel.SubscriberModel{
		SubscriberCode:         "1001",
		SubscriberName:         "Juan Pérez",
		SubscriberAddress:      "Calle 5 # 10-20",
		SubscriberPhone:        "3101234567",
		SubscriberNeighborhood: "Centro",
	}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("seed suscriptor: %v", err)
	}

	configs.JWTSecret = testSecret

	app := fiber.New()
	pqrRoute.PqrRoutes(app, db)
	return app, db
}

func bearerToken(t *testing.T, role string) string {
	t.Helper()
	tok, err := authService.IssueToken(testSecret, "usuario-"+role, role, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	return "Bearer " + tok
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodePqr(t *testing.T, resp *http.Response) model.PqrModel {
	t.Helper()
	var pqr model.PqrModel
	if err := json.NewDecoder(resp.Body).Decode(&pqr); err != nil {
		t.Fatalf("decodificando PQR: %v", err)
	}
	return pqr
}

func createPayload() fiber.Map {
	return fiber.Map{
		"subscriberCode": "1001",
		"cedula":         "1061234567",
		"phone":          "3150000000",
		"addressDetails": "Apto 201",
		"service":        "Acueducto",
		"description":    "No llega agua desde el martes",
		"paymentStatus":  "no",
		"wantsAgreement": true,
	}
}

/* ===================== LISTADO ===================== */

func TestGetPqrsDevuelveArrayCrudo(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/pqrs", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if got := strings.TrimSpace(string(body)); got != "[]" {
		t.Errorf("listado vacío = %q, want []", got)
	}
}

/* ===================== RADICACIÓN ===================== */

func TestPostPqrsRadica(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/pqrs", createPayload()))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	pqr := decodePqr(t, resp)
	if !strings.HasPrefix(pqr.PqrID, "PQR-") {
		t.Errorf("id = %q", pqr.PqrID)
	}
	if pqr.PqrStatus != model.StatusRadicada {
		t.Errorf("status = %q, want %q", pqr.PqrStatus, model.StatusRadicada)
	}
	if pqr.PqrName != "Juan Pérez" {
		t.Errorf("snapshot del nombre = %q", pqr.PqrName)
	}
	if pqr.PqrPaymentStatus != model.PaymentEnMora {
		t.Errorf("paymentStatus = %q", pqr.PqrPaymentStatus)
	}
	if len(pqr.PqrHistory) != 1 || pqr.PqrHistory[0].Action != "Radicación" {
		t.Errorf("historial inicial = %+v", pqr.PqrHistory)
	}
}

func TestPostPqrsCamposFaltantes(t *testing.T) {
	app, _ := newTestApp(t)

	payload := createPayload()
	delete(payload, "cedula")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/pqrs", payload))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decodificando error: %v", err)
	}
	if body["error"] == "" {
		t.Error("el fallo debe venir como {\"error\": ...}")
	}
}

func TestPostPqrsCodigoDesconocido(t *testing.T) {
	app, _ := newTestApp(t)

	payload := createPayload()
	payload["subscriberCode"] = "9999"

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/pqrs", payload))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body["error"] != "Código no encontrado. Verifique su factura." {
		t.Errorf("error = %q", body["error"])
	}
}

/* ===================== GESTIÓN (gate de roles) ===================== */

func TestPutPqrRequiereOperario(t *testing.T) {
	app, _ := newTestApp(t)

	created, err := app.Test(jsonRequest(http.MethodPost, "/api/pqrs", createPayload()))
	if err != nil {
		t.Fatalf("radicación: %v", err)
	}
	pqr := decodePqr(t, created)

	update := fiber.Map{
		"status":        model.StatusResuelta,
		"operator":      "Rosa",
		"note":          "Se restableció el servicio",
		"personPresent": model.PresentTitular,
	}
	target := "/api/pqrs/" + pqr.PqrID

	// sin token
	resp, err := app.Test(jsonRequest(http.MethodPut, target, update))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("sin token: status = %d, want 401", resp.StatusCode)
	}

	// rol insuficiente
	req := jsonRequest(http.MethodPut, target, update)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, constants.RoleManager))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("gerente: status = %d, want 403", resp.StatusCode)
	}

	// operario
	req = jsonRequest(http.MethodPut, target, update)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, constants.RoleOperator))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("operario: status = %d, want 200", resp.StatusCode)
	}

	updated := decodePqr(t, resp)
	if updated.PqrStatus != model.StatusResuelta {
		t.Errorf("status = %q, want %q", updated.PqrStatus, model.StatusResuelta)
	}
	if updated.PqrLastResponsible != "Rosa" {
		t.Errorf("lastResponsible = %q", updated.PqrLastResponsible)
	}
	if len(updated.PqrHistory) != 2 {
		t.Errorf("historial con %d entradas, want 2", len(updated.PqrHistory))
	}
}

func TestPutPqrNoEncontrada(t *testing.T) {
	app, _ := newTestApp(t)

	req := jsonRequest(http.MethodPut, "/api/pqrs/PQR-20250101-000000", fiber.Map{
		"status":   model.StatusResuelta,
		"operator": "Rosa",
		"note":     "x",
	})
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, constants.RoleOperator))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

/* ===================== ELIMINACIÓN (solo admin) ===================== */

func TestDeletePqrSoloAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	created, err := app.Test(jsonRequest(http.MethodPost, "/api/pqrs", createPayload()))
	if err != nil {
		t.Fatalf("radicación: %v", err)
	}
	pqr := decodePqr(t, created)
	target := "/api/pqrs/" + pqr.PqrID

	// operario no puede eliminar
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, constants.RoleOperator))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("operario: status = %d, want 403", resp.StatusCode)
	}

	// admin elimina
	req = httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, constants.RoleAdmin))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("admin: status = %d, want 204", resp.StatusCode)
	}

	// segunda eliminación: ya no existe
	req = httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, constants.RoleAdmin))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("repetida: status = %d, want 404", resp.StatusCode)
	}
}

/* ===================== MEJORA DE REDACCIÓN ===================== */

func TestImproveSinCapacidadDevuelveOriginal(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/pqrs/improve", fiber.Map{
		"text": "no hay agua hace dias arreglen eso",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decodificando: %v", err)
	}
	if body["text"] != "no hay agua hace dias arreglen eso" {
		t.Errorf("sin OPENAI_API_KEY el texto debe volver intacto, got %q", body["text"])
	}
}
