// file: internals/features/pqrs/service/lifecycle_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"empuvilla_backend/internals/features/pqrs/dto"
	"empuvilla_backend/internals/features/pqrs/model"
	subscriberService "empuvilla_backend/internals/features/subscribers/service"
)

/* ===================== ERRORES CLASIFICADOS ===================== */

// ValidationError: campo requerido faltante o inválido (→ 400).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ErrPqrNotFound: la PQR no existe (→ 404).
var ErrPqrNotFound = errors.New("PQR no encontrada")

/* ===================== REGLAS PURAS ===================== */

// ResolveVisit aplica la regla de ausencia: si nadie atiende la visita, el
// estado final es Cerrada sin importar lo solicitado y la nota queda marcada
// como visita fallida; en caso contrario el estado solicitado se respeta y la
// nota registra quién atendió.
func ResolveVisit(requestedStatus, note, personPresent string) (finalStatus, finalNote string, absent bool) {
	if personPresent == model.PresentAusente {
		return model.StatusCerrada, fmt.Sprintf("VISITA FALLIDA: %s (Ausente)", note), true
	}
	return requestedStatus, fmt.Sprintf("%s | Atendido por: %s", note, personPresent), false
}

// NormalizePaymentStatus acepta tanto el valor del enum como la respuesta
// cruda del formulario ("yes"/"no") y devuelve "Al día" | "En Mora".
func NormalizePaymentStatus(answer string) (string, error) {
	switch strings.TrimSpace(answer) {
	case model.PaymentAlDia, "yes", "si", "sí":
		return model.PaymentAlDia, nil
	case model.PaymentEnMora, "no":
		return model.PaymentEnMora, nil
	default:
		return "", validationErrorf("Estado de pago inválido: %q", answer)
	}
}

/* ===================== MOTOR DE CICLO DE VIDA ===================== */

// LifecycleService es el único escritor del estado y del historial de una PQR.
type LifecycleService struct {
	DB        *gorm.DB
	Directory subscriberService.Directory

	// inyectables para pruebas
	Now   func() time.Time
	NewID func() string
}

func NewLifecycleService(db *gorm.DB, directory subscriberService.Directory) *LifecycleService {
	return &LifecycleService{
		DB:        db,
		Directory: directory,
		Now:       time.Now,
		NewID:     NewPqrID,
	}
}

// Create radica una nueva PQR: valida el suscriptor, toma el snapshot del
// directorio, genera el radicado y agrega la entrada inicial del historial.
func (s *LifecycleService) Create(ctx context.Context, req dto.CreatePqrRequest) (*model.PqrModel, error) {
	if strings.TrimSpace(req.SubscriberCode) == "" {
		return nil, validationErrorf("El código de suscriptor es obligatorio")
	}
	if strings.TrimSpace(req.Cedula) == "" {
		return nil, validationErrorf("La cédula es obligatoria")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, validationErrorf("El teléfono es obligatorio")
	}
	if !model.IsValidService(req.Service) {
		return nil, validationErrorf("Servicio inválido: %q", req.Service)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, validationErrorf("La descripción es obligatoria")
	}

	paymentStatus, err := NormalizePaymentStatus(req.PaymentStatus)
	if err != nil {
		return nil, err
	}
	// el acuerdo de pago solo tiene sentido en mora
	wantsAgreement := req.WantsAgreement && paymentStatus == model.PaymentEnMora

	sub, err := s.Directory.FindByCode(ctx, req.SubscriberCode)
	if err != nil {
		if errors.Is(err, subscriberService.ErrSubscriberNotFound) {
			return nil, validationErrorf("Código no encontrado. Verifique su factura.")
		}
		return nil, err
	}

	now := s.Now()
	fullAddress := sub.SubscriberAddress
	if details := strings.TrimSpace(req.AddressDetails); details != "" {
		fullAddress = fullAddress + " " + details
	}

	pqr := model.PqrModel{
		PqrID:                s.NewID(),
		PqrDate:              now,
		PqrSubscriberCode:    sub.SubscriberCode,
		PqrName:              sub.SubscriberName,
		PqrAddress:           sub.SubscriberAddress,
		PqrNeighborhood:      sub.SubscriberNeighborhood,
		PqrPhone:             req.Phone,
		PqrFullAddress:       fullAddress,
		PqrCedula:            req.Cedula,
		PqrService:           req.Service,
		PqrDescription:       req.Description,
		PqrPaymentStatus:     paymentStatus,
		PqrWantsAgreement:    wantsAgreement,
		PqrStatus:            model.StatusRadicada,
		PqrAttendedInAbsence: false,
		PqrHistory: []model.HistoryEntry{
			{Date: now, Action: "Radicación", User: "Web"},
		},
	}

	if err := s.DB.WithContext(ctx).Create(&pqr).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// colisión del sufijo de 2 dígitos dentro del mismo minuto
			return nil, validationErrorf("El radicado %s ya existe, intente de nuevo", pqr.PqrID)
		}
		return nil, err
	}
	return &pqr, nil
}

// ApplyOperatorUpdate aplica una transición de estado. Estado, operario y nota
// son obligatorios; la regla de ausencia puede sobreescribir el estado
// solicitado. Cada transición aceptada agrega exactamente una entrada al
// historial y actualiza el último responsable, en el mismo guardado.
func (s *LifecycleService) ApplyOperatorUpdate(ctx context.Context, id string, req dto.UpdatePqrRequest) (*model.PqrModel, error) {
	operator := strings.TrimSpace(req.OperatorName())
	note := strings.TrimSpace(req.Note)

	if !model.IsValidStatus(req.Status) {
		return nil, validationErrorf("Estado inválido: %q", req.Status)
	}
	if operator == "" {
		return nil, validationErrorf("El operario responsable es obligatorio")
	}
	if note == "" {
		return nil, validationErrorf("La nota técnica es obligatoria")
	}
	personPresent := req.PersonPresent
	if personPresent == "" {
		personPresent = model.PresentTitular
	}

	var pqr model.PqrModel
	if err := s.DB.WithContext(ctx).First(&pqr, "pqr_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPqrNotFound
		}
		return nil, err
	}

	finalStatus, finalNote, absent := ResolveVisit(req.Status, note, personPresent)

	pqr.PqrStatus = finalStatus
	pqr.PqrAttendedInAbsence = absent
	pqr.PqrLastResponsible = operator
	pqr.PqrHistory = append(pqr.PqrHistory, model.HistoryEntry{
		Date:   s.Now(),
		Action: "Estado: " + finalStatus,
		User:   operator,
		Note:   finalNote,
	})

	// reemplazo del documento completo: último guardado gana (sin CAS)
	if err := s.DB.WithContext(ctx).Save(&pqr).Error; err != nil {
		return nil, err
	}
	return &pqr, nil
}

// Delete elimina la PQR de forma definitiva (solo admin, sin tombstone).
func (s *LifecycleService) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&model.PqrModel{}, "pqr_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPqrNotFound
	}
	return nil
}

// List devuelve todas las PQR ordenadas por fecha de radicación descendente.
func (s *LifecycleService) List(ctx context.Context) ([]model.PqrModel, error) {
	var pqrs []model.PqrModel
	if err := s.DB.WithContext(ctx).Order("pqr_date DESC").Find(&pqrs).Error; err != nil {
		return nil, err
	}
	return pqrs, nil
}
