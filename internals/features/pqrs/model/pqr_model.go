// file: internals/features/pqrs/model/pqr_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

/* ===================== CONJUNTOS CERRADOS ===================== */

const (
	StatusRadicada  = "Radicada"
	StatusEnProceso = "En Proceso"
	StatusResuelta  = "Resuelta"
	StatusCerrada   = "Cerrada"
	StatusRechazada = "Rechazada"
)

const (
	ServiceAcueducto      = "Acueducto"
	ServiceAlcantarillado = "Alcantarillado"
	ServiceAseo           = "Aseo"
)

const (
	PaymentAlDia  = "Al día"
	PaymentEnMora = "En Mora"
)

const (
	PresentTitular  = "Titular"
	PresentFamiliar = "Familiar"
	PresentVecino   = "Vecino"
	PresentAusente  = "Ausente"
)

var (
	AllStatuses = []string{
		StatusRadicada,
		StatusEnProceso,
		StatusResuelta,
		StatusCerrada,
		StatusRechazada,
	}

	// Estados que cuentan como "pendiente" para operaciones y reportes
	PendingStatuses = []string{
		StatusRadicada,
		StatusEnProceso,
	}

	AllServices = []string{
		ServiceAcueducto,
		ServiceAlcantarillado,
		ServiceAseo,
	}
)

func IsValidStatus(s string) bool {
	for _, st := range AllStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func IsValidService(s string) bool {
	for _, sv := range AllServices {
		if sv == s {
			return true
		}
	}
	return false
}

/* ===================== HISTORIAL ===================== */

// HistoryEntry es una entrada inmutable del historial de la PQR.
// El motor de ciclo de vida es el único que agrega entradas;
// nunca se editan ni se eliminan.
type HistoryEntry struct {
	Date   time.Time `json:"date"`
	Action string    `json:"action"`
	User   string    `json:"user"`
	Note   string    `json:"note,omitempty"`
}

/* ===================== MODELO ===================== */

// PqrModel representa la tabla pqrs.
// Los tags JSON conservan el formato de la API original (camelCase).
type PqrModel struct {
	PqrID   string    `json:"id" gorm:"type:text;primaryKey;column:pqr_id"`
	PqrDate time.Time `json:"date" gorm:"not null;column:pqr_date;index:idx_pqrs_date"`

	PqrSubscriberCode string `json:"subscriberCode" gorm:"type:text;not null;column:pqr_subscriber_code;index"`

	// Snapshot del directorio de suscriptores al momento de radicar
	// (cambios posteriores en el directorio no actualizan la PQR).
	PqrName         string `json:"name" gorm:"type:text;not null;column:pqr_name"`
	PqrAddress      string `json:"address" gorm:"type:text;column:pqr_address"`
	PqrNeighborhood string `json:"neighborhood" gorm:"type:text;column:pqr_neighborhood"`
	PqrPhone        string `json:"phone" gorm:"type:text;not null;column:pqr_phone"`
	PqrFullAddress  string `json:"fullAddress" gorm:"type:text;column:pqr_full_address"`

	PqrCedula      string `json:"cedula" gorm:"type:text;not null;column:pqr_cedula"`
	PqrService     string `json:"service" gorm:"type:varchar(20);not null;column:pqr_service"`
	PqrDescription string `json:"description" gorm:"type:text;not null;column:pqr_description"`

	PqrPaymentStatus  string `json:"paymentStatus" gorm:"type:varchar(10);not null;column:pqr_payment_status"`
	PqrWantsAgreement bool   `json:"wantsAgreement" gorm:"not null;default:false;column:pqr_wants_agreement"`

	PqrStatus            string `json:"status" gorm:"type:varchar(20);not null;default:'Radicada';column:pqr_status"`
	PqrAttendedInAbsence bool   `json:"attendedInAbsence" gorm:"not null;default:false;column:pqr_attended_in_absence"`
	PqrLastResponsible   string `json:"lastResponsible" gorm:"type:text;column:pqr_last_responsible"`

	PqrHistory datatypes.JSONSlice[HistoryEntry] `json:"history" gorm:"type:jsonb;not null;default:'[]';column:pqr_history"`
}

// TableName enlaza el modelo a la tabla pqrs
func (PqrModel) TableName() string { return "pqrs" }
