// file: internals/features/pqrs/dto/pqr_dto.go
package dto

/* ===================== REQUESTS ===================== */

// CreatePqrRequest es el payload de radicación (ciudadano, sin autenticación).
// El cliente de referencia envía el registro completo; el servidor solo lee
// estos campos — id, snapshot del suscriptor e historial son autoridad del motor.
type CreatePqrRequest struct {
	SubscriberCode string `json:"subscriberCode" validate:"required"`
	Cedula         string `json:"cedula" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	AddressDetails string `json:"addressDetails"`
	Service        string `json:"service" validate:"required,oneof=Acueducto Alcantarillado Aseo"`
	Description    string `json:"description" validate:"required"`
	// Respuesta del ciudadano sobre su estado de pago:
	// "Al día" | "En Mora", o la forma cruda "yes" | "no" del formulario.
	PaymentStatus  string `json:"paymentStatus" validate:"required"`
	WantsAgreement bool   `json:"wantsAgreement"`
}

// UpdatePqrRequest es la gestión del operario sobre una PQR existente.
// El cliente de referencia envía el registro completo con lastResponsible;
// se acepta como alias de operator. El historial del cliente se ignora:
// el motor es el único escritor del historial.
type UpdatePqrRequest struct {
	Status          string `json:"status" validate:"required,oneof=Radicada 'En Proceso' Resuelta Cerrada Rechazada"`
	Operator        string `json:"operator"`
	LastResponsible string `json:"lastResponsible"`
	Note            string `json:"note" validate:"required"`
	PersonPresent   string `json:"personPresent" validate:"omitempty,oneof=Titular Familiar Vecino Ausente"`
}

// OperatorName resuelve operator con lastResponsible como alias.
func (r UpdatePqrRequest) OperatorName() string {
	if r.Operator != "" {
		return r.Operator
	}
	return r.LastResponsible
}

// ImproveTextRequest para la mejora de redacción (best-effort).
type ImproveTextRequest struct {
	Text string `json:"text" validate:"required"`
}

type ImproveTextResponse struct {
	Text string `json:"text"`
}
