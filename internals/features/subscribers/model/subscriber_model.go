// file: internals/features/subscribers/model/subscriber_model.go
package model

// SubscriberModel representa la tabla subscribers (directorio de suscriptores).
// Lectura únicamente: el ciclo de vida de las PQR nunca escribe aquí.
type SubscriberModel struct {
	SubscriberCode         string `json:"code" gorm:"type:text;primaryKey;column:subscriber_code"`
	SubscriberName         string `json:"name" gorm:"type:text;not null;column:subscriber_name"`
	SubscriberAddress      string `json:"address" gorm:"type:text;not null;column:subscriber_address"`
	SubscriberPhone        string `json:"phone" gorm:"type:text;not null;column:subscriber_phone"`
	SubscriberNeighborhood string `json:"neighborhood" gorm:"type:text;not null;column:subscriber_neighborhood"`
}

// TableName enlaza el modelo a la tabla subscribers
func (SubscriberModel) TableName() string { return "subscribers" }
