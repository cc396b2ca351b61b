// file: internals/features/subscribers/service/subscriber_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"empuvilla_backend/internals/features/subscribers/model"
)

// ErrSubscriberNotFound: el código no existe en el directorio.
var ErrSubscriberNotFound = errors.New("código de suscriptor no encontrado")

// Directory es la vista de solo lectura del directorio de suscriptores.
// El motor de ciclo de vida depende de esta interfaz, no de la tabla.
type Directory interface {
	FindByCode(ctx context.Context, code string) (*model.SubscriberModel, error)
}

// GormDirectory implementa Directory sobre la tabla subscribers.
type GormDirectory struct {
	DB *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{DB: db}
}

func (d *GormDirectory) FindByCode(ctx context.Context, code string) (*model.SubscriberModel, error) {
	var sub model.SubscriberModel
	if err := d.DB.WithContext(ctx).First(&sub, "subscriber_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriberNotFound
		}
		return nil, err
	}
	return &sub, nil
}
