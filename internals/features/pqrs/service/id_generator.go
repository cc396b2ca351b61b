// file: internals/features/pqrs/service/id_generator.go
package service

import (
	"fmt"
	"math/rand"
	"time"
)

// GeneratePqrID produce el radicado legible: PQR-<fecha UTC>-<hora local><2 dígitos>.
// Ej: PQR-20250830-104237. No consulta el store: una colisión del sufijo de
// 2 dígitos dentro del mismo minuto la detecta la restricción única de pqr_id.
func GeneratePqrID(now time.Time, suffix int) string {
	fecha := now.UTC().Format("20060102")
	hora := now.Format("1504")
	return fmt.Sprintf("PQR-%s-%s%02d", fecha, hora, suffix%100)
}

// NewPqrID genera un radicado con reloj y sufijo aleatorio reales.
func NewPqrID() string {
	return GeneratePqrID(time.Now(), rand.Intn(100))
}
