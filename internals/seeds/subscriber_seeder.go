// file: internals/seeds/subscriber_seeder.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	"empuvilla_backend/internals/features/subscribers/model"
)

// Directorio de referencia de suscriptores de EMPUVILLA S.A. E.S.P.
var subscriberSeeds = []model.SubscriberModel{
	{SubscriberCode: "1001", SubscriberName: "Juan Pérez", SubscriberAddress: "Calle 5 # 10-20", SubscriberPhone: "3101234567", SubscriberNeighborhood: "Centro"},
	{SubscriberCode: "1002", SubscriberName: "María Rodríguez", SubscriberAddress: "Carrera 8 # 15-40", SubscriberPhone: "3129876543", SubscriberNeighborhood: "La Paz"},
	{SubscriberCode: "1003", SubscriberName: "Conjunto Res. Los Alamos", SubscriberAddress: "Av. Principal # 20-00", SubscriberPhone: "6025551234", SubscriberNeighborhood: "Norte"},
	{SubscriberCode: "1004", SubscriberName: "Carlos Daza", SubscriberAddress: "Calle 12 # 4-05", SubscriberPhone: "3005558888", SubscriberNeighborhood: "El Jardín"},
	{SubscriberCode: "1005", SubscriberName: "Luisa Fernanda Ocoró", SubscriberAddress: "Vereda El Chontaduro, Finca La Esperanza", SubscriberPhone: "3158889900", SubscriberNeighborhood: "Zona Rural"},
	{SubscriberCode: "1006", SubscriberName: "Institución Educativa Villa Rica", SubscriberAddress: "Calle 3 # 2-50", SubscriberPhone: "8204455", SubscriberNeighborhood: "Centro"},
	{SubscriberCode: "1007", SubscriberName: "Roberto Balanta", SubscriberAddress: "Carrera 6 # 18-32", SubscriberPhone: "3112223344", SubscriberNeighborhood: "San Fernando"},
	{SubscriberCode: "1008", SubscriberName: "Droguería La Principal", SubscriberAddress: "Calle 5 # 8-10", SubscriberPhone: "3201112233", SubscriberNeighborhood: "Comercial"},
	{SubscriberCode: "1009", SubscriberName: "Ana Tulia Mosquera", SubscriberAddress: "Callejon Las Brisas Casa 4", SubscriberPhone: "3104445566", SubscriberNeighborhood: "Las Brisas"},
	{SubscriberCode: "1010", SubscriberName: "Junta de Acción Comunal", SubscriberAddress: "Salón Comunal Barrio Bolívar", SubscriberPhone: "3187779988", SubscriberNeighborhood: "Bolívar"},
}

// SeedSubscribers inserta los suscriptores que aún no existan (idempotente).
func SeedSubscribers(db *gorm.DB) {
	var existing []string
	if err := db.Model(&model.SubscriberModel{}).
		Select("subscriber_code").
		Find(&existing).Error; err != nil {
		log.Fatalf("❌ Error leyendo suscriptores existentes: %v", err)
	}

	existingMap := make(map[string]bool, len(existing))
	for _, code := range existing {
		existingMap[code] = true
	}

	var missing []model.SubscriberModel
	for _, s := range subscriberSeeds {
		if !existingMap[s.SubscriberCode] {
			missing = append(missing, s)
		}
	}
	if len(missing) == 0 {
		log.Println("✅ Directorio de suscriptores ya poblado.")
		return
	}

	if err := db.Create(&missing).Error; err != nil {
		log.Fatalf("❌ Error sembrando suscriptores: %v", err)
	}
	log.Printf("✅ %d suscriptores sembrados.", len(missing))
}
