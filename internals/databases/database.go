package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"empuvilla_backend/internals/configs"
	pqrModel "empuvilla_backend/internals/features/pqrs/model"
	subscriberModel "empuvilla_backend/internals/features/subscribers/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando a PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=empuvilla&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible con PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
		// violaciones de restricción única → gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Error de conexión a PostgreSQL: %v", err)
	}
	DB = db
	log.Println("✅ Conectado a PostgreSQL")
}

// Migrate crea/actualiza las tablas del sistema (pqrs + suscriptores).
func Migrate() {
	if err := DB.AutoMigrate(
		&subscriberModel.SubscriberModel{},
		&pqrModel.PqrModel{},
	); err != nil {
		log.Fatalf("❌ Error en migración: %v", err)
	}
	log.Println("✅ Migraciones aplicadas.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// ping liviano para que el pool quede listo antes del primer request
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
