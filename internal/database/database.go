package database

import (
	"fmt"
	"log"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/config"
	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Participant{},
		&models.Session{},
		&models.Question{},
		&models.Answer{},
		&models.Setting{},
		&models.PushSubscription{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	seedSettings(db)
	log.Println("database migrated")
}

// seedSettings inserts the default quiz window and day, keeping any values
// an admin already changed.
func seedSettings(db *gorm.DB) {
	defaults := []models.Setting{
		{Key: models.SettingQuizOpenTime, Value: "21:00"},
		{Key: models.SettingQuizCloseTime, Value: "22:45"},
		{Key: models.SettingCurrentDay, Value: "1"},
	}
	db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults)
}
