package database

import (
	"log"

	"cardioguard/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.PredictionRecord{},
		&models.LastTestRecord{},
		&models.FAQ{},
		&models.HealthInformation{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
