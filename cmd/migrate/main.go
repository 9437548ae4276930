// Command migrate applies the GORM schema to the configured database.
package main

import (
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"artmarket.backend/internal/config"
	"artmarket.backend/internal/infrastructure/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.Database.URL()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Gallery{},
		&models.Artist{},
		&models.Artwork{},
		&models.Inquiry{},
		&models.InquiryLog{},
		&models.ActionLog{},
		&models.SavedArtwork{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("✅ Schema migrated")
}
