// Command create-admin provisions a staff user from the command line.
package main

import (
	"flag"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"artmarket.backend/internal/config"
	"artmarket.backend/internal/infrastructure/models"
	"artmarket.backend/pkg/crypto"
)

func main() {
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	role := flag.String("role", "admin", "role: admin or gallery")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: create-admin -email <email> -password <password> [-name <name>] [-role admin|gallery]")
	}
	if *role != "admin" && *role != "gallery" {
		log.Fatalf("unknown role %q", *role)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.Database.URL()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	hash, err := crypto.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         *name,
		Email:        *email,
		PasswordHash: hash,
		Role:         *role,
	}
	if err := db.Create(user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	log.Printf("✅ Created %s user %s (%s)", *role, *email, user.ID)
}
