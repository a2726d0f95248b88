package main

import (
	"log"
	"os"

	"progee-api/internal/model"
	"progee-api/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Resets the super admin password. Meant for operators locked out of
// the admin account; run with ADMIN_EMAIL/ADMIN_PASSWORD set to
// override the defaults.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Find Admin
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@progee.dev"
	}
	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		log.Fatalf("User %s not found in database: %v", email, err)
	}

	// 4. Hash new password
	newPassword := os.Getenv("ADMIN_PASSWORD")
	if newPassword == "" {
		newPassword = "admin123"
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// 5. Update
	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s reset successfully", email)
}
