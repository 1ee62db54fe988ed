package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"harborhr/backend/internal/database"
	"harborhr/backend/internal/models"
	"harborhr/backend/pkg/config"

	"golang.org/x/crypto/bcrypt"
)

// Setup interativo: conecta ao banco, aplica migrações e cria o primeiro
// usuário administrador.
func main() {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("--- HarborHR Setup ---")

	config.LoadConfig()

	sslMode := "disable"
	if config.Cfg.EnableDBSSL {
		sslMode = "require"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		config.Cfg.DBHost, config.Cfg.DBPort, config.Cfg.DBUser, config.Cfg.DBPassword, config.Cfg.DBName, sslMode)

	if err := database.ConnectDB(dsn); err != nil {
		log.Fatalf("Failed to connect to database during setup: %v", err)
	}
	fmt.Println("Successfully connected to the database.")

	if err := database.MigrateDB(); err != nil {
		log.Fatalf("Failed to run database migrations during setup: %v", err)
	}
	fmt.Println("Database migrations completed successfully.")

	fmt.Println("\n--- Admin User Setup ---")
	fmt.Print("Enter admin first name: ")
	firstName, _ := reader.ReadString('\n')
	firstName = strings.TrimSpace(firstName)

	fmt.Print("Enter admin last name: ")
	lastName, _ := reader.ReadString('\n')
	lastName = strings.TrimSpace(lastName)

	fmt.Print("Enter admin email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)

	fmt.Print("Enter admin password: ")
	password, _ := reader.ReadString('\n')
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		log.Fatal("Admin email and password must not be empty.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}

	db := database.GetDB()
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user during setup: %v", err)
	}

	fmt.Printf("Admin user '%s' created successfully with ID: %d\n", admin.Email, admin.ID)
	fmt.Println("Setup complete.")
}
