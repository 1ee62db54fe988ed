package seeders

import (
	"time"

	"harborhr/backend/internal/models"
	hlog "harborhr/backend/pkg/log"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoData popula o banco com dados de demonstração para desenvolvimento.
// Cada seeder verifica se os dados já existem antes de inserir.
func SeedDemoData(db *gorm.DB) error {
	log := hlog.L.Named("SeedDemoData")

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Demo data already present, skipping seed.")
		return nil
	}

	log.Info("Seeding demo data...")

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		FirstName:    "Ana",
		LastName:     "Ferreira",
		Email:        "admin@harborhr.local",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	employee := models.User{
		FirstName:    "Bruno",
		LastName:     "Souza",
		Email:        "bruno@harborhr.local",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		IsActive:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	if err := db.Create(&employee).Error; err != nil {
		return err
	}

	messages := []models.Message{
		{CreatorID: admin.ID, ReceiverID: employee.ID, Body: "Welcome to HarborHR! Your benefits enrollment window opens next Monday."},
		{CreatorID: employee.ID, ReceiverID: admin.ID, Body: "Thanks! Where do I find the dental plan forms?"},
	}
	if err := db.Create(&messages).Error; err != nil {
		return err
	}

	pto := models.PaidTimeOff{UserID: employee.ID, PTOEarned: 15, PTOTaken: 3, SickDaysTaken: 1}
	if err := db.Create(&pto).Error; err != nil {
		return err
	}

	schedule := models.Schedule{
		PaidTimeOffID: pto.ID,
		DateBegin:     time.Now().AddDate(0, 1, 0),
		DateEnd:       time.Now().AddDate(0, 1, 5),
		EventDesc:     "Annual leave",
		EventName:     "Vacation",
		EventType:     "pto",
	}
	if err := db.Create(&schedule).Error; err != nil {
		return err
	}

	log.Info("Demo data seeded.", zap.Uint("admin_id", admin.ID), zap.Uint("employee_id", employee.ID))
	return nil
}
