package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/TallerServices01/maintenance-tracker/internal/config"
	"github.com/TallerServices01/maintenance-tracker/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Equipment{},
		&models.Order{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE orders
        SET status = 'Pending'
        WHERE status IS NULL OR status = ''
    `)

	if err := SeedAdmin(db, cfg); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	return db
}

// SeedAdmin creates the bootstrap admin account from ADMIN_USER / ADMIN_PASS.
// It does nothing when the credentials are unset or the account already exists.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUser == "" || cfg.AdminPass == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ?", cfg.AdminUser).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     cfg.AdminUser,
		PasswordHash: string(hashed),
		DisplayName:  cfg.AdminUser,
		Role:         "admin",
	}
	return db.Create(&admin).Error
}
