package database

import (
	"errors"
	"log"

	"arklight/config"
	"arklight/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminUser{},
		&models.AppUser{},
		&models.HomeCard{},
		&models.SliderSlide{},
		&models.BroadcastEvent{},
		&models.PrayerSlide{},
		&models.MusicTrack{},
		&models.QuizQuestion{},
		&models.PrayerRequest{},
		&models.VideoResource{},
		&models.PrayerResource{},
	)
}

// SeedAdmin inserts the configured admin account if it does not exist.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) {
	var existing models.AdminUser
	err := db.Where("email = ?", cfg.Email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[seed] admin lookup failed: %v", err)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[seed] hash failed: %v", err)
		return
	}
	admin := models.AdminUser{Email: cfg.Email, PasswordHash: string(hash), Name: cfg.Name}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[seed] admin create failed: %v", err)
		return
	}
	log.Printf("[seed] admin account created for %s", cfg.Email)
}
