package repository

import (
	"arklight/internal/models"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var a models.AdminUser
	if err := r.db.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByID(id uint) (*models.AdminUser, error) {
	var a models.AdminUser
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) Update(a *models.AdminUser) error {
	return r.db.Save(a).Error
}
