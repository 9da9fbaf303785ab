package repository

import (
	"time"

	"arklight/internal/domain"
	"arklight/internal/models"

	"gorm.io/gorm"
)

// PrayerRequestRepository adds the respond transition on top of plain
// CRUD. Respond is the only path that sets status to Responded.
type PrayerRequestRepository struct {
	*ContentRepository[models.PrayerRequest]
	db *gorm.DB
}

func NewPrayerRequestRepository(db *gorm.DB) *PrayerRequestRepository {
	return &PrayerRequestRepository{
		ContentRepository: NewContentRepository[models.PrayerRequest](db, "submitted_at DESC"),
		db:                db,
	}
}

// Respond records the admin's reply, moves the request to Responded and
// stamps responded_at, all in one write.
func (r *PrayerRequestRepository) Respond(id uint, response, adminName string) (*models.PrayerRequest, error) {
	var req models.PrayerRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	now := time.Now()
	req.AdminResponse = response
	req.AdminName = adminName
	req.Status = domain.StatusResponded
	req.RespondedAt = &now
	if err := r.db.Save(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatus moves a request between the non-responded states.
func (r *PrayerRequestRepository) UpdateStatus(id uint, status string) (*models.PrayerRequest, error) {
	var req models.PrayerRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	req.Status = status
	if err := r.db.Save(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}
