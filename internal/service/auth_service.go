package service

import (
	"errors"

	"arklight/config"
	"arklight/internal/auth"
	"arklight/internal/models"
	"arklight/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCreds = errors.New("invalid email or password")
)

type AuthService struct {
	cfg       *config.Config
	adminRepo *repository.AdminRepository
}

func NewAuthService(cfg *config.Config, adminRepo *repository.AdminRepository) *AuthService {
	return &AuthService{cfg: cfg, adminRepo: adminRepo}
}

func (s *AuthService) Login(email, password string) (*models.AdminUser, string, string, error) {
	a, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, _ := auth.GenerateAccessToken(&s.cfg.JWT, a.ID, a.Email)
	refresh, _ := auth.GenerateRefreshToken(&s.cfg.JWT, a.ID)
	return a, access, refresh, nil
}

func (s *AuthService) Refresh(refreshToken string) (string, string, error) {
	id, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", "", err
	}
	a, err := s.adminRepo.GetByID(id)
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, a.ID, a.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, a.ID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *AuthService) ChangePassword(adminID uint, current, next string) error {
	a, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCreds
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return s.adminRepo.Update(a)
}
