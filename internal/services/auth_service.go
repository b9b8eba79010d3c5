// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/greenbasket/catalog-api/internal/config"
	"github.com/greenbasket/catalog-api/internal/models"
	"github.com/greenbasket/catalog-api/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) SignUp(account, password string) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("account = ?", account).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check account: %w", err)
	}
	if count > 0 {
		return ErrDuplicateAccount
	}

	user := &models.User{Account: account}
	if err := user.SetPassword(password); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *AuthService) SignIn(account, password string) (string, error) {
	var user models.User
	if err := s.db.Where("account = ?", account).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Account, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}
