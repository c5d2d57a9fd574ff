package service

import (
	"errors"

	"inventory-app/internal/apperr"
	"inventory-app/internal/models"
	"inventory-app/internal/permission"
	"inventory-app/internal/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticate verifies the username/password pair and returns the user on
// success. Callers must not distinguish unknown user from wrong password.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, apperr.Unexpected("failed to look up user", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

type UserInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

func (s *UserService) List(id Identity) ([]models.User, error) {
	if err := requirePermission(id, permission.ActionUsers); err != nil {
		return nil, err
	}
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, apperr.Unexpected("failed to fetch users", err)
	}
	return users, nil
}

func (s *UserService) Create(id Identity, input UserInput) (uint, error) {
	if err := requirePermission(id, permission.ActionUsers); err != nil {
		return 0, err
	}
	if !permission.ValidRole(permission.Role(input.Role)) {
		return 0, apperr.Validation("unknown role %q", input.Role)
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", input.Username).Count(&count).Error; err != nil {
		return 0, apperr.Unexpected("failed to check username", err)
	}
	if count > 0 {
		return 0, apperr.Validation("username %q is already taken", input.Username)
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return 0, apperr.Unexpected("failed to hash password", err)
	}
	user := models.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		FullName:     input.FullName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return 0, apperr.Unexpected("failed to create user", err)
	}
	return user.ID, nil
}

func (s *UserService) ResetPassword(id Identity, userID uint, password string) error {
	if err := requirePermission(id, permission.ActionUsers); err != nil {
		return err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user %d not found", userID)
		}
		return apperr.Unexpected("failed to fetch user", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return apperr.Unexpected("failed to hash password", err)
	}
	if err := s.db.Model(&user).Update("password_hash", hash).Error; err != nil {
		return apperr.Unexpected("failed to reset password", err)
	}
	return nil
}

// ChangePassword rotates the caller's own credential; no permission gate.
func (s *UserService) ChangePassword(id Identity, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return apperr.Unexpected("failed to hash password", err)
	}
	result := s.db.Model(&models.User{}).Where("id = ?", id.UserID).Update("password_hash", hash)
	if result.Error != nil {
		return apperr.Unexpected("failed to update password", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("user %d not found", id.UserID)
	}
	return nil
}
