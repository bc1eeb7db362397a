package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/cityserv/cityserv/models"
	"github.com/cityserv/cityserv/utils"
)

// AuthService covers sign-up, sign-in and profile lookups.
type AuthService struct {
	DB *gorm.DB
}

type SignUpInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignUp creates a customer account with a hashed password. Duplicate
// emails fail with ErrConflict.
func (s *AuthService) SignUp(input SignUpInput) (*models.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var existing models.User
	if s.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return nil, fmt.Errorf("%w: user with this email already exists", ErrConflict)
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     models.RoleCustomer,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		// The pre-check above races with concurrent sign-ups; the unique
		// index on email is the authority.
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: user with this email already exists", ErrConflict)
		}
		return nil, err
	}
	return &user, nil
}

// isUniqueViolation recognizes unique-index errors across drivers
// (Postgres SQLSTATE 23505, SQLite "UNIQUE constraint failed").
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignIn verifies credentials. Unknown emails and wrong passwords fail
// the same way so accounts cannot be enumerated.
func (s *AuthService) SignIn(input SignInInput) (*models.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var user models.User
	if s.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return nil, ErrInvalidCredentials
	}
	if !utils.VerifyPassword(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUser resolves a user by id on behalf of the session middleware.
// Stale ids fail with ErrNotFound.
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfileImage uploads the picture to Cloudinary and stores the
// secure URL on the user.
func (s *AuthService) UpdateProfileImage(actor *models.User, file interface{}) (string, error) {
	if actor == nil {
		return "", ErrUnauthorized
	}
	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("user_%d", actor.ID), "cityserv/profiles")
	if err != nil {
		return "", err
	}
	if err := s.DB.Model(&models.User{}).Where("id = ?", actor.ID).Update("image", url).Error; err != nil {
		return "", err
	}
	return url, nil
}
