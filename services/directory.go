package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/cityserv/cityserv/models"
	"github.com/cityserv/cityserv/redis"
)

const servicesCacheKey = "services"

// DirectoryService lists the service catalog and registers providers.
type DirectoryService struct {
	DB *gorm.DB
}

// ListServices returns the whole catalog, alphabetical by title.
func (s *DirectoryService) ListServices() ([]models.Service, error) {
	var services []models.Service
	if redis.CacheGet(servicesCacheKey, &services) {
		return services, nil
	}

	if err := s.DB.Order("title asc").Find(&services).Error; err != nil {
		return nil, err
	}

	redis.CacheSet(servicesCacheKey, services, listCacheTTL)
	return services, nil
}

// GetService returns a service with its verified providers. Unverified
// providers never appear in booking flows.
func (s *DirectoryService) GetService(id uint) (*models.Service, error) {
	var service models.Service
	err := s.DB.
		Preload("Providers", "is_verified = ?", true).
		Preload("Providers.User").
		First(&service, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: service", ErrNotFound)
		}
		return nil, err
	}
	return &service, nil
}

type CreateServiceInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Icon        string  `json:"icon" validate:"required"`
	BasePrice   float64 `json:"basePrice" validate:"required,min=0"`
}

// CreateService adds a catalog entry. Admin only.
func (s *DirectoryService) CreateService(actor *models.User, input CreateServiceInput) (*models.Service, error) {
	if err := authorize(ActionCreateService, actor, nil); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	service := models.Service{
		Title:       input.Title,
		Description: input.Description,
		Icon:        input.Icon,
		BasePrice:   input.BasePrice,
	}
	if err := s.DB.Create(&service).Error; err != nil {
		return nil, err
	}

	redis.CacheInvalidate(servicesCacheKey)
	return &service, nil
}

type RegisterProviderInput struct {
	FullName   string `json:"fullName" validate:"required,min=2"`
	Phone      string `json:"phone" validate:"required,min=10"`
	ServiceID  uint   `json:"serviceId" validate:"required"`
	Experience int    `json:"experience" validate:"min=0"`
}

// RegisterProvider turns the acting user into a provider for one service
// category. Registration is a one-time action: a second call fails with
// ErrConflict and leaves the existing record untouched. New providers
// start unverified and stay out of booking flows until an admin verifies
// them.
func (s *DirectoryService) RegisterProvider(actor *models.User, input RegisterProviderInput) (*models.Provider, error) {
	if err := authorize(ActionRegisterProvider, actor, nil); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var existing models.Provider
	if s.DB.Where("user_id = ?", actor.ID).First(&existing).RowsAffected > 0 {
		return nil, fmt.Errorf("%w: already registered as a provider", ErrConflict)
	}

	var service models.Service
	if err := s.DB.First(&service, input.ServiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: service", ErrNotFound)
		}
		return nil, err
	}

	provider := models.Provider{
		UserID:     actor.ID,
		Phone:      input.Phone,
		ServiceID:  input.ServiceID,
		Experience: input.Experience,
		IsVerified: false,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if actor.Name != input.FullName {
			if err := tx.Model(&models.User{}).Where("id = ?", actor.ID).Update("name", input.FullName).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(&provider).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", actor.ID).Update("role", models.RoleProvider).Error
	})
	if err != nil {
		return nil, err
	}
	return &provider, nil
}
