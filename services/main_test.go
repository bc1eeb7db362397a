package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cityserv/cityserv/models"
	"github.com/cityserv/cityserv/utils"
)

// newTestDB opens an in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// One connection, or each pooled conn would get its own empty memory DB.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Provider{},
		&models.Booking{},
	))
	return gdb
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	user := models.User{Name: name, Email: email, Password: hash, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createService(t *testing.T, db *gorm.DB, title string, basePrice float64) *models.Service {
	t.Helper()
	service := models.Service{Title: title, Description: title + " services", Icon: "/icon.jpg", BasePrice: basePrice}
	require.NoError(t, db.Create(&service).Error)
	return &service
}

func createProvider(t *testing.T, db *gorm.DB, user *models.User, service *models.Service, verified bool) *models.Provider {
	t.Helper()
	provider := models.Provider{
		UserID:     user.ID,
		ServiceID:  service.ID,
		Phone:      "1234567890",
		Experience: 5,
		IsVerified: verified,
	}
	require.NoError(t, db.Create(&provider).Error)
	return &provider
}
