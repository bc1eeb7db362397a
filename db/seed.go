package db

import (
	"log"

	"github.com/cityserv/cityserv/models"
	"github.com/cityserv/cityserv/utils"
)

// Seed loads the demo catalog and accounts: the eight service categories,
// an admin, three verified providers and a demo customer. It is a no-op
// when services already exist so it is safe to run repeatedly.
func Seed() {
	var count int64
	DB.Model(&models.Service{}).Count(&count)
	if count > 0 {
		log.Println("Seed skipped: services already present")
		return
	}

	services := []models.Service{
		{Title: "Plumbing", Description: "Expert plumbers for all your needs", Icon: "/plumbing-icon.jpg", BasePrice: 50},
		{Title: "Electrical Work", Description: "Skilled electricians at your service", Icon: "/electrician-icon.jpg", BasePrice: 60},
		{Title: "Carpentry", Description: "Professional carpentry services", Icon: "/carpenter-icon.jpg", BasePrice: 55},
		{Title: "Home Cleaning", Description: "Thorough home cleaning services", Icon: "/home-cleaning-icon.jpg", BasePrice: 40},
		{Title: "Landscaping", Description: "Transform your outdoor spaces", Icon: "/landscaping-icon.jpg", BasePrice: 45},
		{Title: "Painting", Description: "Professional interior and exterior painting", Icon: "/painting-icon.jpg", BasePrice: 40},
		{Title: "HVAC Services", Description: "Heating, ventilation, and air conditioning experts", Icon: "/hvac-icon.jpg", BasePrice: 70},
		{Title: "Pest Control", Description: "Effective pest management solutions", Icon: "/pest-control-icon.jpg", BasePrice: 80},
	}
	for i := range services {
		if err := DB.Create(&services[i]).Error; err != nil {
			log.Fatal("Failed to seed services: ", err)
		}
	}

	adminPassword, err := utils.HashPassword("admin123")
	if err != nil {
		log.Fatal("Failed to hash seed password: ", err)
	}
	admin := models.User{Name: "Admin User", Email: "admin@cityserv.com", Password: adminPassword, Role: models.RoleAdmin}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to seed admin: ", err)
	}

	providerPassword, err := utils.HashPassword("provider123")
	if err != nil {
		log.Fatal("Failed to hash seed password: ", err)
	}

	demoProviders := []struct {
		Name       string
		Email      string
		Phone      string
		Service    string
		Experience int
	}{
		{"John Smith", "plumber@cityserv.com", "1234567890", "Plumbing", 5},
		{"Sarah Johnson", "electrician@cityserv.com", "0987654321", "Electrical Work", 8},
		{"Mike Wilson", "carpenter@cityserv.com", "5556667777", "Carpentry", 12},
	}
	for _, p := range demoProviders {
		var service models.Service
		if err := DB.Where("title = ?", p.Service).First(&service).Error; err != nil {
			log.Fatal("Failed to look up seed service: ", err)
		}
		user := models.User{Name: p.Name, Email: p.Email, Password: providerPassword, Role: models.RoleProvider}
		if err := DB.Create(&user).Error; err != nil {
			log.Fatal("Failed to seed provider user: ", err)
		}
		provider := models.Provider{
			UserID:     user.ID,
			ServiceID:  service.ID,
			Phone:      p.Phone,
			Experience: p.Experience,
			IsVerified: true,
		}
		if err := DB.Create(&provider).Error; err != nil {
			log.Fatal("Failed to seed provider: ", err)
		}
	}

	customerPassword, err := utils.HashPassword("customer123")
	if err != nil {
		log.Fatal("Failed to hash seed password: ", err)
	}
	customer := models.User{Name: "Customer Demo", Email: "customer@cityserv.com", Password: customerPassword, Role: models.RoleCustomer}
	if err := DB.Create(&customer).Error; err != nil {
		log.Fatal("Failed to seed customer: ", err)
	}

	log.Println("✅ Database seeded successfully!")
}
