package database

import (
	"log"
	"time"

	"inventory-app/config"
	"inventory-app/internal/models"
	"inventory-app/internal/permission"
	"inventory-app/internal/utils"

	"gorm.io/gorm"
)

// SeedUsers creates the three initial accounts if they are missing.
func SeedUsers() {
	seed := []struct {
		username string
		role     permission.Role
		fullName string
		password string
	}{
		{"admin", permission.RoleAdmin, "System Administrator", config.AppConfig.Defaults.AdminPassword},
		{"warehouse", permission.RoleWarehouse, "Warehouse Operator", config.AppConfig.Defaults.WarehousePassword},
		{"manager", permission.RoleManager, "Company Manager", config.AppConfig.Defaults.ManagerPassword},
	}

	for _, s := range seed {
		if s.password == "" {
			continue
		}
		var user models.User
		err := DB.Where("username = ?", s.username).First(&user).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("Failed to look up user %s: %v", s.username, err)
			continue
		}

		hash, err := utils.HashPassword(s.password)
		if err != nil {
			log.Printf("Failed to hash password for %s: %v", s.username, err)
			continue
		}
		user = models.User{
			Username:     s.username,
			PasswordHash: hash,
			Role:         string(s.role),
			FullName:     s.fullName,
		}
		if err := DB.Create(&user).Error; err != nil {
			log.Printf("Failed to seed user %s: %v", s.username, err)
		} else {
			log.Printf("Seeded user %s (%s)", s.username, s.role)
		}
	}
}

// SeedSampleData loads a few suppliers and stock positions for fresh installs.
func SeedSampleData() {
	suppliers := []models.Supplier{
		{Name: "Computer Technologies LLC", ContactInfo: "12 Lenin St, Moscow\ntel: +7 (495) 123-45-67"},
		{Name: "Electron JSC", ContactInfo: "5 Pushkin St, St. Petersburg\ntel: +7 (812) 987-65-43"},
		{Name: "Ivanov Trading", ContactInfo: "10 Mira St, Novosibirsk\ntel: +7 (383) 456-78-90"},
	}
	for i := range suppliers {
		if err := DB.FirstOrCreate(&suppliers[i], models.Supplier{Name: suppliers[i].Name}).Error; err != nil {
			log.Printf("Failed to seed supplier %s: %v", suppliers[i].Name, err)
		}
	}

	now := time.Now()
	items := []models.InventoryItem{
		{
			ReceiptDate:    now.AddDate(0, 0, -30),
			DocumentNumber: "RCPT-001",
			SupplierID:     suppliers[0].ID,
			ComponentType:  "CPU",
			Model:          "Core i7-13700K",
			Manufacturer:   "Intel",
			Quantity:       10,
			PurchasePrice:  25000,
			SellingPrice:   32000,
		},
		{
			ReceiptDate:    now.AddDate(0, 0, -25),
			DocumentNumber: "RCPT-002",
			SupplierID:     suppliers[1].ID,
			ComponentType:  "GPU",
			Model:          "RTX 4070",
			Manufacturer:   "NVIDIA",
			Quantity:       5,
			PurchasePrice:  45000,
			SellingPrice:   55000,
		},
		{
			ReceiptDate:    now.AddDate(0, 0, -20),
			DocumentNumber: "RCPT-003",
			SupplierID:     suppliers[2].ID,
			ComponentType:  "RAM",
			Model:          "DDR4 16GB",
			Manufacturer:   "Kingston",
			Quantity:       20,
			PurchasePrice:  4000,
			SellingPrice:   5500,
		},
	}
	for i := range items {
		var existing models.InventoryItem
		if err := DB.Where("document_number = ?", items[i].DocumentNumber).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := DB.Create(&items[i]).Error; err != nil {
				log.Printf("Failed to seed item %s: %v", items[i].DocumentNumber, err)
			}
		}
	}
}
