package service

import (
	"inventory-app/internal/apperr"
	"inventory-app/internal/models"
	"inventory-app/internal/permission"

	"gorm.io/gorm"
)

type SupplierService struct {
	db *gorm.DB
}

func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{db: db}
}

type SupplierInput struct {
	Name        string `json:"name" binding:"required"`
	ContactInfo string `json:"contact_info"`
}

func (s *SupplierService) List(id Identity) ([]models.Supplier, error) {
	if err := requirePermission(id, permission.ActionView); err != nil {
		return nil, err
	}
	var suppliers []models.Supplier
	if err := s.db.Find(&suppliers).Error; err != nil {
		return nil, apperr.Unexpected("failed to fetch suppliers", err)
	}
	return suppliers, nil
}

// Create registers a supplier. Suppliers are never hard-deleted, so there is
// no Delete counterpart.
func (s *SupplierService) Create(id Identity, input SupplierInput) (uint, error) {
	if err := requirePermission(id, permission.ActionAdd); err != nil {
		return 0, err
	}

	supplier := models.Supplier{
		Name:        input.Name,
		ContactInfo: input.ContactInfo,
	}
	if err := s.db.Create(&supplier).Error; err != nil {
		return 0, apperr.Unexpected("failed to create supplier", err)
	}
	return supplier.ID, nil
}
