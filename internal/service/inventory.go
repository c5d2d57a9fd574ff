package service

import (
	"errors"

	"inventory-app/internal/apperr"
	"inventory-app/internal/models"
	"inventory-app/internal/permission"

	"gorm.io/gorm"
)

type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// ItemInput carries all mutable fields of a stock position.
type ItemInput struct {
	ReceiptDate    string  `json:"receipt_date" binding:"required"`
	DocumentNumber string  `json:"document_number" binding:"required"`
	SupplierID     uint    `json:"supplier_id" binding:"required"`
	ComponentType  string  `json:"component_type" binding:"required"`
	Model          string  `json:"model" binding:"required"`
	Manufacturer   string  `json:"manufacturer" binding:"required"`
	Quantity       int     `json:"quantity"`
	PurchasePrice  float64 `json:"purchase_price"`
	SellingPrice   float64 `json:"selling_price"`
}

// ItemView is the read projection with the supplier name denormalized.
type ItemView struct {
	ID             uint    `json:"id"`
	ReceiptDate    string  `json:"receipt_date"`
	DocumentNumber string  `json:"document_number"`
	SupplierID     uint    `json:"supplier_id"`
	Supplier       string  `json:"supplier"`
	ComponentType  string  `json:"component_type"`
	Model          string  `json:"model"`
	Manufacturer   string  `json:"manufacturer"`
	Quantity       int     `json:"quantity"`
	PurchasePrice  float64 `json:"purchase_price"`
	SellingPrice   float64 `json:"selling_price"`
}

func itemView(item models.InventoryItem) ItemView {
	return ItemView{
		ID:             item.ID,
		ReceiptDate:    item.ReceiptDate.Format(dateLayout),
		DocumentNumber: item.DocumentNumber,
		SupplierID:     item.SupplierID,
		Supplier:       item.Supplier.Name,
		ComponentType:  item.ComponentType,
		Model:          item.Model,
		Manufacturer:   item.Manufacturer,
		Quantity:       item.Quantity,
		PurchasePrice:  item.PurchasePrice,
		SellingPrice:   item.SellingPrice,
	}
}

func (s *InventoryService) validate(input ItemInput) error {
	if input.Quantity < 0 {
		return apperr.Validation("quantity must not be negative")
	}
	if input.PurchasePrice < 0 || input.SellingPrice < 0 {
		return apperr.Validation("prices must not be negative")
	}
	return nil
}

func (s *InventoryService) List(id Identity) ([]ItemView, error) {
	if err := requirePermission(id, permission.ActionView); err != nil {
		return nil, err
	}

	var items []models.InventoryItem
	if err := s.db.Preload("Supplier").Find(&items).Error; err != nil {
		return nil, apperr.Unexpected("failed to fetch inventory", err)
	}

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView(item))
	}
	return views, nil
}

func (s *InventoryService) Get(id Identity, itemID uint) (ItemView, error) {
	if err := requirePermission(id, permission.ActionView); err != nil {
		return ItemView{}, err
	}

	var item models.InventoryItem
	if err := s.db.Preload("Supplier").First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ItemView{}, apperr.NotFound("inventory item %d not found", itemID)
		}
		return ItemView{}, apperr.Unexpected("failed to fetch inventory item", err)
	}
	return itemView(item), nil
}

func (s *InventoryService) Create(id Identity, input ItemInput) (uint, error) {
	if err := requirePermission(id, permission.ActionAdd); err != nil {
		return 0, err
	}
	if err := s.validate(input); err != nil {
		return 0, err
	}

	receiptDate, err := parseDate(input.ReceiptDate)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := s.db.Model(&models.InventoryItem{}).Where("document_number = ?", input.DocumentNumber).Count(&count).Error; err != nil {
		return 0, apperr.Unexpected("failed to check document number", err)
	}
	if count > 0 {
		return 0, apperr.DuplicateDocument("an item with document number %q already exists", input.DocumentNumber)
	}

	item := models.InventoryItem{
		ReceiptDate:    receiptDate,
		DocumentNumber: input.DocumentNumber,
		SupplierID:     input.SupplierID,
		ComponentType:  input.ComponentType,
		Model:          input.Model,
		Manufacturer:   input.Manufacturer,
		Quantity:       input.Quantity,
		PurchasePrice:  input.PurchasePrice,
		SellingPrice:   input.SellingPrice,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return 0, apperr.Unexpected("failed to create inventory item", err)
	}
	return item.ID, nil
}

func (s *InventoryService) Update(id Identity, itemID uint, input ItemInput) error {
	if err := requirePermission(id, permission.ActionEdit); err != nil {
		return err
	}
	if err := s.validate(input); err != nil {
		return err
	}

	receiptDate, err := parseDate(input.ReceiptDate)
	if err != nil {
		return err
	}

	var item models.InventoryItem
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("inventory item %d not found", itemID)
		}
		return apperr.Unexpected("failed to fetch inventory item", err)
	}

	// Document number stays unique across all other items
	if input.DocumentNumber != item.DocumentNumber {
		var count int64
		if err := s.db.Model(&models.InventoryItem{}).
			Where("document_number = ? AND id <> ?", input.DocumentNumber, itemID).
			Count(&count).Error; err != nil {
			return apperr.Unexpected("failed to check document number", err)
		}
		if count > 0 {
			return apperr.DuplicateDocument("an item with document number %q already exists", input.DocumentNumber)
		}
	}

	item.ReceiptDate = receiptDate
	item.DocumentNumber = input.DocumentNumber
	item.SupplierID = input.SupplierID
	item.ComponentType = input.ComponentType
	item.Model = input.Model
	item.Manufacturer = input.Manufacturer
	item.Quantity = input.Quantity
	item.PurchasePrice = input.PurchasePrice
	item.SellingPrice = input.SellingPrice

	if err := s.db.Save(&item).Error; err != nil {
		return apperr.Unexpected("failed to update inventory item", err)
	}
	return nil
}

func (s *InventoryService) Delete(id Identity, itemID uint) error {
	if err := requirePermission(id, permission.ActionDelete); err != nil {
		return err
	}

	var item models.InventoryItem
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("inventory item %d not found", itemID)
		}
		return apperr.Unexpected("failed to fetch inventory item", err)
	}

	var salesCount int64
	if err := s.db.Model(&models.Sale{}).Where("item_id = ?", itemID).Count(&salesCount).Error; err != nil {
		return apperr.Unexpected("failed to check sales references", err)
	}
	if salesCount > 0 {
		return apperr.ReferentialConflict("cannot delete an item that has recorded sales")
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return apperr.Unexpected("failed to delete inventory item", err)
	}
	return nil
}
