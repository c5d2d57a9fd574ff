package service

import (
	"errors"

	"inventory-app/internal/apperr"
	"inventory-app/internal/models"
	"inventory-app/internal/permission"

	"gorm.io/gorm"
)

type SaleService struct {
	db *gorm.DB
}

func NewSaleService(db *gorm.DB) *SaleService {
	return &SaleService{db: db}
}

type SaleInput struct {
	SaleDate       string `json:"sale_date" binding:"required"`
	DocumentNumber string `json:"document_number" binding:"required"`
	Customer       string `json:"customer" binding:"required"`
	ItemID         uint   `json:"item_id" binding:"required"`
	QuantitySold   int    `json:"quantity_sold"`
}

type SaleView struct {
	ID             uint    `json:"id"`
	SaleDate       string  `json:"sale_date"`
	DocumentNumber string  `json:"document_number"`
	Customer       string  `json:"customer"`
	ItemID         uint    `json:"item_id"`
	Product        string  `json:"product"`
	QuantitySold   int     `json:"quantity_sold"`
	TotalAmount    float64 `json:"total_amount"`
}

func saleView(sale models.Sale) SaleView {
	return SaleView{
		ID:             sale.ID,
		SaleDate:       sale.SaleDate.Format(dateLayout),
		DocumentNumber: sale.DocumentNumber,
		Customer:       sale.Customer,
		ItemID:         sale.ItemID,
		Product:        sale.Item.Manufacturer + " " + sale.Item.Model,
		QuantitySold:   sale.QuantitySold,
		TotalAmount:    sale.TotalAmount,
	}
}

// Create records a sale and decrements the item's stock in one transaction.
// The decrement is a single guarded UPDATE (quantity >= sold), so two sales
// racing on the same item cannot oversell it.
func (s *SaleService) Create(id Identity, input SaleInput) (uint, float64, error) {
	if err := requirePermission(id, permission.ActionAdd); err != nil {
		return 0, 0, err
	}

	saleDate, err := parseDate(input.SaleDate)
	if err != nil {
		return 0, 0, err
	}
	if input.QuantitySold <= 0 {
		return 0, 0, apperr.InvalidQuantity("quantity sold must be a positive integer, got %d", input.QuantitySold)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return 0, 0, apperr.Unexpected("failed to start transaction", tx.Error)
	}

	var count int64
	if err := tx.Model(&models.Sale{}).Where("document_number = ?", input.DocumentNumber).Count(&count).Error; err != nil {
		tx.Rollback()
		return 0, 0, apperr.Unexpected("failed to check document number", err)
	}
	if count > 0 {
		tx.Rollback()
		return 0, 0, apperr.DuplicateDocument("a sale with document number %q already exists", input.DocumentNumber)
	}

	var item models.InventoryItem
	if err := tx.First(&item, input.ItemID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, apperr.NotFound("inventory item %d not found", input.ItemID)
		}
		return 0, 0, apperr.Unexpected("failed to fetch inventory item", err)
	}

	if item.Quantity < input.QuantitySold {
		tx.Rollback()
		return 0, 0, apperr.InsufficientStock("insufficient stock, available: %d", item.Quantity)
	}

	// Price is fixed at sale time; later price edits do not touch this amount
	totalAmount := float64(input.QuantitySold) * item.SellingPrice

	// Guarded decrement: rows affected is zero if a concurrent sale drained
	// the stock between the check above and here
	result := tx.Model(&models.InventoryItem{}).
		Where("id = ? AND quantity >= ?", item.ID, input.QuantitySold).
		Update("quantity", gorm.Expr("quantity - ?", input.QuantitySold))
	if result.Error != nil {
		tx.Rollback()
		return 0, 0, apperr.Unexpected("failed to update stock", result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return 0, 0, apperr.InsufficientStock("insufficient stock, available: %d", item.Quantity)
	}

	sale := models.Sale{
		SaleDate:       saleDate,
		DocumentNumber: input.DocumentNumber,
		Customer:       input.Customer,
		ItemID:         item.ID,
		QuantitySold:   input.QuantitySold,
		TotalAmount:    totalAmount,
	}
	if err := tx.Create(&sale).Error; err != nil {
		tx.Rollback()
		return 0, 0, apperr.Unexpected("failed to create sale", err)
	}

	if err := tx.Commit().Error; err != nil {
		return 0, 0, apperr.Unexpected("failed to commit sale", err)
	}
	return sale.ID, totalAmount, nil
}

// Delete removes a sale and returns the sold units to stock. If the item
// no longer exists the restoration is skipped.
func (s *SaleService) Delete(id Identity, saleID uint) error {
	if err := requirePermission(id, permission.ActionDelete); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return apperr.Unexpected("failed to start transaction", tx.Error)
	}

	var sale models.Sale
	if err := tx.First(&sale, saleID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("sale %d not found", saleID)
		}
		return apperr.Unexpected("failed to fetch sale", err)
	}

	// RowsAffected zero means the item was deleted; nothing to restore
	result := tx.Model(&models.InventoryItem{}).
		Where("id = ?", sale.ItemID).
		Update("quantity", gorm.Expr("quantity + ?", sale.QuantitySold))
	if result.Error != nil {
		tx.Rollback()
		return apperr.Unexpected("failed to restore stock", result.Error)
	}

	if err := tx.Delete(&sale).Error; err != nil {
		tx.Rollback()
		return apperr.Unexpected("failed to delete sale", err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperr.Unexpected("failed to commit sale deletion", err)
	}
	return nil
}

func (s *SaleService) List(id Identity) ([]SaleView, error) {
	if err := requirePermission(id, permission.ActionView); err != nil {
		return nil, err
	}

	var sales []models.Sale
	if err := s.db.Preload("Item").Order("sale_date desc").Find(&sales).Error; err != nil {
		return nil, apperr.Unexpected("failed to fetch sales", err)
	}

	views := make([]SaleView, 0, len(sales))
	for _, sale := range sales {
		views = append(views, saleView(sale))
	}
	return views, nil
}
