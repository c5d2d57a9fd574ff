package models

import (
	"time"
)

type Supplier struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	ContactInfo string          `gorm:"type:text" json:"contact_info"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []InventoryItem `gorm:"foreignKey:SupplierID" json:"-"`
}

type InventoryItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ReceiptDate    time.Time `gorm:"type:date;not null" json:"receipt_date"`
	DocumentNumber string    `gorm:"size:50;unique;not null" json:"document_number"`
	SupplierID     uint      `json:"supplier_id"`
	Supplier       Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	ComponentType  string    `gorm:"size:50;not null" json:"component_type"`
	Model          string    `gorm:"size:100;not null" json:"model"`
	Manufacturer   string    `gorm:"size:100;not null" json:"manufacturer"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	PurchasePrice  float64   `gorm:"type:decimal(12,2);not null" json:"purchase_price"`
	SellingPrice   float64   `gorm:"type:decimal(12,2);not null" json:"selling_price"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Sales          []Sale    `gorm:"foreignKey:ItemID" json:"-"`
}

type Sale struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	SaleDate       time.Time     `gorm:"type:date;not null" json:"sale_date"`
	DocumentNumber string        `gorm:"size:50;unique;not null" json:"document_number"`
	Customer       string        `gorm:"size:100;not null" json:"customer"`
	ItemID         uint          `json:"item_id"`
	Item           InventoryItem `gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT" json:"item,omitempty"`
	QuantitySold   int           `gorm:"not null" json:"quantity_sold"`
	TotalAmount    float64       `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	CreatedAt      time.Time     `json:"created_at"`
}
