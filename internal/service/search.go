package service

import (
	"inventory-app/internal/apperr"
	"inventory-app/internal/models"
	"inventory-app/internal/permission"

	"gorm.io/gorm"
)

type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

type SearchItemResult struct {
	ID             uint   `json:"id"`
	DocumentNumber string `json:"document_number"`
	Model          string `json:"model"`
	Manufacturer   string `json:"manufacturer"`
	ComponentType  string `json:"component_type"`
	Quantity       int    `json:"quantity"`
}

type SearchSaleResult struct {
	ID             uint    `json:"id"`
	DocumentNumber string  `json:"document_number"`
	Customer       string  `json:"customer"`
	SaleDate       string  `json:"sale_date"`
	TotalAmount    float64 `json:"total_amount"`
}

type SearchSupplierResult struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type SearchResults struct {
	Inventory []SearchItemResult     `json:"inventory,omitempty"`
	Sales     []SearchSaleResult     `json:"sales,omitempty"`
	Suppliers []SearchSupplierResult `json:"suppliers,omitempty"`
}

// Search runs a substring match over the designated text fields of each
// entity type. searchType filters which sections are populated; "all" (or
// empty) searches everything.
func (s *SearchService) Search(id Identity, query, searchType string) (SearchResults, error) {
	if err := requirePermission(id, permission.ActionView); err != nil {
		return SearchResults{}, err
	}

	if searchType == "" {
		searchType = "all"
	}
	switch searchType {
	case "all", "inventory", "sales", "suppliers":
	default:
		return SearchResults{}, apperr.Validation("unknown search type %q", searchType)
	}

	pattern := "%" + query + "%"
	var results SearchResults

	if searchType == "all" || searchType == "inventory" {
		var items []models.InventoryItem
		if err := s.db.
			Where("document_number LIKE ? OR model LIKE ? OR manufacturer LIKE ? OR component_type LIKE ?",
				pattern, pattern, pattern, pattern).
			Find(&items).Error; err != nil {
			return SearchResults{}, apperr.Unexpected("inventory search failed", err)
		}
		results.Inventory = make([]SearchItemResult, 0, len(items))
		for _, item := range items {
			results.Inventory = append(results.Inventory, SearchItemResult{
				ID:             item.ID,
				DocumentNumber: item.DocumentNumber,
				Model:          item.Model,
				Manufacturer:   item.Manufacturer,
				ComponentType:  item.ComponentType,
				Quantity:       item.Quantity,
			})
		}
	}

	if searchType == "all" || searchType == "sales" {
		var sales []models.Sale
		if err := s.db.
			Where("document_number LIKE ? OR customer LIKE ?", pattern, pattern).
			Find(&sales).Error; err != nil {
			return SearchResults{}, apperr.Unexpected("sales search failed", err)
		}
		results.Sales = make([]SearchSaleResult, 0, len(sales))
		for _, sale := range sales {
			results.Sales = append(results.Sales, SearchSaleResult{
				ID:             sale.ID,
				DocumentNumber: sale.DocumentNumber,
				Customer:       sale.Customer,
				SaleDate:       sale.SaleDate.Format(dateLayout),
				TotalAmount:    sale.TotalAmount,
			})
		}
	}

	if searchType == "all" || searchType == "suppliers" {
		var suppliers []models.Supplier
		if err := s.db.Where("name LIKE ?", pattern).Find(&suppliers).Error; err != nil {
			return SearchResults{}, apperr.Unexpected("supplier search failed", err)
		}
		results.Suppliers = make([]SearchSupplierResult, 0, len(suppliers))
		for _, supplier := range suppliers {
			results.Suppliers = append(results.Suppliers, SearchSupplierResult{
				ID:          supplier.ID,
				Name:        supplier.Name,
				ContactInfo: supplier.ContactInfo,
			})
		}
	}

	return results, nil
}
