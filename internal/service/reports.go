package service

import (
	"fmt"
	"time"

	"inventory-app/internal/apperr"
	"inventory-app/internal/models"
	"inventory-app/internal/permission"

	"gorm.io/gorm"
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

const reportStampLayout = "02.01.2006 15:04"

type InventoryReportItem struct {
	ID            uint    `json:"id"`
	ComponentType string  `json:"component_type"`
	Model         string  `json:"model"`
	Manufacturer  string  `json:"manufacturer"`
	Quantity      int     `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	Value         float64 `json:"value"`
}

type InventoryReport struct {
	ReportDate string                `json:"report_date"`
	TotalItems int                   `json:"total_items"`
	TotalValue float64               `json:"total_value"`
	Items      []InventoryReportItem `json:"items"`
}

// Inventory reports current stock positions; zero-quantity lines are omitted.
func (s *ReportService) Inventory(id Identity) (InventoryReport, error) {
	if err := requirePermission(id, permission.ActionReports); err != nil {
		return InventoryReport{}, err
	}

	var items []models.InventoryItem
	if err := s.db.Where("quantity > 0").Find(&items).Error; err != nil {
		return InventoryReport{}, apperr.Unexpected("failed to fetch inventory", err)
	}

	report := InventoryReport{
		ReportDate: time.Now().Format(reportStampLayout),
		Items:      make([]InventoryReportItem, 0, len(items)),
	}
	var totalValue float64
	for _, item := range items {
		value := float64(item.Quantity) * item.PurchasePrice
		totalValue += value
		report.TotalItems += item.Quantity
		report.Items = append(report.Items, InventoryReportItem{
			ID:            item.ID,
			ComponentType: item.ComponentType,
			Model:         item.Model,
			Manufacturer:  item.Manufacturer,
			Quantity:      item.Quantity,
			PurchasePrice: item.PurchasePrice,
			Value:         round2(value),
		})
	}
	report.TotalValue = round2(totalValue)
	return report, nil
}

type SalesReportRow struct {
	ID             uint    `json:"id"`
	SaleDate       string  `json:"sale_date"`
	DocumentNumber string  `json:"document_number"`
	Customer       string  `json:"customer"`
	Product        string  `json:"product"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	Revenue        float64 `json:"revenue"`
}

type SalesReport struct {
	Period       string           `json:"period"`
	TotalRevenue float64          `json:"total_revenue"`
	TotalUnits   int              `json:"total_units"`
	TotalCost    float64          `json:"total_cost"`
	TotalProfit  float64          `json:"total_profit"`
	Sales        []SalesReportRow `json:"sales"`
}

// Sales aggregates sales within the inclusive date range; an empty bound
// leaves that side open. Cost is computed from each item's current purchase
// price, so margins drift if purchase prices are edited after the sale.
func (s *ReportService) Sales(id Identity, startDate, endDate string) (SalesReport, error) {
	if err := requirePermission(id, permission.ActionReports); err != nil {
		return SalesReport{}, err
	}

	query := s.db.Preload("Item")
	if startDate != "" {
		start, err := parseDate(startDate)
		if err != nil {
			return SalesReport{}, err
		}
		query = query.Where("sale_date >= ?", start)
	}
	if endDate != "" {
		end, err := parseDate(endDate)
		if err != nil {
			return SalesReport{}, err
		}
		query = query.Where("sale_date <= ?", end)
	}

	var sales []models.Sale
	if err := query.Find(&sales).Error; err != nil {
		return SalesReport{}, apperr.Unexpected("failed to fetch sales", err)
	}

	period := "All time"
	if startDate != "" && endDate != "" {
		period = fmt.Sprintf("%s - %s", startDate, endDate)
	}

	report := SalesReport{
		Period: period,
		Sales:  make([]SalesReportRow, 0, len(sales)),
	}
	var revenue, cost float64
	for _, sale := range sales {
		revenue += sale.TotalAmount
		cost += float64(sale.QuantitySold) * sale.Item.PurchasePrice
		report.TotalUnits += sale.QuantitySold
		report.Sales = append(report.Sales, SalesReportRow{
			ID:             sale.ID,
			SaleDate:       sale.SaleDate.Format(dateLayout),
			DocumentNumber: sale.DocumentNumber,
			Customer:       sale.Customer,
			Product:        sale.Item.Manufacturer + " " + sale.Item.Model,
			Quantity:       sale.QuantitySold,
			UnitPrice:      sale.Item.SellingPrice,
			Revenue:        sale.TotalAmount,
		})
	}
	report.TotalRevenue = round2(revenue)
	report.TotalCost = round2(cost)
	report.TotalProfit = round2(revenue - cost)
	return report, nil
}

// QuarterBounds resolves the inclusive date range of a calendar quarter.
func QuarterBounds(year, quarter int) (time.Time, time.Time) {
	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0).AddDate(0, 0, -1)
	return start, end
}

// QuarterlySales delegates to Sales with the quarter's date bounds. A zero
// year defaults to the current year; a quarter outside 1..4 resolves to the
// current calendar quarter.
func (s *ReportService) QuarterlySales(id Identity, year, quarter int) (SalesReport, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if quarter < 1 || quarter > 4 {
		quarter = (int(now.Month())-1)/3 + 1
		return s.QuarterlySales(id, year, quarter)
	}

	start, end := QuarterBounds(year, quarter)
	return s.Sales(id, start.Format(dateLayout), end.Format(dateLayout))
}

type AnalyticsStatistics struct {
	TotalItems     int64 `json:"total_items"`
	TotalSales     int64 `json:"total_sales"`
	TotalSuppliers int64 `json:"total_suppliers"`
}

type AnalyticsFinancials struct {
	Revenue          float64 `json:"revenue"`
	Cost             float64 `json:"cost"`
	Profit           float64 `json:"profit"`
	InventoryValue   float64 `json:"inventory_value"`
	PotentialRevenue float64 `json:"potential_revenue"`
	PotentialProfit  float64 `json:"potential_profit"`
	ProfitMargin     float64 `json:"profit_margin"`
}

type PopularItem struct {
	Product   string `json:"product"`
	TotalSold int    `json:"total_sold"`
}

type AnalyticalReport struct {
	ReportDate   string              `json:"report_date"`
	Statistics   AnalyticsStatistics `json:"statistics"`
	Financials   AnalyticsFinancials `json:"financials"`
	PopularItems []PopularItem       `json:"popular_items"`
}

// Analytics produces the management overview: global counts, financial
// rollups and the five best-selling items by historical units sold.
func (s *ReportService) Analytics(id Identity) (AnalyticalReport, error) {
	if err := requirePermission(id, permission.ActionAnalytics); err != nil {
		return AnalyticalReport{}, err
	}

	report := AnalyticalReport{ReportDate: time.Now().Format(reportStampLayout)}

	if err := s.db.Model(&models.InventoryItem{}).Count(&report.Statistics.TotalItems).Error; err != nil {
		return AnalyticalReport{}, apperr.Unexpected("failed to count items", err)
	}
	if err := s.db.Model(&models.Sale{}).Count(&report.Statistics.TotalSales).Error; err != nil {
		return AnalyticalReport{}, apperr.Unexpected("failed to count sales", err)
	}
	if err := s.db.Model(&models.InventoryItem{}).Distinct("supplier_id").Count(&report.Statistics.TotalSuppliers).Error; err != nil {
		return AnalyticalReport{}, apperr.Unexpected("failed to count suppliers", err)
	}

	var sales []models.Sale
	if err := s.db.Preload("Item").Find(&sales).Error; err != nil {
		return AnalyticalReport{}, apperr.Unexpected("failed to fetch sales", err)
	}
	var revenue, cost float64
	for _, sale := range sales {
		revenue += sale.TotalAmount
		cost += float64(sale.QuantitySold) * sale.Item.PurchasePrice
	}
	profit := revenue - cost

	var items []models.InventoryItem
	if err := s.db.Find(&items).Error; err != nil {
		return AnalyticalReport{}, apperr.Unexpected("failed to fetch inventory", err)
	}
	var inventoryValue, potentialRevenue float64
	for _, item := range items {
		inventoryValue += float64(item.Quantity) * item.PurchasePrice
		potentialRevenue += float64(item.Quantity) * item.SellingPrice
	}

	margin := 0.0
	if revenue > 0 {
		margin = profit / revenue * 100
	}
	report.Financials = AnalyticsFinancials{
		Revenue:          round2(revenue),
		Cost:             round2(cost),
		Profit:           round2(profit),
		InventoryValue:   round2(inventoryValue),
		PotentialRevenue: round2(potentialRevenue),
		PotentialProfit:  round2(potentialRevenue - inventoryValue),
		ProfitMargin:     round2(margin),
	}

	type popularRow struct {
		Manufacturer string
		Model        string
		TotalSold    int
	}
	var rows []popularRow
	if err := s.db.Model(&models.Sale{}).
		Select("inventory_items.manufacturer, inventory_items.model, SUM(sales.quantity_sold) as total_sold").
		Joins("JOIN inventory_items ON inventory_items.id = sales.item_id").
		Group("sales.item_id, inventory_items.manufacturer, inventory_items.model").
		Order("total_sold DESC").
		Limit(5).
		Scan(&rows).Error; err != nil {
		return AnalyticalReport{}, apperr.Unexpected("failed to rank popular items", err)
	}

	report.PopularItems = make([]PopularItem, 0, len(rows))
	for _, row := range rows {
		report.PopularItems = append(report.PopularItems, PopularItem{
			Product:   row.Manufacturer + " " + row.Model,
			TotalSold: row.TotalSold,
		})
	}
	return report, nil
}

type DashboardStats struct {
	TotalItems  int64      `json:"total_items"`
	TotalSales  int64      `json:"total_sales"`
	LowStock    int64      `json:"low_stock"`
	RecentSales []SaleView `json:"recent_sales"`
}

// Dashboard summarizes the store for the landing page.
func (s *ReportService) Dashboard(id Identity) (DashboardStats, error) {
	if err := requirePermission(id, permission.ActionView); err != nil {
		return DashboardStats{}, err
	}

	var stats DashboardStats
	if err := s.db.Model(&models.InventoryItem{}).Count(&stats.TotalItems).Error; err != nil {
		return DashboardStats{}, apperr.Unexpected("failed to count items", err)
	}
	if err := s.db.Model(&models.Sale{}).Count(&stats.TotalSales).Error; err != nil {
		return DashboardStats{}, apperr.Unexpected("failed to count sales", err)
	}
	if err := s.db.Model(&models.InventoryItem{}).Where("quantity < ?", 5).Count(&stats.LowStock).Error; err != nil {
		return DashboardStats{}, apperr.Unexpected("failed to count low stock", err)
	}

	var recent []models.Sale
	if err := s.db.Preload("Item").Order("created_at desc").Limit(5).Find(&recent).Error; err != nil {
		return DashboardStats{}, apperr.Unexpected("failed to fetch recent sales", err)
	}
	stats.RecentSales = make([]SaleView, 0, len(recent))
	for _, sale := range recent {
		stats.RecentSales = append(stats.RecentSales, saleView(sale))
	}
	return stats, nil
}
