package service

import (
	"testing"
	"time"

	"inventory-app/internal/apperr"
	"inventory-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryReportExcludesZeroQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	seedItem(t, db, "RCPT-A", 10, 25000, 32000)
	seedItem(t, db, "RCPT-B", 0, 4000, 5500)
	seedItem(t, db, "RCPT-C", 5, 45000, 55000)

	report, err := svc.Inventory(asManager)
	require.NoError(t, err)

	require.Len(t, report.Items, 2)
	for _, item := range report.Items {
		assert.Greater(t, item.Quantity, 0)
	}
	assert.Equal(t, 15, report.TotalItems)
	assert.Equal(t, float64(10*25000+5*45000), report.TotalValue)
}

func TestInventoryReportPermission(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	_, err := svc.Inventory(asWarehouse)
	assert.Equal(t, apperr.KindPermissionDenied, apperr.KindOf(err))
}

func TestSalesReportTotals(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	sales := NewSaleService(db)

	a := seedItem(t, db, "RCPT-A", 10, 15000, 20000)
	b := seedItem(t, db, "RCPT-B", 10, 8000, 10000)
	c := seedItem(t, db, "RCPT-C", 10, 9000, 12000)

	// Revenues 40000, 20000, 12000
	_, _, err := sales.Create(asAdmin, saleInput("INV-A", a.ID, 2))
	require.NoError(t, err)
	_, _, err = sales.Create(asAdmin, saleInput("INV-B", b.ID, 2))
	require.NoError(t, err)
	_, _, err = sales.Create(asAdmin, saleInput("INV-C", c.ID, 1))
	require.NoError(t, err)

	report, err := reports.Sales(asManager, "", "")
	require.NoError(t, err)

	assert.Equal(t, "All time", report.Period)
	assert.Equal(t, float64(72000), report.TotalRevenue)
	assert.Equal(t, 5, report.TotalUnits)
	assert.Equal(t, float64(2*15000+2*8000+1*9000), report.TotalCost)
	assert.Equal(t, report.TotalRevenue-report.TotalCost, report.TotalProfit)
	require.Len(t, report.Sales, 3)
	assert.Equal(t, "Maker Model RCPT-A", report.Sales[0].Product)
}

func TestSalesReportDateFilter(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	sales := NewSaleService(db)
	item := seedItem(t, db, "RCPT-D", 10, 1000, 2000)

	in := saleInput("INV-IN", item.ID, 1)
	in.SaleDate = "2024-02-15"
	_, _, err := sales.Create(asAdmin, in)
	require.NoError(t, err)

	out := saleInput("INV-OUT", item.ID, 1)
	out.SaleDate = "2024-05-01"
	_, _, err = sales.Create(asAdmin, out)
	require.NoError(t, err)

	report, err := reports.Sales(asAdmin, "2024-01-01", "2024-03-31")
	require.NoError(t, err)
	require.Len(t, report.Sales, 1)
	assert.Equal(t, "INV-IN", report.Sales[0].DocumentNumber)
	assert.Equal(t, "2024-01-01 - 2024-03-31", report.Period)

	// Bounds are inclusive
	report, err = reports.Sales(asAdmin, "2024-02-15", "2024-02-15")
	require.NoError(t, err)
	assert.Len(t, report.Sales, 1)
}

func TestSalesReportInvalidDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	_, err := svc.Sales(asAdmin, "01/01/2024", "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestQuarterBounds(t *testing.T) {
	cases := []struct {
		quarter    int
		start, end string
	}{
		{1, "2024-01-01", "2024-03-31"},
		{2, "2024-04-01", "2024-06-30"},
		{3, "2024-07-01", "2024-09-30"},
		{4, "2024-10-01", "2024-12-31"},
	}
	for _, tc := range cases {
		start, end := QuarterBounds(2024, tc.quarter)
		assert.Equal(t, tc.start, start.Format("2006-01-02"), "Q%d start", tc.quarter)
		assert.Equal(t, tc.end, end.Format("2006-01-02"), "Q%d end", tc.quarter)
	}
}

func TestQuarterlyMatchesExplicitBounds(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	sales := NewSaleService(db)
	item := seedItem(t, db, "RCPT-E", 10, 1000, 2000)

	in := saleInput("INV-Q1", item.ID, 2)
	in.SaleDate = "2024-02-01"
	_, _, err := sales.Create(asAdmin, in)
	require.NoError(t, err)

	out := saleInput("INV-Q2", item.ID, 1)
	out.SaleDate = "2024-04-01"
	_, _, err = sales.Create(asAdmin, out)
	require.NoError(t, err)

	quarterly, err := reports.QuarterlySales(asManager, 2024, 1)
	require.NoError(t, err)
	explicit, err := reports.Sales(asManager, "2024-01-01", "2024-03-31")
	require.NoError(t, err)

	assert.Equal(t, explicit, quarterly)
	require.Len(t, quarterly.Sales, 1)
	assert.Equal(t, "INV-Q1", quarterly.Sales[0].DocumentNumber)
}

func TestQuarterlyDefaultsToCurrentQuarter(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)

	report, err := reports.QuarterlySales(asManager, 0, 0)
	require.NoError(t, err)

	now := time.Now()
	quarter := (int(now.Month())-1)/3 + 1
	start, end := QuarterBounds(now.Year(), quarter)
	expected := start.Format("2006-01-02") + " - " + end.Format("2006-01-02")
	assert.Equal(t, expected, report.Period)
}

// The cost basis follows the item's current purchase price rather than the
// price at sale time. This documents the behavior: editing purchase_price
// after a sale shifts the reported cost and profit retroactively.
func TestSalesReportCostUsesCurrentPurchasePrice(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	sales := NewSaleService(db)
	item := seedItem(t, db, "RCPT-F", 10, 25000, 32000)

	_, _, err := sales.Create(asAdmin, saleInput("INV-F", item.ID, 2))
	require.NoError(t, err)

	before, err := reports.Sales(asManager, "", "")
	require.NoError(t, err)
	assert.Equal(t, float64(50000), before.TotalCost)

	require.NoError(t, db.Model(&models.InventoryItem{}).Where("id = ?", item.ID).
		Update("purchase_price", 30000).Error)

	after, err := reports.Sales(asManager, "", "")
	require.NoError(t, err)
	assert.Equal(t, float64(60000), after.TotalCost)
	assert.Equal(t, before.TotalRevenue, after.TotalRevenue)
}

func TestAnalytics(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	sales := NewSaleService(db)

	a := seedItem(t, db, "RCPT-G", 10, 25000, 32000)
	b := seedItem(t, db, "RCPT-H", 20, 4000, 5500)

	_, _, err := sales.Create(asAdmin, saleInput("INV-G", a.ID, 2))
	require.NoError(t, err)
	_, _, err = sales.Create(asAdmin, saleInput("INV-H1", b.ID, 3))
	require.NoError(t, err)
	_, _, err = sales.Create(asAdmin, saleInput("INV-H2", b.ID, 4))
	require.NoError(t, err)

	report, err := reports.Analytics(asManager)
	require.NoError(t, err)

	assert.EqualValues(t, 2, report.Statistics.TotalItems)
	assert.EqualValues(t, 3, report.Statistics.TotalSales)
	assert.EqualValues(t, 2, report.Statistics.TotalSuppliers)

	revenue := float64(2*32000 + 3*5500 + 4*5500)
	cost := float64(2*25000 + 7*4000)
	assert.Equal(t, revenue, report.Financials.Revenue)
	assert.Equal(t, cost, report.Financials.Cost)
	assert.Equal(t, revenue-cost, report.Financials.Profit)

	// Stock after the sales: 8 of A, 13 of B
	inventoryValue := float64(8*25000 + 13*4000)
	potentialRevenue := float64(8*32000 + 13*5500)
	assert.Equal(t, inventoryValue, report.Financials.InventoryValue)
	assert.Equal(t, potentialRevenue, report.Financials.PotentialRevenue)
	assert.Equal(t, potentialRevenue-inventoryValue, report.Financials.PotentialProfit)

	expectedMargin := round2((revenue - cost) / revenue * 100)
	assert.Equal(t, expectedMargin, report.Financials.ProfitMargin)

	// B sold 7 units in total, A only 2
	require.Len(t, report.PopularItems, 2)
	assert.Equal(t, "Maker Model RCPT-H", report.PopularItems[0].Product)
	assert.Equal(t, 7, report.PopularItems[0].TotalSold)
	assert.Equal(t, 2, report.PopularItems[1].TotalSold)
}

func TestAnalyticsZeroRevenueMargin(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)

	report, err := reports.Analytics(asAdmin)
	require.NoError(t, err)
	assert.Zero(t, report.Financials.ProfitMargin)
	assert.Empty(t, report.PopularItems)
}

func TestAnalyticsPermissions(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)

	_, err := reports.Analytics(asWarehouse)
	assert.Equal(t, apperr.KindPermissionDenied, apperr.KindOf(err))

	_, err = reports.Analytics(asManager)
	assert.NoError(t, err)
}

func TestDashboard(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	sales := NewSaleService(db)

	a := seedItem(t, db, "RCPT-I", 10, 25000, 32000)
	seedItem(t, db, "RCPT-J", 2, 4000, 5500)

	_, _, err := sales.Create(asAdmin, saleInput("INV-I", a.ID, 1))
	require.NoError(t, err)

	stats, err := reports.Dashboard(asWarehouse)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalItems)
	assert.EqualValues(t, 1, stats.TotalSales)
	assert.EqualValues(t, 1, stats.LowStock)
	require.Len(t, stats.RecentSales, 1)
	assert.Equal(t, "INV-I", stats.RecentSales[0].DocumentNumber)
}
