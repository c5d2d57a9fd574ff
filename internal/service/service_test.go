package service

import (
	"path/filepath"
	"testing"
	"time"

	"inventory-app/internal/models"
	"inventory-app/internal/permission"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	asAdmin     = Identity{UserID: 1, Role: permission.RoleAdmin}
	asWarehouse = Identity{UserID: 2, Role: permission.RoleWarehouse}
	asManager   = Identity{UserID: 3, Role: permission.RoleManager}
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.InventoryItem{},
		&models.Sale{},
	))
	return db
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) models.Supplier {
	t.Helper()
	supplier := models.Supplier{Name: name, ContactInfo: "test contact"}
	require.NoError(t, db.Create(&supplier).Error)
	return supplier
}

func seedItem(t *testing.T, db *gorm.DB, doc string, quantity int, purchase, selling float64) models.InventoryItem {
	t.Helper()
	supplier := seedSupplier(t, db, "Supplier for "+doc)
	item := models.InventoryItem{
		ReceiptDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		DocumentNumber: doc,
		SupplierID:     supplier.ID,
		ComponentType:  "CPU",
		Model:          "Model " + doc,
		Manufacturer:   "Maker",
		Quantity:       quantity,
		PurchasePrice:  purchase,
		SellingPrice:   selling,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func itemQuantity(t *testing.T, db *gorm.DB, itemID uint) int {
	t.Helper()
	var item models.InventoryItem
	require.NoError(t, db.First(&item, itemID).Error)
	return item.Quantity
}
