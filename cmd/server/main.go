package main

import (
	"log"
	"time"

	"inventory-app/config"
	"inventory-app/internal/handler"
	"inventory-app/internal/middleware"
	"inventory-app/internal/models"
	"inventory-app/internal/service"
	"inventory-app/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	database.Connect()

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")
	err := database.DB.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.InventoryItem{},
		&models.Sale{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.SeedUsers()
	if config.AppConfig.Defaults.SeedSampleData {
		database.SeedSampleData()
	}

	// 4. Initialize Router
	if config.AppConfig.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 5. Services and Handlers
	userService := service.NewUserService(database.DB)
	inventoryService := service.NewInventoryService(database.DB)
	saleService := service.NewSaleService(database.DB)
	supplierService := service.NewSupplierService(database.DB)
	reportService := service.NewReportService(database.DB)
	searchService := service.NewSearchService(database.DB)

	authHandler := &handler.AuthHandler{Users: userService}
	adminHandler := &handler.AdminHandler{Users: userService}
	inventoryHandler := &handler.InventoryHandler{Inventory: inventoryService}
	saleHandler := &handler.SaleHandler{Sales: saleService}
	supplierHandler := &handler.SupplierHandler{Suppliers: supplierService}
	reportHandler := &handler.ReportHandler{Reports: reportService}
	searchHandler := &handler.SearchHandler{Searches: searchService}

	// 6. Routes
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware())
	{
		api.PUT("/user/password", authHandler.ChangePassword)

		api.GET("/inventory", inventoryHandler.List)
		api.GET("/inventory/:id", inventoryHandler.Get)
		api.POST("/inventory", inventoryHandler.Create)
		api.PUT("/inventory/:id", inventoryHandler.Update)
		api.DELETE("/inventory/:id", inventoryHandler.Delete)

		api.GET("/sales", saleHandler.List)
		api.POST("/sales", saleHandler.Create)
		api.DELETE("/sales/:id", saleHandler.Delete)

		api.GET("/suppliers", supplierHandler.List)
		api.POST("/suppliers", supplierHandler.Create)

		api.GET("/reports/inventory", reportHandler.InventoryReport)
		api.GET("/reports/sales", reportHandler.SalesReport)
		api.GET("/analytics", reportHandler.Analytics)
		api.GET("/dashboard", reportHandler.Dashboard)

		api.GET("/search", searchHandler.Search)

		api.GET("/admin/users", adminHandler.ListUsers)
		api.POST("/admin/users", adminHandler.CreateUser)
		api.PUT("/admin/users/:id/password", adminHandler.ResetPassword)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 7. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
