package handler

import (
	"net/http"

	"inventory-app/internal/service"

	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	Suppliers *service.SupplierService
}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.Suppliers.List(identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var input service.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplierID, err := h.Suppliers.Create(identityFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Supplier created successfully", "id": supplierID})
}
