package handler

import (
	"net/http"

	"inventory-app/internal/service"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	Sales *service.SaleService
}

func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.Sales.List(identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) Create(c *gin.Context) {
	var input service.SaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saleID, totalAmount, err := h.Sales.Create(identityFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Sale recorded successfully",
		"id":           saleID,
		"total_amount": totalAmount,
	})
}

func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Sales.Delete(identityFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}
