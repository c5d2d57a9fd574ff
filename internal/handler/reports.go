package handler

import (
	"net/http"
	"strconv"

	"inventory-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Reports *service.ReportService
}

func (h *ReportHandler) InventoryReport(c *gin.Context) {
	report, err := h.Reports.Inventory(identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// SalesReport serves both forms: explicit start_date/end_date bounds, or a
// quarter/year pair which takes precedence when quarter is present.
func (h *ReportHandler) SalesReport(c *gin.Context) {
	id := identityFrom(c)

	if quarterStr := c.Query("quarter"); quarterStr != "" {
		quarter, _ := strconv.Atoi(quarterStr)
		year, _ := strconv.Atoi(c.Query("year"))
		report, err := h.Reports.QuarterlySales(id, year, quarter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
		return
	}

	report, err := h.Reports.Sales(id, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Analytics(c *gin.Context) {
	report, err := h.Reports.Analytics(identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.Reports.Dashboard(identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
