package handler

import (
	"net/http"

	"inventory-app/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	Searches *service.SearchService
}

func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.Searches.Search(identityFrom(c), c.Query("q"), c.DefaultQuery("type", "all"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
