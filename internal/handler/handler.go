package handler

import (
	"log"
	"net/http"

	"inventory-app/internal/apperr"
	"inventory-app/internal/permission"
	"inventory-app/internal/service"

	"github.com/gin-gonic/gin"
)

func identityFrom(c *gin.Context) service.Identity {
	return service.Identity{
		UserID: c.GetUint("userID"),
		Role:   permission.Role(c.GetString("role")),
	}
}

// respondError translates a service error into an HTTP response. Unexpected
// failures are logged and replaced with a generic message so internals never
// leak to the caller.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "Internal server error"
	}
	c.JSON(status, gin.H{"error": message})
}
