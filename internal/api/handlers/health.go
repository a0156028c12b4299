package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health - liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Root handles GET / - service welcome and status.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Bank Reconciliation API",
		"status":  "operational",
	})
}
