package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController health check endpoint
type HealthController struct{}

// NewHealthController creates a HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check reports service health
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
