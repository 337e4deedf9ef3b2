package controllers

import (
	"log"
	"net/http"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/models"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// LawyerController lawyer directory endpoints
type LawyerController struct {
	lawyerService services.LawyerService
}

// NewLawyerController creates a LawyerController
func NewLawyerController(lawyerService services.LawyerService) *LawyerController {
	return &LawyerController{
		lawyerService: lawyerService,
	}
}

// List returns all lawyers
func (c *LawyerController) List(ctx *gin.Context) {
	lawyers, err := c.lawyerService.GetAll()
	if err != nil {
		log.Printf("failed to list lawyers: %v", err)
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, lawyers)
}

// Add registers a new lawyer
func (c *LawyerController) Add(ctx *gin.Context) {
	var lawyer models.Lawyer
	if err := ctx.ShouldBindJSON(&lawyer); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.lawyerService.Add(&lawyer); err != nil {
		log.Printf("failed to add lawyer: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add lawyer"})
		return
	}

	ctx.JSON(http.StatusOK, lawyer)
}
