package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/models"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ActController acts catalog endpoints
type ActController struct {
	actService services.ActService
}

// NewActController creates an ActController
func NewActController(actService services.ActService) *ActController {
	return &ActController{
		actService: actService,
	}
}

// List returns all acts
func (c *ActController) List(ctx *gin.Context) {
	acts, err := c.actService.GetAll()
	if err != nil {
		log.Printf("failed to list acts: %v", err)
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, acts)
}

// GetByID returns one act by ID
func (c *ActController) GetByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid act ID"})
		return
	}

	act, err := c.actService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrActNotFound) {
			ctx.Status(http.StatusNotFound)
			return
		}
		log.Printf("failed to get act %d: %v", id, err)
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, act)
}

// Create adds a new act
func (c *ActController) Create(ctx *gin.Context) {
	var act models.Act
	if err := ctx.ShouldBindJSON(&act); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.actService.Create(&act); err != nil {
		log.Printf("failed to create act: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create act"})
		return
	}

	ctx.JSON(http.StatusOK, act)
}

// Update replaces an existing act
func (c *ActController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid act ID"})
		return
	}

	var act models.Act
	if err := ctx.ShouldBindJSON(&act); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := c.actService.Update(id, &act)
	if err != nil {
		if errors.Is(err, services.ErrActNotFound) {
			ctx.Status(http.StatusNotFound)
			return
		}
		log.Printf("failed to update act %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update act"})
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// Delete removes an act
func (c *ActController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid act ID"})
		return
	}

	if err := c.actService.Delete(id); err != nil {
		log.Printf("failed to delete act %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete act"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
