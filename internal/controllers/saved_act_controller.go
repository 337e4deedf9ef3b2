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

// SavedActController saved-acts endpoints
type SavedActController struct {
	savedActService services.SavedActService
}

// NewSavedActController creates a SavedActController
func NewSavedActController(savedActService services.SavedActService) *SavedActController {
	return &SavedActController{
		savedActService: savedActService,
	}
}

// Save saves an act for a user
func (c *SavedActController) Save(ctx *gin.Context) {
	var req struct {
		UserEmail     string `json:"userEmail" binding:"required"`
		UserFirstName string `json:"userFirstName" binding:"required"`
		// pointer so that actId 0 counts as present and reaches the lookup
		ActID *int `json:"actId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	savedAct, err := c.savedActService.SaveActForUser(req.UserEmail, req.UserFirstName, *req.ActID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrActAlreadySaved), errors.Is(err, services.ErrActNotFound):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			// upstream or store failure; details stay in the log
			log.Printf("failed to save act %d for %s: %v", *req.ActID, req.UserEmail, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save act"})
		}
		return
	}

	ctx.JSON(http.StatusOK, savedAct)
}

// List returns a user's saved acts
func (c *SavedActController) List(ctx *gin.Context) {
	savedActs, err := c.savedActService.GetSavedActsByUser(ctx.Param("userEmail"))
	if err != nil {
		log.Printf("failed to list saved acts: %v", err)
		ctx.Status(http.StatusInternalServerError)
		return
	}
	if savedActs == nil {
		// no matches must serialize as [], not null
		savedActs = []models.SavedAct{}
	}

	ctx.JSON(http.StatusOK, savedActs)
}

// Remove removes a saved act
func (c *SavedActController) Remove(ctx *gin.Context) {
	actID, err := strconv.Atoi(ctx.Param("actId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid act ID"})
		return
	}

	removed, err := c.savedActService.RemoveSavedAct(ctx.Param("userEmail"), actID)
	if err != nil {
		log.Printf("failed to remove saved act: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove saved act"})
		return
	}
	if !removed {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Act removed from saved list"})
}

// IsSaved reports whether a user has saved an act
func (c *SavedActController) IsSaved(ctx *gin.Context) {
	actID, err := strconv.Atoi(ctx.Param("actId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid act ID"})
		return
	}

	isSaved, err := c.savedActService.IsActSavedByUser(ctx.Param("userEmail"), actID)
	if err != nil {
		log.Printf("failed to check saved act: %v", err)
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"isSaved": isSaved})
}

// Count returns how many acts a user has saved
func (c *SavedActController) Count(ctx *gin.Context) {
	count, err := c.savedActService.GetSavedActsCountByUser(ctx.Param("userEmail"))
	if err != nil {
		log.Printf("failed to count saved acts: %v", err)
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"count": count})
}
