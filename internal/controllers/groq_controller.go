package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GroqController AI proxy endpoints
type GroqController struct {
	groqService services.GroqService
}

// NewGroqController creates a GroqController
func NewGroqController(groqService services.GroqService) *GroqController {
	return &GroqController{
		groqService: groqService,
	}
}

// Summarize checks whether the submitted text is a legal document and
// summarizes it
func (c *GroqController) Summarize(ctx *gin.Context) {
	var request map[string]interface{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.groqService.Summarize(request)
	if err != nil {
		log.Printf("summarize request failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Analyze runs the structured legal-document analysis
func (c *GroqController) Analyze(ctx *gin.Context) {
	var request map[string]interface{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.groqService.Analyze(request)
	if err != nil {
		log.Printf("analyze request failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetAdvice answers a legal query
func (c *GroqController) GetAdvice(ctx *gin.Context) {
	var req struct {
		Query    string `json:"query"`
		Category string `json:"category"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	response, err := c.groqService.GetAdvice(req.Query, req.Category)
	if err != nil {
		log.Printf("advice request failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process legal advice request"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Categories lists the supported legal advice categories
func (c *GroqController) Categories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.groqService.Categories())
}
