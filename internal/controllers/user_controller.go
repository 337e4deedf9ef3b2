package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/models"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController user profile endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Save stores a user profile. Posting an email that already exists is
// answered with 200 and a message, not an error.
func (c *UserController) Save(ctx *gin.Context) {
	var user models.User
	if err := ctx.ShouldBindJSON(&user); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := c.userService.CheckByEmail(user.Email)
	if err != nil && !errors.Is(err, services.ErrUserNotFound) {
		log.Printf("failed to check user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}
	if existing != nil {
		ctx.JSON(http.StatusOK, gin.H{"message": "User with the same email already exists!"})
		return
	}

	if err := c.userService.Save(&user); err != nil {
		log.Printf("failed to save user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// Get returns the user for the email query parameter
func (c *UserController) Get(ctx *gin.Context) {
	email := ctx.Query("email")

	user, err := c.userService.CheckByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "No user found with the provided email!"})
			return
		}
		log.Printf("failed to get user: %v", err)
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
