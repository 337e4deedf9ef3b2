package services

import (
	"errors"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/models"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/repository"
	"gorm.io/gorm"
)

// UserService user profile operations
type UserService interface {
	Save(user *models.User) error
	CheckByEmail(email string) (*models.User, error)
}

// userService UserService implementation
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Save stores a new user profile
func (s *userService) Save(user *models.User) error {
	return s.userRepo.Create(user)
}

// CheckByEmail looks up a user by email, ErrUserNotFound when absent
func (s *userService) CheckByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
