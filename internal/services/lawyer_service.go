package services

import (
	"github.com/NyaySahayak/nyaysahayak_backend/internal/models"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/repository"
)

// LawyerService lawyer directory operations
type LawyerService interface {
	GetAll() ([]models.Lawyer, error)
	Add(lawyer *models.Lawyer) error
}

// lawyerService LawyerService implementation
type lawyerService struct {
	lawyerRepo repository.LawyerRepository
}

// NewLawyerService creates a LawyerService
func NewLawyerService(lawyerRepo repository.LawyerRepository) LawyerService {
	return &lawyerService{lawyerRepo: lawyerRepo}
}

// GetAll returns all lawyers in the directory
func (s *lawyerService) GetAll() ([]models.Lawyer, error) {
	return s.lawyerRepo.FindAll()
}

// Add registers a new lawyer
func (s *lawyerService) Add(lawyer *models.Lawyer) error {
	return s.lawyerRepo.Create(lawyer)
}
