package repository

import (
	"github.com/NyaySahayak/nyaysahayak_backend/internal/models"
	"gorm.io/gorm"
)

// LawyerRepository database operations for lawyers
type LawyerRepository interface {
	Create(lawyer *models.Lawyer) error
	FindAll() ([]models.Lawyer, error)
}

// lawyerRepository LawyerRepository implementation
type lawyerRepository struct {
	db *gorm.DB
}

// NewLawyerRepository creates a LawyerRepository
func NewLawyerRepository(db *gorm.DB) LawyerRepository {
	return &lawyerRepository{db: db}
}

// Create inserts a new lawyer
func (r *lawyerRepository) Create(lawyer *models.Lawyer) error {
	return r.db.Create(lawyer).Error
}

// FindAll returns all lawyers; an empty directory yields an empty slice
func (r *lawyerRepository) FindAll() ([]models.Lawyer, error) {
	lawyers := []models.Lawyer{}
	if err := r.db.Find(&lawyers).Error; err != nil {
		return nil, err
	}
	return lawyers, nil
}
