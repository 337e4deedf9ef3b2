package services

import (
	"errors"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/models"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/repository"
	"gorm.io/gorm"
)

// ActService acts catalog operations
type ActService interface {
	Create(act *models.Act) error
	CreateBatch(acts []models.Act) error
	GetAll() ([]models.Act, error)
	GetByID(id int) (*models.Act, error)
	Update(id int, act *models.Act) (*models.Act, error)
	Delete(id int) error
}

// actService ActService implementation
type actService struct {
	actRepo repository.ActRepository
}

// NewActService creates an ActService
func NewActService(actRepo repository.ActRepository) ActService {
	return &actService{actRepo: actRepo}
}

// Create adds a new act to the catalog; a body with an existing ID
// updates that act instead, as the store saves by primary key
func (s *actService) Create(act *models.Act) error {
	return s.actRepo.Create(act)
}

// CreateBatch adds multiple acts at once
func (s *actService) CreateBatch(acts []models.Act) error {
	return s.actRepo.CreateBatch(acts)
}

// GetAll returns the full catalog
func (s *actService) GetAll() ([]models.Act, error) {
	return s.actRepo.FindAll()
}

// GetByID returns one act
func (s *actService) GetByID(id int) (*models.Act, error) {
	act, err := s.actRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActNotFound
		}
		return nil, err
	}
	return act, nil
}

// Update replaces an existing act's fields
func (s *actService) Update(id int, act *models.Act) (*models.Act, error) {
	exists, err := s.actRepo.ExistsByID(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrActNotFound
	}

	act.ID = id
	if err := s.actRepo.Update(act); err != nil {
		return nil, err
	}
	return act, nil
}

// Delete removes an act; deleting an absent act is a no-op
func (s *actService) Delete(id int) error {
	exists, err := s.actRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return s.actRepo.Delete(id)
}
