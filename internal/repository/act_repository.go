package repository

import (
	"github.com/NyaySahayak/nyaysahayak_backend/internal/models"
	"gorm.io/gorm"
)

// ActRepository database operations for acts
type ActRepository interface {
	Create(act *models.Act) error
	CreateBatch(acts []models.Act) error
	FindAll() ([]models.Act, error)
	FindByID(id int) (*models.Act, error)
	Update(act *models.Act) error
	Delete(id int) error
	ExistsByID(id int) (bool, error)
}

// actRepository ActRepository implementation
type actRepository struct {
	db *gorm.DB
}

// NewActRepository creates an ActRepository
func NewActRepository(db *gorm.DB) ActRepository {
	return &actRepository{db: db}
}

// Create inserts a new act, or updates the existing row when the body
// carries an ID that is already present
func (r *actRepository) Create(act *models.Act) error {
	return r.db.Save(act).Error
}

// CreateBatch inserts multiple acts
func (r *actRepository) CreateBatch(acts []models.Act) error {
	if len(acts) == 0 {
		return nil
	}
	return r.db.Create(&acts).Error
}

// FindAll returns all acts; an empty catalog yields an empty slice
func (r *actRepository) FindAll() ([]models.Act, error) {
	acts := []models.Act{}
	if err := r.db.Find(&acts).Error; err != nil {
		return nil, err
	}
	return acts, nil
}

// FindByID looks up an act by ID
func (r *actRepository) FindByID(id int) (*models.Act, error) {
	var act models.Act
	if err := r.db.First(&act, id).Error; err != nil {
		return nil, err
	}
	return &act, nil
}

// Update saves the full act row
func (r *actRepository) Update(act *models.Act) error {
	return r.db.Save(act).Error
}

// Delete removes an act by ID
func (r *actRepository) Delete(id int) error {
	return r.db.Delete(&models.Act{}, id).Error
}

// ExistsByID reports whether an act with the ID exists
func (r *actRepository) ExistsByID(id int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Act{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
