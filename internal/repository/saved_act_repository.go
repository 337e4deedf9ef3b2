package repository

import (
	"errors"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/models"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when an insert violates the unique index on
// (user_email, act_id). Two concurrent saves for the same pair can both pass
// the service-level existence check; the index makes the store reject the
// second insert instead of storing two rows.
var ErrDuplicateKey = errors.New("duplicate saved act")

// SavedActRepository database operations for saved acts
type SavedActRepository interface {
	Create(savedAct *models.SavedAct) error
	FindByUserEmail(userEmail string) ([]models.SavedAct, error)
	FindByUserEmailAndActID(userEmail string, actID int) (*models.SavedAct, error)
	DeleteByUserEmailAndActID(userEmail string, actID int) error
	CountByUserEmail(userEmail string) (int64, error)
}

// savedActRepository SavedActRepository implementation
type savedActRepository struct {
	db *gorm.DB
}

// NewSavedActRepository creates a SavedActRepository
func NewSavedActRepository(db *gorm.DB) SavedActRepository {
	return &savedActRepository{db: db}
}

// Create inserts a new saved act
func (r *savedActRepository) Create(savedAct *models.SavedAct) error {
	if err := r.db.Create(savedAct).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// FindByUserEmail returns a user's saved acts, most recently saved first.
// No matches yields an empty slice, which serializes as [] rather than null.
func (r *savedActRepository) FindByUserEmail(userEmail string) ([]models.SavedAct, error) {
	savedActs := []models.SavedAct{}
	if err := r.db.Where("user_email = ?", userEmail).
		Order("saved_at DESC").
		Find(&savedActs).Error; err != nil {
		return nil, err
	}
	return savedActs, nil
}

// FindByUserEmailAndActID looks up one saved act by its (user, act) pair
func (r *savedActRepository) FindByUserEmailAndActID(userEmail string, actID int) (*models.SavedAct, error) {
	var savedAct models.SavedAct
	if err := r.db.Where("user_email = ? AND act_id = ?", userEmail, actID).
		First(&savedAct).Error; err != nil {
		return nil, err
	}
	return &savedAct, nil
}

// DeleteByUserEmailAndActID removes a saved act by its (user, act) pair
func (r *savedActRepository) DeleteByUserEmailAndActID(userEmail string, actID int) error {
	return r.db.Where("user_email = ? AND act_id = ?", userEmail, actID).
		Delete(&models.SavedAct{}).Error
}

// CountByUserEmail counts a user's saved acts
func (r *savedActRepository) CountByUserEmail(userEmail string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.SavedAct{}).
		Where("user_email = ?", userEmail).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
