package services

import (
	"errors"
	"fmt"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/models"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/repository"
	"gorm.io/gorm"
)

// SavedActService saved-acts workflow
type SavedActService interface {
	SaveActForUser(userEmail, userFirstName string, actID int) (*models.SavedAct, error)
	GetSavedActsByUser(userEmail string) ([]models.SavedAct, error)
	RemoveSavedAct(userEmail string, actID int) (bool, error)
	IsActSavedByUser(userEmail string, actID int) (bool, error)
	GetSavedActsCountByUser(userEmail string) (int64, error)
}

// savedActService SavedActService implementation
type savedActService struct {
	savedActRepo repository.SavedActRepository
	actsClient   ActsClient
}

// NewSavedActService creates a SavedActService
func NewSavedActService(savedActRepo repository.SavedActRepository, actsClient ActsClient) SavedActService {
	return &savedActService{
		savedActRepo: savedActRepo,
		actsClient:   actsClient,
	}
}

// SaveActForUser saves an act for a user. The act's title, summary, impact
// and penalties are copied into the saved row as they are at save time.
func (s *savedActService) SaveActForUser(userEmail, userFirstName string, actID int) (*models.SavedAct, error) {
	// check if already saved; the acts service is never contacted on the
	// duplicate path
	existing, err := s.savedActRepo.FindByUserEmailAndActID(userEmail, actID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check saved act: %w", err)
	}
	if existing != nil {
		return nil, ErrActAlreadySaved
	}

	// fetch the canonical act details
	act, err := s.actsClient.FetchAct(actID)
	if err != nil {
		return nil, err
	}

	savedAct := &models.SavedAct{
		UserEmail:     userEmail,
		UserFirstName: userFirstName,
		ActID:         actID,
		Title:         act.Title,
		Summary:       act.Summary,
		Impact:        act.Impact,
		Penalties:     act.Penalties,
	}

	if err := s.savedActRepo.Create(savedAct); err != nil {
		// a concurrent save for the same pair won the race
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrActAlreadySaved
		}
		return nil, fmt.Errorf("failed to save act: %w", err)
	}

	return savedAct, nil
}

// GetSavedActsByUser returns a user's saved acts, most recently saved first
func (s *savedActService) GetSavedActsByUser(userEmail string) ([]models.SavedAct, error) {
	return s.savedActRepo.FindByUserEmail(userEmail)
}

// RemoveSavedAct removes a saved act. Returns false when the pair was never
// saved; removing an absent pair is not an error.
func (s *savedActService) RemoveSavedAct(userEmail string, actID int) (bool, error) {
	_, err := s.savedActRepo.FindByUserEmailAndActID(userEmail, actID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.savedActRepo.DeleteByUserEmailAndActID(userEmail, actID); err != nil {
		return false, err
	}
	return true, nil
}

// IsActSavedByUser reports whether the user has saved the act
func (s *savedActService) IsActSavedByUser(userEmail string, actID int) (bool, error) {
	_, err := s.savedActRepo.FindByUserEmailAndActID(userEmail, actID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetSavedActsCountByUser counts the user's saved acts
func (s *savedActService) GetSavedActsCountByUser(userEmail string) (int64, error) {
	return s.savedActRepo.CountByUserEmail(userEmail)
}
