package service

import (
	"context"
	"errors"
	"time"

	"mediashelf/internal/httpapi/models"
	"mediashelf/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyInCollection = errors.New("already in your collection")
	ErrEntryNotFound       = errors.New("collection entry not found")
	ErrInvalidStatus       = errors.New("invalid collection status")
)

// UpdateEntryInput is a partial collection-entry update. Nil fields are left
// untouched.
type UpdateEntryInput struct {
	Status *string
	Notes  *string
}

type CollectionService interface {
	List(ctx context.Context, userID, status string) ([]models.UserMedia, error)
	Add(ctx context.Context, userID, mediaID, status string) (*models.UserMedia, error)
	Update(ctx context.Context, userID string, entryID int64, input UpdateEntryInput) (*models.UserMedia, error)
	Remove(ctx context.Context, userID string, entryID int64) error
}

type collectionService struct {
	repo      repository.CollectionRepository
	mediaRepo repository.MediaRepository
}

func NewCollectionService(repo repository.CollectionRepository, mediaRepo repository.MediaRepository) CollectionService {
	return &collectionService{repo: repo, mediaRepo: mediaRepo}
}

func (s *collectionService) List(ctx context.Context, userID, status string) ([]models.UserMedia, error) {
	if !models.ValidCollectionStatus(status) {
		status = ""
	}
	return s.repo.List(ctx, userID, status)
}

// Add creates a tracking record for one catalog entry. The (user, media)
// pair is unique: adding the same item twice is a conflict.
func (s *collectionService) Add(ctx context.Context, userID, mediaID, status string) (*models.UserMedia, error) {
	if _, err := s.mediaRepo.GetByID(ctx, mediaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, userID, mediaID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInCollection
	}

	if !models.ValidCollectionStatus(status) {
		status = models.CollectionStatusWishlist
	}

	entry := &models.UserMedia{
		UserID:  userID,
		MediaID: mediaID,
		Status:  status,
	}
	if status == models.CollectionStatusCompleted {
		now := time.Now()
		entry.CompletedAt = &now
	}

	if err := s.repo.Add(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyInCollection
		}
		return nil, err
	}

	return s.repo.GetByID(ctx, entry.ID)
}

// Update mutates status and/or notes. completedAt is stamped when the entry
// moves to COMPLETED and cleared when it moves anywhere else.
func (s *collectionService) Update(ctx context.Context, userID string, entryID int64, input UpdateEntryInput) (*models.UserMedia, error) {
	entry, err := s.getOwned(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !models.ValidCollectionStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		entry.Status = *input.Status
		if *input.Status == models.CollectionStatusCompleted {
			now := time.Now()
			entry.CompletedAt = &now
		} else {
			entry.CompletedAt = nil
		}
	}
	if input.Notes != nil {
		entry.Notes = input.Notes
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *collectionService) Remove(ctx context.Context, userID string, entryID int64) error {
	if _, err := s.getOwned(ctx, userID, entryID); err != nil {
		return err
	}
	return s.repo.Remove(ctx, entryID)
}

// getOwned loads an entry and enforces that the caller owns it.
func (s *collectionService) getOwned(ctx context.Context, userID string, entryID int64) (*models.UserMedia, error) {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrForbidden
	}
	return entry, nil
}
