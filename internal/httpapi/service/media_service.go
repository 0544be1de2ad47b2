package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mediashelf/internal/httpapi/models"
	"mediashelf/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrMediaNotFound   = errors.New("media not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidAction   = errors.New("invalid review action")
	ErrAlreadyReviewed = errors.New("submission already reviewed")
)

// Review actions
const (
	ReviewActionApprove = "approve"
	ReviewActionReject  = "reject"
)

// CreateMediaInput carries the fields of a new catalog entry or submission.
type CreateMediaInput struct {
	Type        string
	Title       string
	Creator     string
	Genre       *string
	Description *string
	CoverURL    *string
	ReleaseDate *time.Time
	Metadata    *string

	// Optional: add the entry to the creator's collection immediately.
	AddToCollection bool
	InitialStatus   string
}

// UpdateMediaInput carries a partial catalog update. Nil fields are left
// untouched. Status and RejectionNote are honored for admins only.
type UpdateMediaInput struct {
	Type          *string
	Title         *string
	Creator       *string
	Genre         *string
	Description   *string
	CoverURL      *string
	ReleaseDate   *time.Time
	ClearRelease  bool
	Metadata      *string
	Status        *string
	RejectionNote *string
}

type MediaService interface {
	List(ctx context.Context, query, genre, mediaType string) ([]models.Media, error)
	Get(ctx context.Context, id string) (*models.Media, error)
	Create(ctx context.Context, actor Actor, input CreateMediaInput) (*models.Media, error)
	Update(ctx context.Context, actor Actor, id string, input UpdateMediaInput) (*models.Media, error)
	Delete(ctx context.Context, actor Actor, id string) error
	ListMySubmissions(ctx context.Context, userID string) ([]models.Media, error)
	ListPending(ctx context.Context) ([]models.Media, error)
	Review(ctx context.Context, actor Actor, id, action string, rejectionNote *string) (*models.Media, error)
}

type mediaService struct {
	repo           repository.MediaRepository
	collectionRepo repository.CollectionRepository
	notifier       *Notifier
	logger         *slog.Logger
}

func NewMediaService(
	repo repository.MediaRepository,
	collectionRepo repository.CollectionRepository,
	notifier *Notifier,
	logger *slog.Logger,
) MediaService {
	return &mediaService{
		repo:           repo,
		collectionRepo: collectionRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// List returns the public catalog: APPROVED entries only.
func (s *mediaService) List(ctx context.Context, query, genre, mediaType string) ([]models.Media, error) {
	filter := repository.MediaFilter{
		Query:  query,
		Genre:  genre,
		Status: models.MediaStatusApproved,
	}
	if models.ValidMediaType(mediaType) {
		filter.Type = mediaType
	}
	return s.repo.List(ctx, filter)
}

func (s *mediaService) Get(ctx context.Context, id string) (*models.Media, error) {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return media, nil
}

// Create stores a new catalog entry. Submissions from regular users enter
// moderation as PENDING; admin-created entries are approved immediately.
// No notification fires on creation, only on review.
func (s *mediaService) Create(ctx context.Context, actor Actor, input CreateMediaInput) (*models.Media, error) {
	status := models.MediaStatusPending
	if actor.IsAdmin() {
		status = models.MediaStatusApproved
	}

	media := &models.Media{
		Type:        input.Type,
		Title:       input.Title,
		Creator:     input.Creator,
		Genre:       input.Genre,
		Description: input.Description,
		CoverURL:    input.CoverURL,
		ReleaseDate: input.ReleaseDate,
		Metadata:    input.Metadata,
		Status:      status,
		CreatedByID: &actor.UserID,
	}

	if err := s.repo.Create(ctx, media); err != nil {
		return nil, err
	}

	// Best-effort immediate add to the creator's collection; a failure here
	// does not roll back the created entry.
	if input.AddToCollection {
		entryStatus := input.InitialStatus
		if !models.ValidCollectionStatus(entryStatus) {
			entryStatus = models.CollectionStatusOwned
		}
		entry := &models.UserMedia{
			UserID:  actor.UserID,
			MediaID: media.ID,
			Status:  entryStatus,
		}
		if entryStatus == models.CollectionStatusCompleted {
			now := time.Now()
			entry.CompletedAt = &now
		}
		// Best-effort: the catalog entry exists either way.
		if err := s.collectionRepo.Add(ctx, entry); err != nil {
			s.logger.Warn("could not add new entry to creator's collection",
				"media_id", media.ID,
				"user_id", actor.UserID,
				"error", err)
		}
	}

	return media, nil
}

// Update applies a partial edit. Admins may edit anything; the submitter may
// edit only while the entry is still PENDING, and may never touch the
// moderation fields.
func (s *mediaService) Update(ctx context.Context, actor Actor, id string, input UpdateMediaInput) (*models.Media, error) {
	media, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner := media.CreatedByID != nil && *media.CreatedByID == actor.UserID
	if !actor.IsAdmin() && !(isOwner && media.Status == models.MediaStatusPending) {
		return nil, ErrForbidden
	}

	if input.Type != nil {
		media.Type = *input.Type
	}
	if input.Title != nil {
		media.Title = *input.Title
	}
	if input.Creator != nil {
		media.Creator = *input.Creator
	}
	if input.Genre != nil {
		media.Genre = input.Genre
	}
	if input.Description != nil {
		media.Description = input.Description
	}
	if input.CoverURL != nil {
		media.CoverURL = input.CoverURL
	}
	if input.ReleaseDate != nil {
		media.ReleaseDate = input.ReleaseDate
	} else if input.ClearRelease {
		media.ReleaseDate = nil
	}
	if input.Metadata != nil {
		media.Metadata = input.Metadata
	}

	// Moderation fields are admin-only
	if actor.IsAdmin() {
		if input.Status != nil {
			media.Status = *input.Status
		}
		if input.RejectionNote != nil {
			media.RejectionNote = input.RejectionNote
		}
	}

	if err := s.repo.Update(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

// Delete removes a catalog entry. Admins may delete anything; the submitter
// may delete their own entry while it is not APPROVED (pending or rejected).
func (s *mediaService) Delete(ctx context.Context, actor Actor, id string) error {
	media, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	isOwner := media.CreatedByID != nil && *media.CreatedByID == actor.UserID
	if !actor.IsAdmin() && !(isOwner && media.Status != models.MediaStatusApproved) {
		return ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}

func (s *mediaService) ListMySubmissions(ctx context.Context, userID string) ([]models.Media, error) {
	return s.repo.ListByCreator(ctx, userID)
}

func (s *mediaService) ListPending(ctx context.Context) ([]models.Media, error) {
	return s.repo.ListPending(ctx)
}

// Review moves a PENDING submission to APPROVED or REJECTED. Both outcomes
// are terminal: re-reviewing an already-decided entry fails with
// ErrAlreadyReviewed, which also guarantees the submitter is notified at
// most once per submission.
func (s *mediaService) Review(ctx context.Context, actor Actor, id, action string, rejectionNote *string) (*models.Media, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if action != ReviewActionApprove && action != ReviewActionReject {
		return nil, ErrInvalidAction
	}

	media, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if media.Status != models.MediaStatusPending {
		return nil, ErrAlreadyReviewed
	}

	fields := map[string]any{}
	if action == ReviewActionApprove {
		fields["status"] = models.MediaStatusApproved
		fields["rejection_note"] = nil
		media.Status = models.MediaStatusApproved
		media.RejectionNote = nil
	} else {
		fields["status"] = models.MediaStatusRejected
		fields["rejection_note"] = rejectionNote
		media.Status = models.MediaStatusRejected
		media.RejectionNote = rejectionNote
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	// Notify the submitter, unless the entry is system-seeded or the
	// reviewing admin reviewed their own submission. Best-effort: the status
	// change stands even if the insert fails.
	if media.CreatedByID != nil && *media.CreatedByID != actor.UserID {
		notifType := models.NotificationMediaApproved
		if action == ReviewActionReject {
			notifType = models.NotificationMediaRejected
		}
		s.notifier.Notify(ctx, &models.Notification{
			UserID:     *media.CreatedByID,
			Type:       notifType,
			ActorID:    &actor.UserID,
			MediaID:    &media.ID,
			MediaTitle: &media.Title,
		})
	}

	return media, nil
}
