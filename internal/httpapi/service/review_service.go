package service

import (
	"context"
	"errors"
	"math"

	"mediashelf/internal/httpapi/models"
	"mediashelf/internal/httpapi/repository"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

// ReviewList bundles a media entry's reviews with their aggregate.
type ReviewList struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating *float64        `json:"average_rating"`
	Total         int             `json:"total"`
}

// UpdateReviewInput is a partial review edit.
type UpdateReviewInput struct {
	Rating *int
	Body   *string
}

type ReviewService interface {
	List(ctx context.Context, mediaID string) (*ReviewList, error)
	Create(ctx context.Context, actor Actor, mediaID string, rating int, body *string) (*models.Review, error)
	Update(ctx context.Context, actor Actor, mediaID string, reviewID int64, input UpdateReviewInput) (*models.Review, error)
	Delete(ctx context.Context, actor Actor, reviewID int64) error
}

type reviewService struct {
	repo      repository.ReviewRepository
	mediaRepo repository.MediaRepository
}

func NewReviewService(repo repository.ReviewRepository, mediaRepo repository.MediaRepository) ReviewService {
	return &reviewService{repo: repo, mediaRepo: mediaRepo}
}

// List returns all reviews for a media entry, newest first, with the
// average rating rounded to one decimal place.
func (s *reviewService) List(ctx context.Context, mediaID string) (*ReviewList, error) {
	if err := s.mediaExists(ctx, mediaID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.ListByMedia(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	list := &ReviewList{Reviews: reviews, Total: len(reviews)}
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10
		list.AverageRating = &avg
	}
	return list, nil
}

func (s *reviewService) Create(ctx context.Context, actor Actor, mediaID string, rating int, body *string) (*models.Review, error) {
	if err := s.mediaExists(ctx, mediaID); err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:  actor.UserID,
		MediaID: mediaID,
		Rating:  rating,
		Body:    body,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Update edits a review. The author or an admin may edit.
func (s *reviewService) Update(ctx context.Context, actor Actor, mediaID string, reviewID int64, input UpdateReviewInput) (*models.Review, error) {
	review, err := s.getAuthorized(ctx, actor, reviewID)
	if err != nil {
		return nil, err
	}
	if review.MediaID != mediaID {
		return nil, ErrReviewNotFound
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Body != nil {
		review.Body = input.Body
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, actor Actor, reviewID int64) error {
	if _, err := s.getAuthorized(ctx, actor, reviewID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, reviewID)
}

func (s *reviewService) getAuthorized(ctx context.Context, actor Actor, reviewID int64) (*models.Review, error) {
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return review, nil
}

func (s *reviewService) mediaExists(ctx context.Context, mediaID string) error {
	if _, err := s.mediaRepo.GetByID(ctx, mediaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMediaNotFound
		}
		return err
	}
	return nil
}
