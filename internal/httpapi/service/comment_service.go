package service

import (
	"context"
	"errors"

	"mediashelf/internal/httpapi/models"
	"mediashelf/internal/httpapi/repository"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService interface {
	List(ctx context.Context, mediaID string) ([]models.Comment, error)
	Create(ctx context.Context, actor Actor, mediaID, body string) (*models.Comment, error)
	Update(ctx context.Context, actor Actor, commentID int64, body string) (*models.Comment, error)
	Delete(ctx context.Context, actor Actor, commentID int64) error
}

type commentService struct {
	repo      repository.CommentRepository
	mediaRepo repository.MediaRepository
}

func NewCommentService(repo repository.CommentRepository, mediaRepo repository.MediaRepository) CommentService {
	return &commentService{repo: repo, mediaRepo: mediaRepo}
}

// List returns a media entry's comments in thread order (oldest first).
func (s *commentService) List(ctx context.Context, mediaID string) ([]models.Comment, error) {
	if err := s.mediaExists(ctx, mediaID); err != nil {
		return nil, err
	}
	return s.repo.ListByMedia(ctx, mediaID)
}

func (s *commentService) Create(ctx context.Context, actor Actor, mediaID, body string) (*models.Comment, error) {
	if err := s.mediaExists(ctx, mediaID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:  actor.UserID,
		MediaID: mediaID,
		Body:    body,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update edits a comment. The author or an admin may edit.
func (s *commentService) Update(ctx context.Context, actor Actor, commentID int64, body string) (*models.Comment, error) {
	comment, err := s.getAuthorized(ctx, actor, commentID)
	if err != nil {
		return nil, err
	}

	comment.Body = body
	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, actor Actor, commentID int64) error {
	if _, err := s.getAuthorized(ctx, actor, commentID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, commentID)
}

func (s *commentService) getAuthorized(ctx context.Context, actor Actor, commentID int64) (*models.Comment, error) {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return comment, nil
}

func (s *commentService) mediaExists(ctx context.Context, mediaID string) error {
	if _, err := s.mediaRepo.GetByID(ctx, mediaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMediaNotFound
		}
		return err
	}
	return nil
}
