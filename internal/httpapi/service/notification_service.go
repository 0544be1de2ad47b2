package service

import (
	"context"
	"errors"
	"time"

	"mediashelf/internal/cache"
	"mediashelf/internal/httpapi/models"
	"mediashelf/internal/httpapi/repository"

	"gorm.io/gorm"
)

// Inbox listings are capped; the client polls rather than paginates.
const notificationPageSize = 50

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService interface {
	List(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID string, notificationID int64) error
	MarkAllRead(ctx context.Context, userID string) error
}

type notificationService struct {
	repo   repository.NotificationRepository
	unread *cache.UnreadCounter
}

func NewNotificationService(repo repository.NotificationRepository, unread *cache.UnreadCounter) NotificationService {
	return &notificationService{repo: repo, unread: unread}
}

func (s *notificationService) List(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	return s.repo.ListByUser(ctx, userID, unreadOnly, notificationPageSize)
}

// UnreadCount serves the client's polling loop; counts are cached briefly
// and invalidated on every write that changes them.
func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if count, ok := s.unread.Get(ctx, userID); ok {
		return count, nil
	}

	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.unread.Set(ctx, userID, count)
	return count, nil
}

// MarkRead acknowledges one notification. Only the recipient may mark it,
// and marking an already-read notification is a no-op success.
func (s *notificationService) MarkRead(ctx context.Context, userID string, notificationID int64) error {
	notification, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	if notification.UserID != userID {
		return ErrForbidden
	}
	if notification.ReadAt != nil {
		// already acknowledged; idempotent
		return nil
	}

	if err := s.repo.MarkRead(ctx, notificationID, time.Now()); err != nil {
		return err
	}
	s.unread.Invalidate(ctx, userID)
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.repo.MarkAllRead(ctx, userID, time.Now()); err != nil {
		return err
	}
	s.unread.Invalidate(ctx, userID)
	return nil
}
