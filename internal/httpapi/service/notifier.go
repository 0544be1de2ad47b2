package service

import (
	"context"
	"log/slog"

	"mediashelf/internal/cache"
	"mediashelf/internal/httpapi/models"
	"mediashelf/internal/httpapi/repository"
)

// Notifier emits notifications as side effects of state transitions. Emission
// is best-effort by contract: a failed insert is logged and swallowed so the
// primary mutation is never rolled back (at-most-once delivery).
type Notifier struct {
	repo   repository.NotificationRepository
	unread *cache.UnreadCounter
	logger *slog.Logger
}

func NewNotifier(repo repository.NotificationRepository, unread *cache.UnreadCounter, logger *slog.Logger) *Notifier {
	return &Notifier{repo: repo, unread: unread, logger: logger}
}

// Notify stores the notification and drops the recipient's cached unread
// count.
func (n *Notifier) Notify(ctx context.Context, notification *models.Notification) {
	if err := n.repo.Create(ctx, notification); err != nil {
		n.logger.Warn("notification emission failed",
			"user_id", notification.UserID,
			"type", notification.Type,
			"error", err)
		return
	}
	n.unread.Invalidate(ctx, notification.UserID)
}
