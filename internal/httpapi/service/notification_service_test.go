package service

import (
	"context"
	"testing"
	"time"

	"mediashelf/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestUnreadCount_FallsBackToDatabase(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo, testUnreadCounter())

	repo.On("CountUnread", mock.Anything, "user-1").Return(int64(3), nil)

	count, err := svc.UnreadCount(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	repo.AssertExpectations(t)
}

func TestMarkRead_Success(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo, testUnreadCounter())

	repo.On("GetByID", mock.Anything, int64(1)).Return(&models.Notification{
		ID:     1,
		UserID: "user-1",
		Type:   models.NotificationMediaApproved,
	}, nil)
	repo.On("MarkRead", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).Return(nil)

	err := svc.MarkRead(context.Background(), "user-1", 1)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestMarkRead_Idempotent(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo, testUnreadCounter())

	readAt := time.Now().Add(-time.Hour)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&models.Notification{
		ID:     1,
		UserID: "user-1",
		ReadAt: &readAt,
	}, nil)

	err := svc.MarkRead(context.Background(), "user-1", 1)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkRead_WrongRecipient(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo, testUnreadCounter())

	repo.On("GetByID", mock.Anything, int64(1)).Return(&models.Notification{
		ID:     1,
		UserID: "someone-else",
	}, nil)

	err := svc.MarkRead(context.Background(), "user-1", 1)

	assert.Equal(t, ErrForbidden, err)
}

func TestMarkRead_NotFound(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo, testUnreadCounter())

	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.MarkRead(context.Background(), "user-1", 404)

	assert.Equal(t, ErrNotificationNotFound, err)
}

func TestMarkAllRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo, testUnreadCounter())

	repo.On("MarkAllRead", mock.Anything, "user-1", mock.AnythingOfType("time.Time")).Return(nil)

	err := svc.MarkAllRead(context.Background(), "user-1")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestList_CapsAtPageSize(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo, testUnreadCounter())

	repo.On("ListByUser", mock.Anything, "user-1", true, notificationPageSize).Return([]models.Notification{}, nil)

	_, err := svc.List(context.Background(), "user-1", true)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
