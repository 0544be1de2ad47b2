package repository

import (
	"context"
	"fmt"

	"mediashelf/internal/httpapi/models"

	"gorm.io/gorm"
)

type FriendshipRepository interface {
	Create(ctx context.Context, friendship *models.Friendship) error
	GetByID(ctx context.Context, id int64) (*models.Friendship, error)
	// FindBetween returns the row between two users regardless of direction,
	// or gorm.ErrRecordNotFound.
	FindBetween(ctx context.Context, userA, userB string) (*models.Friendship, error)
	ListAccepted(ctx context.Context, userID string) ([]models.Friendship, error)
	ListIncoming(ctx context.Context, userID string) ([]models.Friendship, error)
	ListOutgoing(ctx context.Context, userID string) ([]models.Friendship, error)
	Update(ctx context.Context, friendship *models.Friendship) error
	Delete(ctx context.Context, id int64) error
}

type friendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	if err := r.db.WithContext(ctx).Create(friendship).Error; err != nil {
		return fmt.Errorf("create friendship: %w", err)
	}
	return nil
}

func (r *friendshipRepository) GetByID(ctx context.Context, id int64) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).First(&friendship, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendshipRepository) FindBetween(ctx context.Context, userA, userB string) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userA, userB, userB, userA).
		First(&friendship).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendshipRepository) ListAccepted(ctx context.Context, userID string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	if err := r.db.WithContext(ctx).
		Preload("FromUser").
		Preload("ToUser").
		Where("status = ? AND (from_user_id = ? OR to_user_id = ?)",
			models.FriendshipAccepted, userID, userID).
		Find(&friendships).Error; err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	return friendships, nil
}

func (r *friendshipRepository) ListIncoming(ctx context.Context, userID string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	if err := r.db.WithContext(ctx).
		Preload("FromUser").
		Where("to_user_id = ? AND status = ?", userID, models.FriendshipPending).
		Find(&friendships).Error; err != nil {
		return nil, fmt.Errorf("list incoming requests: %w", err)
	}
	return friendships, nil
}

func (r *friendshipRepository) ListOutgoing(ctx context.Context, userID string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	if err := r.db.WithContext(ctx).
		Preload("ToUser").
		Where("from_user_id = ? AND status = ?", userID, models.FriendshipPending).
		Find(&friendships).Error; err != nil {
		return nil, fmt.Errorf("list outgoing requests: %w", err)
	}
	return friendships, nil
}

func (r *friendshipRepository) Update(ctx context.Context, friendship *models.Friendship) error {
	return r.db.WithContext(ctx).Save(friendship).Error
}

func (r *friendshipRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Friendship{}, "id = ?", id).Error
}
