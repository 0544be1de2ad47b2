package repository

import (
	"context"
	"fmt"

	"mediashelf/internal/httpapi/models"

	"gorm.io/gorm"
)

type CollectionRepository interface {
	Add(ctx context.Context, entry *models.UserMedia) error
	GetByID(ctx context.Context, id int64) (*models.UserMedia, error)
	List(ctx context.Context, userID, status string) ([]models.UserMedia, error)
	Update(ctx context.Context, entry *models.UserMedia) error
	Remove(ctx context.Context, id int64) error
	Exists(ctx context.Context, userID, mediaID string) (bool, error)
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Add(ctx context.Context, entry *models.UserMedia) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("add to collection: %w", err)
	}
	return nil
}

func (r *collectionRepository) GetByID(ctx context.Context, id int64) (*models.UserMedia, error) {
	var entry models.UserMedia
	if err := r.db.WithContext(ctx).
		Preload("Media").
		First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *collectionRepository) List(ctx context.Context, userID, status string) ([]models.UserMedia, error) {
	q := r.db.WithContext(ctx).
		Preload("Media").
		Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var entries []models.UserMedia
	if err := q.Order("added_at DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list collection: %w", err)
	}
	return entries, nil
}

func (r *collectionRepository) Update(ctx context.Context, entry *models.UserMedia) error {
	// Save writes all columns so a cleared completed_at goes back to NULL
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *collectionRepository) Remove(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.UserMedia{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("remove from collection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *collectionRepository) Exists(ctx context.Context, userID, mediaID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserMedia{}).
		Where("user_id = ? AND media_id = ?", userID, mediaID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
