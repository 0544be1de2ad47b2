package repository

import (
	"context"
	"fmt"

	"mediashelf/internal/httpapi/models"

	"gorm.io/gorm"
)

// MediaFilter narrows catalog listings. Zero values mean "no filter".
type MediaFilter struct {
	Query  string // substring match on title/creator/description
	Genre  string
	Type   string
	Status string
}

type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, id string) (*models.Media, error)
	List(ctx context.Context, filter MediaFilter) ([]models.Media, error)
	ListByCreator(ctx context.Context, userID string) ([]models.Media, error)
	ListPending(ctx context.Context) ([]models.Media, error)
	Update(ctx context.Context, media *models.Media) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	FindByTitleContains(ctx context.Context, fragment string, limit int) ([]models.Media, error)
	Count(ctx context.Context) (int64, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *models.Media) error {
	if err := r.db.WithContext(ctx).Create(media).Error; err != nil {
		return fmt.Errorf("create media: %w", err)
	}
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id string) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		First(&media, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) List(ctx context.Context, filter MediaFilter) ([]models.Media, error) {
	q := r.db.WithContext(ctx).Model(&models.Media{}).Preload("CreatedBy")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		q = q.Where("title ILIKE ? OR creator ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Genre != "" {
		q = q.Where("genre = ?", filter.Genre)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var media []models.Media
	if err := q.Order("title ASC").Find(&media).Error; err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return media, nil
}

func (r *mediaRepository) ListByCreator(ctx context.Context, userID string) ([]models.Media, error) {
	var media []models.Media
	if err := r.db.WithContext(ctx).
		Where("created_by_id = ?", userID).
		Order("created_at DESC").
		Find(&media).Error; err != nil {
		return nil, fmt.Errorf("list media by creator: %w", err)
	}
	return media, nil
}

func (r *mediaRepository) ListPending(ctx context.Context) ([]models.Media, error) {
	var media []models.Media
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("status = ?", models.MediaStatusPending).
		Order("created_at DESC").
		Find(&media).Error; err != nil {
		return nil, fmt.Errorf("list pending media: %w", err)
	}
	return media, nil
}

func (r *mediaRepository) Update(ctx context.Context, media *models.Media) error {
	return r.db.WithContext(ctx).Save(media).Error
}

// UpdateFields applies a partial update. Used by the review transition so
// cleared columns (rejection_note on approve) are written as NULL.
func (r *mediaRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Media{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *mediaRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Media{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete media: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mediaRepository) FindByTitleContains(ctx context.Context, fragment string, limit int) ([]models.Media, error) {
	var media []models.Media
	if err := r.db.WithContext(ctx).
		Where("title ILIKE ?", "%"+fragment+"%").
		Limit(limit).
		Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

func (r *mediaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Media{}).Count(&count).Error
	return count, err
}
