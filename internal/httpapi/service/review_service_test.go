package service

import (
	"context"
	"testing"

	"mediashelf/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByMedia(ctx context.Context, mediaID string) ([]models.Review, error) {
	args := m.Called(ctx, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestReviewList_AverageRoundedToOneDecimal(t *testing.T) {
	repo := new(MockReviewRepository)
	mediaRepo := new(MockMediaRepository)
	svc := NewReviewService(repo, mediaRepo)

	mediaRepo.On("GetByID", mock.Anything, "media-1").Return(&models.Media{ID: "media-1"}, nil)
	repo.On("ListByMedia", mock.Anything, "media-1").Return([]models.Review{
		{Rating: 5}, {Rating: 4}, {Rating: 4},
	}, nil)

	list, err := svc.List(context.Background(), "media-1")

	assert.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 4.3, *list.AverageRating)
}

func TestReviewList_EmptyHasNoAverage(t *testing.T) {
	repo := new(MockReviewRepository)
	mediaRepo := new(MockMediaRepository)
	svc := NewReviewService(repo, mediaRepo)

	mediaRepo.On("GetByID", mock.Anything, "media-1").Return(&models.Media{ID: "media-1"}, nil)
	repo.On("ListByMedia", mock.Anything, "media-1").Return([]models.Review{}, nil)

	list, err := svc.List(context.Background(), "media-1")

	assert.NoError(t, err)
	assert.Nil(t, list.AverageRating)
	assert.Equal(t, 0, list.Total)
}

func TestReviewCreate_MediaMissing(t *testing.T) {
	repo := new(MockReviewRepository)
	mediaRepo := new(MockMediaRepository)
	svc := NewReviewService(repo, mediaRepo)

	mediaRepo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), Actor{UserID: "user-1"}, "missing", 4, nil)

	assert.Equal(t, ErrMediaNotFound, err)
}

func TestReviewUpdate_AuthorOnly(t *testing.T) {
	repo := new(MockReviewRepository)
	svc := NewReviewService(repo, new(MockMediaRepository))

	repo.On("GetByID", mock.Anything, int64(1)).Return(&models.Review{
		ID: 1, UserID: "author", MediaID: "media-1", Rating: 3,
	}, nil)

	rating := 5
	_, err := svc.Update(context.Background(), Actor{UserID: "stranger", Role: models.RoleUser}, "media-1", 1, UpdateReviewInput{Rating: &rating})

	assert.Equal(t, ErrForbidden, err)
}

func TestReviewDelete_AdminOverride(t *testing.T) {
	repo := new(MockReviewRepository)
	svc := NewReviewService(repo, new(MockMediaRepository))

	repo.On("GetByID", mock.Anything, int64(1)).Return(&models.Review{
		ID: 1, UserID: "author", MediaID: "media-1",
	}, nil)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := svc.Delete(context.Background(), Actor{UserID: "admin-1", Role: models.RoleAdmin}, 1)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
