package service

import (
	"context"
	"testing"

	"mediashelf/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserSearch_ShortQueryReturnsNothing(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, new(MockCollectionRepository))

	results, err := svc.Search(context.Background(), "caller", " a ")

	assert.NoError(t, err)
	assert.Empty(t, results)
	repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserSearch_MapsToPublicShape(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, new(MockCollectionRepository))

	repo.On("Search", mock.Anything, "bea", "caller", userSearchLimit).Return([]models.User{
		{ID: "user-2", Name: "Beatrix", Email: "bea@example.com", Password: "secret-hash"},
	}, nil)

	results, err := svc.Search(context.Background(), "caller", "bea")

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Beatrix", results[0].Name)
}

func TestPublicCollection_PrivateProfile(t *testing.T) {
	repo := new(MockUserRepository)
	collectionRepo := new(MockCollectionRepository)
	svc := NewUserService(repo, collectionRepo)

	repo.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", ProfilePublic: false}, nil)

	_, err := svc.GetPublicCollection(context.Background(), "user-1")

	assert.Equal(t, ErrPrivateProfile, err)
	collectionRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublicCollection_SharedProfile(t *testing.T) {
	repo := new(MockUserRepository)
	collectionRepo := new(MockCollectionRepository)
	svc := NewUserService(repo, collectionRepo)

	repo.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", Name: "Ada", ProfilePublic: true}, nil)
	collectionRepo.On("List", mock.Anything, "user-1", "").Return([]models.UserMedia{
		{ID: 1, UserID: "user-1", MediaID: "media-1", Status: models.CollectionStatusOwned},
	}, nil)

	shared, err := svc.GetPublicCollection(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "Ada", shared.User.Name)
	assert.Len(t, shared.Collection, 1)
}

func TestSetDisabled_RefusesAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, new(MockCollectionRepository))

	repo.On("FindByID", mock.Anything, "admin-1").Return(&models.User{ID: "admin-1", Role: models.RoleAdmin}, nil)

	err := svc.SetDisabled(context.Background(), "admin-1", true)

	assert.Equal(t, ErrCannotTouchAdmin, err)
	repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteUser_RefusesAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, new(MockCollectionRepository))

	repo.On("FindByID", mock.Anything, "admin-1").Return(&models.User{ID: "admin-1", Role: models.RoleAdmin}, nil)

	err := svc.Delete(context.Background(), "admin-1")

	assert.Equal(t, ErrCannotTouchAdmin, err)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
