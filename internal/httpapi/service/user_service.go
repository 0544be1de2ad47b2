package service

import (
	"context"
	"errors"
	"strings"

	"mediashelf/internal/httpapi/models"
	"mediashelf/internal/httpapi/repository"

	"gorm.io/gorm"
)

const userSearchLimit = 20

var (
	ErrPrivateProfile   = errors.New("collection is private")
	ErrCannotTouchAdmin = errors.New("cannot modify admin")
)

// UpdateProfileInput is a partial profile update for the current user.
type UpdateProfileInput struct {
	Name          *string
	ProfilePublic *bool
}

// PublicCollection is another user's shared collection view.
type PublicCollection struct {
	User       models.PublicUser  `json:"user"`
	Collection []models.UserMedia `json:"collection"`
}

type UserService interface {
	Get(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*models.User, error)
	Search(ctx context.Context, callerID, query string) ([]models.PublicUser, error)
	GetPublicCollection(ctx context.Context, userID string) (*PublicCollection, error)
	ListAll(ctx context.Context) ([]models.User, error)
	SetDisabled(ctx context.Context, userID string, disabled bool) error
	Delete(ctx context.Context, userID string) error
}

type userService struct {
	repo           repository.UserRepository
	collectionRepo repository.CollectionRepository
}

func NewUserService(repo repository.UserRepository, collectionRepo repository.CollectionRepository) UserService {
	return &userService{repo: repo, collectionRepo: collectionRepo}
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*models.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.ProfilePublic != nil {
		user.ProfilePublic = *input.ProfilePublic
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Search finds other accounts by name or email for the add-friend flow.
// Queries under two characters return nothing rather than everything.
func (s *userService) Search(ctx context.Context, callerID, query string) ([]models.PublicUser, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []models.PublicUser{}, nil
	}

	users, err := s.repo.Search(ctx, query, callerID, userSearchLimit)
	if err != nil {
		return nil, err
	}

	results := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		results = append(results, u.Public())
	}
	return results, nil
}

// GetPublicCollection returns a user's collection for profile sharing,
// only when the profile is public.
func (s *userService) GetPublicCollection(ctx context.Context, userID string) (*PublicCollection, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.ProfilePublic {
		return nil, ErrPrivateProfile
	}

	entries, err := s.collectionRepo.List(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	return &PublicCollection{
		User:       user.Public(),
		Collection: entries,
	}, nil
}

func (s *userService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.repo.ListAll(ctx)
}

// SetDisabled flips the account lockout flag. Admin accounts are never
// touched by account management.
func (s *userService) SetDisabled(ctx context.Context, userID string, disabled bool) error {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return ErrCannotTouchAdmin
	}
	return s.repo.UpdateFields(ctx, userID, map[string]any{"disabled": disabled})
}

func (s *userService) Delete(ctx context.Context, userID string) error {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return ErrCannotTouchAdmin
	}
	return s.repo.Delete(ctx, userID)
}
