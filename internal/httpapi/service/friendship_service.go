package service

import (
	"context"
	"errors"

	"mediashelf/internal/httpapi/models"
	"mediashelf/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrSelfFriendRequest  = errors.New("cannot add yourself")
	ErrAlreadyFriends     = errors.New("already friends")
	ErrRequestAlreadySent = errors.New("request already sent")
	ErrReversePending     = errors.New("they already sent you a request; accept it instead")
	ErrRequestNotFound    = errors.New("friend request not found")
	ErrRequestHandled     = errors.New("request already handled")
	ErrUserNotFound       = errors.New("user not found")
)

// FriendStatus is the relationship probe result for a profile page.
type FriendStatus struct {
	Status    string `json:"status"` // self | none | friends | pending_sent | pending_received
	RequestID *int64 `json:"request_id,omitempty"`
}

type FriendshipService interface {
	ListFriends(ctx context.Context, userID string) ([]models.PublicUser, error)
	ListRequests(ctx context.Context, userID string) (incoming, outgoing []models.Friendship, err error)
	StatusWith(ctx context.Context, userID, targetID string) (*FriendStatus, error)
	SendRequest(ctx context.Context, fromUserID, toUserID string) (*models.Friendship, error)
	Accept(ctx context.Context, userID string, requestID int64) error
	Decline(ctx context.Context, userID string, requestID int64) error
}

type friendshipService struct {
	repo     repository.FriendshipRepository
	userRepo repository.UserRepository
	notifier *Notifier
}

func NewFriendshipService(
	repo repository.FriendshipRepository,
	userRepo repository.UserRepository,
	notifier *Notifier,
) FriendshipService {
	return &friendshipService{repo: repo, userRepo: userRepo, notifier: notifier}
}

// ListFriends derives the symmetric friends view: accepted rows in either
// direction, mapped to the other party.
func (s *friendshipService) ListFriends(ctx context.Context, userID string) ([]models.PublicUser, error) {
	friendships, err := s.repo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends := make([]models.PublicUser, 0, len(friendships))
	for _, f := range friendships {
		if f.FromUserID == userID {
			if f.ToUser != nil {
				friends = append(friends, f.ToUser.Public())
			}
		} else if f.FromUser != nil {
			friends = append(friends, f.FromUser.Public())
		}
	}
	return friends, nil
}

func (s *friendshipService) ListRequests(ctx context.Context, userID string) ([]models.Friendship, []models.Friendship, error) {
	incoming, err := s.repo.ListIncoming(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	outgoing, err := s.repo.ListOutgoing(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return incoming, outgoing, nil
}

func (s *friendshipService) StatusWith(ctx context.Context, userID, targetID string) (*FriendStatus, error) {
	if userID == targetID {
		return &FriendStatus{Status: "self"}, nil
	}

	friendship, err := s.repo.FindBetween(ctx, userID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &FriendStatus{Status: "none"}, nil
		}
		return nil, err
	}

	if friendship.Status == models.FriendshipAccepted {
		return &FriendStatus{Status: "friends"}, nil
	}
	if friendship.FromUserID == userID {
		return &FriendStatus{Status: "pending_sent"}, nil
	}
	return &FriendStatus{Status: "pending_received", RequestID: &friendship.ID}, nil
}

// SendRequest creates a PENDING row and notifies the recipient. Any existing
// row between the pair, in either direction, blocks a new request with a
// case-specific error.
func (s *friendshipService) SendRequest(ctx context.Context, fromUserID, toUserID string) (*models.Friendship, error) {
	if fromUserID == toUserID {
		return nil, ErrSelfFriendRequest
	}

	toUser, err := s.userRepo.FindByID(ctx, toUserID)
	if err != nil || toUser.Disabled {
		return nil, ErrUserNotFound
	}

	existing, err := s.repo.FindBetween(ctx, fromUserID, toUserID)
	if err == nil {
		switch {
		case existing.Status == models.FriendshipAccepted:
			return nil, ErrAlreadyFriends
		case existing.FromUserID == fromUserID:
			return nil, ErrRequestAlreadySent
		default:
			return nil, ErrReversePending
		}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	friendship := &models.Friendship{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     models.FriendshipPending,
	}
	if err := s.repo.Create(ctx, friendship); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, &models.Notification{
		UserID:  toUserID,
		Type:    models.NotificationFriendRequest,
		ActorID: &fromUserID,
	})

	return friendship, nil
}

// Accept transitions a PENDING request to ACCEPTED. Only the recipient may
// accept; the original sender is notified.
func (s *friendshipService) Accept(ctx context.Context, userID string, requestID int64) error {
	friendship, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	if friendship.ToUserID != userID {
		return ErrForbidden
	}
	if friendship.Status != models.FriendshipPending {
		return ErrRequestHandled
	}

	friendship.Status = models.FriendshipAccepted
	if err := s.repo.Update(ctx, friendship); err != nil {
		return err
	}

	s.notifier.Notify(ctx, &models.Notification{
		UserID:  friendship.FromUserID,
		Type:    models.NotificationFriendAccepted,
		ActorID: &userID,
	})

	return nil
}

// Decline deletes the request row. No notification fires.
func (s *friendshipService) Decline(ctx context.Context, userID string, requestID int64) error {
	friendship, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	if friendship.ToUserID != userID {
		return ErrForbidden
	}

	return s.repo.Delete(ctx, requestID)
}
