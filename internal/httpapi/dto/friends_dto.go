package dto

import (
	"time"

	"mediashelf/internal/httpapi/models"
)

// SendFriendRequestRequest: payload to send a friend request
type SendFriendRequestRequest struct {
	ToUserID string `json:"to_user_id" binding:"required"`
}

// FriendRequestIDRequest: payload for accept/decline
type FriendRequestIDRequest struct {
	RequestID int64 `json:"request_id" binding:"required"`
}

// IncomingFriendRequest: one pending request addressed to the caller
type IncomingFriendRequest struct {
	ID        int64             `json:"id"`
	From      models.PublicUser `json:"from"`
	CreatedAt time.Time         `json:"created_at"`
}

// OutgoingFriendRequest: one pending request the caller sent
type OutgoingFriendRequest struct {
	ID        int64             `json:"id"`
	To        models.PublicUser `json:"to"`
	CreatedAt time.Time         `json:"created_at"`
}

// FriendRequestsResponse: the caller's pending requests in both directions
type FriendRequestsResponse struct {
	Incoming []IncomingFriendRequest `json:"incoming"`
	Outgoing []OutgoingFriendRequest `json:"outgoing"`
}
