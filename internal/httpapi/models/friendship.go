package models

import "time"

// Friendship states. A declined request is deleted, not stored.
const (
	FriendshipPending  = "PENDING"
	FriendshipAccepted = "ACCEPTED"
)

// Friendship is a directed request that becomes a symmetric relationship
// once accepted. At most one row exists per unordered pair of users.
type Friendship struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FromUserID string    `gorm:"type:uuid;not null;uniqueIndex:idx_friend_pair" json:"from_user_id"`
	ToUserID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_friend_pair" json:"to_user_id"`
	Status     string    `gorm:"default:'PENDING';not null" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	FromUser *User `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	ToUser   *User `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
}

func (Friendship) TableName() string {
	return "friendships"
}
