package models

import "time"

// Notification types
const (
	NotificationMediaApproved  = "MEDIA_APPROVED"
	NotificationMediaRejected  = "MEDIA_REJECTED"
	NotificationFriendRequest  = "FRIEND_REQUEST"
	NotificationFriendAccepted = "FRIEND_ACCEPTED"
)

// Notification is created only as a side effect of a state transition
// elsewhere (submission review, friend request/accept). ReadAt stays nil
// until the recipient acknowledges it.
type Notification struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Type       string     `gorm:"not null" json:"type"`
	ActorID    *string    `gorm:"type:uuid" json:"actor_id,omitempty"`
	MediaID    *string    `gorm:"type:uuid" json:"media_id,omitempty"`
	MediaTitle *string    `json:"media_title,omitempty"` // title snapshot at emission time
	ReadAt     *time.Time `json:"read_at,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Actor *User  `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
	Media *Media `gorm:"foreignKey:MediaID" json:"media,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
