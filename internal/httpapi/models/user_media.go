package models

import "time"

// Collection statuses
const (
	CollectionStatusOwned      = "OWNED"
	CollectionStatusWishlist   = "WISHLIST"
	CollectionStatusInProgress = "IN_PROGRESS"
	CollectionStatusCompleted  = "COMPLETED"
)

// UserMedia is one user's tracking record against one catalog entry.
// The (user_id, media_id) pair is unique: an item can be in a collection
// at most once.
type UserMedia struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string     `gorm:"type:uuid;not null;uniqueIndex:idx_user_media" json:"user_id"`
	MediaID     string     `gorm:"type:uuid;not null;uniqueIndex:idx_user_media" json:"media_id"`
	Status      string     `gorm:"default:'WISHLIST';not null" json:"status"`
	Notes       *string    `json:"notes,omitempty"`
	AddedAt     time.Time  `gorm:"autoCreateTime" json:"added_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Media *Media `gorm:"foreignKey:MediaID" json:"media,omitempty"`
}

func (UserMedia) TableName() string {
	return "user_media"
}

// ValidCollectionStatus reports whether s is a known collection status.
func ValidCollectionStatus(s string) bool {
	switch s {
	case CollectionStatusOwned, CollectionStatusWishlist, CollectionStatusInProgress, CollectionStatusCompleted:
		return true
	}
	return false
}
