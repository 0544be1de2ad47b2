package models

import "time"

type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	MediaID   string    `gorm:"type:uuid;not null;index" json:"media_id"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Body      *string   `json:"body,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Media *Media `gorm:"foreignKey:MediaID" json:"media,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
