package models

import "time"

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	MediaID   string    `gorm:"type:uuid;not null;index" json:"media_id"`
	Body      string    `gorm:"not null" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Media *Media `gorm:"foreignKey:MediaID" json:"media,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
