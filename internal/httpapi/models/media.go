package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media types
const (
	MediaTypeMovie = "MOVIE"
	MediaTypeMusic = "MUSIC"
	MediaTypeGame  = "GAME"
)

// Moderation states. PENDING entries are submissions awaiting review;
// only APPROVED entries appear in the public catalog.
const (
	MediaStatusPending  = "PENDING"
	MediaStatusApproved = "APPROVED"
	MediaStatusRejected = "REJECTED"
)

type Media struct {
	ID            string     `gorm:"primaryKey;type:uuid" json:"id"`
	Type          string     `gorm:"not null;index" json:"type"` // MOVIE, MUSIC, GAME
	Title         string     `gorm:"not null;index" json:"title"`
	Creator       string     `gorm:"not null" json:"creator"`
	Genre         *string    `json:"genre,omitempty"`
	Description   *string    `json:"description,omitempty"`
	CoverURL      *string    `json:"cover_url,omitempty"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	Metadata      *string    `json:"metadata,omitempty"`
	Status        string     `gorm:"default:'PENDING';not null;index" json:"status"`
	RejectionNote *string    `json:"rejection_note,omitempty"`
	CreatedByID   *string    `gorm:"type:uuid;index" json:"created_by_id,omitempty"` // nil for system-seeded rows
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Associations
	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

// BeforeCreate hook to set UUID before creating a Media entry
func (media *Media) BeforeCreate(tx *gorm.DB) (err error) {
	if media.ID == "" {
		media.ID = uuid.New().String()
	}
	return
}

func (Media) TableName() string {
	return "media"
}

// ValidMediaType reports whether t is one of the known catalog types.
func ValidMediaType(t string) bool {
	switch t {
	case MediaTypeMovie, MediaTypeMusic, MediaTypeGame:
		return true
	}
	return false
}
