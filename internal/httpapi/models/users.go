package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID            string     `gorm:"primaryKey;type:uuid" json:"id"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	Name          string     `json:"name"`
	Password      string     `gorm:"column:password_hash;not null" json:"-"` // Not shown in JSON
	Role          string     `gorm:"default:'user';not null" json:"role"`    // only 2 roles: "user", "admin"
	Disabled      bool       `gorm:"default:false;not null" json:"disabled"`
	ProfilePublic bool       `gorm:"default:false;not null" json:"profile_public"`
	Image         string     `json:"image,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (user *User) IsAdmin() bool {
	return user.Role == RoleAdmin
}

// PublicUser is the reduced shape embedded in responses that reference
// another account (actors, friends, submitters).
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// Public strips credential and moderation fields.
func (user *User) Public() PublicUser {
	return PublicUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
	}
}
