package dto

// CreateMediaRequest: payload to create a catalog entry or submission
type CreateMediaRequest struct {
	Type        string  `json:"type" binding:"required,oneof=MOVIE MUSIC GAME"`
	Title       string  `json:"title" binding:"required,min=1"`
	Creator     string  `json:"creator" binding:"required,min=1"`
	ReleaseDate *string `json:"release_date,omitempty"` // RFC 3339 date
	Genre       *string `json:"genre,omitempty"`
	Description *string `json:"description,omitempty"`
	CoverURL    *string `json:"cover_url,omitempty"`
	Metadata    *string `json:"metadata,omitempty"`

	// Optionally add to the creator's collection on creation
	AddToCollection bool   `json:"add_to_collection"`
	InitialStatus   string `json:"initial_status" binding:"omitempty,oneof=OWNED WISHLIST IN_PROGRESS COMPLETED"`
}

// UpdateMediaRequest: partial catalog update. Status and rejection note are
// honored for admins only.
type UpdateMediaRequest struct {
	Type          *string `json:"type,omitempty" binding:"omitempty,oneof=MOVIE MUSIC GAME"`
	Title         *string `json:"title,omitempty" binding:"omitempty,min=1"`
	Creator       *string `json:"creator,omitempty" binding:"omitempty,min=1"`
	ReleaseDate   *string `json:"release_date,omitempty"`
	Genre         *string `json:"genre,omitempty"`
	Description   *string `json:"description,omitempty"`
	CoverURL      *string `json:"cover_url,omitempty"`
	Metadata      *string `json:"metadata,omitempty"`
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	RejectionNote *string `json:"rejection_note,omitempty"`
}

// ReviewSubmissionRequest: payload for the admin moderation decision
type ReviewSubmissionRequest struct {
	Action        string  `json:"action" binding:"required,oneof=approve reject"`
	RejectionNote *string `json:"rejection_note,omitempty"`
}
