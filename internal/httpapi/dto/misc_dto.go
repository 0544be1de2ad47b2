package dto

// UpdateProfileRequest: partial update of the current user's profile
type UpdateProfileRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,max=200"`
	ProfilePublic *bool   `json:"profile_public,omitempty"`
}

// AdminUpdateUserRequest: admin account management payload
type AdminUpdateUserRequest struct {
	Disabled *bool `json:"disabled,omitempty"`
}

// CreateReviewRequest: payload to post a review
type CreateReviewRequest struct {
	Rating int     `json:"rating" binding:"required,min=1,max=5"`
	Body   *string `json:"body,omitempty" binding:"omitempty,max=2000"`
}

// UpdateReviewRequest: partial review edit
type UpdateReviewRequest struct {
	Rating *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Body   *string `json:"body,omitempty" binding:"omitempty,max=2000"`
}

// CommentRequest: payload to post or edit a comment
type CommentRequest struct {
	Body string `json:"body" binding:"required,min=1,max=2000"`
}

// SuggestRequest: payload for the AI suggestion endpoint
type SuggestRequest struct {
	Description string `json:"description" binding:"required"`
}

// OkResponse: generic success body
type OkResponse struct {
	Ok bool `json:"ok"`
}
