package dto

import (
	"time"

	"mediashelf/internal/httpapi/models"
)

// AddToCollectionRequest: payload to add a catalog entry to the collection
type AddToCollectionRequest struct {
	MediaID string `json:"media_id" binding:"required"`
	Status  string `json:"status" binding:"omitempty,oneof=OWNED WISHLIST IN_PROGRESS COMPLETED"`
}

// UpdateCollectionEntryRequest: partial update of one collection entry
type UpdateCollectionEntryRequest struct {
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=OWNED WISHLIST IN_PROGRESS COMPLETED"`
	Notes  *string `json:"notes,omitempty"`
}

// CollectionEntryResponse: one tracking record with its catalog entry
type CollectionEntryResponse struct {
	ID          int64         `json:"id"`
	MediaID     string        `json:"media_id"`
	Status      string        `json:"status"`
	Notes       *string       `json:"notes,omitempty"`
	AddedAt     time.Time     `json:"added_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	Media       *models.Media `json:"media,omitempty"`
}

// CollectionListResponse: list of collection entries
type CollectionListResponse struct {
	Items []CollectionEntryResponse `json:"items"`
	Total int                       `json:"total"`
}

// FromUserMedia maps a model row to its response shape.
func FromUserMedia(entry models.UserMedia) CollectionEntryResponse {
	return CollectionEntryResponse{
		ID:          entry.ID,
		MediaID:     entry.MediaID,
		Status:      entry.Status,
		Notes:       entry.Notes,
		AddedAt:     entry.AddedAt,
		CompletedAt: entry.CompletedAt,
		Media:       entry.Media,
	}
}
