package model

import "time"

// Artist statuses.
const (
	ArtistStatusActive   = "active"
	ArtistStatusInactive = "inactive"
)

// Artist is a performing act managed by the back office. UserID is the
// owning account; non-admin users only see their own active artists.
type Artist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	UserID    string    `json:"user_id"`
	LabelID   *string   `json:"label_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateArtistRequest is the payload for artist creation.
type CreateArtistRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Status  string  `json:"status" binding:"omitempty,oneof=active inactive"`
	LabelID *string `json:"label_id" binding:"omitempty,uuid"`
}

// UpdateArtistRequest is the payload for artist updates.
type UpdateArtistRequest struct {
	Name   string `json:"name" binding:"required,max=255"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}
