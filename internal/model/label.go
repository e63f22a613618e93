package model

import "time"

// Label is a record label owned by a user account.
type Label struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Country     *string   `json:"country,omitempty"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateLabelRequest is the payload for label creation.
type CreateLabelRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1024"`
	Email       *string `json:"email" binding:"omitempty,email,max=255"`
	Country     *string `json:"country" binding:"omitempty,iso3166_1_alpha2"`
}

// UpdateLabelRequest is the payload for label updates. All fields are
// optional; absent fields keep their current values.
type UpdateLabelRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1024"`
	Email       *string `json:"email" binding:"omitempty,email,max=255"`
	Country     *string `json:"country" binding:"omitempty,iso3166_1_alpha2"`
}
