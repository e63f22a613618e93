package model

import "time"

// Release is a distributable product (album, single, EP) owned by a user
// and optionally attached to a label.
type Release struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	UPC            *string   `json:"upc,omitempty"`
	ReleaseDate    time.Time `json:"release_date"`
	Version        string    `json:"version"`
	ProductionYear int       `json:"production_year"`
	CatalogNumber  string    `json:"catalog_number"`
	LabelID        *string   `json:"label_id,omitempty"`
	UserID         string    `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateReleaseRequest is the payload for release creation.
type CreateReleaseRequest struct {
	Title          string  `json:"title" binding:"required,max=255"`
	UPC            *string `json:"upc" binding:"omitempty,max=32"`
	ReleaseDate    string  `json:"release_date" binding:"required,datetime=2006-01-02"`
	Version        string  `json:"version" binding:"omitempty,max=64"`
	ProductionYear int     `json:"production_year" binding:"required,min=1900,max=2100"`
	LabelID        *string `json:"label_id" binding:"omitempty,uuid"`
}
