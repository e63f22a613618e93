package model

import "time"

// Lyrics holds uploaded lyric text for a track.
type Lyrics struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Language  *string   `json:"language,omitempty"`
	TrackID   *string   `json:"track_id,omitempty"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateLyricsRequest is the payload for lyrics upload.
type CreateLyricsRequest struct {
	Title    string  `json:"title" binding:"required,max=255"`
	Content  string  `json:"content" binding:"required"`
	Language *string `json:"language" binding:"omitempty,max=16"`
	TrackID  *string `json:"track_id" binding:"omitempty,uuid"`
}
