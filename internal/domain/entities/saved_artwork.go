package entities

import "time"

// SavedArtwork is a visitor's clipboard entry, keyed by an anonymous
// session identifier
type SavedArtwork struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	ArtworkID int64     `json:"artwork_id"`
	CreatedAt time.Time `json:"created_at"`

	Artwork *Artwork `json:"artwork,omitempty"`
}

// SaveArtworkInput represents input for saving an artwork to the clipboard
type SaveArtworkInput struct {
	ArtworkID int64 `json:"artwork_id" binding:"required"`
}
