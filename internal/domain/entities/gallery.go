package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// GalleryStatus represents a gallery's operating status
type GalleryStatus string

const (
	GalleryStatusActive GalleryStatus = "active"
	GalleryStatusPaused GalleryStatus = "paused"
)

// Gallery represents a tenant gallery owned by a staff user
type Gallery struct {
	ID          int64         `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description null.String   `json:"description,omitempty"`
	IsApproved  bool          `json:"is_approved"`
	ApprovedAt  null.Time     `json:"approved_at,omitempty"`
	Status      GalleryStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	User *User `json:"user,omitempty"`
}

// IsActive reports whether the gallery is currently operating
func (g *Gallery) IsActive() bool {
	return g.Status == GalleryStatusActive
}

// ContactEmail returns the owning user's email, or "" when unresolvable
func (g *Gallery) ContactEmail() string {
	if g.User == nil {
		return ""
	}
	return g.User.Email
}
