package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Artwork represents a single listed artwork
type Artwork struct {
	ID               int64       `json:"id"`
	Title            string      `json:"title"`
	Slug             string      `json:"slug"`
	ArtistID         int64       `json:"artist_id"`
	GalleryID        int64       `json:"gallery_id"`
	Category         null.String `json:"category,omitempty"`
	Style            null.String `json:"style,omitempty"`
	Theme            null.String `json:"theme,omitempty"`
	PriceMin         null.Float64 `json:"price_min,omitempty"`
	PriceMax         null.Float64 `json:"price_max,omitempty"`
	Medium           null.String `json:"medium,omitempty"`
	Dimensions       null.String `json:"dimensions,omitempty"`
	Description      null.String `json:"description,omitempty"`
	FeaturedImage    null.String `json:"featured_image,omitempty"`
	AdditionalImages []string    `json:"additional_images,omitempty"`
	IsApproved       bool        `json:"is_approved"`
	ApprovedAt       null.Time   `json:"approved_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`

	Artist  *Artist  `json:"artist,omitempty"`
	Gallery *Gallery `json:"gallery,omitempty"`
}

// ArtworkFilter holds catalog listing filters
type ArtworkFilter struct {
	Category string  `form:"category"`
	Style    string  `form:"style"`
	Theme    string  `form:"theme"`
	ArtistID int64   `form:"artist_id"`
	PriceMin float64 `form:"price_min"`
	PriceMax float64 `form:"price_max"`
	Search   string  `form:"search"`
}

// ArtworkApprovalInput represents input for admin approval changes
type ArtworkApprovalInput struct {
	Approved *bool `json:"approved" binding:"required"`
}
