package models

import (
	"time"
)

type Artwork struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Title            string `gorm:"type:varchar(255);not null"`
	Slug             string `gorm:"type:varchar(255);uniqueIndex;not null"`
	ArtistID         int64  `gorm:"not null;index"`
	GalleryID        int64  `gorm:"not null;index"`
	Category         *string  `gorm:"type:varchar(100);index"`
	Style            *string  `gorm:"type:varchar(100);index"`
	Theme            *string  `gorm:"type:varchar(100);index"`
	PriceMin         *float64 `gorm:"type:decimal(10,2)"`
	PriceMax         *float64 `gorm:"type:decimal(10,2)"`
	Medium           *string  `gorm:"type:varchar(255)"`
	Dimensions       *string  `gorm:"type:varchar(255)"`
	Description      *string  `gorm:"type:text"`
	FeaturedImage    *string  `gorm:"type:varchar(2048)"`
	AdditionalImages string   `gorm:"type:jsonb;default:'[]'"`
	IsApproved       bool     `gorm:"not null;default:false;index"`
	ApprovedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Artist  *Artist  `gorm:"foreignKey:ArtistID"`
	Gallery *Gallery `gorm:"foreignKey:GalleryID"`
}
