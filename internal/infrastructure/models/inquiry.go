package models

import (
	"time"
)

type Inquiry struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	FirstName         string `gorm:"type:varchar(255);not null"`
	LastName          string `gorm:"type:varchar(255);not null"`
	Email             string `gorm:"type:varchar(255);not null;index"`
	Company           *string `gorm:"type:varchar(255)"`
	Message           *string `gorm:"type:text"`
	ArtworkIDs        string  `gorm:"type:jsonb;not null;default:'[]'"`
	Status            string  `gorm:"type:varchar(50);not null;default:'pending_verification';index"`
	EmailVerifiedAt   *time.Time
	VerificationToken *string `gorm:"type:varchar(100);index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Logs []InquiryLog `gorm:"foreignKey:InquiryID;constraint:OnDelete:CASCADE"`
}

type InquiryLog struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	InquiryID int64  `gorm:"not null;index"`
	Action    string `gorm:"type:varchar(50);not null"`
	Details   string `gorm:"type:jsonb;default:'{}'"`
	CreatedAt time.Time
}
