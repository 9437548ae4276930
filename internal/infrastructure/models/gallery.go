package models

import (
	"time"

	"github.com/google/uuid"
)

type Gallery struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description *string   `gorm:"type:text"`
	IsApproved  bool      `gorm:"not null;default:false"`
	ApprovedAt  *time.Time
	Status      string `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *User `gorm:"foreignKey:UserID"`
}

type Artist struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Slug      string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Photo     *string `gorm:"type:varchar(2048)"`
	Biography *string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
