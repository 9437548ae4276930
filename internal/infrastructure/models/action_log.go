package models

import (
	"time"

	"github.com/google/uuid"
)

type ActionLog struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	UserID      *uuid.UUID `gorm:"type:uuid;index:idx_action_logs_user_created"`
	Action      string     `gorm:"type:varchar(255);not null;index:idx_action_logs_action_created"`
	SubjectType *string    `gorm:"type:varchar(255);index:idx_action_logs_subject"`
	SubjectID   *int64     `gorm:"index:idx_action_logs_subject"`
	Details     string     `gorm:"type:jsonb;default:'{}'"`
	IPAddress   *string    `gorm:"type:varchar(45)"`
	UserAgent   *string    `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"index:idx_action_logs_user_created;index:idx_action_logs_action_created"`

	User *User `gorm:"foreignKey:UserID"`
}

type SavedArtwork struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	SessionID string `gorm:"type:varchar(255);not null;uniqueIndex:idx_saved_session_artwork"`
	ArtworkID int64  `gorm:"not null;uniqueIndex:idx_saved_session_artwork"`
	CreatedAt time.Time

	Artwork *Artwork `gorm:"foreignKey:ArtworkID"`
}
