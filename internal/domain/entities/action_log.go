package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionLogEntry is one row in the system-wide append-only audit trail
type ActionLogEntry struct {
	ID          int64                  `json:"id"`
	UserID      uuid.NullUUID          `json:"user_id,omitempty"`
	Action      string                 `json:"action"`
	SubjectType string                 `json:"subject_type,omitempty"`
	SubjectID   int64                  `json:"subject_id,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
	IPAddress   string                 `json:"ip_address,omitempty"`
	UserAgent   string                 `json:"user_agent,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// ActionLogFilter holds audit listing filters
type ActionLogFilter struct {
	Search   string     `form:"search"`
	Action   string     `form:"action"`
	UserID   string     `form:"user_id"`
	DateFrom *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" time_format:"2006-01-02"`
}

// Audit action tags written by the inquiry workflow
const (
	ActionInquiryCreated          = "inquiry_created"
	ActionInquiryVerified         = "inquiry_verified"
	ActionInquiryNotificationSent = "inquiry_notification_sent"
	ActionInquiryStatusUpdated    = "inquiry_status_updated"
	ActionInquiryDeleted          = "inquiry_deleted"
	ActionArtworkApprovalChanged  = "artwork_approval_changed"
)

// Subject type tags used by audit entries
const (
	SubjectInquiry = "inquiry"
	SubjectArtwork = "artwork"
)
