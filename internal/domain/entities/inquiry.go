package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// InquiryStatus represents the lifecycle status of an inquiry
type InquiryStatus string

const (
	InquiryStatusPendingVerification InquiryStatus = "pending_verification"
	InquiryStatusVerified            InquiryStatus = "verified"
	InquiryStatusRead                InquiryStatus = "read"
	InquiryStatusResponded           InquiryStatus = "responded"
	InquiryStatusContacted           InquiryStatus = "contacted"
	InquiryStatusCompleted           InquiryStatus = "completed"
	InquiryStatusCancelled           InquiryStatus = "cancelled"
)

// Valid reports whether s is one of the known inquiry statuses
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusPendingVerification, InquiryStatusVerified,
		InquiryStatusRead, InquiryStatusResponded, InquiryStatusContacted,
		InquiryStatusCompleted, InquiryStatusCancelled:
		return true
	}
	return false
}

// staffTransitions lists the allowed status moves for gallery staff.
// Email verification is handled separately by the verification flow.
var staffTransitions = map[InquiryStatus][]InquiryStatus{
	InquiryStatusVerified:  {InquiryStatusRead, InquiryStatusResponded, InquiryStatusContacted, InquiryStatusCompleted, InquiryStatusCancelled},
	InquiryStatusRead:      {InquiryStatusResponded, InquiryStatusContacted, InquiryStatusCompleted, InquiryStatusCancelled},
	InquiryStatusResponded: {InquiryStatusContacted, InquiryStatusCompleted, InquiryStatusCancelled},
	InquiryStatusContacted: {InquiryStatusCompleted, InquiryStatusCancelled},
}

// CanTransitionTo reports whether a staff member may move an inquiry
// from s to next
func (s InquiryStatus) CanTransitionTo(next InquiryStatus) bool {
	for _, allowed := range staffTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Inquiry represents a visitor's purchase inquiry about one or more artworks.
// ArtworkIDs is a denormalized snapshot: it remembers what was asked about
// even if an artwork is later removed or unapproved.
type Inquiry struct {
	ID                int64         `json:"id"`
	FirstName         string        `json:"first_name"`
	LastName          string        `json:"last_name"`
	Email             string        `json:"email"`
	Company           null.String   `json:"company,omitempty"`
	Message           null.String   `json:"message,omitempty"`
	ArtworkIDs        []int64       `json:"artwork_ids"`
	Status            InquiryStatus `json:"status"`
	EmailVerifiedAt   null.Time     `json:"email_verified_at,omitempty"`
	VerificationToken null.String   `json:"-"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// FullName returns the submitter's display name
func (i *Inquiry) FullName() string {
	return i.FirstName + " " + i.LastName
}

// IsVerified reports whether the inquiry passed email verification
func (i *Inquiry) IsVerified() bool {
	return i.Status == InquiryStatusVerified && i.EmailVerifiedAt.Valid
}

// IsPendingVerification reports whether the inquiry still awaits verification
func (i *Inquiry) IsPendingVerification() bool {
	return i.Status == InquiryStatusPendingVerification
}

// InquiryLogAction tags an entry in an inquiry's append-only history
type InquiryLogAction string

const (
	InquiryLogCreated          InquiryLogAction = "created"
	InquiryLogEmailVerified    InquiryLogAction = "email_verified"
	InquiryLogNotificationSent InquiryLogAction = "notification_sent"
)

// InquiryLog is an append-only record of a significant inquiry transition
type InquiryLog struct {
	ID        int64                  `json:"id"`
	InquiryID int64                  `json:"inquiry_id"`
	Action    InquiryLogAction       `json:"action"`
	Details   map[string]interface{} `json:"details"`
	CreatedAt time.Time              `json:"created_at"`
}

// CreateInquiryInput represents input for submitting an inquiry
type CreateInquiryInput struct {
	FirstName  string  `json:"first_name" binding:"required,max=255"`
	LastName   string  `json:"last_name" binding:"required,max=255"`
	Email      string  `json:"email" binding:"required,email,max=255"`
	Company    string  `json:"company" binding:"omitempty,max=255"`
	Message    string  `json:"message" binding:"omitempty,max=2000"`
	ArtworkIDs []int64 `json:"artwork_ids" binding:"required,min=1"`
}

// UpdateInquiryStatusInput represents input for staff status changes
type UpdateInquiryStatusInput struct {
	Status InquiryStatus `json:"status" binding:"required"`
}

// InquiryStatusInfo is the public read-only view of an inquiry's progress
type InquiryStatusInfo struct {
	ID                    int64         `json:"id"`
	Status                InquiryStatus `json:"status"`
	IsVerified            bool          `json:"is_verified"`
	IsPendingVerification bool          `json:"is_pending_verification"`
	VerifiedAt            null.Time     `json:"verified_at"`
}
