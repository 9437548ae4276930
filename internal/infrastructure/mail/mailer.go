// Package mail delivers the inquiry workflow's outbound email: the
// visitor's confirmation message carrying the signed verification link,
// and the per-gallery notification sent after verification.
package mail

import (
	"context"

	"go.uber.org/zap"

	"artmarket.backend/internal/domain/entities"
	"artmarket.backend/pkg/logger"
)

// Mailer sends inquiry workflow email. Implementations must not retain
// the passed entities.
type Mailer interface {
	// SendInquiryConfirmation asks the submitter to follow the
	// verification link.
	SendInquiryConfirmation(ctx context.Context, inquiry *entities.Inquiry, verificationURL string) error
	// SendInquiryNotification informs one gallery about a verified
	// inquiry. artworks must contain only that gallery's works.
	SendInquiryNotification(ctx context.Context, inquiry *entities.Inquiry, gallery *entities.Gallery, artworks []*entities.Artwork) error
}

// LogMailer logs instead of sending. Used in development when SMTP is
// disabled.
type LogMailer struct{}

// NewLogMailer creates a mailer that only logs
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendInquiryConfirmation(ctx context.Context, inquiry *entities.Inquiry, verificationURL string) error {
	logger.Info(ctx, "mail disabled, skipping inquiry confirmation",
		zap.Int64("inquiry_id", inquiry.ID),
		zap.String("to", inquiry.Email),
		zap.String("verification_url", verificationURL),
	)
	return nil
}

func (m *LogMailer) SendInquiryNotification(ctx context.Context, inquiry *entities.Inquiry, gallery *entities.Gallery, artworks []*entities.Artwork) error {
	logger.Info(ctx, "mail disabled, skipping inquiry notification",
		zap.Int64("inquiry_id", inquiry.ID),
		zap.Int64("gallery_id", gallery.ID),
		zap.String("to", gallery.ContactEmail()),
		zap.Int("artwork_count", len(artworks)),
	)
	return nil
}
