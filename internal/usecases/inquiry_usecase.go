package usecases

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"artmarket.backend/internal/domain/entities"
	domainerrors "artmarket.backend/internal/domain/errors"
	"artmarket.backend/internal/domain/repositories"
	"artmarket.backend/internal/infrastructure/mail"
	"artmarket.backend/internal/metrics"
	"artmarket.backend/pkg/crypto"
	"artmarket.backend/pkg/logger"
	"artmarket.backend/pkg/urlsigner"
)

// VerifyOutcome classifies what a verification attempt did
type VerifyOutcome string

const (
	VerifyOutcomeInvalidLink     VerifyOutcome = "invalid_link"
	VerifyOutcomeTokenMismatch   VerifyOutcome = "token_mismatch"
	VerifyOutcomeAlreadyVerified VerifyOutcome = "already_verified"
	VerifyOutcomeVerified        VerifyOutcome = "verified"
)

// VerifyResult is what the verification view renders
type VerifyResult struct {
	Outcome  VerifyOutcome
	Inquiry  *entities.Inquiry
	Artworks []*entities.Artwork
}

// CreateInquiryResult is the creation response payload
type CreateInquiryResult struct {
	InquiryID            int64                  `json:"inquiry_id"`
	Status               entities.InquiryStatus `json:"status"`
	RequiresVerification bool                   `json:"requires_verification"`
}

// InquiryUsecase implements the inquiry lifecycle: creation with the
// eligibility gate, email verification, and the per-gallery notification
// fan-out.
type InquiryUsecase struct {
	inquiries repositories.InquiryRepository
	artworks  repositories.ArtworkRepository
	audit     *AuditTrail
	mailer    mail.Mailer
	signer    *urlsigner.Signer
	metrics   *metrics.Metrics
	baseURL   string
	linkTTL   time.Duration
}

// NewInquiryUsecase creates a new inquiry usecase
func NewInquiryUsecase(
	inquiries repositories.InquiryRepository,
	artworks repositories.ArtworkRepository,
	audit *AuditTrail,
	mailer mail.Mailer,
	signer *urlsigner.Signer,
	m *metrics.Metrics,
	baseURL string,
	linkTTL time.Duration,
) *InquiryUsecase {
	return &InquiryUsecase{
		inquiries: inquiries,
		artworks:  artworks,
		audit:     audit,
		mailer:    mailer,
		signer:    signer,
		metrics:   m,
		baseURL:   baseURL,
		linkTTL:   linkTTL,
	}
}

// Create validates eligibility and persists a pending inquiry. The gate is
// all-or-nothing: every artwork id must resolve to a currently-approved
// artwork or the whole request is rejected.
func (u *InquiryUsecase) Create(ctx context.Context, input *entities.CreateInquiryInput, meta RequestMeta) (*CreateInquiryResult, error) {
	approved, err := u.artworks.CountApprovedByIDs(ctx, input.ArtworkIDs)
	if err != nil {
		return nil, err
	}
	if approved != int64(len(input.ArtworkIDs)) {
		return nil, domainerrors.UnprocessableEntity("Some of the requested artworks are not available")
	}

	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		return nil, err
	}

	inquiry := &entities.Inquiry{
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Email:             input.Email,
		ArtworkIDs:        input.ArtworkIDs,
		Status:            entities.InquiryStatusPendingVerification,
		VerificationToken: null.StringFrom(token),
	}
	if input.Company != "" {
		inquiry.Company = null.StringFrom(input.Company)
	}
	if input.Message != "" {
		inquiry.Message = null.StringFrom(input.Message)
	}

	if err := u.inquiries.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	verificationURL, err := u.verificationURL(inquiry.ID, token)
	if err != nil {
		return nil, err
	}

	u.appendLog(ctx, inquiry.ID, entities.InquiryLogCreated, map[string]interface{}{
		"ip_address":        meta.IPAddress,
		"user_agent":        meta.UserAgent,
		"verification_sent": true,
	})

	u.audit.Record(ctx, entities.ActionInquiryCreated, entities.SubjectInquiry, inquiry.ID, map[string]interface{}{
		"email":         inquiry.Email,
		"first_name":    inquiry.FirstName,
		"last_name":     inquiry.LastName,
		"artwork_count": len(input.ArtworkIDs),
	}, meta)

	// A failed confirmation send must not fail the request; the inquiry
	// stays valid and the visitor is told to check their inbox.
	if err := u.mailer.SendInquiryConfirmation(ctx, inquiry, verificationURL); err != nil {
		u.metrics.MailFailures.Inc()
		logger.Error(ctx, "failed to send inquiry confirmation email",
			zap.Int64("inquiry_id", inquiry.ID),
			zap.String("email", inquiry.Email),
			zap.Error(err),
		)
	} else {
		logger.Info(ctx, "inquiry confirmation email sent",
			zap.Int64("inquiry_id", inquiry.ID),
			zap.String("email", inquiry.Email),
		)
	}

	u.metrics.InquiriesCreated.Inc()

	return &CreateInquiryResult{
		InquiryID:            inquiry.ID,
		Status:               inquiry.Status,
		RequiresVerification: true,
	}, nil
}

// Verify runs the verification state machine for a clicked link. All
// failure modes are reported through the result outcome so the handler can
// render a friendly view; rejected attempts never mutate the inquiry.
func (u *InquiryUsecase) Verify(ctx context.Context, inquiryID int64, requestURL *url.URL, meta RequestMeta) (*VerifyResult, error) {
	if !u.signer.Verify(requestURL) {
		return &VerifyResult{Outcome: VerifyOutcomeInvalidLink}, nil
	}

	inquiry, err := u.inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &VerifyResult{Outcome: VerifyOutcomeInvalidLink}, nil
		}
		return nil, err
	}

	if inquiry.IsVerified() {
		artworks, _ := u.artworks.GetByIDs(ctx, inquiry.ArtworkIDs)
		return &VerifyResult{
			Outcome:  VerifyOutcomeAlreadyVerified,
			Inquiry:  inquiry,
			Artworks: artworks,
		}, nil
	}

	token := requestURL.Query().Get("token")
	if token == "" || !inquiry.VerificationToken.Valid ||
		subtle.ConstantTimeCompare([]byte(inquiry.VerificationToken.String), []byte(token)) != 1 {
		return &VerifyResult{Outcome: VerifyOutcomeTokenMismatch, Inquiry: inquiry}, nil
	}

	transitioned, err := u.inquiries.MarkVerified(ctx, inquiry.ID)
	if err != nil {
		return nil, err
	}

	inquiry, err = u.inquiries.GetByID(ctx, inquiry.ID)
	if err != nil {
		return nil, err
	}

	if !transitioned {
		// Lost a concurrent race; the winner already sent the
		// notifications.
		artworks, _ := u.artworks.GetByIDs(ctx, inquiry.ArtworkIDs)
		return &VerifyResult{
			Outcome:  VerifyOutcomeAlreadyVerified,
			Inquiry:  inquiry,
			Artworks: artworks,
		}, nil
	}

	u.appendLog(ctx, inquiry.ID, entities.InquiryLogEmailVerified, map[string]interface{}{
		"verified_at": time.Now().Format(time.RFC3339),
		"ip_address":  meta.IPAddress,
		"user_agent":  meta.UserAgent,
	})

	u.audit.Record(ctx, entities.ActionInquiryVerified, entities.SubjectInquiry, inquiry.ID, map[string]interface{}{
		"email":      inquiry.Email,
		"first_name": inquiry.FirstName,
		"last_name":  inquiry.LastName,
	}, meta)

	u.metrics.InquiriesVerified.Inc()

	artworks := u.notifyGalleries(ctx, inquiry, meta)

	return &VerifyResult{
		Outcome:  VerifyOutcomeVerified,
		Inquiry:  inquiry,
		Artworks: artworks,
	}, nil
}

// Status returns the public read-only view of an inquiry's progress
func (u *InquiryUsecase) Status(ctx context.Context, inquiryID int64) (*entities.InquiryStatusInfo, error) {
	inquiry, err := u.inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	return &entities.InquiryStatusInfo{
		ID:                    inquiry.ID,
		Status:                inquiry.Status,
		IsVerified:            inquiry.IsVerified(),
		IsPendingVerification: inquiry.IsPendingVerification(),
		VerifiedAt:            inquiry.EmailVerifiedAt,
	}, nil
}

// notifyGalleries resolves the inquiry's artworks, groups them by owning
// gallery and emails each gallery its own subset. Galleries without
// resolvable artworks or without a contact email are skipped silently.
// Returns the full resolved artwork list for the success view.
func (u *InquiryUsecase) notifyGalleries(ctx context.Context, inquiry *entities.Inquiry, meta RequestMeta) []*entities.Artwork {
	artworks, err := u.artworks.GetByIDs(ctx, inquiry.ArtworkIDs)
	if err != nil {
		logger.Error(ctx, "failed to resolve inquiry artworks for notification",
			zap.Int64("inquiry_id", inquiry.ID),
			zap.Error(err),
		)
		return nil
	}

	// Group preserving first-seen gallery order so a run's fan-out order
	// is deterministic.
	var order []int64
	groups := make(map[int64][]*entities.Artwork)
	for _, a := range artworks {
		if _, seen := groups[a.GalleryID]; !seen {
			order = append(order, a.GalleryID)
		}
		groups[a.GalleryID] = append(groups[a.GalleryID], a)
	}

	for _, galleryID := range order {
		subset := groups[galleryID]
		gallery := subset[0].Gallery

		if gallery == nil || gallery.ContactEmail() == "" {
			continue
		}

		if err := u.mailer.SendInquiryNotification(ctx, inquiry, gallery, subset); err != nil {
			u.metrics.MailFailures.Inc()
			logger.Error(ctx, "failed to send gallery notification",
				zap.Int64("inquiry_id", inquiry.ID),
				zap.Int64("gallery_id", galleryID),
				zap.Error(err),
			)
			continue
		}

		u.metrics.NotificationsSent.Inc()

		u.appendLog(ctx, inquiry.ID, entities.InquiryLogNotificationSent, map[string]interface{}{
			"sent_to":       gallery.ContactEmail(),
			"gallery_id":    galleryID,
			"gallery_name":  gallery.Name,
			"artwork_count": len(subset),
			"sent_at":       time.Now().Format(time.RFC3339),
		})

		u.audit.RecordAs(ctx, uuid.NullUUID{UUID: gallery.UserID, Valid: true},
			entities.ActionInquiryNotificationSent, entities.SubjectInquiry, inquiry.ID,
			map[string]interface{}{
				"gallery_id":    galleryID,
				"gallery_name":  gallery.Name,
				"gallery_email": gallery.ContactEmail(),
				"artwork_count": len(subset),
			}, meta)
	}

	return artworks
}

// appendLog writes to the inquiry's history; like the audit trail, a
// failed write is non-fatal
func (u *InquiryUsecase) appendLog(ctx context.Context, inquiryID int64, action entities.InquiryLogAction, details map[string]interface{}) {
	err := u.inquiries.AppendLog(ctx, &entities.InquiryLog{
		InquiryID: inquiryID,
		Action:    action,
		Details:   details,
	})
	if err != nil {
		logger.Warn(ctx, "inquiry log write failed",
			zap.Int64("inquiry_id", inquiryID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
	}
}

func (u *InquiryUsecase) verificationURL(inquiryID int64, token string) (string, error) {
	raw := fmt.Sprintf("%s/inquiry/verify/%d?token=%s", u.baseURL, inquiryID, url.QueryEscape(token))
	return u.signer.Sign(raw, u.linkTTL)
}
