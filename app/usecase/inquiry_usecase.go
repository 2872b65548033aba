package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
)

// Listing bounds applied when the caller supplies none
const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// InquiryUsecase implements the lead-generation and back-office
// business logic
type InquiryUsecase struct {
	projects port.ProjectRequestRepository
	contacts port.ContactRepository
	audit    port.AuditRecorder
	logger   *slog.Logger
}

// NewInquiryUsecase creates a new InquiryUsecase instance
func NewInquiryUsecase(
	projects port.ProjectRequestRepository,
	contacts port.ContactRepository,
	audit port.AuditRecorder,
	logger *slog.Logger,
) *InquiryUsecase {
	return &InquiryUsecase{
		projects: projects,
		contacts: contacts,
		audit:    audit,
		logger:   logger.With("component", "inquiry_usecase"),
	}
}

// SubmitProjectRequest stores a public start-project form submission
func (uc *InquiryUsecase) SubmitProjectRequest(ctx context.Context, request *domain.ProjectRequest) error {
	return uc.projects.Insert(ctx, request)
}

// SubmitContact stores a public contact form submission
func (uc *InquiryUsecase) SubmitContact(ctx context.Context, submission *domain.ContactSubmission) error {
	return uc.contacts.Insert(ctx, submission)
}

// ListProjectRequests returns project requests for the admin listing
func (uc *InquiryUsecase) ListProjectRequests(ctx context.Context, filter port.ProjectRequestFilter) ([]*domain.ProjectRequest, error) {
	filter.Limit = clampLimit(filter.Limit)
	return uc.projects.List(ctx, filter)
}

// GetProjectRequest returns a single project request
func (uc *InquiryUsecase) GetProjectRequest(ctx context.Context, id uuid.UUID) (*domain.ProjectRequest, error) {
	return uc.projects.GetByID(ctx, id)
}

// UpdateProjectRequest applies a partial admin update. Exactly one audit
// entry is appended per successful update, carrying the target id and
// the fields the caller actually requested to change.
func (uc *InquiryUsecase) UpdateProjectRequest(ctx context.Context, id uuid.UUID, update *domain.ProjectRequestUpdate, actor *domain.Identity, source string) (*domain.ProjectRequest, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	matched, err := uc.projects.Update(ctx, id, update, actor.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrRecordNotFound
	}

	uc.audit.Record(ctx, domain.ActionUpdateProjectRequest, actor.ID, source, map[string]any{
		"request_id":     id.String(),
		"updated_fields": update.Fields(),
	})

	return uc.projects.GetByID(ctx, id)
}

// DeleteProjectRequest removes a project request
func (uc *InquiryUsecase) DeleteProjectRequest(ctx context.Context, id uuid.UUID, actor *domain.Identity, source string) error {
	matched, err := uc.projects.Delete(ctx, id)
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrRecordNotFound
	}

	uc.audit.Record(ctx, domain.ActionDeleteProjectRequest, actor.ID, source, map[string]any{
		"request_id": id.String(),
	})

	return nil
}

// ListContacts returns contact submissions for the admin listing
func (uc *InquiryUsecase) ListContacts(ctx context.Context, filter port.ContactFilter) ([]*domain.ContactSubmission, error) {
	filter.Limit = clampLimit(filter.Limit)
	return uc.contacts.List(ctx, filter)
}

// GetContact returns a single contact submission
func (uc *InquiryUsecase) GetContact(ctx context.Context, id uuid.UUID) (*domain.ContactSubmission, error) {
	return uc.contacts.GetByID(ctx, id)
}

// UpdateContact applies a partial admin update to a contact submission
func (uc *InquiryUsecase) UpdateContact(ctx context.Context, id uuid.UUID, update *domain.ContactUpdate, actor *domain.Identity, source string) (*domain.ContactSubmission, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	matched, err := uc.contacts.Update(ctx, id, update, actor.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrRecordNotFound
	}

	uc.audit.Record(ctx, domain.ActionUpdateContactSubmission, actor.ID, source, map[string]any{
		"submission_id":  id.String(),
		"updated_fields": update.Fields(),
	})

	return uc.contacts.GetByID(ctx, id)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
