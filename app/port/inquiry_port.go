package port

//go:generate mockgen -source=inquiry_port.go -destination=../mocks/mock_inquiry_port.go

import (
	"context"
	"time"

	"github.com/google/uuid"

	"backoffice-service/app/domain"
)

// ProjectRequestFilter narrows project request listings
type ProjectRequestFilter struct {
	Status *domain.ProjectRequestStatus
	Limit  int
	Offset int
}

// ContactFilter narrows contact submission listings
type ContactFilter struct {
	Status *domain.ContactStatus
	Limit  int
	Offset int
}

// InquiryUsecase defines the lead-generation and back-office business
// logic interface
type InquiryUsecase interface {
	// Public form submissions
	SubmitProjectRequest(ctx context.Context, request *domain.ProjectRequest) error
	SubmitContact(ctx context.Context, submission *domain.ContactSubmission) error

	// Admin operations on project requests
	ListProjectRequests(ctx context.Context, filter ProjectRequestFilter) ([]*domain.ProjectRequest, error)
	GetProjectRequest(ctx context.Context, id uuid.UUID) (*domain.ProjectRequest, error)
	UpdateProjectRequest(ctx context.Context, id uuid.UUID, update *domain.ProjectRequestUpdate, actor *domain.Identity, source string) (*domain.ProjectRequest, error)
	DeleteProjectRequest(ctx context.Context, id uuid.UUID, actor *domain.Identity, source string) error

	// Admin operations on contact submissions
	ListContacts(ctx context.Context, filter ContactFilter) ([]*domain.ContactSubmission, error)
	GetContact(ctx context.Context, id uuid.UUID) (*domain.ContactSubmission, error)
	UpdateContact(ctx context.Context, id uuid.UUID, update *domain.ContactUpdate, actor *domain.Identity, source string) (*domain.ContactSubmission, error)
}

// ProjectRequestRepository defines project request data access
type ProjectRequestRepository interface {
	Insert(ctx context.Context, request *domain.ProjectRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ProjectRequest, error)
	List(ctx context.Context, filter ProjectRequestFilter) ([]*domain.ProjectRequest, error)
	// Update applies the partial update to exactly one row and returns
	// the matched row count (0 when the id is unknown)
	Update(ctx context.Context, id uuid.UUID, update *domain.ProjectRequestUpdate, updatedBy string, updatedAt time.Time) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	Count(ctx context.Context, status *domain.ProjectRequestStatus) (int64, error)
}

// ContactRepository defines contact submission data access
type ContactRepository interface {
	Insert(ctx context.Context, submission *domain.ContactSubmission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactSubmission, error)
	List(ctx context.Context, filter ContactFilter) ([]*domain.ContactSubmission, error)
	Update(ctx context.Context, id uuid.UUID, update *domain.ContactUpdate, updatedBy string, updatedAt time.Time) (int64, error)
	Count(ctx context.Context, status *domain.ContactStatus) (int64, error)
}
