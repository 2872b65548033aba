package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectRequestStatus represents the review state of a project request
type ProjectRequestStatus string

const (
	ProjectRequestStatusNew        ProjectRequestStatus = "new"
	ProjectRequestStatusReviewed   ProjectRequestStatus = "reviewed"
	ProjectRequestStatusInProgress ProjectRequestStatus = "in_progress"
	ProjectRequestStatusClosed     ProjectRequestStatus = "closed"
)

// IsValid returns true if the status belongs to the known set
func (s ProjectRequestStatus) IsValid() bool {
	switch s {
	case ProjectRequestStatusNew, ProjectRequestStatusReviewed,
		ProjectRequestStatusInProgress, ProjectRequestStatusClosed:
		return true
	}
	return false
}

// ProjectRequest represents a start-project form submission.
// ID and CreatedAt are immutable after creation; everything else is
// mutated only through the admin authorization gate.
type ProjectRequest struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Company       string               `json:"company,omitempty"`
	Budget        string               `json:"budget,omitempty"`
	Timeline      string               `json:"timeline,omitempty"`
	Message       string               `json:"message"`
	AdminNote     string               `json:"admin_note,omitempty"`
	Status        ProjectRequestStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	LastUpdatedBy string               `json:"last_updated_by,omitempty"`
}

// NewProjectRequest creates a project request in the initial "new" status
func NewProjectRequest(name, email, company, budget, timeline, message string) *ProjectRequest {
	now := time.Now()
	return &ProjectRequest{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Company:   company,
		Budget:    budget,
		Timeline:  timeline,
		Message:   message,
		Status:    ProjectRequestStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ProjectRequestUpdate carries the partial fields of an admin PATCH.
// Nil fields are left untouched by the update.
type ProjectRequestUpdate struct {
	Status    *ProjectRequestStatus `json:"status,omitempty"`
	AdminNote *string               `json:"admin_note,omitempty"`
}

// Validate checks the requested changes against the domain rules
func (u *ProjectRequestUpdate) Validate() error {
	if u.Status == nil && u.AdminNote == nil {
		return ErrEmptyUpdate
	}
	if u.Status != nil && !u.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// Fields returns the names of the fields the caller actually requested
// to change. This is the diff recorded in the audit log, not the full
// payload.
func (u *ProjectRequestUpdate) Fields() []string {
	fields := make([]string, 0, 2)
	if u.Status != nil {
		fields = append(fields, "status")
	}
	if u.AdminNote != nil {
		fields = append(fields, "admin_note")
	}
	return fields
}

// ContactStatus represents the review state of a contact submission
type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusArchived ContactStatus = "archived"
)

// IsValid returns true if the status belongs to the known set
func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusArchived:
		return true
	}
	return false
}

// ContactSubmission represents a contact-page form submission
type ContactSubmission struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Subject       string        `json:"subject,omitempty"`
	Message       string        `json:"message"`
	Status        ContactStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	LastUpdatedBy string        `json:"last_updated_by,omitempty"`
}

// NewContactSubmission creates a contact submission in the initial
// "new" status
func NewContactSubmission(name, email, subject, message string) *ContactSubmission {
	now := time.Now()
	return &ContactSubmission{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		Status:    ContactStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ContactUpdate carries the partial fields of an admin PATCH
type ContactUpdate struct {
	Status *ContactStatus `json:"status,omitempty"`
}

// Validate checks the requested changes against the domain rules
func (u *ContactUpdate) Validate() error {
	if u.Status == nil {
		return ErrEmptyUpdate
	}
	if !u.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// Fields returns the names of the fields the caller requested to change
func (u *ContactUpdate) Fields() []string {
	if u.Status != nil {
		return []string{"status"}
	}
	return nil
}
