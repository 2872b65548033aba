package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice-service/app/domain"
)

func TestNewProjectRequest(t *testing.T) {
	request := domain.NewProjectRequest("Jane Smith", "jane@example.com", "Acme", "10k-25k", "3 months", "We need a new site")

	assert.NotEqual(t, "", request.ID.String())
	assert.Equal(t, domain.ProjectRequestStatusNew, request.Status)
	assert.Equal(t, "jane@example.com", request.Email)
	assert.False(t, request.CreatedAt.IsZero())
	assert.Equal(t, request.CreatedAt, request.UpdatedAt)
	assert.Empty(t, request.AdminNote)
	assert.Empty(t, request.LastUpdatedBy)
}

func TestProjectRequestUpdate_Validate(t *testing.T) {
	reviewed := domain.ProjectRequestStatusReviewed
	bogus := domain.ProjectRequestStatus("bogus")
	note := "called the client"

	tests := []struct {
		name    string
		update  domain.ProjectRequestUpdate
		wantErr error
	}{
		{
			name:    "empty update rejected",
			update:  domain.ProjectRequestUpdate{},
			wantErr: domain.ErrEmptyUpdate,
		},
		{
			name:    "unknown status rejected",
			update:  domain.ProjectRequestUpdate{Status: &bogus},
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name:   "status only",
			update: domain.ProjectRequestUpdate{Status: &reviewed},
		},
		{
			name:   "note only",
			update: domain.ProjectRequestUpdate{AdminNote: &note},
		},
		{
			name:   "status and note",
			update: domain.ProjectRequestUpdate{Status: &reviewed, AdminNote: &note},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProjectRequestUpdate_Fields(t *testing.T) {
	reviewed := domain.ProjectRequestStatusReviewed
	note := "note"

	tests := []struct {
		name   string
		update domain.ProjectRequestUpdate
		want   []string
	}{
		{
			name:   "status only",
			update: domain.ProjectRequestUpdate{Status: &reviewed},
			want:   []string{"status"},
		},
		{
			name:   "note only",
			update: domain.ProjectRequestUpdate{AdminNote: &note},
			want:   []string{"admin_note"},
		},
		{
			name:   "both",
			update: domain.ProjectRequestUpdate{Status: &reviewed, AdminNote: &note},
			want:   []string{"status", "admin_note"},
		},
		{
			name:   "none",
			update: domain.ProjectRequestUpdate{},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.update.Fields())
		})
	}
}

func TestProjectRequestStatus_IsValid(t *testing.T) {
	valid := []domain.ProjectRequestStatus{
		domain.ProjectRequestStatusNew,
		domain.ProjectRequestStatusReviewed,
		domain.ProjectRequestStatusInProgress,
		domain.ProjectRequestStatusClosed,
	}
	for _, status := range valid {
		assert.True(t, status.IsValid(), string(status))
	}

	assert.False(t, domain.ProjectRequestStatus("").IsValid())
	assert.False(t, domain.ProjectRequestStatus("done").IsValid())
}

func TestNewContactSubmission(t *testing.T) {
	submission := domain.NewContactSubmission("Bob", "bob@example.com", "Hello", "Just saying hi")

	assert.Equal(t, domain.ContactStatusNew, submission.Status)
	assert.Equal(t, "bob@example.com", submission.Email)
	assert.False(t, submission.CreatedAt.IsZero())
}

func TestContactUpdate_Validate(t *testing.T) {
	read := domain.ContactStatusRead
	bogus := domain.ContactStatus("bogus")

	tests := []struct {
		name    string
		update  domain.ContactUpdate
		wantErr error
	}{
		{
			name:    "empty update rejected",
			update:  domain.ContactUpdate{},
			wantErr: domain.ErrEmptyUpdate,
		},
		{
			name:    "unknown status rejected",
			update:  domain.ContactUpdate{Status: &bogus},
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name:   "valid status",
			update: domain.ContactUpdate{Status: &read},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, []string{"status"}, tt.update.Fields())
			}
		})
	}
}

func TestContactStatus_IsValid(t *testing.T) {
	assert.True(t, domain.ContactStatusNew.IsValid())
	assert.True(t, domain.ContactStatusRead.IsValid())
	assert.True(t, domain.ContactStatusArchived.IsValid())
	assert.False(t, domain.ContactStatus("deleted").IsValid())
}
