package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
	"backoffice-service/app/utils/logger"
)

func createTestProjectRequestRepository(t *testing.T) (*ProjectRequestRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewProjectRequestRepository(mockDB, testLogger).(*ProjectRequestRepository)
	return repo, mockDB
}

func projectRequestColumns() []string {
	return []string{
		"id", "name", "email", "company", "budget", "timeline", "message",
		"admin_note", "status", "created_at", "updated_at", "last_updated_by",
	}
}

func addProjectRequestRow(rows *pgxmock.Rows, request *domain.ProjectRequest) *pgxmock.Rows {
	var adminNote, lastUpdatedBy *string
	if request.AdminNote != "" {
		adminNote = &request.AdminNote
	}
	if request.LastUpdatedBy != "" {
		lastUpdatedBy = &request.LastUpdatedBy
	}
	return rows.AddRow(
		request.ID, request.Name, request.Email, request.Company,
		request.Budget, request.Timeline, request.Message,
		adminNote, string(request.Status), request.CreatedAt,
		request.UpdatedAt, lastUpdatedBy,
	)
}

func TestProjectRequestRepository_Insert(t *testing.T) {
	repo, mockDB := createTestProjectRequestRepository(t)
	defer mockDB.Close()

	request := domain.NewProjectRequest("Jane", "jane@example.com", "Acme", "10k", "Q4", "hello")

	mockDB.ExpectExec("INSERT INTO project_requests").
		WithArgs(
			request.ID, request.Name, request.Email, request.Company,
			request.Budget, request.Timeline, request.Message,
			string(request.Status), request.CreatedAt, request.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Insert(context.Background(), request))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestProjectRequestRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mockDB := createTestProjectRequestRepository(t)
		defer mockDB.Close()

		request := domain.NewProjectRequest("Jane", "jane@example.com", "", "", "", "hello")
		rows := addProjectRequestRow(pgxmock.NewRows(projectRequestColumns()), request)

		mockDB.ExpectQuery("SELECT").
			WithArgs(request.ID).
			WillReturnRows(rows)

		got, err := repo.GetByID(context.Background(), request.ID)

		require.NoError(t, err)
		assert.Equal(t, request.ID, got.ID)
		assert.Equal(t, domain.ProjectRequestStatusNew, got.Status)
		assert.Empty(t, got.AdminNote)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mockDB := createTestProjectRequestRepository(t)
		defer mockDB.Close()

		request := domain.NewProjectRequest("Jane", "jane@example.com", "", "", "", "hello")

		mockDB.ExpectQuery("SELECT").
			WithArgs(request.ID).
			WillReturnRows(pgxmock.NewRows(projectRequestColumns()))

		got, err := repo.GetByID(context.Background(), request.ID)

		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
		assert.Nil(t, got)
	})
}

func TestProjectRequestRepository_List(t *testing.T) {
	t.Run("unfiltered", func(t *testing.T) {
		repo, mockDB := createTestProjectRequestRepository(t)
		defer mockDB.Close()

		first := domain.NewProjectRequest("Jane", "jane@example.com", "", "", "", "one")
		second := domain.NewProjectRequest("Bob", "bob@example.com", "", "", "", "two")
		rows := addProjectRequestRow(addProjectRequestRow(pgxmock.NewRows(projectRequestColumns()), first), second)

		mockDB.ExpectQuery("SELECT").
			WithArgs(50, 0).
			WillReturnRows(rows)

		got, err := repo.List(context.Background(), port.ProjectRequestFilter{Limit: 50})

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("filtered by status", func(t *testing.T) {
		repo, mockDB := createTestProjectRequestRepository(t)
		defer mockDB.Close()

		status := domain.ProjectRequestStatusNew

		mockDB.ExpectQuery("SELECT").
			WithArgs(string(status), 50, 0).
			WillReturnRows(pgxmock.NewRows(projectRequestColumns()))

		got, err := repo.List(context.Background(), port.ProjectRequestFilter{Status: &status, Limit: 50})

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestProjectRequestRepository_Update(t *testing.T) {
	request := domain.NewProjectRequest("Jane", "jane@example.com", "", "", "", "hello")
	reviewed := domain.ProjectRequestStatusReviewed
	now := time.Now()

	t.Run("status update matches one row", func(t *testing.T) {
		repo, mockDB := createTestProjectRequestRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE project_requests SET").
			WithArgs(string(reviewed), now, "admin-1", request.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		matched, err := repo.Update(context.Background(), request.ID,
			&domain.ProjectRequestUpdate{Status: &reviewed}, "admin-1", now)

		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
	})

	t.Run("status and note update", func(t *testing.T) {
		repo, mockDB := createTestProjectRequestRepository(t)
		defer mockDB.Close()

		note := "called the client"
		mockDB.ExpectExec("UPDATE project_requests SET").
			WithArgs(string(reviewed), note, now, "admin-1", request.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		matched, err := repo.Update(context.Background(), request.ID,
			&domain.ProjectRequestUpdate{Status: &reviewed, AdminNote: &note}, "admin-1", now)

		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
	})

	t.Run("unknown id matches zero rows", func(t *testing.T) {
		repo, mockDB := createTestProjectRequestRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE project_requests SET").
			WithArgs(string(reviewed), now, "admin-1", request.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		matched, err := repo.Update(context.Background(), request.ID,
			&domain.ProjectRequestUpdate{Status: &reviewed}, "admin-1", now)

		require.NoError(t, err)
		assert.Equal(t, int64(0), matched)
	})

	t.Run("database error", func(t *testing.T) {
		repo, mockDB := createTestProjectRequestRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE project_requests SET").
			WithArgs(string(reviewed), now, "admin-1", request.ID).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.Update(context.Background(), request.ID,
			&domain.ProjectRequestUpdate{Status: &reviewed}, "admin-1", now)

		assert.Error(t, err)
	})
}

func TestProjectRequestRepository_Delete(t *testing.T) {
	repo, mockDB := createTestProjectRequestRepository(t)
	defer mockDB.Close()

	request := domain.NewProjectRequest("Jane", "jane@example.com", "", "", "", "hello")

	mockDB.ExpectExec("DELETE FROM project_requests").
		WithArgs(request.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	matched, err := repo.Delete(context.Background(), request.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)
}
