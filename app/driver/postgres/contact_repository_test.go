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

func createTestContactRepository(t *testing.T) (*ContactRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewContactRepository(mockDB, testLogger).(*ContactRepository)
	return repo, mockDB
}

func contactColumns() []string {
	return []string{
		"id", "name", "email", "subject", "message", "status",
		"created_at", "updated_at", "last_updated_by",
	}
}

func addContactRow(rows *pgxmock.Rows, submission *domain.ContactSubmission) *pgxmock.Rows {
	var lastUpdatedBy *string
	if submission.LastUpdatedBy != "" {
		lastUpdatedBy = &submission.LastUpdatedBy
	}
	return rows.AddRow(
		submission.ID, submission.Name, submission.Email, submission.Subject,
		submission.Message, string(submission.Status), submission.CreatedAt,
		submission.UpdatedAt, lastUpdatedBy,
	)
}

func TestContactRepository_Insert(t *testing.T) {
	repo, mockDB := createTestContactRepository(t)
	defer mockDB.Close()

	submission := domain.NewContactSubmission("Bob", "bob@example.com", "Hi", "Hello there")

	mockDB.ExpectExec("INSERT INTO contact_submissions").
		WithArgs(
			submission.ID, submission.Name, submission.Email, submission.Subject,
			submission.Message, string(submission.Status),
			submission.CreatedAt, submission.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Insert(context.Background(), submission))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestContactRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mockDB := createTestContactRepository(t)
		defer mockDB.Close()

		submission := domain.NewContactSubmission("Bob", "bob@example.com", "Hi", "Hello there")
		rows := addContactRow(pgxmock.NewRows(contactColumns()), submission)

		mockDB.ExpectQuery("SELECT").
			WithArgs(submission.ID).
			WillReturnRows(rows)

		got, err := repo.GetByID(context.Background(), submission.ID)

		require.NoError(t, err)
		assert.Equal(t, submission.ID, got.ID)
		assert.Equal(t, domain.ContactStatusNew, got.Status)
		assert.Empty(t, got.LastUpdatedBy)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mockDB := createTestContactRepository(t)
		defer mockDB.Close()

		submission := domain.NewContactSubmission("Bob", "bob@example.com", "Hi", "Hello there")

		mockDB.ExpectQuery("SELECT").
			WithArgs(submission.ID).
			WillReturnRows(pgxmock.NewRows(contactColumns()))

		got, err := repo.GetByID(context.Background(), submission.ID)

		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
		assert.Nil(t, got)
	})
}

func TestContactRepository_List(t *testing.T) {
	t.Run("filtered by status", func(t *testing.T) {
		repo, mockDB := createTestContactRepository(t)
		defer mockDB.Close()

		status := domain.ContactStatusRead
		submission := domain.NewContactSubmission("Bob", "bob@example.com", "Hi", "Hello there")
		submission.Status = status

		mockDB.ExpectQuery("SELECT").
			WithArgs(string(status), 50, 0).
			WillReturnRows(addContactRow(pgxmock.NewRows(contactColumns()), submission))

		got, err := repo.List(context.Background(), port.ContactFilter{Status: &status, Limit: 50})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, status, got[0].Status)
	})

	t.Run("unfiltered", func(t *testing.T) {
		repo, mockDB := createTestContactRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT").
			WithArgs(50, 0).
			WillReturnRows(pgxmock.NewRows(contactColumns()))

		got, err := repo.List(context.Background(), port.ContactFilter{Limit: 50})

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestContactRepository_Update(t *testing.T) {
	submission := domain.NewContactSubmission("Bob", "bob@example.com", "Hi", "Hello there")
	read := domain.ContactStatusRead
	now := time.Now()

	t.Run("matches one row", func(t *testing.T) {
		repo, mockDB := createTestContactRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE contact_submissions").
			WithArgs(submission.ID, string(read), now, "admin-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		matched, err := repo.Update(context.Background(), submission.ID,
			&domain.ContactUpdate{Status: &read}, "admin-1", now)

		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
	})

	t.Run("unknown id matches zero rows", func(t *testing.T) {
		repo, mockDB := createTestContactRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE contact_submissions").
			WithArgs(submission.ID, string(read), now, "admin-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		matched, err := repo.Update(context.Background(), submission.ID,
			&domain.ContactUpdate{Status: &read}, "admin-1", now)

		require.NoError(t, err)
		assert.Equal(t, int64(0), matched)
	})

	t.Run("database error", func(t *testing.T) {
		repo, mockDB := createTestContactRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE contact_submissions").
			WillReturnError(errors.New("connection refused"))

		_, err := repo.Update(context.Background(), submission.ID,
			&domain.ContactUpdate{Status: &read}, "admin-1", now)

		assert.Error(t, err)
	})
}

func TestContactRepository_Count(t *testing.T) {
	t.Run("unfiltered", func(t *testing.T) {
		repo, mockDB := createTestContactRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT COUNT").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

		count, err := repo.Count(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("filtered by status", func(t *testing.T) {
		repo, mockDB := createTestContactRepository(t)
		defer mockDB.Close()

		status := domain.ContactStatusNew
		mockDB.ExpectQuery("SELECT COUNT").
			WithArgs(string(status)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

		count, err := repo.Count(context.Background(), &status)

		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
