package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice-service/app/domain"
	mock_port "backoffice-service/app/mocks"
)

func TestInquiryHandler_SubmitProjectRequest(t *testing.T) {
	t.Run("valid submission stored with new status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inquiryUsecase := mock_port.NewMockInquiryUsecase(ctrl)
		inquiryUsecase.EXPECT().
			SubmitProjectRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, request *domain.ProjectRequest) error {
				assert.Equal(t, "Jane", request.Name)
				assert.Equal(t, "jane@example.com", request.Email)
				assert.Equal(t, domain.ProjectRequestStatusNew, request.Status)
				return nil
			})

		handler := NewInquiryHandler(inquiryUsecase, discardLogger(), false)

		c, rec := newJSONContext(http.MethodPost, "/v1/project-requests",
			`{"name":"Jane","email":"jane@example.com","message":"We need a site","budget":"10k"}`)

		require.NoError(t, handler.SubmitProjectRequest(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp CreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("missing email rejected without insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// No EXPECT: the store must not be reached.
		inquiryUsecase := mock_port.NewMockInquiryUsecase(ctrl)
		handler := NewInquiryHandler(inquiryUsecase, discardLogger(), false)

		c, rec := newJSONContext(http.MethodPost, "/v1/project-requests",
			`{"name":"Jane","message":"We need a site"}`)

		require.NoError(t, handler.SubmitProjectRequest(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Code)
		assert.Contains(t, body.Fields, "email")
	})

	t.Run("invalid email format rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler := NewInquiryHandler(mock_port.NewMockInquiryUsecase(ctrl), discardLogger(), false)

		c, rec := newJSONContext(http.MethodPost, "/v1/project-requests",
			`{"name":"Jane","email":"not-an-email","message":"hi"}`)

		require.NoError(t, handler.SubmitProjectRequest(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure yields 500 without details in production", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inquiryUsecase := mock_port.NewMockInquiryUsecase(ctrl)
		inquiryUsecase.EXPECT().
			SubmitProjectRequest(gomock.Any(), gomock.Any()).
			Return(assertableStoreError{})

		handler := NewInquiryHandler(inquiryUsecase, discardLogger(), false)

		c, rec := newJSONContext(http.MethodPost, "/v1/project-requests",
			`{"name":"Jane","email":"jane@example.com","message":"hi"}`)

		require.NoError(t, handler.SubmitProjectRequest(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decodeError(t, rec)
		assert.Equal(t, "STORE_ERROR", body.Code)
		assert.Empty(t, body.Details)
	})
}

// assertableStoreError stands in for an infrastructure failure whose text
// must not leak to callers outside development mode.
type assertableStoreError struct{}

func (assertableStoreError) Error() string { return "pq: connection refused at 10.0.0.5" }

func TestInquiryHandler_SubmitContact(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inquiryUsecase := mock_port.NewMockInquiryUsecase(ctrl)
		inquiryUsecase.EXPECT().
			SubmitContact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, submission *domain.ContactSubmission) error {
				assert.Equal(t, domain.ContactStatusNew, submission.Status)
				return nil
			})

		handler := NewInquiryHandler(inquiryUsecase, discardLogger(), false)

		c, rec := newJSONContext(http.MethodPost, "/v1/contact",
			`{"name":"Bob","email":"bob@example.com","subject":"Hi","message":"Hello there"}`)

		require.NoError(t, handler.SubmitContact(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing message rejected without insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler := NewInquiryHandler(mock_port.NewMockInquiryUsecase(ctrl), discardLogger(), false)

		c, rec := newJSONContext(http.MethodPost, "/v1/contact",
			`{"name":"Bob","email":"bob@example.com"}`)

		require.NoError(t, handler.SubmitContact(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Fields, "message")
	})
}
