package errors

// ErrorCode is a machine-readable rejection code carried in error
// response bodies. Codes make rejection kinds observable beyond the
// HTTP status: a 401 NO_CREDENTIAL is distinguishable from a 401
// INVALID_TOKEN, and a 403 FORBIDDEN from both.
type ErrorCode string

const (
	// Authentication and authorization
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeNoCredential       ErrorCode = "NO_CREDENTIAL"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"

	// Validation
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeMissingField     ErrorCode = "MISSING_FIELD"

	// Store
	ErrCodeStoreError ErrorCode = "STORE_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"

	// Audit. Never surfaced to callers; the mutation already committed
	// when an audit write fails. Logged as an operational warning.
	ErrCodeAuditWriteFailed ErrorCode = "AUDIT_WRITE_FAILED"
)
