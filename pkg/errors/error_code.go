package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter ErrorCode = 100
	ErrCodeLengthMismatch   ErrorCode = 101
	ErrCodeInvalidPeriod    ErrorCode = 102
	ErrCodeInvalidTarget    ErrorCode = 103
	ErrCodeInvalidRequest   ErrorCode = 104

	// Output errors (200-299)
	ErrCodeStatsMarshalFailed ErrorCode = 200
	ErrCodeStatsWriteFailed   ErrorCode = 201

	// Version errors (300-399)
	ErrCodeInvalidVersion  ErrorCode = 300
	ErrCodeVersionMismatch ErrorCode = 301
)
