package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dispatch errors
	CodeValidation        Code = "VALIDATION"
	CodeOperationNotFound Code = "OPERATION_NOT_FOUND"

	// Provider errors, mapped from GitHub API failures
	CodeProviderRateLimited  Code = "PROVIDER_RATE_LIMITED"
	CodeProviderNotFound     Code = "PROVIDER_NOT_FOUND"
	CodeProviderUnauthorized Code = "PROVIDER_UNAUTHORIZED"
	CodeProviderConflict     Code = "PROVIDER_CONFLICT"
	CodeProviderInvalidQuery Code = "PROVIDER_INVALID_QUERY"
	CodeProviderUnavailable  Code = "PROVIDER_UNAVAILABLE"

	// Startup errors
	CodeMissingCredential Code = "MISSING_CREDENTIAL"
	CodeStartupFailure    Code = "STARTUP_FAILURE"
)
