package dto

import "net/http"

// Error code constants
// Format: ERR_<CATEGORY>
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeValidation is used when a payload fails domain validation
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodePersistence is used when a storage operation fails
	ErrCodePersistence = "ERR_PERSISTENCE"
	// ErrCodeEnrichment is used when the remote product catalog cannot be
	// reached or returns garbage
	ErrCodeEnrichment = "ERR_ENRICHMENT_FAILED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:     http.StatusInternalServerError,
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeNotFound:    http.StatusNotFound,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodePersistence: http.StatusInternalServerError,
	ErrCodeEnrichment:  http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodeMapping maps domain error codes to wire-level codes
var domainErrorCodeMapping = map[string]string{
	"VALIDATION_FAILED":  ErrCodeValidation,
	"NOT_FOUND":          ErrCodeNotFound,
	"PERSISTENCE_FAILED": ErrCodePersistence,
	"ENRICHMENT_FAILED":  ErrCodeEnrichment,
}

// NormalizeErrorCode converts a domain error code to the wire-level format.
// If the code is already in the wire format or unknown, returns it as-is.
func NormalizeErrorCode(code string) string {
	if wireCode, ok := domainErrorCodeMapping[code]; ok {
		return wireCode
	}
	return code
}
