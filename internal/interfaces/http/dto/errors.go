package dto

import (
	"fmt"
	"net/http"

	"github.com/dashboard/backend/internal/domain/shared"
)

// Error codes returned in the "code" field of error bodies.
const (
	ErrCodeNotFound         = shared.CodeNotFound
	ErrCodeAlreadyExists    = shared.CodeAlreadyExists
	ErrCodeInvalidInput     = shared.CodeInvalidInput
	ErrCodeValidationFailed = shared.CodeValidationFailed
	ErrCodeRequestTooLarge  = "REQUEST_TOO_LARGE"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// Fixed error messages.
const (
	MsgInvalidParameters = "Some parameters are invalid. Please check your entries."
	MsgRequestTooLarge   = "Request body exceeds maximum allowed size"
	MsgInternalError     = "Internal Server Error"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. A duplicate
// resource is a 400, matching the API the dashboard front end was built against.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeAlreadyExists:    http.StatusBadRequest,
	ErrCodeInvalidInput:     http.StatusUnprocessableEntity,
	ErrCodeValidationFailed: http.StatusUnprocessableEntity,
	ErrCodeRequestTooLarge:  http.StatusRequestEntityTooLarge,
	ErrCodeInternal:         http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LimitMessage is the detail returned when the limit parameter is rejected.
func LimitMessage(maxLimit int) string {
	return fmt.Sprintf("The value of the 'limit' parameter must be less than or equal to %d. Please check your input.", maxLimit)
}
