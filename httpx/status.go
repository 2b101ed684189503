package httpx

import "github.com/adeilh/go-rakh-status/status"

const (
	StatusOK                  = int(status.OK)                   // Successful request
	StatusCreated             = int(status.Created)              // Resource created
	StatusNoContent           = int(status.NoContent)            // Successful with no body
	StatusBadRequest          = int(status.BadRequest)           // Validation or malformed input
	StatusUnauthorized        = int(status.Unauthorized)         // Missing or invalid authentication
	StatusForbidden           = int(status.Forbidden)            // Authenticated but lacks permission
	StatusNotFound            = int(status.NotFound)             // Resource not found
	StatusConflict            = int(status.Conflict)             // Uniqueness or version conflict
	StatusUnprocessableEntity = int(status.UnprocessableContent) // Semantically invalid input
	StatusTooManyRequests     = int(status.TooManyRequests)      // Rate limiting or quotas
	StatusInternalError       = int(status.InternalServerError)  // Unexpected server error
	StatusServiceUnavailable  = int(status.ServiceUnavailable)   // Dependency failure or maintenance
)

// HeaderStatusClass carries the class name of the response status.
const HeaderStatusClass = "X-Status-Class"

// StatusText returns the catalogue name for code, or "" when it is not catalogued.
func StatusText(code int) string {
	s, ok := status.Lookup(code)
	if !ok {
		return ""
	}
	return s.Name()
}
