package httputil

import (
	"net/http"
)

// HasStatusCode is an error body that knows which HTTP status it should be sent with.
type HasStatusCode interface {
	StatusCode() int
}

// DefaultErrorJson is the body of every error response.
type DefaultErrorJson struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// StatusCode returns the error's underlying error code.
func (e *DefaultErrorJson) StatusCode() int {
	return e.Code
}

// Error returns the underlying error message.
func (e *DefaultErrorJson) Error() string {
	return e.Message
}

// HandleError writes a DefaultErrorJson with the given message and status code.
func HandleError(w http.ResponseWriter, message string, code int) {
	errJson := &DefaultErrorJson{
		Message: message,
		Code:    code,
	}
	WriteError(w, errJson)
}
