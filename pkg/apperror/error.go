package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest covers validation failures: missing required fields, malformed
// dates, unknown status values, short passwords.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Unauthorized covers bad credentials and requests without an active session.
func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

// Storage covers persistence write failures. The attempted in-memory state is
// discarded by the caller; the previously persisted state stays authoritative.
func Storage(err error) *AppError {
	return New(http.StatusInternalServerError, "Error saving data. You may be out of storage space.", err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
