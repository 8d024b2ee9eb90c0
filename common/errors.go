package common

import (
	"net/http"

	"go-lists-api/logger"

	"github.com/sirupsen/logrus"
)

// FieldError describes one rejected field of a request payload.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// AppError is the only error shape written to clients. Err carries the
// internal cause; it is logged and never serialized.
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"msg"`
	Errors  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		entry := logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		})
		if e.Code >= http.StatusInternalServerError {
			entry.Error(e.Message)
		} else {
			entry.Warn(e.Message)
		}
	}

	WriteJSON(w, e.Code, e)
}
