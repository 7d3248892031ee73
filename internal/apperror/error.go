package apperror

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	CodeRateLimited     = "RATE_LIMITED"
	CodeCreditsDepleted = "CREDITS_DEPLETED"
	CodeInternalError   = "INTERNAL_ERROR"
)

var (
	ErrNotFound        = NewAppError("not found")
	ErrConflict        = NewAppError("a message is already being processed")
	ErrDecodeBody      = NewAppError("failed to decode request body")
	ErrRateLimited     = NewAppErrorWithCode("Rate limit exceeded. Please try again in a moment.", CodeRateLimited)
	ErrCreditsDepleted = NewAppErrorWithCode("Service credits depleted. Please try again later.", CodeCreditsDepleted)
)

type AppError struct {
	Message string `json:"error"`
	Code    string `json:"code,omitempty"`
}

func NewAppError(message string) *AppError {
	return &AppError{
		Message: message,
	}
}

func NewAppErrorWithCode(message, code string) *AppError {
	return &AppError{
		Message: message,
		Code:    code,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Marshal() []byte {
	marshal, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return marshal
}

func NewValidationErr(errs validator.ValidationErrors) *AppError {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		case "latitude", "longitude":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid %s", err.Field(), err.ActualTag()))
		case "min":
			errMsgs = append(errMsgs, fmt.Sprintf("the minimum length of the %s field is %s", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return NewAppError(strings.Join(errMsgs, ", "))
}

// InternalError is the body returned for any error that is not an AppError.
// message is shown to the client, so callers pass a safe description.
func InternalError(message string) *AppError {
	if message == "" {
		message = "internal error"
	}

	return NewAppErrorWithCode(message, CodeInternalError)
}
