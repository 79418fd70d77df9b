package types

import (
	"fmt"
	"net/http"
)

// Error types reported in the response envelope
const (
	ErrorTypeAuth       = "auth.bearer"
	ErrorTypeValidation = "data.validation.input"
	ErrorTypeNotFound   = "data.notfound"
	ErrorTypeConflict   = "data.conflict"
	ErrorTypeReference  = "data.reference"
)

// CustomError is an error that already knows its HTTP status and envelope type
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// Unauthenticated builds the 401 returned for a missing or wrong bearer token
func Unauthenticated(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnauthorized,
		Message: message,
		Type:    ErrorTypeAuth,
	}
}
