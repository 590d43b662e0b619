package gatewayerrors

import (
	"net/http"

	"leave-portal/internal/shared/apperror"
)

var (
	ErrUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"leave API is unreachable",
		http.StatusBadGateway,
	)
	ErrTimeout = apperror.New(
		apperror.CodeServiceUnavailable,
		"leave API did not respond in time",
		http.StatusGatewayTimeout,
	)
	ErrMalformedResponse = apperror.New(
		apperror.CodeGatewayError,
		"leave API returned an unreadable response",
		http.StatusBadGateway,
	)
)

// FromStatus converts a non-2xx gateway reply into an AppError. The server
// message, when present, is surfaced verbatim so the user can act on it.
func FromStatus(status int, message string) *apperror.AppError {
	if message == "" {
		message = http.StatusText(status)
	}

	code := apperror.CodeGatewayError
	switch status {
	case http.StatusNotFound:
		code = apperror.CodeNotFound
	case http.StatusUnauthorized:
		code = apperror.CodeUnauthorized
	case http.StatusForbidden:
		code = apperror.CodeForbidden
	case http.StatusConflict:
		code = apperror.CodeConflict
	}

	return apperror.New(code, message, status)
}
