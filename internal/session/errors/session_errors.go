package sessionerrors

import (
	"net/http"

	"leave-portal/internal/shared/apperror"
)

var (
	ErrTokenRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrMissingClaims = apperror.New(
		apperror.CodeUnauthorized,
		"User ID not found in token",
		http.StatusUnauthorized,
	)
	ErrUnknownRole = apperror.New(
		apperror.CodeForbidden,
		"role is not recognized",
		http.StatusForbidden,
	)
)
