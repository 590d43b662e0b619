package usererrors

import (
	"net/http"

	"leave-portal/internal/shared/apperror"
)

var (
	ErrFullNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"full name is required",
		http.StatusBadRequest,
	)
	ErrInvalidMobile = apperror.New(
		apperror.CodeInvalidInput,
		"mobile number must be 10 digits",
		http.StatusBadRequest,
	)
	ErrWeakPassword = apperror.New(
		apperror.CodeInvalidInput,
		"password must be at least 6 characters",
		http.StatusBadRequest,
	)
	ErrRoleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"role is required",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be employee or manager",
		http.StatusBadRequest,
	)
	ErrMissingUserID = apperror.New(
		apperror.CodeInvalidInput,
		"user id is required",
		http.StatusBadRequest,
	)
)
