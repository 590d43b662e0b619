package managererrors

import (
	"net/http"

	"leave-portal/internal/shared/apperror"
)

var (
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"action must be approve or reject",
		http.StatusBadRequest,
	)
	ErrMissingLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"leave id is required",
		http.StatusBadRequest,
	)
)
