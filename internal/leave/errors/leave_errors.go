package leaveerrors

import (
	"net/http"

	"leave-portal/internal/shared/apperror"
)

var (
	ErrMissingLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave type is required",
		http.StatusBadRequest,
	)
	ErrMissingStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"start date is required",
		http.StatusBadRequest,
	)
	ErrMissingEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"end date is required",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start date must be before or equal end date",
		http.StatusBadRequest,
	)
	ErrUnknownLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown leave type",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrRequestLocked = apperror.New(
		apperror.CodeInvalidState,
		"approved leave requests cannot be changed",
		http.StatusConflict,
	)
	ErrActionInFlight = apperror.New(
		apperror.CodeConflict,
		"a save or delete for this request is already in progress",
		http.StatusConflict,
	)
	ErrAlreadyResolved = apperror.New(
		apperror.CodeInvalidState,
		"this form has already been submitted",
		http.StatusConflict,
	)
	ErrNothingToDelete = apperror.New(
		apperror.CodeInvalidState,
		"only an existing leave request can be deleted",
		http.StatusBadRequest,
	)
	ErrNoOpenForm = apperror.New(
		apperror.CodeInvalidState,
		"no leave form is open",
		http.StatusBadRequest,
	)
	ErrOverlappingSpan = apperror.New(
		apperror.CodeConflict,
		"leave request overlaps an existing request",
		http.StatusConflict,
	)
	ErrHolidayReadOnly = apperror.New(
		apperror.CodeInvalidState,
		"holidays cannot be edited",
		http.StatusBadRequest,
	)
)
