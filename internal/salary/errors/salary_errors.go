package salaryerrors

import (
	"net/http"

	"salary-bench/internal/shared/apperror"
)

var (
	ErrDatabaseUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Database is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrProcedureNotFound = apperror.New(
		apperror.CodeNotFound,
		"Latest salary procedure does not exist on the server",
		http.StatusInternalServerError,
	)

	ErrMalformedQuery = apperror.New(
		apperror.CodeInternalError,
		"Latest salary query was rejected by the database",
		http.StatusInternalServerError,
	)

	ErrMalformedResult = apperror.New(
		apperror.CodeInternalError,
		"Latest salary procedure returned an unexpected row shape",
		http.StatusInternalServerError,
	)
)
