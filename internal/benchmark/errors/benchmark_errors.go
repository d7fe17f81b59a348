package benchmarkerrors

import (
	"net/http"

	"salary-bench/internal/shared/apperror"
)

var (
	ErrDepartmentNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Department name is required",
		http.StatusBadRequest,
	)

	ErrHistoryDisabled = apperror.New(
		apperror.CodeServiceUnavailable,
		"Benchmark history is not configured",
		http.StatusServiceUnavailable,
	)
)
