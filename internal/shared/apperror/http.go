package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the JSON body written for a failed request.
type HTTPError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTP resolves any error to a client-safe HTTPError. Errors that do not
// carry an AppError anywhere in their chain become INTERNAL_ERROR.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}
