package salary

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	salaryerrors "salary-bench/internal/salary/errors"
	"salary-bench/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	sqlStateUndefinedFunction = "42883"
	sqlStateClassSyntax       = "42"
	sqlStateClassConnection   = "08"
	sqlStateAdminShutdown     = "57P01"
	sqlStateCannotConnectNow  = "57P03"
)

func classify(sentinel *apperror.AppError, err error) error {
	return fmt.Errorf("%w: %w", sentinel, err)
}

// mapRepositoryError sorts driver errors into connection failures, missing
// procedure and rejected queries. Anything else is returned untouched.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == sqlStateUndefinedFunction:
			return classify(salaryerrors.ErrProcedureNotFound, err)
		case strings.HasPrefix(pgErr.Code, sqlStateClassSyntax):
			return classify(salaryerrors.ErrMalformedQuery, err)
		case strings.HasPrefix(pgErr.Code, sqlStateClassConnection),
			pgErr.Code == sqlStateAdminShutdown,
			pgErr.Code == sqlStateCannotConnectNow:
			return classify(salaryerrors.ErrDatabaseUnavailable, err)
		}
		return err
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) ||
		pgconn.Timeout(err) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return classify(salaryerrors.ErrDatabaseUnavailable, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return classify(salaryerrors.ErrDatabaseUnavailable, err)
	}

	return err
}
