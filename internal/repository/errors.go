package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/gooodforeal/que-ans-api/internal/apperr"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateError maps driver-level failures onto the application error
// taxonomy: constraint violations become apperr.ErrIntegrity, connectivity
// failures become apperr.ErrUnavailable. Anything else passes through
// unchanged and is treated as a server fault upstream.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
			return fmt.Errorf("%w: %s", apperr.ErrIntegrity, pgErr.Code)
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsOperatorIntervention(pgErr.Code):
			return fmt.Errorf("%w: %s", apperr.ErrUnavailable, pgErr.Code)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %v", apperr.ErrUnavailable, err)
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", apperr.ErrUnavailable, err)
	}

	return err
}
