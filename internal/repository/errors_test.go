package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gooodforeal/que-ans-api/internal/apperr"
)

func TestTranslateErrorClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			"unique violation",
			&pgconn.PgError{Code: pgerrcode.UniqueViolation},
			apperr.ErrIntegrity,
		},
		{
			"foreign key violation",
			&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			apperr.ErrIntegrity,
		},
		{
			"not null violation",
			&pgconn.PgError{Code: pgerrcode.NotNullViolation},
			apperr.ErrIntegrity,
		},
		{
			"connection failure",
			&pgconn.PgError{Code: pgerrcode.ConnectionFailure},
			apperr.ErrUnavailable,
		},
		{
			"admin shutdown",
			&pgconn.PgError{Code: pgerrcode.AdminShutdown},
			apperr.ErrUnavailable,
		},
		{
			"bad connection",
			driver.ErrBadConn,
			apperr.ErrUnavailable,
		},
		{
			"dial failure",
			&net.OpError{Op: "dial", Err: errors.New("connection refused")},
			apperr.ErrUnavailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translateError(tc.err)
			if !errors.Is(got, tc.want) {
				t.Errorf("translateError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestTranslateErrorWrapped(t *testing.T) {
	// Driver errors arrive wrapped by gorm; classification must see through.
	err := fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	if got := translateError(err); !errors.Is(got, apperr.ErrIntegrity) {
		t.Errorf("translateError(wrapped) = %v, want ErrIntegrity", got)
	}
}

func TestTranslateErrorPassthrough(t *testing.T) {
	if got := translateError(nil); got != nil {
		t.Errorf("translateError(nil) = %v, want nil", got)
	}

	// Unknown errors propagate unchanged and stay unclassified.
	plain := errors.New("something else entirely")
	if got := translateError(plain); got != plain {
		t.Errorf("translateError(plain) = %v, want the error unchanged", got)
	}

	// A pg error outside the known classes is neither BadInput nor
	// Unavailable.
	undefined := &pgconn.PgError{Code: pgerrcode.UndefinedTable}
	got := translateError(undefined)
	if errors.Is(got, apperr.ErrIntegrity) || errors.Is(got, apperr.ErrUnavailable) {
		t.Errorf("translateError(%v) classified unexpectedly as %v", undefined, got)
	}
}
