package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vernala/vernala-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "upsert word"); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "get word")

	if got == nil {
		t.Fatal("MapError(ErrNoRows) = nil, want error")
	}
	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := "get word: not found"; got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan row: %w", pgx.ErrNoRows)
	got := MapError(wrapped, "get word")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(wrapped ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
}

func TestMapError_UniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	got := MapError(pgErr, "insert edge")

	if !errors.Is(got, domain.ErrAlreadyExists) {
		t.Errorf("MapError(23505) does not wrap domain.ErrAlreadyExists: %v", got)
	}
}

func TestMapError_ForeignKeyViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23503", Message: "foreign key violation"}
	got := MapError(pgErr, "insert edge")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(23503) does not wrap domain.ErrNotFound: %v", got)
	}
}

func TestMapError_ContextCanceled(t *testing.T) {
	t.Parallel()

	got := MapError(context.Canceled, "lookup")

	if !errors.Is(got, context.Canceled) {
		t.Errorf("MapError(context.Canceled) does not pass through: %v", got)
	}
	if errors.Is(got, domain.ErrStorage) {
		t.Errorf("context cancellation must not be classified as a storage failure: %v", got)
	}
}

func TestMapError_UnknownError(t *testing.T) {
	t.Parallel()

	got := MapError(errors.New("connection refused"), "lookup")

	if !errors.Is(got, domain.ErrStorage) {
		t.Errorf("MapError(unknown) does not wrap domain.ErrStorage: %v", got)
	}
}
