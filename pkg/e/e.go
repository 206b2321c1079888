package e

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrDeadline           = errors.New("deadline exceeded")
	ErrCanceled           = errors.New("context canceled")
	ErrUniqueViolation    = errors.New("unique violation")
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// Submission pipeline taxonomy.
	ErrValidation         = errors.New("validation failed")
	ErrOutsideServiceArea = errors.New("outside service area")
	ErrThrottled          = errors.New("submission throttled")
	ErrNoStationAvailable = errors.New("no station available")
	ErrTransient          = errors.New("transient failure")
	ErrQueueEmpty         = errors.New("notification queue is empty")
)

// ThrottledError carries the exact remaining wait so callers can surface it.
type ThrottledError struct {
	Wait time.Duration
}

func (t *ThrottledError) Error() string {
	return fmt.Sprintf("submission throttled: wait %s", t.Wait)
}

func (t *ThrottledError) Unwrap() error { return ErrThrottled }

// Transient marks an external fetch/persist failure at the named step.
// The step name is what users see, so keep it human ("fetch stations").
func Transient(step string, err error) error {
	return fmt.Errorf("%s: %v: %w", step, err, ErrTransient)
}

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
