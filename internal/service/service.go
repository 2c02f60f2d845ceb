package service

import (
	"context"
	"errors"
	"time"

	"github.com/vietanh2810/activities-api/internal/domain"
)

// Transactor runs fn in one store transaction. Store calls made with the
// context passed to fn take part in it.
type Transactor interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

type Metrics interface {
	RecordDelta(source string, delta int)
	RecordParticipants(added, failed int)
	RecordStoreError(op string)
}

type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

// isStoreFailure reports errors that are not caused by the caller's input.
func isStoreFailure(err error) bool {
	return err != nil &&
		!errors.Is(err, domain.ErrNotFound) &&
		!errors.Is(err, domain.ErrValidation) &&
		!errors.Is(err, domain.ErrConflict)
}
