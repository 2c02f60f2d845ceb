package dao

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/vietanh2810/activities-api/internal/domain"
)

var (
	ErrActivityNotFound         = domain.ErrActivityNotFound
	ErrActivityExtensionMissing = domain.ErrActivityExtensionMissing
	ErrParticipantNotFound      = domain.ErrParticipantNotFound
	ErrParticipantExists        = domain.ErrParticipantExists
	ErrMemberNotFound           = domain.ErrMemberNotFound
	ErrMemberEmailExists        = domain.ErrMemberEmailExists
	ErrInvalidActivityType      = domain.ErrInvalidActivityType
)

const (
	participantsUniqueIndex = "idx_participants_activity_member"
	participantsMemberFK    = "fk_participants_member"
	membersEmailConstraint  = "uni_members_email"
)

var ErrReferenceNotFound = domain.NewKindError(domain.ErrNotFound, "referenced record not found")

// mapError translates driver errors into domain error kinds. notFound is
// returned for gorm.ErrRecordNotFound when given.
func mapError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == participantsUniqueIndex:
			return ErrParticipantExists
		case pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == membersEmailConstraint:
			return ErrMemberEmailExists
		case pgErr.Code == pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		case pgErr.Code == pgerrcode.ForeignKeyViolation && pgErr.ConstraintName == participantsMemberFK:
			return ErrMemberNotFound
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrReferenceNotFound, pgErr.ConstraintName)
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsTransactionRollback(pgErr.Code),
			pgerrcode.IsInsufficientResources(pgErr.Code),
			pgerrcode.IsOperatorIntervention(pgErr.Code):
			return fmt.Errorf("%w: %w", domain.ErrTransientStore, err)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %w", domain.ErrTransientStore, err)
	}

	return err
}
