package domain

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Participant struct {
	ID            uint      `json:"id"`
	ActivityID    uint      `json:"activity_id"`
	MemberID      uint      `json:"member_id"`
	IsTemp        bool      `json:"is_temp"`
	IsInterested  bool      `json:"is_interested"`
	Rate          *int      `json:"rate,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	AwardedPoints int       `json:"awarded_points"`
	RegisteredAt  time.Time `json:"registered_at"`
}

type ParticipationState string

const (
	StateInterested ParticipationState = "interested"
	StateTentative  ParticipationState = "tentative"
	StateConfirmed  ParticipationState = "confirmed"
)

func (p Participant) State() ParticipationState {
	switch {
	case p.IsInterested:
		return StateInterested
	case p.IsTemp:
		return StateTentative
	default:
		return StateConfirmed
	}
}

// PointBearing reports whether a registration in this state earns the
// activity's points.
func (p Participant) PointBearing() bool {
	return !p.IsInterested && !p.IsTemp
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

func (s AttendanceStatus) Valid() bool {
	return s == AttendancePresent || s == AttendanceAbsent
}

type AddParticipantsInput struct {
	MemberIDs    []uint
	Rate         *int
	Notes        string
	IsTemp       bool
	IsInterested bool
}

func (in AddParticipantsInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.MemberIDs, validation.Required),
		validation.Field(&in.Rate, validation.By(validateRate)),
		validation.Field(&in.Notes, validation.Length(0, 2000)),
	)
	return NewValidationError(err)
}

var errRateRange = errors.New("must be between 1 and 5")

func validateRate(value interface{}) error {
	rate, ok := value.(*int)
	if !ok || rate == nil {
		return nil
	}
	if *rate < 1 || *rate > 5 {
		return errRateRange
	}
	return nil
}

// AddParticipantsResult summarises a batch registration. Failures holds one
// entry per rejected id in the request, so a member listed twice can fail twice.
type AddParticipantsResult struct {
	SuccessCount int             `json:"success_count"`
	FailCount    int             `json:"fail_count"`
	Added        []Participant   `json:"added,omitempty"`
	Failures     []MemberFailure `json:"-"`
}

type MemberFailure struct {
	MemberID uint
	Err      error
}

// Fail records a rejected id.
func (r *AddParticipantsResult) Fail(memberID uint, err error) {
	r.FailCount++
	r.Failures = append(r.Failures, MemberFailure{MemberID: memberID, Err: err})
}

// Err reports ErrPartialFailure when the batch was only partly applied, and
// the error of the first failure when nothing was applied.
func (r AddParticipantsResult) Err() error {
	if r.FailCount == 0 {
		return nil
	}
	if r.SuccessCount > 0 {
		return ErrPartialFailure
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

type ParticipantPatch struct {
	Rate         *int
	Notes        *string
	IsInterested *bool
	IsTemp       *bool
}

func (p ParticipantPatch) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Rate, validation.By(validateRate)),
		validation.Field(&p.Notes, validation.Length(0, 2000)),
	)
	return NewValidationError(err)
}

func (p ParticipantPatch) Empty() bool {
	return p.Rate == nil && p.Notes == nil && p.IsInterested == nil && p.IsTemp == nil
}
