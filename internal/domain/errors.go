package domain

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Error kinds. Every error returned by the store layers matches exactly one of
// them through errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrValidation     = errors.New("validation failed")
	ErrPartialFailure = errors.New("partial failure")
	ErrTransientStore = errors.New("transient store error")
)

// KindError attaches an error kind to a specific, human readable error.
type KindError struct {
	Kind error
	Msg  string
}

func (e *KindError) Error() string { return e.Msg }

func (e *KindError) Is(target error) bool { return target == e.Kind }

func NewKindError(kind error, msg string) error {
	return &KindError{Kind: kind, Msg: msg}
}

var (
	ErrActivityNotFound         = NewKindError(ErrNotFound, "activity not found")
	ErrActivityExtensionMissing = NewKindError(ErrNotFound, "activity extension record not found")
	ErrParticipantNotFound      = NewKindError(ErrNotFound, "participant not found")
	ErrMemberNotFound           = NewKindError(ErrNotFound, "member not found")
	ErrParticipantExists        = NewKindError(ErrConflict, "member already participates in this activity")
	ErrMemberEmailExists        = NewKindError(ErrConflict, "member already exists")
	ErrInvalidActivityType      = NewKindError(ErrValidation, "invalid activity type")
	ErrEndBeforeStart           = NewKindError(ErrValidation, "end must be later than start")
	ErrInsufficientData         = errors.New("insufficient data")
)

// ValidationError carries field level messages produced by ozzo-validation.
type ValidationError struct {
	Fields validation.Errors
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Fields.Error()
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError normalises ozzo output into a ValidationError. Errors that
// are already kind-tagged as validation are passed through.
func NewValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fields validation.Errors
	if errors.As(err, &fields) {
		return &ValidationError{Fields: fields}
	}
	if errors.Is(err, ErrValidation) {
		return err
	}
	return &ValidationError{Err: fmt.Errorf("%w", err)}
}
