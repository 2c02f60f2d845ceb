package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"

	"github.com/vietanh2810/activities-api/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", domain.ErrEndBeforeStart, http.StatusBadRequest},
		{"not found", fmt.Errorf("s.repo.FindByID -> %w", domain.ErrActivityNotFound), http.StatusNotFound},
		{"conflict", domain.ErrParticipantExists, http.StatusConflict},
		{"partial", domain.ErrPartialFailure, http.StatusMultiStatus},
		{"transient", fmt.Errorf("%w: connection refused", domain.ErrTransientStore), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, http.StatusText(tt.code), got.Status)
		})
	}
}

func TestErrBadRequest_Fields(t *testing.T) {
	err := domain.NewValidationError(validation.Errors{"name": errors.New("cannot be blank")})

	got := ErrBadRequest(err)

	assert.Equal(t, http.StatusBadRequest, got.Code)
	assert.Equal(t, map[string]string{"name": "cannot be blank"}, got.Fields)
}

func TestNewAddParticipantsResponse(t *testing.T) {
	t.Run("all added", func(t *testing.T) {
		code, body := NewAddParticipantsResponse(domain.AddParticipantsResult{
			SuccessCount: 1,
			Added:        []domain.Participant{{ID: 1, MemberID: 5}},
		})
		assert.Equal(t, http.StatusCreated, code)
		assert.Empty(t, body.Failures)
	})

	t.Run("partial", func(t *testing.T) {
		code, body := NewAddParticipantsResponse(domain.AddParticipantsResult{
			SuccessCount: 1,
			FailCount:    2,
			Added:        []domain.Participant{{ID: 1, MemberID: 5}},
			Failures: []domain.MemberFailure{
				{MemberID: 9, Err: domain.ErrMemberNotFound},
				{MemberID: 7, Err: domain.ErrParticipantExists},
			},
		})
		assert.Equal(t, http.StatusMultiStatus, code)
		assert.Len(t, body.Failures, 2)
		assert.Equal(t, uint(7), body.Failures[0].MemberID)
		assert.Equal(t, http.StatusConflict, body.Failures[0].Code)
		assert.Equal(t, http.StatusNotFound, body.Failures[1].Code)
	})

	t.Run("none added with one kind", func(t *testing.T) {
		code, body := NewAddParticipantsResponse(domain.AddParticipantsResult{
			FailCount: 1,
			Failures:  []domain.MemberFailure{{MemberID: 3, Err: domain.ErrParticipantExists}},
		})
		assert.Equal(t, http.StatusConflict, code)
		assert.NotNil(t, body.Added)
	})
}
