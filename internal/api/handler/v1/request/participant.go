package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/activities-api/internal/domain"
)

type AddParticipantsRequest struct {
	MemberIDs    []uint `json:"member_ids"`
	Rate         *int   `json:"rate"`
	Notes        string `json:"notes"`
	IsTemp       bool   `json:"is_temp"`
	IsInterested bool   `json:"is_interested"`
}

func (req *AddParticipantsRequest) ToInput() domain.AddParticipantsInput {
	return domain.AddParticipantsInput{
		MemberIDs:    req.MemberIDs,
		Rate:         req.Rate,
		Notes:        req.Notes,
		IsTemp:       req.IsTemp,
		IsInterested: req.IsInterested,
	}
}

type UpdateParticipantRequest struct {
	Rate         *int    `json:"rate"`
	Notes        *string `json:"notes"`
	IsInterested *bool   `json:"is_interested"`
	IsTemp       *bool   `json:"is_temp"`
}

func (req *UpdateParticipantRequest) ToPatch() domain.ParticipantPatch {
	return domain.ParticipantPatch{
		Rate:         req.Rate,
		Notes:        req.Notes,
		IsInterested: req.IsInterested,
		IsTemp:       req.IsTemp,
	}
}

type AttendanceRequest struct {
	Status string `json:"status"`
}

func (req *AttendanceRequest) Validate() error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Status, validation.Required,
			validation.In(string(domain.AttendancePresent), string(domain.AttendanceAbsent))),
	)
	return domain.NewValidationError(err)
}
