package response

import (
	"net/http"
	"sort"

	"github.com/vietanh2810/activities-api/internal/domain"
)

type AddParticipantsResponse struct {
	SuccessCount int                  `json:"success_count"`
	FailCount    int                  `json:"fail_count"`
	Added        []domain.Participant `json:"added"`
	Failures     []ParticipantFailure `json:"failures,omitempty"`
}

type ParticipantFailure struct {
	MemberID uint   `json:"member_id"`
	Code     int    `json:"code"`
	Error    string `json:"error"`
}

// NewAddParticipantsResponse returns the body together with its status:
// 201 when every member was added, 207 when some were, and the status of the
// failure kind when none were.
func NewAddParticipantsResponse(result domain.AddParticipantsResult) (int, AddParticipantsResponse) {
	resp := AddParticipantsResponse{
		SuccessCount: result.SuccessCount,
		FailCount:    result.FailCount,
		Added:        result.Added,
	}
	if resp.Added == nil {
		resp.Added = []domain.Participant{}
	}

	for _, f := range result.Failures {
		resp.Failures = append(resp.Failures, ParticipantFailure{
			MemberID: f.MemberID,
			Code:     FromError(f.Err).Code,
			Error:    f.Err.Error(),
		})
	}
	sort.SliceStable(resp.Failures, func(i, j int) bool {
		return resp.Failures[i].MemberID < resp.Failures[j].MemberID
	})

	switch {
	case result.FailCount == 0:
		return http.StatusCreated, resp
	case result.SuccessCount > 0:
		return http.StatusMultiStatus, resp
	default:
		return batchStatus(resp.Failures), resp
	}
}

// batchStatus is the shared status of all failures, or 207 when they differ.
func batchStatus(failures []ParticipantFailure) int {
	if len(failures) == 0 {
		return http.StatusMultiStatus
	}
	code := failures[0].Code
	for _, f := range failures[1:] {
		if f.Code != code {
			return http.StatusMultiStatus
		}
	}
	return code
}
