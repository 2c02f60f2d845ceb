package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/activities-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/activities-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/activities-api/internal/domain"
)

type ParticipationService interface {
	List(ctx context.Context, activityID uint) ([]domain.Participant, error)
	AddParticipants(ctx context.Context, activityID uint, in domain.AddParticipantsInput) (domain.AddParticipantsResult, error)
	Update(ctx context.Context, participantID uint, patch domain.ParticipantPatch) (domain.Participant, error)
	Remove(ctx context.Context, participantID uint) error
	MarkAttendance(ctx context.Context, participantID uint, status domain.AttendanceStatus) (domain.Participant, error)
}

type ParticipantHandler struct {
	svc ParticipationService
}

func NewParticipantHandler(svc ParticipationService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

// HandleListParticipants godoc
// @Summary      List the participants of an activity
// @Tags         participants
// @Produce      json
// @Param        activityID  path      int  true  "activity ID"
// @Success      200         {array}   domain.Participant
// @Failure      404         {object}  response.Err
// @Router       /activities/{activityID}/participants [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleListParticipants(ctx *gin.Context) {
	activityID, respErr := parseIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participants, err := h.svc.List(ctx, activityID)
	if err != nil {
		err = fmt.Errorf("HandleListParticipants -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleAddParticipants godoc
// @Summary      Register members to an activity
// @Description  Each member is registered on its own. 207 is returned when only some of them were added.
// @Tags         participants
// @Produce      json
// @Param        activityID  path      int                             true  "activity ID"
// @Param        request     body      request.AddParticipantsRequest  true  "request body"
// @Success      201         {object}  response.AddParticipantsResponse
// @Success      207         {object}  response.AddParticipantsResponse
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.AddParticipantsResponse
// @Router       /activities/{activityID}/participants [post]
// @Security BearerAuth
func (h *ParticipantHandler) HandleAddParticipants(ctx *gin.Context) {
	activityID, respErr := parseIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AddParticipantsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.AddParticipants(ctx, activityID, req.ToInput())
	if err != nil {
		err = fmt.Errorf("HandleAddParticipants -> h.svc.AddParticipants -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(response.NewAddParticipantsResponse(result))
}

// HandleUpdateParticipant godoc
// @Summary      Update a registration
// @Tags         participants
// @Produce      json
// @Param        participantID  path      int                               true  "participant ID"
// @Param        request        body      request.UpdateParticipantRequest  true  "request body"
// @Success      200            {object}  domain.Participant
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Router       /participants/{participantID} [patch]
// @Security BearerAuth
func (h *ParticipantHandler) HandleUpdateParticipant(ctx *gin.Context) {
	participantID, respErr := parseIDParam(ctx, "participantID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.Update(ctx, participantID, req.ToPatch())
	if err != nil {
		err = fmt.Errorf("HandleUpdateParticipant -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleRemoveParticipant godoc
// @Summary      Remove a registration
// @Description  Points awarded for the registration are taken back.
// @Tags         participants
// @Param        participantID  path  int  true  "participant ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Router       /participants/{participantID} [delete]
// @Security BearerAuth
func (h *ParticipantHandler) HandleRemoveParticipant(ctx *gin.Context) {
	participantID, respErr := parseIDParam(ctx, "participantID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Remove(ctx, participantID); err != nil {
		err = fmt.Errorf("HandleRemoveParticipant -> h.svc.Remove -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleMarkAttendance godoc
// @Summary      Confirm or drop a registration after the activity
// @Tags         participants
// @Produce      json
// @Param        participantID  path      int                        true  "participant ID"
// @Param        request        body      request.AttendanceRequest  true  "request body"
// @Success      200            {object}  domain.Participant
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Router       /participants/{participantID}/attendance [post]
// @Security BearerAuth
func (h *ParticipantHandler) HandleMarkAttendance(ctx *gin.Context) {
	participantID, respErr := parseIDParam(ctx, "participantID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.MarkAttendance(ctx, participantID, domain.AttendanceStatus(req.Status))
	if err != nil {
		err = fmt.Errorf("HandleMarkAttendance -> h.svc.MarkAttendance -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, participant)
}
