package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/activities-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/activities-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/activities-api/internal/domain"
)

type ActivityService interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Get(ctx context.Context, id uint) (domain.Activity, error)
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error)
	Update(ctx context.Context, id uint, patch domain.ActivityPatch) (domain.Activity, error)
	Delete(ctx context.Context, id uint) error
}

type ActivityHandler struct {
	svc ActivityService
}

func NewActivityHandler(svc ActivityService) *ActivityHandler {
	return &ActivityHandler{
		svc: svc,
	}
}

// HandleListActivities godoc
// @Summary      List activities
// @Description  Newest first. Extension records are not included.
// @Tags         activities
// @Produce      json
// @Param        type       query     string  false  "event, meeting, formation or general_assembly"
// @Param        is_online  query     bool    false  "online only"
// @Param        is_paid    query     bool    false  "paid only"
// @Param        is_public  query     bool    false  "public only"
// @Param        from       query     string  false  "RFC 3339 lower bound on begin_at"
// @Param        to         query     string  false  "RFC 3339 upper bound on begin_at"
// @Success      200        {array}   domain.Activity
// @Failure      400        {object}  response.Err
// @Router       /activities [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleListActivities(ctx *gin.Context) {
	var query request.ListActivitiesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activities, err := h.svc.List(ctx, query.ToFilter())
	if err != nil {
		err = fmt.Errorf("HandleListActivities -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleCreateActivity godoc
// @Summary      Create an activity
// @Description  The base record and its type specific record are written together.
// @Tags         activities
// @Produce      json
// @Param        request  body      request.CreateActivityRequest  true  "request body"
// @Success      201      {object}  domain.Activity
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      503      {object}  response.Err
// @Router       /activities [post]
// @Security BearerAuth
func (h *ActivityHandler) HandleCreateActivity(ctx *gin.Context) {
	var req request.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activity, err := h.svc.Create(ctx, req.ToActivity())
	if err != nil {
		err = fmt.Errorf("HandleCreateActivity -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusCreated, activity)
}

// HandleGetActivity godoc
// @Summary      Get an activity with its type specific fields
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int  true  "activity ID"
// @Success      200         {object}  domain.Activity
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Router       /activities/{activityID} [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleGetActivity(ctx *gin.Context) {
	activityID, respErr := parseIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	activity, err := h.svc.Get(ctx, activityID)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "activityID", activityID))
			return
		}

		err = fmt.Errorf("HandleGetActivity -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleUpdateActivity godoc
// @Summary      Partially update an activity
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int                            true  "activity ID"
// @Param        request     body      request.UpdateActivityRequest  true  "request body"
// @Success      200         {object}  domain.Activity
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Router       /activities/{activityID} [patch]
// @Security BearerAuth
func (h *ActivityHandler) HandleUpdateActivity(ctx *gin.Context) {
	activityID, respErr := parseIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activity, err := h.svc.Update(ctx, activityID, req.ToPatch())
	if err != nil {
		err = fmt.Errorf("HandleUpdateActivity -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleDeleteActivity godoc
// @Summary      Delete an activity
// @Description  Deleting a missing activity succeeds.
// @Tags         activities
// @Param        activityID  path  int  true  "activity ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      503  {object}  response.Err
// @Router       /activities/{activityID} [delete]
// @Security BearerAuth
func (h *ActivityHandler) HandleDeleteActivity(ctx *gin.Context) {
	activityID, respErr := parseIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Delete(ctx, activityID); err != nil {
		err = fmt.Errorf("HandleDeleteActivity -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
