package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/activities-api/internal/analytics"
	"github.com/vietanh2810/activities-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/activities-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/activities-api/internal/domain"
	"github.com/vietanh2810/activities-api/internal/service"
)

type AnalyticsService interface {
	GetHistory(ctx context.Context, memberID uint) ([]domain.ActivityHistoryItem, error)
	Summary(ctx context.Context, memberID uint, req analytics.TimelineRequest) (service.Summary, error)
}

type AnalyticsHandler struct {
	svc AnalyticsService
}

func NewAnalyticsHandler(svc AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		svc: svc,
	}
}

// HandleGetHistory godoc
// @Summary      Activities since the member joined, seen from the member
// @Tags         analytics
// @Produce      json
// @Param        memberID  path      int  true  "member ID"
// @Success      200       {array}   domain.ActivityHistoryItem
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Router       /members/{memberID}/history [get]
// @Security BearerAuth
func (h *AnalyticsHandler) HandleGetHistory(ctx *gin.Context) {
	memberID, respErr := memberIDParam(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	history, err := h.svc.GetHistory(ctx, memberID)
	if err != nil {
		err = fmt.Errorf("HandleGetHistory -> h.svc.GetHistory -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, history)
}

// HandleGetAnalytics godoc
// @Summary      Presence rate, timeline and rating trend of a member
// @Tags         analytics
// @Produce      json
// @Param        memberID     path      int     true   "member ID"
// @Param        granularity  query     string  false  "month, trimester, year or custom"
// @Param        anchor       query     string  false  "RFC 3339 instant inside the period"
// @Param        from         query     string  false  "RFC 3339 start of a custom range"
// @Param        to           query     string  false  "RFC 3339 end of a custom range"
// @Param        locale       query     string  false  "label locale, e.g. fr_FR"
// @Success      200          {object}  service.Summary
// @Failure      400          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Router       /members/{memberID}/analytics [get]
// @Security BearerAuth
func (h *AnalyticsHandler) HandleGetAnalytics(ctx *gin.Context) {
	memberID, respErr := memberIDParam(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var query request.AnalyticsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	summary, err := h.svc.Summary(ctx, memberID, query.ToTimelineRequest())
	if err != nil {
		err = fmt.Errorf("HandleGetAnalytics -> h.svc.Summary -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
