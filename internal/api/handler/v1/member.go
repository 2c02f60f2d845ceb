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
	"github.com/vietanh2810/activities-api/internal/service"
)

type MemberService interface {
	GetMember(ctx context.Context, id uint) (domain.Member, error)
	UpdatePreferences(ctx context.Context, id uint, categories []string) (domain.Member, error)
}

type LedgerService interface {
	Award(ctx context.Context, memberID uint, delta int, description string, source domain.SourceType) (domain.AwardResult, error)
	History(ctx context.Context, memberID uint) ([]domain.LedgerEntry, error)
	Reconcile(ctx context.Context, memberID uint) (domain.Reconciliation, error)
}

type MemberHandler struct {
	svc    MemberService
	ledger LedgerService
}

func NewMemberHandler(svc MemberService, ledger LedgerService) *MemberHandler {
	return &MemberHandler{
		svc:    svc,
		ledger: ledger,
	}
}

// HandleGetMember godoc
// @Summary      Get a member
// @Tags         members
// @Produce      json
// @Param        memberID  path      int  true  "member ID"
// @Success      200       {object}  domain.Member
// @Failure      400       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Router       /members/{memberID} [get]
// @Security BearerAuth
func (h *MemberHandler) HandleGetMember(ctx *gin.Context) {
	memberID, respErr := memberIDParam(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	member, err := h.svc.GetMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "memberID", memberID))
			return
		}

		err = fmt.Errorf("HandleGetMember -> h.svc.GetMember -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// HandleUpdatePreferences godoc
// @Summary      Replace the preferred categories of a member
// @Tags         members
// @Produce      json
// @Param        memberID  path      int                         true  "member ID"
// @Param        request   body      request.PreferencesRequest  true  "request body"
// @Success      200       {object}  domain.Member
// @Failure      400       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Router       /members/{memberID}/preferences [put]
// @Security BearerAuth
func (h *MemberHandler) HandleUpdatePreferences(ctx *gin.Context) {
	memberID, respErr := memberIDParam(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	member, err := h.svc.UpdatePreferences(ctx, memberID, req.Categories)
	if err != nil {
		err = fmt.Errorf("HandleUpdatePreferences -> h.svc.UpdatePreferences -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// HandleGetLedger godoc
// @Summary      List the ledger entries of a member
// @Tags         ledger
// @Produce      json
// @Param        memberID  path      int  true  "member ID"
// @Success      200       {array}   domain.LedgerEntry
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Router       /members/{memberID}/ledger [get]
// @Security BearerAuth
func (h *MemberHandler) HandleGetLedger(ctx *gin.Context) {
	memberID, respErr := memberIDParam(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	entries, err := h.ledger.History(ctx, memberID)
	if err != nil {
		err = fmt.Errorf("HandleGetLedger -> h.ledger.History -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// HandleReconcileLedger godoc
// @Summary      Compare the stored balance with a replay of the ledger
// @Tags         ledger
// @Produce      json
// @Param        memberID  path      int  true  "member ID"
// @Success      200       {object}  domain.Reconciliation
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Router       /members/{memberID}/ledger/reconcile [get]
// @Security BearerAuth
func (h *MemberHandler) HandleReconcileLedger(ctx *gin.Context) {
	memberID, respErr := memberIDParam(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	rec, err := h.ledger.Reconcile(ctx, memberID)
	if err != nil {
		err = fmt.Errorf("HandleReconcileLedger -> h.ledger.Reconcile -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, rec)
}

// HandleAwardPoints godoc
// @Summary      Post a manual point change
// @Tags         ledger
// @Produce      json
// @Param        memberID  path      int                         true  "member ID"
// @Param        request   body      request.AwardPointsRequest  true  "request body"
// @Success      200       {object}  domain.AwardResult
// @Failure      400       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Router       /members/{memberID}/points [post]
// @Security BearerAuth
func (h *MemberHandler) HandleAwardPoints(ctx *gin.Context) {
	memberID, respErr := parseIDParam(ctx, "memberID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AwardPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.ledger.Award(ctx, memberID, req.Delta, req.Description, domain.SourceType(req.SourceType))
	if err != nil {
		err = fmt.Errorf("HandleAwardPoints -> h.ledger.Award -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}
