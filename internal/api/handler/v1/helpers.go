package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/activities-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/activities-api/internal/api/middleware"
	"github.com/vietanh2810/activities-api/internal/domain"
)

var errNotOwner = errors.New("members can only access their own records")

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("%s must be a positive integer", name))
	}

	return uint(id), nil
}

// memberIDParam reads :memberID and checks the caller is that member or an admin.
func memberIDParam(ctx *gin.Context) (uint, *response.Err) {
	memberID, respErr := parseIDParam(ctx, "memberID")
	if respErr != nil {
		return 0, respErr
	}

	if ctx.GetString(middleware.ContextRole) == domain.RoleAdmin {
		return memberID, nil
	}
	if callerID, ok := ctx.Get(middleware.ContextUserID); !ok || callerID.(uint) != memberID {
		return 0, response.ErrPermissionDenied(errNotOwner)
	}

	return memberID, nil
}
