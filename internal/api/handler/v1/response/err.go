package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/activities-api/internal/domain"
)

type Err struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`

	Err error `json:"-"`
}

func (e *Err) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.Code >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", ctx.FullPath()),
			zap.Int("code", e.Code),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.Code, e)
}

func newErr(code int, message string, err error) *Err {
	return &Err{
		Code:    code,
		Status:  http.StatusText(code),
		Message: message,
		Err:     err,
	}
}

func ErrBadRequest(err error) *Err {
	e := newErr(http.StatusBadRequest, err.Error(), err)

	var verr *domain.ValidationError
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		e.Message = "invalid request"
		e.Fields = make(map[string]string, len(verr.Fields))
		for field, ferr := range verr.Fields {
			e.Fields[field] = ferr.Error()
		}
	}

	return e
}

func ErrNotFound(resource, key string, value any) *Err {
	return newErr(http.StatusNotFound, fmt.Sprintf("%s with %s %v not found", resource, key, value), nil)
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err.Error(), err)
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, "authentication required", err)
}

func ErrWrongCredentials(err error) *Err {
	return newErr(http.StatusUnauthorized, "wrong email or password", err)
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, "permission denied", err)
}

func ErrServiceUnavailable(err error) *Err {
	return newErr(http.StatusServiceUnavailable, "store temporarily unavailable, retry later", err)
}

func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, "internal server error", err)
}

// FromError picks the response matching the kind of a service error.
func FromError(err error) *Err {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return ErrBadRequest(err)
	case errors.Is(err, domain.ErrNotFound):
		return newErr(http.StatusNotFound, err.Error(), err)
	case errors.Is(err, domain.ErrConflict):
		return ErrConflict(err)
	case errors.Is(err, domain.ErrPartialFailure):
		return newErr(http.StatusMultiStatus, err.Error(), err)
	case errors.Is(err, domain.ErrTransientStore):
		return ErrServiceUnavailable(err)
	default:
		return ErrInternalServerError(err)
	}
}
