package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// map sentinel error จาก service เป็น HTTP status
func fail(c *gin.Context, err error) {
	var ve services.ValidationError
	if errors.As(err, &ve) {
		resp.BadRequest(c, ve.Error())
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "not authorized")
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrPendingApproval):
		resp.Forbidden(c, "your account is pending admin approval")
	case errors.Is(err, services.ErrRoleNotAllowed):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidStatus):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id64), true
}
