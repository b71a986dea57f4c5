package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
	"github.com/Abdelrhman012/parking-reservations-system/pkg/logger"
	"github.com/Abdelrhman012/parking-reservations-system/pkg/response"
)

// writeError maps a business error to its HTTP response. Unclassified errors
// become 500 and get logged; classified ones carry caller-facing messages.
func writeError(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		response.BadRequest(c, err.Error())
	case domain.KindNotFound:
		response.NotFound(c, err.Error())
	case domain.KindConflict:
		response.Conflict(c, err.Error())
	case domain.KindForbidden:
		response.Forbidden(c, err.Error())
	case domain.KindUnauthorized:
		response.Unauthorized(c, err.Error())
	default:
		logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		response.InternalError(c, err)
	}
}
