package manager

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leave-portal/internal/gateway"
	"leave-portal/internal/shared/apperror"
	"leave-portal/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("manager.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("manager.handler")
	}
	return &Handler{service: service, logger: l}
}

func gatewayFrom(c *gin.Context) Gateway {
	if v, ok := c.Get(gateway.ClientContextKey); ok {
		if typed, ok := v.(Gateway); ok {
			return typed
		}
	}
	return nil
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("manager request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Pending lists the team's leave requests. A gateway failure degrades to an
// empty list; the task page shows "no data" rather than an error wall.
func (h *Handler) Pending(c *gin.Context) {
	gw := gatewayFrom(c)

	leaves, err := h.service.Pending(c.Request.Context(), gw)
	if err != nil {
		h.logger.Warn("pending listing degraded to empty", zap.Error(err))
		response.Success(c, http.StatusOK, []EmployeeLeaveResponse{}, nil)
		return
	}
	response.Success(c, http.StatusOK, leaves, nil)
}

func (h *Handler) Act(c *gin.Context) {
	gw := gatewayFrom(c)

	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("leave action validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Act(c.Request.Context(), gw, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
