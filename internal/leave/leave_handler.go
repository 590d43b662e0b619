package leave

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leave-portal/internal/shared/apperror"
	"leave-portal/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func workspaceFrom(c *gin.Context) *Workspace {
	if ws, ok := c.Get(WorkspaceContextKey); ok {
		if typed, ok := ws.(*Workspace); ok {
			return typed
		}
	}
	return nil
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("calendar request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Calendar lists the rendered calendar entries. A gateway read failure
// degrades to an empty calendar rather than blocking the page.
func (h *Handler) Calendar(c *gin.Context) {
	ws := workspaceFrom(c)
	entries, err := h.service.Calendar(c.Request.Context(), ws)
	if err != nil {
		h.logger.Warn("calendar listing degraded to empty", zap.Error(err))
		response.Success(c, http.StatusOK, []CalendarEntryResponse{}, nil)
		return
	}
	response.Success(c, http.StatusOK, entries, nil)
}

func (h *Handler) Holidays(c *gin.Context) {
	ws := workspaceFrom(c)
	holidays, err := h.service.Holidays(c.Request.Context(), ws)
	if err != nil {
		h.logger.Warn("holiday listing degraded to empty", zap.Error(err))
		response.Success(c, http.StatusOK, []HolidayResponse{}, nil)
		return
	}
	response.Success(c, http.StatusOK, holidays, nil)
}

func (h *Handler) OpenDay(c *gin.Context) {
	ws := workspaceFrom(c)

	var req OpenDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("open day validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	view, err := h.service.OpenDay(c.Request.Context(), ws, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) UpdateForm(c *gin.Context) {
	ws := workspaceFrom(c)

	var req UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("form update validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	view, err := h.service.UpdateForm(c.Request.Context(), ws, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	ws := workspaceFrom(c)

	committed, err := h.service.Submit(c.Request.Context(), ws)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, committed, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	ws := workspaceFrom(c)

	if err := h.service.Delete(c.Request.Context(), ws); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) CloseForm(c *gin.Context) {
	ws := workspaceFrom(c)
	h.service.CloseForm(ws)
	response.Success(c, http.StatusOK, gin.H{"closed": true}, nil)
}
