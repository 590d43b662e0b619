package user

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
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
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
	h.logger.Warn("user request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// List returns every account. A gateway read failure degrades the table to
// "no records" instead of failing the page.
func (h *Handler) List(c *gin.Context) {
	gw := gatewayFrom(c)

	users, err := h.service.List(c.Request.Context(), gw)
	if err != nil {
		h.logger.Warn("user listing degraded to empty", zap.Error(err))
		response.Success(c, http.StatusOK, []UserResponse{}, nil)
		return
	}
	response.Success(c, http.StatusOK, users, nil)
}

func (h *Handler) Search(c *gin.Context) {
	gw := gatewayFrom(c)

	var req SearchUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("user search validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}
	// Normalize here so the meta reports the page the service actually used.
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 10
	}

	users, err := h.service.Search(c.Request.Context(), gw, req)
	if err != nil {
		h.logger.Warn("user search degraded to empty", zap.Error(err))
		response.Success(c, http.StatusOK, []UserResponse{}, nil)
		return
	}

	meta := response.NewPaginationMeta(int64(len(users)), req.Page, req.Limit)
	response.Success(c, http.StatusOK, users, &meta)
}

func (h *Handler) Create(c *gin.Context) {
	gw := gatewayFrom(c)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create user binding failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	created, err := h.service.Create(c.Request.Context(), gw, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created, nil)
}

func (h *Handler) Update(c *gin.Context) {
	gw := gatewayFrom(c)
	id := c.Param("id")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update user binding failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), gw, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	gw := gatewayFrom(c)
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), gw, id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Managers(c *gin.Context) {
	gw := gatewayFrom(c)

	managers, err := h.service.Managers(c.Request.Context(), gw)
	if err != nil {
		h.logger.Warn("manager listing degraded to empty", zap.Error(err))
		response.Success(c, http.StatusOK, []ManagerResponse{}, nil)
		return
	}
	response.Success(c, http.StatusOK, managers, nil)
}
