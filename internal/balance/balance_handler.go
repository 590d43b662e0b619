package balance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leave-portal/internal/leave"
	leaveerrors "leave-portal/internal/leave/errors"
	"leave-portal/internal/shared/apperror"
	"leave-portal/internal/shared/response"
)

// CacheContextKey is where the session middleware parks the caller's
// balance cache.
const CacheContextKey = "balance_cache"

type BalanceResponse struct {
	LeaveType      string `json:"leaveType"`
	AvailableLeave string `json:"availableLeave"`
	Known          bool   `json:"known"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger ...*zap.Logger) *Handler {
	l := zap.L().Named("balance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.handler")
	}
	return &Handler{logger: l}
}

func cacheFrom(c *gin.Context) *Cache {
	if v, ok := c.Get(CacheContextKey); ok {
		if typed, ok := v.(*Cache); ok {
			return typed
		}
	}
	return nil
}

// Lookup serves the entitlement for one leave type. A gateway failure leaves
// the balance unknown instead of blocking the form.
func (h *Handler) Lookup(c *gin.Context) {
	leaveType := c.Param("leaveType")
	if !leave.IsLeaveType(leaveType) {
		httpErr := apperror.ToHTTP(leaveerrors.ErrUnknownLeaveType)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	cache := cacheFrom(c)
	userID := c.GetString("user_id")

	available, err := cache.Lookup(c.Request.Context(), userID, leaveType)
	if err != nil {
		response.Success(c, http.StatusOK, BalanceResponse{
			LeaveType: leaveType,
			Known:     false,
		}, nil)
		return
	}

	response.Success(c, http.StatusOK, BalanceResponse{
		LeaveType:      leaveType,
		AvailableLeave: available.String(),
		Known:          true,
	}, nil)
}

// RegisterRoutes mounts the balance lookup.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authz func(resource, action string) gin.HandlerFunc,
) {
	r.GET("/balances/:leaveType", authz("balance", "read"), handler.Lookup)
}
