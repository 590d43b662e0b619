package manager

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authz func(resource, action string) gin.HandlerFunc,
) {
	mgr := r.Group("/manager")
	{
		mgr.GET("/employee-leaves", authz("approvals", "read"), handler.Pending)
		mgr.POST("/leave-actions", authz("approvals", "act"), handler.Act)
	}
}
