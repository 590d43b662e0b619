package user

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authz func(resource, action string) gin.HandlerFunc,
) {
	// Manager lookup is needed by the leave form for any signed-in user.
	r.GET("/managers", authz("calendar", "read"), handler.Managers)

	users := r.Group("/users")
	{
		users.GET("", authz("accounts", "manage"), handler.List)
		users.POST("/search", authz("accounts", "manage"), handler.Search)
		users.POST("", authz("accounts", "manage"), handler.Create)
		users.PUT("/:id", authz("accounts", "manage"), handler.Update)
		users.DELETE("/:id", authz("accounts", "manage"), handler.Delete)
	}
}
