package leave

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the calendar surface. The authz factory is supplied
// by the caller so this package stays free of the session wiring.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authz func(resource, action string) gin.HandlerFunc,
) {
	calendar := r.Group("/calendar")
	{
		calendar.GET("/events", authz("calendar", "read"), handler.Calendar)
		calendar.GET("/holidays", authz("calendar", "read"), handler.Holidays)
		calendar.POST("/clicks", authz("calendar", "write"), handler.OpenDay)
		calendar.PATCH("/form", authz("calendar", "write"), handler.UpdateForm)
		calendar.POST("/form/submit", authz("calendar", "write"), handler.Submit)
		calendar.DELETE("/form", authz("calendar", "write"), handler.Delete)
		calendar.POST("/form/close", authz("calendar", "write"), handler.CloseForm)
	}
}
