package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"leave-portal/internal/balance"
	"leave-portal/internal/leave"
	"leave-portal/internal/manager"
	"leave-portal/internal/middleware"
	"leave-portal/internal/session"
	"leave-portal/internal/user"
)

func registerModules(router *gin.Engine, rdb *redis.Client, reg *session.Registry) {
	leaveService := leave.NewService()
	leaveHandler := leave.NewHandler(leaveService)

	balanceHandler := balance.NewHandler()

	managerService := manager.NewService()
	managerHandler := manager.NewHandler(managerService)

	userService := user.NewService()
	userHandler := user.NewHandler(userService)

	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.RateLimitByIP(20, 40))
	api.Use(session.Middleware(reg))
	api.Use(middleware.RateLimitByUser(10, 20))
	api.Use(middleware.Idempotency(rdb))

	authz := session.RequireCapability

	leave.RegisterRoutes(api, leaveHandler, authz)
	balance.RegisterRoutes(api, balanceHandler, authz)
	manager.RegisterRoutes(api, managerHandler, authz)
	user.RegisterRoutes(api, userHandler, authz)

	api.POST("/session/logout", session.LogoutHandler(reg))
}
