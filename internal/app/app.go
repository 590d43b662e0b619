package app

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"leave-portal/internal/bootstrap"
	"leave-portal/internal/gateway"
	"leave-portal/internal/session"
	"leave-portal/internal/shared/connection"
)

// BuildApp wires infrastructure and mounts every module on the router.
func BuildApp(router *gin.Engine, audit bootstrap.AuditLogger) error {
	baseURL := os.Getenv("GATEWAY_BASE_URL")
	if baseURL == "" {
		baseURL = "https://leaveapi.aultrapaints.com/api"
	}

	if err := connection.ProbeGatewayWithRetry(baseURL, 5); err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	timeout := gateway.DefaultTimeout
	if v := os.Getenv("GATEWAY_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}
	gw := gateway.NewClient(baseURL, timeout)

	sessionTTL := time.Hour
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		if mins, err := strconv.Atoi(v); err == nil && mins > 0 {
			sessionTTL = time.Duration(mins) * time.Minute
		}
	}

	resolver, err := session.NewCapabilityResolver()
	if err != nil {
		return err
	}
	registry := session.NewRegistry(gw, resolver, sessionTTL, audit)
	registry.StartSweeper(time.Minute)

	registerModules(router, rdb, registry)
	return nil
}
