package bootstrap

import "context"

// AuditLog is one operator-facing event worth keeping outside debug logs.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
