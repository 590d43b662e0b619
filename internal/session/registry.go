package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"leave-portal/internal/balance"
	"leave-portal/internal/bootstrap"
	"leave-portal/internal/gateway"
	"leave-portal/internal/leave"
)

// Registry owns every live session, keyed by bearer token. Sessions are
// created on the first authenticated request, torn down on logout, and swept
// after the idle TTL so abandoned engines do not accumulate.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	base     *gateway.Client
	resolver *CapabilityResolver
	ttl      time.Duration
	audit    bootstrap.AuditLogger
	logger   *zap.Logger
	done     chan struct{}
}

func NewRegistry(
	base *gateway.Client,
	resolver *CapabilityResolver,
	ttl time.Duration,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) *Registry {
	l := zap.L().Named("session.registry")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.registry")
	}
	return &Registry{
		sessions: make(map[string]*Session),
		base:     base,
		resolver: resolver,
		ttl:      ttl,
		audit:    audit,
		logger:   l,
		done:     make(chan struct{}),
	}
}

// Attach returns the session for the token, creating it on first sight:
// claims are read, capabilities resolved once, and the per-session engine
// (workspace, balance cache, bound gateway) is built.
func (r *Registry) Attach(token string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[token]; ok {
		sess.lastSeen = time.Now()
		return sess, nil
	}

	cl, err := parseClaims(token)
	if err != nil {
		return nil, err
	}
	caps, err := r.resolver.Resolve(cl.Role)
	if err != nil {
		return nil, err
	}

	bound := r.base.WithBearer(token)
	balances := balance.NewCache(bound, r.logger)
	workspace := leave.NewWorkspace(bound, balances.Reset, r.logger)

	sess := &Session{
		Token:        token,
		UserID:       cl.UserID,
		FullName:     cl.FullName,
		Role:         cl.Role,
		Capabilities: caps,
		Gateway:      bound,
		Workspace:    workspace,
		Balances:     balances,
		lastSeen:     time.Now(),
	}
	r.sessions[token] = sess

	r.logger.Info("session opened",
		zap.String("user_id", cl.UserID),
		zap.String("role", cl.Role),
	)
	r.audit.Log(context.Background(), bootstrap.AuditLog{
		Action:  "SESSION_OPEN",
		Message: "Session created",
		Meta:    map[string]any{"user_id": cl.UserID, "role": cl.Role},
	})
	return sess, nil
}

// Logout tears the session down. Unknown tokens are already resolved.
func (r *Registry) Logout(token string) {
	r.mu.Lock()
	sess, ok := r.sessions[token]
	if ok {
		delete(r.sessions, token)
	}
	r.mu.Unlock()

	if !ok {
		return
	}

	sess.Workspace.CloseForm()
	r.logger.Info("session closed", zap.String("user_id", sess.UserID))
	r.audit.Log(context.Background(), bootstrap.AuditLog{
		Action:  "SESSION_CLOSE",
		Message: "Session ended by logout",
		Meta:    map[string]any{"user_id": sess.UserID},
	})
}

// StartSweeper evicts idle sessions in the background until Stop is called.
func (r *Registry) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.sweep()
			case <-r.done:
				return
			}
		}
	}()
}

func (r *Registry) Stop() {
	close(r.done)
}

func (r *Registry) sweep() {
	cutoff := time.Now().Add(-r.ttl)

	r.mu.Lock()
	var evicted []*Session
	for token, sess := range r.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(r.sessions, token)
			evicted = append(evicted, sess)
		}
	}
	r.mu.Unlock()

	for _, sess := range evicted {
		sess.Workspace.CloseForm()
		r.logger.Info("idle session swept", zap.String("user_id", sess.UserID))
	}
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
