package balance

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"leave-portal/internal/gateway"
)

// Gateway is the slice of the remote API the balance lookup consumes.
type Gateway interface {
	LeaveBalance(ctx context.Context, userID, leaveType string) (gateway.BalanceResponse, error)
}

// Cache memoizes remaining entitlement per leave type for the life of one
// open form. Entitlements are decimals because half-day allowances exist.
// Concurrent lookups for the same type are collapsed into one gateway call.
type Cache struct {
	mu      sync.RWMutex
	gw      Gateway
	entries map[string]decimal.Decimal
	group   singleflight.Group
	logger  *zap.Logger
}

func NewCache(gw Gateway, logger ...*zap.Logger) *Cache {
	l := zap.L().Named("balance.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.cache")
	}
	return &Cache{
		gw:      gw,
		entries: make(map[string]decimal.Decimal),
		logger:  l,
	}
}

// Lookup returns the remaining entitlement for the leave type, fetching on
// first use. A failure is not fatal to the editing flow: it is logged and
// surfaced so the caller can render the balance as unknown.
func (c *Cache) Lookup(ctx context.Context, userID, leaveType string) (decimal.Decimal, error) {
	c.mu.RLock()
	cached, ok := c.entries[leaveType]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := c.group.Do(leaveType, func() (any, error) {
		resp, err := c.gw.LeaveBalance(ctx, userID, leaveType)
		if err != nil {
			return decimal.Zero, err
		}

		c.mu.Lock()
		c.entries[leaveType] = resp.AvailableLeave
		c.mu.Unlock()
		return resp.AvailableLeave, nil
	})
	if err != nil {
		c.logger.Warn("balance lookup failed",
			zap.String("leave_type", leaveType),
			zap.Error(err),
		)
		return decimal.Zero, err
	}
	return v.(decimal.Decimal), nil
}

// Reset drops all cached entries; called when the form closes. Balances can
// go stale after any approval elsewhere, so nothing outlives the form.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[string]decimal.Decimal)
	c.mu.Unlock()
}
