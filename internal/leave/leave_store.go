package leave

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	leaveerrors "leave-portal/internal/leave/errors"
)

// Store owns the working set of leave requests for one session. The server
// list is authoritative: local mutations only hide latency and every
// confirmed write is followed by a Refresh.
type Store struct {
	mu       sync.RWMutex
	gw       Gateway
	requests []LeaveRequest
	logger   *zap.Logger
}

func NewStore(gw Gateway, logger ...*zap.Logger) *Store {
	l := zap.L().Named("leave.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.store")
	}
	return &Store{gw: gw, logger: l}
}

// Refresh replaces the working set with the server list. Gateway order is
// preserved, never re-sorted locally. On failure the previous working set is
// kept so the calendar does not blank out on a transient error.
func (s *Store) Refresh(ctx context.Context) error {
	events, err := s.gw.ListEvents(ctx)
	if err != nil {
		s.logger.Warn("refresh failed, keeping previous working set", zap.Error(err))
		return err
	}

	requests := make([]LeaveRequest, 0, len(events))
	for _, ev := range events {
		req, err := ParseEvent(ev)
		if err != nil {
			s.logger.Warn("skipping unparsable event",
				zap.String("event_id", ev.ID),
				zap.Error(err),
			)
			continue
		}
		requests = append(requests, req)
	}

	s.mu.Lock()
	s.requests = requests
	s.mu.Unlock()

	s.logger.Debug("working set refreshed", zap.Int("count", len(requests)))
	return nil
}

// Snapshot returns a copy of the working set in store order.
func (s *Store) Snapshot() []LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LeaveRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// FindCovering returns the first request in store order whose span contains
// day d. At most one match is expected; overlapping requests for the same
// owner are a data-integrity problem the store rejects at update time.
func (s *Store) FindCovering(d time.Time) (LeaveRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.requests {
		if r.Contains(d) {
			return r, true
		}
	}
	return LeaveRequest{}, false
}

// ApplyLocalUpdate inserts or replaces a request after a confirmed gateway
// write. A span overlapping another request of the same owner is rejected,
// which keeps the reconciler's single-match assumption enforceable.
func (s *Store) ApplyLocalUpdate(req LeaveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.requests {
		if existing.ID == req.ID {
			continue
		}
		if existing.OwnerID == req.OwnerID && existing.Overlaps(req) {
			return leaveerrors.ErrOverlappingSpan
		}
	}

	for i, existing := range s.requests {
		if existing.ID == req.ID {
			s.requests[i] = req
			return nil
		}
	}
	s.requests = append(s.requests, req)
	return nil
}

// ApplyLocalRemoval drops the request with the given id. Removing an id that
// is no longer present is treated as already resolved, not an error.
func (s *Store) ApplyLocalRemoval(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.requests {
		if existing.ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return
		}
	}
}

// HolidaySet is the read-only overlay of fixed calendar holidays, fetched
// once per session. Lookup is keyed by the formatted day, not time.Time,
// so dates that arrived in different locations still collide on the same
// calendar day.
type HolidaySet struct {
	holidays []Holiday
	byDay    map[string]Holiday
}

func NewHolidaySet(holidays []Holiday) *HolidaySet {
	byDay := make(map[string]Holiday, len(holidays))
	for _, h := range holidays {
		day := DayStart(h.Date).Format(dayFormat)
		if _, dup := byDay[day]; !dup {
			byDay[day] = h
		}
	}
	return &HolidaySet{holidays: holidays, byDay: byDay}
}

func LoadHolidays(ctx context.Context, gw Gateway) (*HolidaySet, error) {
	wire, err := gw.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}

	holidays := make([]Holiday, 0, len(wire))
	for _, h := range wire {
		parsed, err := ParseHoliday(h)
		if err != nil {
			continue
		}
		holidays = append(holidays, parsed)
	}
	return NewHolidaySet(holidays), nil
}

func (h *HolidaySet) Find(d time.Time) (Holiday, bool) {
	hit, ok := h.byDay[DayStart(d).Format(dayFormat)]
	return hit, ok
}

func (h *HolidaySet) All() []Holiday {
	out := make([]Holiday, len(h.holidays))
	copy(out, h.holidays)
	return out
}
