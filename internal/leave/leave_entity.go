package leave

import (
	"context"
	"time"

	"leave-portal/internal/gateway"
	leaveerrors "leave-portal/internal/leave/errors"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveTypes is the fixed catalogue the remote API accepts.
var LeaveTypes = []string{
	"Annual Leave",
	"Volunteering Leave",
	"Paternity Leave",
	"Sabbatical Leave",
	"Relocation Leave",
	"Family Care Leave",
	"Compassionate Leave",
	"Marriage Leave",
	"Work From Home",
}

func IsLeaveType(v string) bool {
	for _, t := range LeaveTypes {
		if t == v {
			return true
		}
	}
	return false
}

// StatusColor returns the calendar legend color for a request status.
func StatusColor(s Status) string {
	switch s {
	case StatusApproved:
		return "#10b981"
	case StatusRejected:
		return "#ef4444"
	default:
		return "#f59e0b"
	}
}

// Gateway is the slice of the remote API the leave engine consumes.
type Gateway interface {
	ListEvents(ctx context.Context) ([]gateway.Event, error)
	CreateEvent(ctx context.Context, payload gateway.EventPayload) (gateway.Event, error)
	UpdateEvent(ctx context.Context, id string, payload gateway.EventPayload) (gateway.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListHolidays(ctx context.Context) ([]gateway.Holiday, error)
}

// LeaveRequest is a whole-day absence span. Start and End are normalized to
// local midnight; the span is inclusive on both ends.
type LeaveRequest struct {
	ID          string
	OwnerID     string
	LeaveType   string
	Start       time.Time
	End         time.Time
	Description string
	Status      Status
}

// Contains reports whether day d falls inside the inclusive span, compared at
// day granularity: start floored to 00:00:00, end ceiled to 23:59:59.
func (r LeaveRequest) Contains(d time.Time) bool {
	day := DayStart(d)
	return !day.Before(DayStart(r.Start)) && !day.After(DayEnd(r.End))
}

// Overlaps reports whether two inclusive day spans share at least one day.
func (r LeaveRequest) Overlaps(other LeaveRequest) bool {
	return !DayEnd(r.End).Before(DayStart(other.Start)) &&
		!DayStart(r.Start).After(DayEnd(other.End))
}

// RenderSpan returns the span for an exclusive-end calendar grid: the end is
// advanced by one day for display only, the stored span is untouched.
func (r LeaveRequest) RenderSpan() (start, endExclusive time.Time) {
	return DayStart(r.Start), DayStart(r.End).AddDate(0, 0, 1)
}

type Holiday struct {
	Name string
	Date time.Time
}

// --- Day arithmetic ---

func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func SameDay(a, b time.Time) bool {
	return DayStart(a).Equal(DayStart(b))
}

// --- Wire conversion ---

const dayFormat = "2006-01-02"

// parseWireDate accepts the ISO-8601 shapes the API emits and normalizes the
// result to local midnight for day-granularity comparison.
func parseWireDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return DayStart(t.Local()), nil
	}
	if t, err := time.ParseInLocation(dayFormat, v, time.Local); err == nil {
		return DayStart(t), nil
	}
	return time.Time{}, leaveerrors.ErrInvalidDateFormat
}

// ParseWireDay exposes the wire date normalization for other views of the
// same API (the manager listing carries its own shape).
func ParseWireDay(v string) (time.Time, error) {
	return parseWireDate(v)
}

func ParseEvent(ev gateway.Event) (LeaveRequest, error) {
	start, err := parseWireDate(ev.Start)
	if err != nil {
		return LeaveRequest{}, err
	}
	end, err := parseWireDate(ev.End)
	if err != nil {
		return LeaveRequest{}, err
	}
	return LeaveRequest{
		ID:          ev.ID,
		OwnerID:     ev.UserID,
		LeaveType:   ev.LeaveType,
		Start:       start,
		End:         end,
		Description: ev.Description,
		Status:      Status(ev.Status),
	}, nil
}

// Payload renders the request in the API's wire shape. The original client
// always sent display "block"; the API expects it.
func (r LeaveRequest) Payload() gateway.EventPayload {
	return gateway.EventPayload{
		LeaveType:   r.LeaveType,
		Start:       DayStart(r.Start).Format(time.RFC3339),
		End:         DayStart(r.End).Format(time.RFC3339),
		Description: r.Description,
		Display:     "block",
	}
}

func ParseHoliday(h gateway.Holiday) (Holiday, error) {
	date, err := parseWireDate(h.Date)
	if err != nil {
		return Holiday{}, err
	}
	return Holiday{Name: h.Name, Date: date}, nil
}
