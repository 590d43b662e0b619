package leave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"leave-portal/internal/gateway"
	leaveerrors "leave-portal/internal/leave/errors"
)

func sessionGateway() *fakeGateway {
	events := []gateway.Event{
		{ID: "leave-1", UserID: "u1", LeaveType: "Annual Leave", Start: "2026-11-06", End: "2026-11-10", Status: "pending"},
		{ID: "leave-2", UserID: "u1", LeaveType: "Marriage Leave", Start: "2026-12-01", End: "2026-12-02", Status: "approved"},
	}

	gw := &fakeGateway{}
	gw.listEventsFn = func(ctx context.Context) ([]gateway.Event, error) {
		return events, nil
	}
	gw.listHolidaysFn = func(ctx context.Context) ([]gateway.Holiday, error) {
		return []gateway.Holiday{{Name: "Diwali", Date: "2026-11-08"}}, nil
	}
	gw.createEventFn = func(ctx context.Context, payload gateway.EventPayload) (gateway.Event, error) {
		created := gateway.Event{
			ID:        "srv-new",
			UserID:    "u1",
			LeaveType: payload.LeaveType,
			Start:     payload.Start,
			End:       payload.End,
			Status:    "pending",
		}
		events = append(events, created)
		return created, nil
	}
	gw.deleteEventFn = func(ctx context.Context, id string) error {
		kept := events[:0]
		for _, ev := range events {
			if ev.ID != id {
				kept = append(kept, ev)
			}
		}
		events = kept
		return nil
	}
	return gw
}

func strptr(v string) *string { return &v }

func TestService_CalendarRendersExclusiveEnd(t *testing.T) {
	ws := NewWorkspace(sessionGateway(), nil)
	svc := NewService()

	entries, err := svc.Calendar(context.Background(), ws)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	assert.Equal(t, "leave-1", entries[0].ID)
	assert.Equal(t, "Annual Leave", entries[0].Title)
	assert.Equal(t, "2026-11-06", entries[0].Start)
	// Stored end 2026-11-10 renders as exclusive 2026-11-11.
	assert.Equal(t, "2026-11-11", entries[0].End)
	assert.Equal(t, "#f59e0b", entries[0].Color)
	assert.True(t, entries[0].AllDay)

	assert.Equal(t, "#10b981", entries[1].Color)
}

func TestService_CalendarFetchesOncePerRender(t *testing.T) {
	listCalls := 0
	gw := sessionGateway()
	inner := gw.listEventsFn
	gw.listEventsFn = func(ctx context.Context) ([]gateway.Event, error) {
		listCalls++
		return inner(ctx)
	}

	ws := NewWorkspace(gw, nil)
	svc := NewService()

	// First render mounts the workspace; that refresh is the only fetch.
	_, err := svc.Calendar(context.Background(), ws)
	assert.NoError(t, err)
	assert.Equal(t, 1, listCalls)

	// Later renders refresh the already-mounted working set.
	_, err = svc.Calendar(context.Background(), ws)
	assert.NoError(t, err)
	assert.Equal(t, 2, listCalls)
}

func TestService_OpenDayHoliday(t *testing.T) {
	ws := NewWorkspace(sessionGateway(), nil)
	svc := NewService()

	view, err := svc.OpenDay(context.Background(), ws, OpenDayRequest{Date: "2026-11-08"})
	assert.NoError(t, err)
	assert.Equal(t, ModeHoliday, view.Mode)
	assert.Equal(t, "Diwali", view.Holiday.Name)
	assert.Nil(t, view.Form)
	// No form opens for a holiday.
	assert.Nil(t, ws.Form())
}

func TestService_OpenDayExistingPrefillsForm(t *testing.T) {
	ws := NewWorkspace(sessionGateway(), nil)
	svc := NewService()

	view, err := svc.OpenDay(context.Background(), ws, OpenDayRequest{Date: "2026-11-06"})
	assert.NoError(t, err)
	assert.Equal(t, ModeEdit, view.Mode)
	assert.Equal(t, "leave-1", view.Form.SourceID)
	assert.Equal(t, "Annual Leave", view.Form.LeaveType)
	assert.False(t, view.Form.Locked)
}

func TestService_OpenDayApprovedIsLocked(t *testing.T) {
	ws := NewWorkspace(sessionGateway(), nil)
	svc := NewService()

	view, err := svc.OpenDay(context.Background(), ws, OpenDayRequest{Date: "2026-12-01"})
	assert.NoError(t, err)
	assert.Equal(t, ModeEdit, view.Mode)
	assert.True(t, view.Form.Locked)
}

func TestService_OpenDayRejectsBadDate(t *testing.T) {
	ws := NewWorkspace(sessionGateway(), nil)
	svc := NewService()

	_, err := svc.OpenDay(context.Background(), ws, OpenDayRequest{Date: "08/11/2026"})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
}

func TestService_CreateFlow(t *testing.T) {
	closed := 0
	ws := NewWorkspace(sessionGateway(), func() { closed++ })
	svc := NewService()
	ctx := context.Background()

	view, err := svc.OpenDay(ctx, ws, OpenDayRequest{Date: "2026-11-20"})
	assert.NoError(t, err)
	assert.Equal(t, ModeCreate, view.Mode)
	assert.Equal(t, "2026-11-20", view.Form.Start)
	assert.Equal(t, "2026-11-20", view.Form.End)
	assert.Equal(t, LeaveTypes, view.Form.LeaveTypes)

	// Submitting the untouched draft fails validation, the form stays open.
	_, err = svc.Submit(ctx, ws)
	assert.ErrorIs(t, err, leaveerrors.ErrMissingLeaveType)
	assert.NotNil(t, ws.Form())

	_, err = svc.UpdateForm(ctx, ws, UpdateFormRequest{
		LeaveType: strptr("Annual Leave"),
		End:       strptr("2026-11-21"),
	})
	assert.NoError(t, err)

	committed, err := svc.Submit(ctx, ws)
	assert.NoError(t, err)
	assert.Equal(t, "srv-new", committed.ID)
	assert.Equal(t, "pending", committed.Status)

	// Submit closes the form and drops form-scoped caches.
	assert.Nil(t, ws.Form())
	assert.Equal(t, 1, closed)

	// The new request is classified on a re-click.
	view, err = svc.OpenDay(ctx, ws, OpenDayRequest{Date: "2026-11-20"})
	assert.NoError(t, err)
	assert.Equal(t, ModeEdit, view.Mode)
	assert.Equal(t, "srv-new", view.Form.SourceID)
}

func TestService_DeleteFlow(t *testing.T) {
	ws := NewWorkspace(sessionGateway(), nil)
	svc := NewService()
	ctx := context.Background()

	_, err := svc.OpenDay(ctx, ws, OpenDayRequest{Date: "2026-11-06"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, ws))
	assert.Nil(t, ws.Form())

	// The span is free again.
	view, err := svc.OpenDay(ctx, ws, OpenDayRequest{Date: "2026-11-06"})
	assert.NoError(t, err)
	assert.Equal(t, ModeCreate, view.Mode)
}

func TestService_UpdateFormWithoutOpenForm(t *testing.T) {
	ws := NewWorkspace(sessionGateway(), nil)
	svc := NewService()

	_, err := svc.UpdateForm(context.Background(), ws, UpdateFormRequest{Description: strptr("x")})
	assert.ErrorIs(t, err, leaveerrors.ErrNoOpenForm)

	_, err = svc.Submit(context.Background(), ws)
	assert.ErrorIs(t, err, leaveerrors.ErrNoOpenForm)

	assert.ErrorIs(t, svc.Delete(context.Background(), ws), leaveerrors.ErrNoOpenForm)
}

func TestService_HolidaysListing(t *testing.T) {
	ws := NewWorkspace(sessionGateway(), nil)
	svc := NewService()

	holidays, err := svc.Holidays(context.Background(), ws)
	assert.NoError(t, err)
	assert.Len(t, holidays, 1)
	assert.Equal(t, "Diwali", holidays[0].Name)
	assert.Equal(t, "2026-11-08", holidays[0].Date)
}
