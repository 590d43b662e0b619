package manager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"leave-portal/internal/gateway"
	managererrors "leave-portal/internal/manager/errors"
)

type fakeGateway struct {
	employeeLeavesFn func(ctx context.Context) ([]gateway.EmployeeLeave, error)
	leaveActionFn    func(ctx context.Context, leaveID, action string) (gateway.Event, error)
}

func (f *fakeGateway) EmployeeLeaves(ctx context.Context) ([]gateway.EmployeeLeave, error) {
	return f.employeeLeavesFn(ctx)
}
func (f *fakeGateway) LeaveAction(ctx context.Context, leaveID, action string) (gateway.Event, error) {
	return f.leaveActionFn(ctx, leaveID, action)
}

func TestService_PendingMarksActionableRows(t *testing.T) {
	gw := &fakeGateway{
		employeeLeavesFn: func(ctx context.Context) ([]gateway.EmployeeLeave, error) {
			return []gateway.EmployeeLeave{
				{
					ID:        "l1",
					Requester: gateway.Requester{ID: "u2", FullName: "Priya Sharma"},
					LeaveType: "Annual Leave",
					Start:     "2026-07-01T00:00:00.000Z",
					End:       "2026-07-03T00:00:00.000Z",
					Status:    "pending",
				},
				{
					ID:        "l2",
					Requester: gateway.Requester{ID: "u3", FullName: "Arun Kumar"},
					LeaveType: "Work From Home",
					Start:     "2026-07-10T00:00:00.000Z",
					End:       "2026-07-10T00:00:00.000Z",
					Status:    "approved",
				},
			}, nil
		},
	}

	svc := NewService()
	rows, err := svc.Pending(context.Background(), gw)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, "Priya Sharma", rows[0].Requester)
	assert.Equal(t, "2026-07-01", rows[0].Start)
	assert.True(t, rows[0].Actionable)

	assert.False(t, rows[1].Actionable)
}

func TestService_ActValidatesVocabulary(t *testing.T) {
	svc := NewService()
	gw := &fakeGateway{}

	_, err := svc.Act(context.Background(), gw, ActionRequest{LeaveID: "", Action: "approve"})
	assert.ErrorIs(t, err, managererrors.ErrMissingLeaveID)

	_, err = svc.Act(context.Background(), gw, ActionRequest{LeaveID: "l1", Action: "escalate"})
	assert.ErrorIs(t, err, managererrors.ErrInvalidAction)
}

func TestService_ActForwardsDecision(t *testing.T) {
	var gotID, gotAction string
	gw := &fakeGateway{
		leaveActionFn: func(ctx context.Context, leaveID, action string) (gateway.Event, error) {
			gotID, gotAction = leaveID, action
			return gateway.Event{ID: leaveID, LeaveType: "Annual Leave", Start: "2026-07-01", End: "2026-07-03", Status: "approved"}, nil
		},
	}

	svc := NewService()
	resp, err := svc.Act(context.Background(), gw, ActionRequest{LeaveID: "l1", Action: ActionApprove})
	assert.NoError(t, err)
	assert.Equal(t, "l1", gotID)
	assert.Equal(t, "approve", gotAction)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "2026-07-01", resp.Start)
}

func TestService_ActSurfacesGatewayError(t *testing.T) {
	gw := &fakeGateway{
		leaveActionFn: func(ctx context.Context, leaveID, action string) (gateway.Event, error) {
			return gateway.Event{}, errors.New("gateway down")
		},
	}

	svc := NewService()
	_, err := svc.Act(context.Background(), gw, ActionRequest{LeaveID: "l1", Action: ActionReject})
	assert.Error(t, err)
}
