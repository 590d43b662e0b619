package manager

import (
	"context"

	"go.uber.org/zap"

	"leave-portal/internal/gateway"
	"leave-portal/internal/leave"
	managererrors "leave-portal/internal/manager/errors"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// Gateway is the slice of the remote API the manager view consumes.
type Gateway interface {
	EmployeeLeaves(ctx context.Context) ([]gateway.EmployeeLeave, error)
	LeaveAction(ctx context.Context, leaveID, action string) (gateway.Event, error)
}

//go:generate mockgen -source=manager_service.go -destination=mock/manager_service_mock.go -package=mock
type Service interface {
	Pending(ctx context.Context, gw Gateway) ([]EmployeeLeaveResponse, error)
	Act(ctx context.Context, gw Gateway, req ActionRequest) (ActionResponse, error)
}

type service struct {
	logger *zap.Logger
}

func NewService(logger ...*zap.Logger) Service {
	l := zap.L().Named("manager.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("manager.service")
	}
	return &service{logger: l}
}

func (s *service) Pending(ctx context.Context, gw Gateway) ([]EmployeeLeaveResponse, error) {
	leaves, err := gw.EmployeeLeaves(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]EmployeeLeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp := EmployeeLeaveResponse{
			ID:          l.ID,
			Requester:   l.Requester.FullName,
			LeaveType:   l.LeaveType,
			Start:       l.Start,
			End:         l.End,
			Description: l.Description,
			Status:      l.Status,
			Actionable:  l.Status == string(leave.StatusPending),
		}
		if start, err := leave.ParseWireDay(l.Start); err == nil {
			resp.Start = start.Format("2006-01-02")
		}
		if end, err := leave.ParseWireDay(l.End); err == nil {
			resp.End = end.Format("2006-01-02")
		}
		out = append(out, resp)
	}
	return out, nil
}

// Act forwards an approve/reject decision. The approval authority itself is
// the server's rule; this side only guards the action vocabulary.
func (s *service) Act(ctx context.Context, gw Gateway, req ActionRequest) (ActionResponse, error) {
	if req.LeaveID == "" {
		return ActionResponse{}, managererrors.ErrMissingLeaveID
	}
	if req.Action != ActionApprove && req.Action != ActionReject {
		return ActionResponse{}, managererrors.ErrInvalidAction
	}

	updated, err := gw.LeaveAction(ctx, req.LeaveID, req.Action)
	if err != nil {
		s.logger.Warn("leave action failed",
			zap.String("leave_id", req.LeaveID),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return ActionResponse{}, err
	}

	s.logger.Info("leave action applied",
		zap.String("leave_id", updated.ID),
		zap.String("action", req.Action),
		zap.String("status", updated.Status),
	)

	resp := ActionResponse{
		ID:        updated.ID,
		LeaveType: updated.LeaveType,
		Start:     updated.Start,
		End:       updated.End,
		Status:    updated.Status,
	}
	if start, err := leave.ParseWireDay(updated.Start); err == nil {
		resp.Start = start.Format("2006-01-02")
	}
	if end, err := leave.ParseWireDay(updated.End); err == nil {
		resp.End = end.Format("2006-01-02")
	}
	return resp, nil
}
