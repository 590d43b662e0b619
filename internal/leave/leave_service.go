package leave

import (
	"context"
	"time"

	"go.uber.org/zap"

	leaveerrors "leave-portal/internal/leave/errors"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Calendar(ctx context.Context, ws *Workspace) ([]CalendarEntryResponse, error)
	Holidays(ctx context.Context, ws *Workspace) ([]HolidayResponse, error)
	OpenDay(ctx context.Context, ws *Workspace, req OpenDayRequest) (DayViewResponse, error)
	UpdateForm(ctx context.Context, ws *Workspace, req UpdateFormRequest) (FormResponse, error)
	Submit(ctx context.Context, ws *Workspace) (LeaveResponse, error)
	Delete(ctx context.Context, ws *Workspace) error
	CloseForm(ws *Workspace)
}

type service struct {
	logger *zap.Logger
}

func NewService(logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{logger: l}
}

func (s *service) Calendar(ctx context.Context, ws *Workspace) ([]CalendarEntryResponse, error) {
	mounted, err := ws.EnsureMounted(ctx)
	if err != nil {
		return nil, err
	}
	if !mounted {
		if err := ws.Store().Refresh(ctx); err != nil {
			return nil, err
		}
	}

	requests := ws.Store().Snapshot()
	entries := make([]CalendarEntryResponse, 0, len(requests))
	for _, r := range requests {
		start, endExclusive := r.RenderSpan()
		entries = append(entries, CalendarEntryResponse{
			ID:     r.ID,
			Title:  r.LeaveType,
			Start:  start.Format(dayFormat),
			End:    endExclusive.Format(dayFormat),
			Color:  StatusColor(r.Status),
			Status: string(r.Status),
			AllDay: true,
		})
	}
	return entries, nil
}

func (s *service) Holidays(ctx context.Context, ws *Workspace) ([]HolidayResponse, error) {
	if _, err := ws.EnsureMounted(ctx); err != nil {
		return nil, err
	}

	holidays := ws.Holidays().All()
	out := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, HolidayResponse{
			Name: h.Name,
			Date: h.Date.Format(dayFormat),
		})
	}
	return out, nil
}

func (s *service) OpenDay(ctx context.Context, ws *Workspace, req OpenDayRequest) (DayViewResponse, error) {
	if _, err := ws.EnsureMounted(ctx); err != nil {
		return DayViewResponse{}, err
	}

	clicked, err := time.ParseInLocation(dayFormat, req.Date, time.Local)
	if err != nil {
		return DayViewResponse{}, leaveerrors.ErrInvalidDateFormat
	}

	cls := Classify(clicked, ws.Holidays(), ws.Store())
	s.logger.Debug("day classified",
		zap.String("date", req.Date),
		zap.String("kind", string(cls.Kind)),
	)

	if cls.Kind == KindHoliday {
		return DayViewResponse{
			Mode: ModeHoliday,
			Holiday: &HolidayResponse{
				Name: cls.Holiday.Name,
				Date: cls.Holiday.Date.Format(dayFormat),
			},
		}, nil
	}

	form, err := NewForm(cls, ws.gw, ws.Store(), s.logger)
	if err != nil {
		return DayViewResponse{}, err
	}
	ws.OpenForm(form)

	mode := ModeCreate
	if cls.Kind == KindExisting {
		mode = ModeEdit
	}
	return DayViewResponse{Mode: mode, Form: formResponse(form)}, nil
}

func (s *service) UpdateForm(ctx context.Context, ws *Workspace, req UpdateFormRequest) (FormResponse, error) {
	form := ws.Form()
	if form == nil {
		return FormResponse{}, leaveerrors.ErrNoOpenForm
	}

	if req.LeaveType != nil {
		if err := form.SetLeaveType(*req.LeaveType); err != nil {
			return FormResponse{}, err
		}
	}
	if req.Start != nil {
		d, err := time.ParseInLocation(dayFormat, *req.Start, time.Local)
		if err != nil {
			return FormResponse{}, leaveerrors.ErrInvalidDateFormat
		}
		if err := form.SetStart(d); err != nil {
			return FormResponse{}, err
		}
	}
	if req.End != nil {
		d, err := time.ParseInLocation(dayFormat, *req.End, time.Local)
		if err != nil {
			return FormResponse{}, leaveerrors.ErrInvalidDateFormat
		}
		if err := form.SetEnd(d); err != nil {
			return FormResponse{}, err
		}
	}
	if req.Description != nil {
		if err := form.SetDescription(*req.Description); err != nil {
			return FormResponse{}, err
		}
	}

	return *formResponse(form), nil
}

func (s *service) Submit(ctx context.Context, ws *Workspace) (LeaveResponse, error) {
	form := ws.Form()
	if form == nil {
		return LeaveResponse{}, leaveerrors.ErrNoOpenForm
	}

	committed, err := form.Submit(ctx)
	if err != nil {
		return LeaveResponse{}, err
	}
	ws.CloseForm()

	return LeaveResponse{
		ID:          committed.ID,
		LeaveType:   committed.LeaveType,
		Start:       committed.Start.Format(dayFormat),
		End:         committed.End.Format(dayFormat),
		Description: committed.Description,
		Status:      string(committed.Status),
	}, nil
}

func (s *service) Delete(ctx context.Context, ws *Workspace) error {
	form := ws.Form()
	if form == nil {
		return leaveerrors.ErrNoOpenForm
	}

	if err := form.Delete(ctx); err != nil {
		return err
	}
	ws.CloseForm()
	return nil
}

func (s *service) CloseForm(ws *Workspace) {
	ws.CloseForm()
}

func formResponse(f *Form) *FormResponse {
	state := f.Snapshot()
	resp := &FormResponse{
		SourceID:    state.SourceID,
		Editing:     state.Editing,
		LeaveType:   state.LeaveType,
		Description: state.Description,
		Locked:      state.Locked,
		Phase:       string(state.Phase),
		LeaveTypes:  LeaveTypes,
	}
	if !state.Start.IsZero() {
		resp.Start = state.Start.Format(dayFormat)
	}
	if !state.End.IsZero() {
		resp.End = state.End.Format(dayFormat)
	}
	return resp
}
