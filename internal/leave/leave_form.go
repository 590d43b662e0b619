package leave

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	leaveerrors "leave-portal/internal/leave/errors"
)

type FormPhase string

const (
	PhaseIdle    FormPhase = "idle"
	PhasePending FormPhase = "pending"
	PhaseDone    FormPhase = "done"
	PhaseFailed  FormPhase = "failed"
)

// Form holds the transient, detached draft of at most one leave request. It
// never mutates the Store directly: the Store only advances after a confirmed
// gateway round trip. Submit and Delete are modeled as a phase machine
// (idle -> pending -> done|failed) so a second call cannot race an
// outstanding one.
type Form struct {
	mu          sync.Mutex
	leaveType   string
	start       time.Time
	end         time.Time
	description string
	locked      bool
	phase       FormPhase
	source      *LeaveRequest

	gw     Gateway
	store  *Store
	logger *zap.Logger
}

// NewForm builds the form state from a classification result. A holiday
// classification has no editable form and returns ErrHolidayReadOnly.
// The form is locked when the source request is already approved.
func NewForm(cls Classification, gw Gateway, store *Store, logger ...*zap.Logger) (*Form, error) {
	l := zap.L().Named("leave.form")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.form")
	}

	f := &Form{phase: PhaseIdle, gw: gw, store: store, logger: l}

	switch cls.Kind {
	case KindHoliday:
		return nil, leaveerrors.ErrHolidayReadOnly
	case KindExisting:
		src := *cls.Request
		f.source = &src
		f.leaveType = src.LeaveType
		f.start = src.Start
		f.end = src.End
		f.description = src.Description
		f.locked = src.Status == StatusApproved
	case KindFreeDay:
		f.start = cls.Draft.Start
		f.end = cls.Draft.End
	}
	return f, nil
}

// --- Field mutation, rejected wholesale while locked ---

func (f *Form) SetLeaveType(v string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locked {
		return leaveerrors.ErrRequestLocked
	}
	if v != "" && !IsLeaveType(v) {
		return leaveerrors.ErrUnknownLeaveType
	}
	f.leaveType = v
	return nil
}

func (f *Form) SetStart(d time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locked {
		return leaveerrors.ErrRequestLocked
	}
	f.start = DayStart(d)
	return nil
}

func (f *Form) SetEnd(d time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locked {
		return leaveerrors.ErrRequestLocked
	}
	f.end = DayStart(d)
	return nil
}

func (f *Form) SetDescription(v string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locked {
		return leaveerrors.ErrRequestLocked
	}
	f.description = v
	return nil
}

// Validate checks the draft before any network call is made.
func (f *Form) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateUnlocked()
}

func (f *Form) validateUnlocked() error {
	if f.leaveType == "" {
		return leaveerrors.ErrMissingLeaveType
	}
	if f.start.IsZero() {
		return leaveerrors.ErrMissingStartDate
	}
	if f.end.IsZero() {
		return leaveerrors.ErrMissingEndDate
	}
	if f.start.After(f.end) {
		return leaveerrors.ErrInvalidDateRange
	}
	return nil
}

// beginAction moves idle|failed -> pending, rejecting re-entry while a call
// is outstanding. Retrying after a failure is allowed.
func (f *Form) beginAction() error {
	switch f.phase {
	case PhasePending:
		return leaveerrors.ErrActionInFlight
	case PhaseDone:
		return leaveerrors.ErrAlreadyResolved
	}
	f.phase = PhasePending
	return nil
}

// Submit validates the draft and commits it through the gateway: update when
// editing an existing request, create otherwise. The server's canonical
// record is returned and applied to the Store; on failure the user's edits
// stay intact for a retry.
func (f *Form) Submit(ctx context.Context) (LeaveRequest, error) {
	f.mu.Lock()
	if f.locked {
		f.mu.Unlock()
		return LeaveRequest{}, leaveerrors.ErrRequestLocked
	}
	if err := f.validateUnlocked(); err != nil {
		f.mu.Unlock()
		return LeaveRequest{}, err
	}
	if err := f.beginAction(); err != nil {
		f.mu.Unlock()
		return LeaveRequest{}, err
	}

	draft := LeaveRequest{
		LeaveType:   f.leaveType,
		Start:       f.start,
		End:         f.end,
		Description: f.description,
	}
	source := f.source
	f.mu.Unlock()

	var (
		wireErr error
		result  LeaveRequest
	)
	if source != nil {
		updated, err := f.gw.UpdateEvent(ctx, source.ID, draft.Payload())
		if err == nil {
			result, err = ParseEvent(updated)
		}
		wireErr = err
	} else {
		created, err := f.gw.CreateEvent(ctx, draft.Payload())
		if err == nil {
			result, err = ParseEvent(created)
		}
		wireErr = err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if wireErr != nil {
		f.phase = PhaseFailed
		f.logger.Warn("submit failed, draft preserved", zap.Error(wireErr))
		return LeaveRequest{}, wireErr
	}
	f.phase = PhaseDone

	if err := f.store.ApplyLocalUpdate(result); err != nil {
		f.logger.Warn("optimistic update rejected", zap.Error(err))
	}
	// The optimistic copy is a latency hide; the server list stays
	// authoritative even when this refresh fails.
	if err := f.store.Refresh(ctx); err != nil {
		f.logger.Warn("post-submit refresh failed", zap.Error(err))
	}

	f.logger.Info("leave request committed",
		zap.String("leave_id", result.ID),
		zap.String("leave_type", result.LeaveType),
	)
	return result, nil
}

// Delete removes the source request through the gateway. Valid only when
// editing an existing, non-approved request.
func (f *Form) Delete(ctx context.Context) error {
	f.mu.Lock()
	if f.source == nil {
		f.mu.Unlock()
		return leaveerrors.ErrNothingToDelete
	}
	if f.locked {
		f.mu.Unlock()
		return leaveerrors.ErrRequestLocked
	}
	if err := f.beginAction(); err != nil {
		f.mu.Unlock()
		return err
	}
	id := f.source.ID
	f.mu.Unlock()

	err := f.gw.DeleteEvent(ctx, id)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.phase = PhaseFailed
		f.logger.Warn("delete failed", zap.String("leave_id", id), zap.Error(err))
		return err
	}
	f.phase = PhaseDone

	f.store.ApplyLocalRemoval(id)
	if err := f.store.Refresh(ctx); err != nil {
		f.logger.Warn("post-delete refresh failed", zap.Error(err))
	}

	f.logger.Info("leave request deleted", zap.String("leave_id", id))
	return nil
}

func (f *Form) Locked() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locked
}

func (f *Form) Phase() FormPhase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// FormState is an immutable snapshot for rendering.
type FormState struct {
	SourceID    string
	Editing     bool
	LeaveType   string
	Start       time.Time
	End         time.Time
	Description string
	Locked      bool
	Phase       FormPhase
}

func (f *Form) Snapshot() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := FormState{
		LeaveType:   f.leaveType,
		Start:       f.start,
		End:         f.end,
		Description: f.description,
		Locked:      f.locked,
		Phase:       f.phase,
	}
	if f.source != nil {
		state.SourceID = f.source.ID
		state.Editing = true
	}
	return state
}
