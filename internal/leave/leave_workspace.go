package leave

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// WorkspaceContextKey is where the session middleware parks the caller's
// workspace for handlers downstream.
const WorkspaceContextKey = "workspace"

// Workspace is the per-session calendar state: the working set, the holiday
// overlay and the single open form. It is created at session start and
// discarded at logout.
type Workspace struct {
	mu       sync.Mutex
	gw       Gateway
	store    *Store
	holidays *HolidaySet
	form     *Form
	mounted  bool

	// onFormClose lets the session drop form-scoped caches (the balance
	// cache) without this package knowing about them.
	onFormClose func()
	logger      *zap.Logger
}

func NewWorkspace(gw Gateway, onFormClose func(), logger ...*zap.Logger) *Workspace {
	l := zap.L().Named("leave.workspace")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.workspace")
	}
	return &Workspace{
		gw:          gw,
		store:       NewStore(gw, l),
		onFormClose: onFormClose,
		logger:      l,
	}
}

// EnsureMounted populates the working set and the holiday overlay on first
// use. Holidays are fetched once per session; events are refreshed here and
// after every confirmed write. The returned bool reports whether this call
// performed the mount, so callers that refresh anyway can skip a duplicate
// fetch right after mounting.
func (w *Workspace) EnsureMounted(ctx context.Context) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.mounted {
		return false, nil
	}
	if err := w.store.Refresh(ctx); err != nil {
		return false, err
	}
	holidays, err := LoadHolidays(ctx, w.gw)
	if err != nil {
		return false, err
	}
	w.holidays = holidays
	w.mounted = true
	return true, nil
}

func (w *Workspace) Store() *Store {
	return w.store
}

func (w *Workspace) Holidays() *HolidaySet {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.holidays
}

// OpenForm replaces the current form. At most one form is open at a time;
// opening a new day discards the previous draft, like closing the modal.
func (w *Workspace) OpenForm(f *Form) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.form != nil && w.onFormClose != nil {
		w.onFormClose()
	}
	w.form = f
}

func (w *Workspace) Form() *Form {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// CloseForm discards the draft and any form-scoped caches.
func (w *Workspace) CloseForm() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form = nil
	if w.onFormClose != nil {
		w.onFormClose()
	}
}
