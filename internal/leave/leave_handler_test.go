package leave_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"leave-portal/internal/leave"
	leaveerrors "leave-portal/internal/leave/errors"
)

type fakeService struct {
	calendarFn   func(ctx context.Context, ws *leave.Workspace) ([]leave.CalendarEntryResponse, error)
	holidaysFn   func(ctx context.Context, ws *leave.Workspace) ([]leave.HolidayResponse, error)
	openDayFn    func(ctx context.Context, ws *leave.Workspace, req leave.OpenDayRequest) (leave.DayViewResponse, error)
	updateFormFn func(ctx context.Context, ws *leave.Workspace, req leave.UpdateFormRequest) (leave.FormResponse, error)
	submitFn     func(ctx context.Context, ws *leave.Workspace) (leave.LeaveResponse, error)
	deleteFn     func(ctx context.Context, ws *leave.Workspace) error
	closeFormFn  func(ws *leave.Workspace)
}

func (f *fakeService) Calendar(ctx context.Context, ws *leave.Workspace) ([]leave.CalendarEntryResponse, error) {
	return f.calendarFn(ctx, ws)
}
func (f *fakeService) Holidays(ctx context.Context, ws *leave.Workspace) ([]leave.HolidayResponse, error) {
	return f.holidaysFn(ctx, ws)
}
func (f *fakeService) OpenDay(ctx context.Context, ws *leave.Workspace, req leave.OpenDayRequest) (leave.DayViewResponse, error) {
	return f.openDayFn(ctx, ws, req)
}
func (f *fakeService) UpdateForm(ctx context.Context, ws *leave.Workspace, req leave.UpdateFormRequest) (leave.FormResponse, error) {
	return f.updateFormFn(ctx, ws, req)
}
func (f *fakeService) Submit(ctx context.Context, ws *leave.Workspace) (leave.LeaveResponse, error) {
	return f.submitFn(ctx, ws)
}
func (f *fakeService) Delete(ctx context.Context, ws *leave.Workspace) error {
	return f.deleteFn(ctx, ws)
}
func (f *fakeService) CloseForm(ws *leave.Workspace) {
	if f.closeFormFn != nil {
		f.closeFormFn(ws)
	}
}

func TestHandler_CalendarDegradesToEmptyOnError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		calendarFn: func(ctx context.Context, ws *leave.Workspace) ([]leave.CalendarEntryResponse, error) {
			return nil, errors.New("gateway down")
		},
	}
	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/calendar/events", nil)
	h.Calendar(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestHandler_OpenDay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		openDayFn: func(ctx context.Context, ws *leave.Workspace, req leave.OpenDayRequest) (leave.DayViewResponse, error) {
			assert.Equal(t, "2026-11-20", req.Date)
			return leave.DayViewResponse{
				Mode: leave.ModeCreate,
				Form: &leave.FormResponse{Start: req.Date, End: req.Date, Phase: "idle"},
			}, nil
		},
	}
	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/calendar/clicks", strings.NewReader(`{"date":"2026-11-20"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.OpenDay(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mode":"create"`)
}

func TestHandler_OpenDayRejectsMissingDate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := leave.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/calendar/clicks", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.OpenDay(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_SubmitMapsServiceErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		submitFn: func(ctx context.Context, ws *leave.Workspace) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leaveerrors.ErrRequestLocked
		},
	}
	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/calendar/form/submit", nil)
	h.Submit(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "approved leave requests cannot be changed")
}

func TestHandler_CloseForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	closed := false
	svc := &fakeService{
		closeFormFn: func(ws *leave.Workspace) { closed = true },
	}
	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/calendar/form/close", nil)
	h.CloseForm(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, closed)
}
