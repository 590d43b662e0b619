package manager_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"leave-portal/internal/manager"
)

type fakeService struct {
	pendingFn func(ctx context.Context, gw manager.Gateway) ([]manager.EmployeeLeaveResponse, error)
	actFn     func(ctx context.Context, gw manager.Gateway, req manager.ActionRequest) (manager.ActionResponse, error)
}

func (f *fakeService) Pending(ctx context.Context, gw manager.Gateway) ([]manager.EmployeeLeaveResponse, error) {
	return f.pendingFn(ctx, gw)
}
func (f *fakeService) Act(ctx context.Context, gw manager.Gateway, req manager.ActionRequest) (manager.ActionResponse, error) {
	return f.actFn(ctx, gw, req)
}

func TestHandler_PendingDegradesToEmptyOnError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		pendingFn: func(ctx context.Context, gw manager.Gateway) ([]manager.EmployeeLeaveResponse, error) {
			return nil, errors.New("gateway down")
		},
	}
	h := manager.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/manager/employee-leaves", nil)
	h.Pending(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestHandler_ActRejectsUnknownAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := manager.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/manager/leave-actions", strings.NewReader(`{"leaveId":"l1","action":"escalate"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Act(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_ActForwardsDecision(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		actFn: func(ctx context.Context, gw manager.Gateway, req manager.ActionRequest) (manager.ActionResponse, error) {
			assert.Equal(t, "l1", req.LeaveID)
			assert.Equal(t, "approve", req.Action)
			return manager.ActionResponse{ID: "l1", Status: "approved"}, nil
		},
	}
	h := manager.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/manager/leave-actions", strings.NewReader(`{"leaveId":"l1","action":"approve"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Act(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)
}
