package user_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"leave-portal/internal/user"
	usererrors "leave-portal/internal/user/errors"
)

type fakeService struct {
	listFn     func(ctx context.Context, gw user.Gateway) ([]user.UserResponse, error)
	searchFn   func(ctx context.Context, gw user.Gateway, req user.SearchUsersRequest) ([]user.UserResponse, error)
	createFn   func(ctx context.Context, gw user.Gateway, req user.CreateUserRequest) (user.UserResponse, error)
	updateFn   func(ctx context.Context, gw user.Gateway, id string, req user.UpdateUserRequest) (user.UserResponse, error)
	deleteFn   func(ctx context.Context, gw user.Gateway, id string) error
	managersFn func(ctx context.Context, gw user.Gateway) ([]user.ManagerResponse, error)
}

func (f *fakeService) List(ctx context.Context, gw user.Gateway) ([]user.UserResponse, error) {
	return f.listFn(ctx, gw)
}
func (f *fakeService) Search(ctx context.Context, gw user.Gateway, req user.SearchUsersRequest) ([]user.UserResponse, error) {
	return f.searchFn(ctx, gw, req)
}
func (f *fakeService) Create(ctx context.Context, gw user.Gateway, req user.CreateUserRequest) (user.UserResponse, error) {
	return f.createFn(ctx, gw, req)
}
func (f *fakeService) Update(ctx context.Context, gw user.Gateway, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	return f.updateFn(ctx, gw, id, req)
}
func (f *fakeService) Delete(ctx context.Context, gw user.Gateway, id string) error {
	return f.deleteFn(ctx, gw, id)
}
func (f *fakeService) Managers(ctx context.Context, gw user.Gateway) ([]user.ManagerResponse, error) {
	return f.managersFn(ctx, gw)
}

func TestHandler_ListDegradesToEmptyOnError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		listFn: func(ctx context.Context, gw user.Gateway) ([]user.UserResponse, error) {
			return nil, errors.New("gateway down")
		},
	}
	h := user.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/users", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestHandler_SearchAddsPaginationMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		searchFn: func(ctx context.Context, gw user.Gateway, req user.SearchUsersRequest) ([]user.UserResponse, error) {
			assert.Equal(t, "pri", req.Search)
			return []user.UserResponse{{ID: "u1", FullName: "Priya Sharma"}}, nil
		},
	}
	h := user.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/users/search", strings.NewReader(`{"search":"pri","page":1,"limit":10}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"meta"`)
	assert.Contains(t, w.Body.String(), "Priya Sharma")
}

func TestHandler_SearchMetaDefaultsOmittedPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		searchFn: func(ctx context.Context, gw user.Gateway, req user.SearchUsersRequest) ([]user.UserResponse, error) {
			return []user.UserResponse{{ID: "u1", FullName: "Priya Sharma"}}, nil
		},
	}
	h := user.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/users/search", strings.NewReader(`{"search":"pri"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	// Omitted page/limit surface as the effective defaults, never zero.
	assert.Contains(t, w.Body.String(), `"page":1`)
	assert.Contains(t, w.Body.String(), `"pageSize":10`)
}

func TestHandler_CreateReturns201(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, gw user.Gateway, req user.CreateUserRequest) (user.UserResponse, error) {
			return user.UserResponse{ID: "u9", FullName: req.FullName, Role: req.Role}, nil
		},
	}
	h := user.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"fullName":"Priya Sharma","mobile":"9876543210","password":"secret1","role":"employee"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateRejectsUnknownRoleAtBinding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := user.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"fullName":"Priya Sharma","mobile":"9876543210","password":"secret1","role":"admin"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	assert.Contains(t, w.Body.String(), "Role is invalid")
}

func TestHandler_UpdateMapsServiceErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		updateFn: func(ctx context.Context, gw user.Gateway, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
			return user.UserResponse{}, usererrors.ErrInvalidMobile
		},
	}
	h := user.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "u9"}}
	body := `{"fullName":"Priya Sharma","mobile":"98765","role":"employee"}`
	c.Request = httptest.NewRequest(http.MethodPut, "/users/u9", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "mobile number must be 10 digits")
}
