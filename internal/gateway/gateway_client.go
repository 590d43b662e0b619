package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	gatewayerrors "leave-portal/internal/gateway/errors"
	"leave-portal/internal/shared/contextutil"
)

// DefaultTimeout bounds every gateway call. The original client had no
// timeout at all, which left forms pending forever on a hung call.
const DefaultTimeout = 10 * time.Second

// ClientContextKey is where the session middleware parks the caller's
// credential-bound client for handlers downstream.
const ClientContextKey = "gateway_client"

// Client talks to the remote leave API. It is safe for concurrent use; a
// bearer credential is bound per session with WithBearer, mirroring how the
// transport layer attached it in the original front-end.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	bearer  string
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger ...*zap.Logger) *Client {
	l := zap.L().Named("gateway.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gateway.client")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: timeout,
		logger:  l,
	}
}

// WithBearer returns a copy of the client bound to the given credential.
func (c *Client) WithBearer(token string) *Client {
	bound := *c
	bound.bearer = token
	return &bound
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	// Prefer the request-scoped logger so gateway lines carry the request id.
	logger := contextutil.GetLogger(ctx, c.logger)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			logger.Error("gateway call timed out",
				zap.String("method", method),
				zap.String("path", path),
			)
			return gatewayerrors.ErrTimeout
		}
		logger.Error("gateway call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return gatewayerrors.ErrUnavailable
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gatewayerrors.ErrMalformedResponse
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env errorEnvelope
		_ = json.Unmarshal(raw, &env)
		logger.Warn("gateway call rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", env.Message),
		)
		return gatewayerrors.FromStatus(resp.StatusCode, env.Message)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			logger.Error("gateway response decode failed",
				zap.String("path", path),
				zap.Error(err),
			)
			return gatewayerrors.ErrMalformedResponse
		}
	}
	return nil
}

// --- Leave events ---

func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	err := c.do(ctx, http.MethodGet, "/events/all", nil, &events)
	return events, err
}

func (c *Client) CreateEvent(ctx context.Context, payload EventPayload) (Event, error) {
	var created Event
	err := c.do(ctx, http.MethodPost, "/events/create", payload, &created)
	return created, err
}

func (c *Client) UpdateEvent(ctx context.Context, id string, payload EventPayload) (Event, error) {
	payload.ID = id
	var updated Event
	err := c.do(ctx, http.MethodPut, "/events/update/"+id, payload, &updated)
	return updated, err
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/delete/"+id, nil, nil)
}

// --- Holidays ---

func (c *Client) ListHolidays(ctx context.Context) ([]Holiday, error) {
	var holidays []Holiday
	err := c.do(ctx, http.MethodGet, "/holidays/all", nil, &holidays)
	return holidays, err
}

// --- Balances & managers ---

func (c *Client) LeaveBalance(ctx context.Context, userID, leaveType string) (BalanceResponse, error) {
	var balance BalanceResponse
	err := c.do(ctx, http.MethodPost, "/user/leave-balances", BalanceRequest{
		UserID:    userID,
		LeaveType: leaveType,
	}, &balance)
	return balance, err
}

func (c *Client) ListManagers(ctx context.Context) ([]Manager, error) {
	var managers []Manager
	err := c.do(ctx, http.MethodGet, "/user/managers", nil, &managers)
	return managers, err
}

// --- Manager actions ---

func (c *Client) EmployeeLeaves(ctx context.Context) ([]EmployeeLeave, error) {
	var leaves []EmployeeLeave
	err := c.do(ctx, http.MethodGet, "/events/manager/employee-leaves", nil, &leaves)
	return leaves, err
}

func (c *Client) LeaveAction(ctx context.Context, leaveID, action string) (Event, error) {
	var updated Event
	err := c.do(ctx, http.MethodPost, "/events/manager/leave-action", LeaveActionRequest{
		LeaveID: leaveID,
		Action:  action,
	}, &updated)
	return updated, err
}

// --- User management ---

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := c.do(ctx, http.MethodGet, "/user/all", nil, &users)
	return users, err
}

func (c *Client) SearchUsers(ctx context.Context, search string, page, limit int) ([]User, error) {
	var result UserSearchResponse
	err := c.do(ctx, http.MethodPost, "/user/search", UserSearchRequest{
		Search: search,
		Page:   page,
		Limit:  limit,
	}, &result)
	return result.Data, err
}

func (c *Client) CreateUser(ctx context.Context, payload UserPayload) (User, error) {
	var created User
	err := c.do(ctx, http.MethodPost, "/user/create", payload, &created)
	return created, err
}

func (c *Client) UpdateUser(ctx context.Context, id string, payload UserPayload) (User, error) {
	var updated User
	err := c.do(ctx, http.MethodPut, "/user/update/"+id, payload, &updated)
	return updated, err
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/user/delete/"+id, nil, nil)
}

// String implements fmt.Stringer without exposing the bearer credential.
func (c *Client) String() string {
	return fmt.Sprintf("gateway.Client(%s)", c.baseURL)
}
