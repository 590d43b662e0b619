package user

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"leave-portal/internal/gateway"
	usererrors "leave-portal/internal/user/errors"
)

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

// Gateway is the slice of the remote API the account admin view consumes.
type Gateway interface {
	ListUsers(ctx context.Context) ([]gateway.User, error)
	SearchUsers(ctx context.Context, search string, page, limit int) ([]gateway.User, error)
	CreateUser(ctx context.Context, payload gateway.UserPayload) (gateway.User, error)
	UpdateUser(ctx context.Context, id string, payload gateway.UserPayload) (gateway.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListManagers(ctx context.Context) ([]gateway.Manager, error)
}

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, gw Gateway) ([]UserResponse, error)
	Search(ctx context.Context, gw Gateway, req SearchUsersRequest) ([]UserResponse, error)
	Create(ctx context.Context, gw Gateway, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, gw Gateway, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, gw Gateway, id string) error
	Managers(ctx context.Context, gw Gateway) ([]ManagerResponse, error)
}

type service struct {
	logger *zap.Logger
}

func NewService(logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{logger: l}
}

func (s *service) List(ctx context.Context, gw Gateway) ([]UserResponse, error) {
	users, err := gw.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return mapUsers(users), nil
}

func (s *service) Search(ctx context.Context, gw Gateway, req SearchUsersRequest) ([]UserResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 10
	}

	users, err := gw.SearchUsers(ctx, req.Search, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	return mapUsers(users), nil
}

func (s *service) Create(ctx context.Context, gw Gateway, req CreateUserRequest) (UserResponse, error) {
	if err := validateProfile(req.FullName, req.Mobile, req.Role); err != nil {
		s.logger.Warn("create user validation failed", zap.Error(err))
		return UserResponse{}, err
	}
	if len(req.Password) < 6 {
		return UserResponse{}, usererrors.ErrWeakPassword
	}

	created, err := gw.CreateUser(ctx, gateway.UserPayload{
		FullName: req.FullName,
		Mobile:   req.Mobile,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return UserResponse{}, err
	}

	s.logger.Info("user created",
		zap.String("user_id", created.ID),
		zap.String("role", created.Role),
	)
	return mapUser(created), nil
}

func (s *service) Update(ctx context.Context, gw Gateway, id string, req UpdateUserRequest) (UserResponse, error) {
	if id == "" {
		return UserResponse{}, usererrors.ErrMissingUserID
	}
	if err := validateProfile(req.FullName, req.Mobile, req.Role); err != nil {
		s.logger.Warn("update user validation failed", zap.Error(err))
		return UserResponse{}, err
	}

	updated, err := gw.UpdateUser(ctx, id, gateway.UserPayload{
		ID:       id,
		FullName: req.FullName,
		Mobile:   req.Mobile,
		Role:     req.Role,
	})
	if err != nil {
		return UserResponse{}, err
	}

	s.logger.Info("user updated", zap.String("user_id", id))
	return mapUser(updated), nil
}

func (s *service) Delete(ctx context.Context, gw Gateway, id string) error {
	if id == "" {
		return usererrors.ErrMissingUserID
	}
	if err := gw.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", id))
	return nil
}

func (s *service) Managers(ctx context.Context, gw Gateway) ([]ManagerResponse, error) {
	managers, err := gw.ListManagers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ManagerResponse, 0, len(managers))
	for _, m := range managers {
		out = append(out, ManagerResponse{ID: m.ID, FullName: m.FullName})
	}
	return out, nil
}

// validateProfile mirrors the account form rules: name present, mobile
// exactly ten digits, role one of the two known roles.
func validateProfile(fullName, mobile, role string) error {
	if fullName == "" {
		return usererrors.ErrFullNameRequired
	}
	if !mobilePattern.MatchString(mobile) {
		return usererrors.ErrInvalidMobile
	}
	switch role {
	case "":
		return usererrors.ErrRoleRequired
	case "employee", "manager":
	default:
		return usererrors.ErrInvalidRole
	}
	return nil
}

func mapUser(u gateway.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Mobile:   u.Mobile,
		Role:     u.Role,
	}
}

func mapUsers(users []gateway.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, mapUser(u))
	}
	return out
}
