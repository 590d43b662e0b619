package session

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	sessionerrors "leave-portal/internal/session/errors"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// capabilityModel is a plain RBAC model; policies live in code because the
// role surface of this application is exactly two roles.
const capabilityModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// capabilityCatalog is every capability the surface checks. Resolution
// enumerates it once per session; handlers never see role strings.
var capabilityCatalog = [][2]string{
	{"calendar", "read"},
	{"calendar", "write"},
	{"balance", "read"},
	{"approvals", "read"},
	{"approvals", "act"},
	{"accounts", "manage"},
}

// Capabilities is the fixed set resolved at session start.
type Capabilities map[string]bool

func capKey(resource, action string) string {
	return resource + ":" + action
}

func (c Capabilities) Allows(resource, action string) bool {
	return c[capKey(resource, action)]
}

type CapabilityResolver struct {
	enforcer *casbin.Enforcer
}

func NewCapabilityResolver() (*CapabilityResolver, error) {
	m, err := model.NewModelFromString(capabilityModel)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{RoleEmployee, "calendar", "read"},
		{RoleEmployee, "calendar", "write"},
		{RoleEmployee, "balance", "read"},
		{RoleManager, "approvals", "read"},
		{RoleManager, "approvals", "act"},
		{RoleManager, "accounts", "manage"},
	}
	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	// A manager can do everything an employee can.
	if _, err := enforcer.AddGroupingPolicy(RoleManager, RoleEmployee); err != nil {
		return nil, err
	}

	return &CapabilityResolver{enforcer: enforcer}, nil
}

// Resolve evaluates the whole catalogue for the role once. The result is
// carried on the session; no ambient role strings are consulted afterwards.
func (r *CapabilityResolver) Resolve(role string) (Capabilities, error) {
	if role != RoleEmployee && role != RoleManager {
		return nil, sessionerrors.ErrUnknownRole
	}

	caps := make(Capabilities, len(capabilityCatalog))
	for _, entry := range capabilityCatalog {
		allowed, err := r.enforcer.Enforce(role, entry[0], entry[1])
		if err != nil {
			return nil, err
		}
		if allowed {
			caps[capKey(entry[0], entry[1])] = true
		}
	}
	return caps, nil
}
