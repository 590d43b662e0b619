package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"leave-portal/internal/balance"
	"leave-portal/internal/gateway"
	"leave-portal/internal/leave"
	sessionerrors "leave-portal/internal/session/errors"
)

// ContextKey is where the middleware parks the caller's session.
const ContextKey = "session"

// Session is the explicit replacement for the ambient auth state the
// original front-end kept in browser storage: identity, role, resolved
// capabilities and the per-session engine state all travel together, created
// at login and discarded at logout.
type Session struct {
	Token        string
	UserID       string
	FullName     string
	Role         string
	Capabilities Capabilities

	Gateway   *gateway.Client
	Workspace *leave.Workspace
	Balances  *balance.Cache

	lastSeen time.Time
}

type claims struct {
	UserID   string
	FullName string
	Role     string
}

// parseClaims reads identity claims from the bearer token. The token is
// minted and verified by the remote API; this side only needs its contents,
// so the signature is not re-checked here.
func parseClaims(token string) (claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return claims{}, sessionerrors.ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return claims{}, sessionerrors.ErrInvalidToken
	}

	userID, _ := mapClaims["userId"].(string)
	if userID == "" {
		return claims{}, sessionerrors.ErrMissingClaims
	}
	fullName, _ := mapClaims["fullName"].(string)
	role, _ := mapClaims["role"].(string)
	if role == "" {
		role = RoleEmployee
	}

	return claims{UserID: userID, FullName: fullName, Role: role}, nil
}
