package session

import (
	"strings"

	"github.com/gin-gonic/gin"

	"leave-portal/internal/balance"
	"leave-portal/internal/gateway"
	"leave-portal/internal/leave"
	sessionerrors "leave-portal/internal/session/errors"
	"leave-portal/internal/shared/apperror"
	"leave-portal/internal/shared/contextutil"
	"leave-portal/internal/shared/response"
)

// Middleware attaches the caller's session and fans its pieces out to the
// context keys the feature handlers read.
func Middleware(reg *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			token = ""
		}
		if token == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				token = cookie
			}
		}
		if token == "" {
			errObj := sessionerrors.ErrTokenRequired
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		sess, err := reg.Attach(token)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Set(ContextKey, sess)
		c.Set("user_id", sess.UserID)
		c.Set("role", sess.Role)
		c.Set(leave.WorkspaceContextKey, sess.Workspace)
		c.Set(balance.CacheContextKey, sess.Balances)
		c.Set(gateway.ClientContextKey, sess.Gateway)

		c.Request = c.Request.WithContext(
			contextutil.WithUserID(c.Request.Context(), sess.UserID),
		)
		c.Next()
	}
}

// RequireCapability gates a route on the capability set resolved at session
// start, replacing the role-string branching of the original UI.
func RequireCapability(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(ContextKey)
		if !ok {
			errObj := apperror.ErrUnauthorized
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		sess := v.(*Session)
		if !sess.Capabilities.Allows(resource, action) {
			errObj := apperror.ErrForbidden
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// LogoutHandler tears down the caller's session.
func LogoutHandler(reg *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, ok := c.Get(ContextKey); ok {
			sess := v.(*Session)
			reg.Logout(sess.Token)
		}
		response.Success(c, 200, gin.H{"loggedOut": true}, nil)
	}
}
