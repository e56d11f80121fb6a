package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/session"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// LoginPath is where anonymous callers are sent.
const LoginPath = "/login/"

// UserLoader resolves a session user id to an account.
type UserLoader interface {
	CurrentUser(ctx context.Context, id int64) (domain.CurrentUser, error)
}

// LoadUser attaches the signed-in user to the context. A session pointing at a
// missing account is logged out.
func LoadUser(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.From(c)
		if id := s.UserID(); id > 0 {
			u, err := users.CurrentUser(c.Request.Context(), id)
			switch {
			case err == nil:
				c.Set(currentUserKey, u)
			case domain.IsNotFound(err):
				s.Logout()
			default:
				utils.LogEvent(GetRequestID(c), "auth", "load_user_failed", "user_id", id, "err", err)
			}
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (domain.CurrentUser, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return domain.CurrentUser{}, false
	}
	u, ok := v.(domain.CurrentUser)
	return u, ok
}

// RequireLogin redirects anonymous callers to the login page, remembering
// where they were going.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); ok {
			c.Next()
			return
		}
		if err := session.Save(c); err != nil {
			utils.LogEvent(GetRequestID(c), "session", "save_failed", "err", err)
		}
		c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// SafeNext returns next when it is a local path, otherwise fallback.
func SafeNext(next, fallback string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	return next
}
