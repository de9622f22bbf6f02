package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

const SessionCookie = "planner_session"

const userContextKey = "web_user"

func SetSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", false, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// RequireUser gates every authenticated page. Anonymous or stale
// sessions get bounced to the login form.
func RequireUser(authService ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		user, err := authService.CurrentUser(c.Request.Context(), token)
		if err != nil {
			ClearSessionCookie(c)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func SignedInUser(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}
