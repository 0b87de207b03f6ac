package webapp

import (
	"net/http"

	"creatortrust/internal/session"
	"creatortrust/pkg/client"

	"github.com/gin-gonic/gin"
)

const tokenCookie = "ct_token"

const sessionKey = "webapp_session"

// newSession builds a per-request session around the cookie token. No cookie
// means an unauthenticated session with no network traffic.
func (s *Server) newSession(c *gin.Context) (*session.Store, error) {
	store := client.NewMemoryTokenStore()
	if token, err := c.Cookie(tokenCookie); err == nil && token != "" {
		if err := store.Save(token); err != nil {
			return nil, err
		}
	}

	api, err := client.New(s.apiBaseURL, store, s.httpClient)
	if err != nil {
		return nil, err
	}
	return session.New(api), nil
}

// RequireSession resolves the cookie token into an identity before the page
// handler runs. Missing or rejected tokens land on /login with the cookie
// dropped.
func (s *Server) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := s.newSession(c)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if sess.Client().Token() == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if err := sess.RefreshUser(c.Request.Context()); err != nil {
			s.clearTokenCookie(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Store {
	v, _ := c.Get(sessionKey)
	sess, _ := v.(*session.Store)
	return sess
}

func (s *Server) setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(tokenCookie, token, int(s.cookieTTL.Seconds()), "/", "", false, true)
}

func (s *Server) clearTokenCookie(c *gin.Context) {
	c.SetCookie(tokenCookie, "", -1, "/", "", false, true)
}
