package webapp

import (
	"net/http"

	"creatortrust/pkg/client"

	"github.com/gin-gonic/gin"
)

func (s *Server) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{})
}

func (s *Server) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	sess, err := s.newSession(c)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login.tmpl", gin.H{"Error": errText(err), "Email": email})
		return
	}

	if err := sess.Login(c.Request.Context(), email, password); err != nil {
		c.HTML(http.StatusUnauthorized, "login.tmpl", gin.H{"Error": errText(err), "Email": email})
		return
	}

	s.setTokenCookie(c, sess.Client().Token())
	c.Redirect(http.StatusFound, "/dashboard")
}

func (s *Server) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{})
}

func (s *Server) Signup(c *gin.Context) {
	in := client.RegisterInput{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		UserType: c.PostForm("user_type"),
	}

	sess, err := s.newSession(c)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "signup.tmpl", gin.H{"Error": errText(err), "Form": in})
		return
	}

	if err := sess.Register(c.Request.Context(), in); err != nil {
		c.HTML(http.StatusBadRequest, "signup.tmpl", gin.H{"Error": errText(err), "Form": in})
		return
	}

	s.setTokenCookie(c, sess.Client().Token())
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout drops the cookie; there is nothing server-side to tear down.
// Logging out twice is fine.
func (s *Server) Logout(c *gin.Context) {
	s.clearTokenCookie(c)
	c.Redirect(http.StatusFound, "/login")
}
